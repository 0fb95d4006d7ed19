//go:build !windows
// +build !windows

package pdh

// stubSubsystem reports NOT_IMPLEMENTED for everything so the package
// compiles off Windows and callers fail with a recognizable status instead
// of a missing DLL.
type stubSubsystem struct{}

func defaultSubsystem() subsystem { return stubSubsystem{} }

func (stubSubsystem) EnumObjects(string, []uint16, *uint32) Status { return NotImplemented }

func (stubSubsystem) EnumObjectItems(string, string, []uint16, *uint32, []uint16, *uint32) Status {
	return NotImplemented
}

func (stubSubsystem) ExpandCounterPath(string, []uint16, *uint32) Status { return NotImplemented }

func (stubSubsystem) OpenQuery() (queryHandle, Status) { return 0, NotImplemented }

func (stubSubsystem) CloseQuery(queryHandle) Status { return NotImplemented }

func (stubSubsystem) ValidatePath(string) Status { return NotImplemented }

func (stubSubsystem) AddCounter(queryHandle, string) (counterHandle, Status) {
	return 0, NotImplemented
}

func (stubSubsystem) RemoveCounter(counterHandle) Status { return NotImplemented }

func (stubSubsystem) CollectQueryData(queryHandle) Status { return NotImplemented }

func (stubSubsystem) FormattedValue(counterHandle, Format) (FormattedValue, Status) {
	return FormattedValue{}, NotImplemented
}
