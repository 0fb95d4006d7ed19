package pdh

// queryHandle and counterHandle are the opaque PDH resource handles. A
// counterHandle is bound to the queryHandle it was created under and is
// invalid once that query is closed.
type (
	queryHandle   uintptr
	counterHandle uintptr
)

// Format selects the numeric representation the subsystem converts a counter
// value into at read time. The counter's natural type does not matter; the
// requested format determines which FormattedValue field is filled.
type Format uint32

const (
	FormatLong   Format = 0x00000100 // PDH_FMT_LONG, 32-bit integer
	FormatDouble Format = 0x00000200 // PDH_FMT_DOUBLE
	FormatLarge  Format = 0x00000400 // PDH_FMT_LARGE, 64-bit integer
)

// FormattedValue holds one collected counter reading. Only the field
// matching the requested Format carries data.
type FormattedValue struct {
	Long   int32
	Large  int64
	Double float64
}

// subsystem is the raw PDH call surface the rest of the package is written
// against. The production implementation dispatches to pdh.dll; tests
// substitute a fake so the enumeration and query logic runs anywhere.
type subsystem interface {
	// EnumObjects lists counter object names into buf in the multi-string
	// format. A nil buf is the size probe; size carries the required
	// length out and the buffer length in.
	EnumObjects(machine string, buf []uint16, size *uint32) Status

	// EnumObjectItems lists an object's counter names and instance names
	// into two independently sized multi-string buffers. Nil buffers probe
	// both sizes simultaneously.
	EnumObjectItems(machine, object string, counters []uint16, countersLen *uint32, instances []uint16, instancesLen *uint32) Status

	// ExpandCounterPath expands a wildcard counter path into the matching
	// concrete paths, multi-string formatted, with the same probe protocol.
	ExpandCounterPath(path string, buf []uint16, size *uint32) Status

	OpenQuery() (queryHandle, Status)
	CloseQuery(q queryHandle) Status
	ValidatePath(path string) Status
	AddCounter(q queryHandle, path string) (counterHandle, Status)
	RemoveCounter(c counterHandle) Status
	CollectQueryData(q queryHandle) Status
	FormattedValue(c counterHandle, format Format) (FormattedValue, Status)
}

// probeThenFill drives the two-phase size negotiation every PDH enumeration
// and expansion call requires: the probe call with a nil buffer must come
// back MORE_DATA with the required length, the fill call with a buffer of
// exactly that length must succeed. Any other status at either step is fatal
// to the call; op names the failing operation in the error.
func probeThenFill(op string, call func(buf []uint16, size *uint32) Status) ([]uint16, error) {
	var size uint32
	if status := call(nil, &size); status != MoreData {
		return nil, &EnumerationError{Op: op, Status: status}
	}
	buf := make([]uint16, size)
	if status := call(buf, &size); status != StatusSuccess {
		return nil, &EnumerationError{Op: op, Status: status}
	}
	if size <= uint32(len(buf)) {
		buf = buf[:size]
	}
	return buf, nil
}
