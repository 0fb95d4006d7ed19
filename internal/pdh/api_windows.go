//go:build windows
// +build windows

package pdh

import (
	"math"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modpdh = windows.NewLazySystemDLL("pdh.dll")

	procPdhEnumObjectsW             = modpdh.NewProc("PdhEnumObjectsW")
	procPdhEnumObjectItemsW         = modpdh.NewProc("PdhEnumObjectItemsW")
	procPdhExpandCounterPathW       = modpdh.NewProc("PdhExpandCounterPathW")
	procPdhOpenQueryW               = modpdh.NewProc("PdhOpenQueryW")
	procPdhCloseQuery               = modpdh.NewProc("PdhCloseQuery")
	procPdhValidatePathW            = modpdh.NewProc("PdhValidatePathW")
	procPdhAddCounterW              = modpdh.NewProc("PdhAddCounterW")
	procPdhRemoveCounter            = modpdh.NewProc("PdhRemoveCounter")
	procPdhCollectQueryData         = modpdh.NewProc("PdhCollectQueryData")
	procPdhGetFormattedCounterValue = modpdh.NewProc("PdhGetFormattedCounterValue")
)

const perfDetailStandard = 200 // PERF_DETAIL_STANDARD

// pdhFmtCounterValue mirrors PDH_FMT_COUNTERVALUE: a status DWORD, alignment
// padding, then an 8-byte union holding the long, large or double value.
type pdhFmtCounterValue struct {
	cstatus uint32
	_       uint32
	value   uint64
}

// winSubsystem is the production subsystem backed by pdh.dll.
type winSubsystem struct{}

func defaultSubsystem() subsystem { return winSubsystem{} }

func utf16Arg(s string) (*uint16, Status) {
	if s == "" {
		return nil, StatusSuccess
	}
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return nil, InvalidArgument
	}
	return p, StatusSuccess
}

func bufPtr(buf []uint16) *uint16 {
	if len(buf) == 0 {
		return nil
	}
	return &buf[0]
}

func (winSubsystem) EnumObjects(machine string, buf []uint16, size *uint32) Status {
	m, st := utf16Arg(machine)
	if st != StatusSuccess {
		return st
	}
	// The refresh flag must be TRUE on the probe call so the object list is
	// current, and FALSE on the fill call so the probed size stays valid.
	refresh := uintptr(0)
	if buf == nil {
		refresh = 1
	}
	r, _, _ := procPdhEnumObjectsW.Call(
		0, // data source: current activity
		uintptr(unsafe.Pointer(m)),
		uintptr(unsafe.Pointer(bufPtr(buf))),
		uintptr(unsafe.Pointer(size)),
		perfDetailStandard,
		refresh,
	)
	return Status(r)
}

func (winSubsystem) EnumObjectItems(machine, object string, counters []uint16, countersLen *uint32, instances []uint16, instancesLen *uint32) Status {
	m, st := utf16Arg(machine)
	if st != StatusSuccess {
		return st
	}
	o, st := utf16Arg(object)
	if st != StatusSuccess {
		return st
	}
	r, _, _ := procPdhEnumObjectItemsW.Call(
		0,
		uintptr(unsafe.Pointer(m)),
		uintptr(unsafe.Pointer(o)),
		uintptr(unsafe.Pointer(bufPtr(counters))),
		uintptr(unsafe.Pointer(countersLen)),
		uintptr(unsafe.Pointer(bufPtr(instances))),
		uintptr(unsafe.Pointer(instancesLen)),
		perfDetailStandard,
		0,
	)
	return Status(r)
}

func (winSubsystem) ExpandCounterPath(path string, buf []uint16, size *uint32) Status {
	p, st := utf16Arg(path)
	if st != StatusSuccess {
		return st
	}
	r, _, _ := procPdhExpandCounterPathW.Call(
		uintptr(unsafe.Pointer(p)),
		uintptr(unsafe.Pointer(bufPtr(buf))),
		uintptr(unsafe.Pointer(size)),
	)
	return Status(r)
}

func (winSubsystem) OpenQuery() (queryHandle, Status) {
	var handle queryHandle
	r, _, _ := procPdhOpenQueryW.Call(
		0, // data source: current activity
		0, // user data
		uintptr(unsafe.Pointer(&handle)),
	)
	return handle, Status(r)
}

func (winSubsystem) CloseQuery(q queryHandle) Status {
	r, _, _ := procPdhCloseQuery.Call(uintptr(q))
	return Status(r)
}

func (winSubsystem) ValidatePath(path string) Status {
	p, st := utf16Arg(path)
	if st != StatusSuccess {
		return st
	}
	r, _, _ := procPdhValidatePathW.Call(uintptr(unsafe.Pointer(p)))
	return Status(r)
}

func (winSubsystem) AddCounter(q queryHandle, path string) (counterHandle, Status) {
	p, st := utf16Arg(path)
	if st != StatusSuccess {
		return 0, st
	}
	var handle counterHandle
	r, _, _ := procPdhAddCounterW.Call(
		uintptr(q),
		uintptr(unsafe.Pointer(p)),
		0, // user data
		uintptr(unsafe.Pointer(&handle)),
	)
	return handle, Status(r)
}

func (winSubsystem) RemoveCounter(c counterHandle) Status {
	r, _, _ := procPdhRemoveCounter.Call(uintptr(c))
	return Status(r)
}

func (winSubsystem) CollectQueryData(q queryHandle) Status {
	r, _, _ := procPdhCollectQueryData.Call(uintptr(q))
	return Status(r)
}

func (winSubsystem) FormattedValue(c counterHandle, format Format) (FormattedValue, Status) {
	var raw pdhFmtCounterValue
	r, _, _ := procPdhGetFormattedCounterValue.Call(
		uintptr(c),
		uintptr(format),
		0, // counter type: not requested
		uintptr(unsafe.Pointer(&raw)),
	)
	if Status(r) != StatusSuccess {
		return FormattedValue{}, Status(r)
	}
	var value FormattedValue
	switch format {
	case FormatLong:
		value.Long = int32(uint32(raw.value))
	case FormatLarge:
		value.Large = int64(raw.value)
	case FormatDouble:
		value.Double = math.Float64frombits(raw.value)
	}
	return value, StatusSuccess
}
