package pdh

import "fmt"

// Status is a PDH status code as returned by the counter subsystem.
// The zero value means success.
type Status uint32

// Status codes from pdhmsg.h. Only the codes this package acts on or that
// commonly show up in diagnostics are named; everything else renders as hex.
const (
	StatusSuccess           Status = 0x00000000
	NoMachine               Status = 0x800007D0 // PDH_CSTATUS_NO_MACHINE
	NoInstance              Status = 0x800007D1 // PDH_CSTATUS_NO_INSTANCE
	MoreData                Status = 0x800007D2 // PDH_MORE_DATA
	DialogCancelled         Status = 0x800007D9 // PDH_DIALOG_CANCELLED
	NoObject                Status = 0xC0000BB8 // PDH_CSTATUS_NO_OBJECT
	NoCounter               Status = 0xC0000BB9 // PDH_CSTATUS_NO_COUNTER
	InvalidData             Status = 0xC0000BBA // PDH_CSTATUS_INVALID_DATA
	MemoryAllocationFailure Status = 0xC0000BBB // PDH_MEMORY_ALLOCATION_FAILURE
	InvalidHandle           Status = 0xC0000BBC // PDH_INVALID_HANDLE
	InvalidArgument         Status = 0xC0000BBD // PDH_INVALID_ARGUMENT
	BadCounterName          Status = 0xC0000BC0 // PDH_CSTATUS_BAD_COUNTERNAME
	InvalidPath             Status = 0xC0000BC6 // PDH_INVALID_PATH
	NotImplemented          Status = 0xC0000BD3 // PDH_NOT_IMPLEMENTED
)

// Size limits from pdh.h, in characters.
const (
	MaxCounterPath    = 2048
	MaxCounterName    = 1024
	MaxInstanceName   = 1024
	MaxDatasourcePath = 1024
)

var statusNames = map[Status]string{
	StatusSuccess:           "PDH_CSTATUS_VALID_DATA",
	NoMachine:               "PDH_CSTATUS_NO_MACHINE",
	NoInstance:              "PDH_CSTATUS_NO_INSTANCE",
	MoreData:                "PDH_MORE_DATA",
	DialogCancelled:         "PDH_DIALOG_CANCELLED",
	NoObject:                "PDH_CSTATUS_NO_OBJECT",
	NoCounter:               "PDH_CSTATUS_NO_COUNTER",
	InvalidData:             "PDH_CSTATUS_INVALID_DATA",
	MemoryAllocationFailure: "PDH_MEMORY_ALLOCATION_FAILURE",
	InvalidHandle:           "PDH_INVALID_HANDLE",
	InvalidArgument:         "PDH_INVALID_ARGUMENT",
	BadCounterName:          "PDH_CSTATUS_BAD_COUNTERNAME",
	InvalidPath:             "PDH_INVALID_PATH",
	NotImplemented:          "PDH_NOT_IMPLEMENTED",
}

// String returns the symbolic name of the status where one is known,
// otherwise the raw code in hex.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("0x%08X", uint32(s))
}
