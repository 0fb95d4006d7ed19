package pdh

import "fmt"

// ProtocolError reports a malformed buffer coming back from the subsystem,
// which indicates a subsystem or version mismatch. It is fatal to the
// enumeration call in progress.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("pdh: protocol error: %s", e.Reason)
}

// EnumerationError reports an unexpected status during object or item
// enumeration. Callers walking the full catalog should treat NoObject as
// skippable; everything else aborts the call.
type EnumerationError struct {
	Op     string // which enumeration failed
	Object string // object being enumerated, if any
	Status Status
}

func (e *EnumerationError) Error() string {
	if e.Object != "" {
		return fmt.Sprintf("pdh: %s %q: %v", e.Op, e.Object, e.Status)
	}
	return fmt.Sprintf("pdh: %s: %v", e.Op, e.Status)
}

// IsNoObject reports whether the status is PDH_CSTATUS_NO_OBJECT, the one
// enumeration failure a full catalog walk continues past.
func (e *EnumerationError) IsNoObject() bool {
	return e.Status == NoObject
}

// OpenError reports a failure to acquire a query handle, typically an
// invalid or unreachable machine.
type OpenError struct {
	Machine string
	Status  Status
}

func (e *OpenError) Error() string {
	if e.Machine != "" {
		return fmt.Sprintf("pdh: open query for machine %q: %v", e.Machine, e.Status)
	}
	return fmt.Sprintf("pdh: open query: %v", e.Status)
}

// InvalidPathError reports a counter path that failed syntax validation.
// It is produced before any attach attempt so the diagnosis names the path
// rather than a downstream handle failure.
type InvalidPathError struct {
	Path   string
	Status Status
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("pdh: invalid counter path %q: %v", e.Path, e.Status)
}

// AttachError reports a syntactically valid path that did not resolve to a
// real counter on the target machine.
type AttachError struct {
	Path   string
	Status Status
}

func (e *AttachError) Error() string {
	return fmt.Sprintf("pdh: add counter %q: %v", e.Path, e.Status)
}

// CollectError reports a failed value collection. It is not assumed to be
// permanent; retrying on the next tick is expected to succeed.
type CollectError struct {
	Path   string
	Status Status
}

func (e *CollectError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("pdh: collect %q: %v", e.Path, e.Status)
	}
	return fmt.Sprintf("pdh: collect: %v", e.Status)
}
