package pdh

import "fmt"

// Query owns one open session with the counter subsystem and the counters
// attached to it. It is the sole owner of its query handle; Close releases
// the handle and invalidates every Counter obtained from the query.
type Query struct {
	machine string
	sys     subsystem
	handle  queryHandle
	closed  bool
}

// Counter is one counter attached to a Query. It holds a non-owning
// back-reference to the query and must not be used after the query is
// closed.
type Counter struct {
	query  *Query
	handle counterHandle
	path   string
}

// OpenQuery acquires a query session. The machine name may be empty for the
// local machine; it is only passed through in the counter paths added later,
// PDH binds a query to whatever machines its paths name.
func OpenQuery(machine string) (*Query, error) {
	return openQuery(defaultSubsystem(), machine)
}

func openQuery(sys subsystem, machine string) (*Query, error) {
	handle, status := sys.OpenQuery()
	if status != StatusSuccess {
		return nil, &OpenError{Machine: machine, Status: status}
	}
	return &Query{machine: machine, sys: sys, handle: handle}, nil
}

// AddCounter validates the path syntax and attaches it to the query. Syntax
// failures come back as *InvalidPathError before any attach is attempted;
// a valid path that does not resolve to a real counter on the machine comes
// back as *AttachError.
func (q *Query) AddCounter(path string) (*Counter, error) {
	if status := q.sys.ValidatePath(path); status != StatusSuccess {
		return nil, &InvalidPathError{Path: path, Status: status}
	}
	handle, status := q.sys.AddCounter(q.handle, path)
	if status != StatusSuccess {
		return nil, &AttachError{Path: path, Status: status}
	}
	return &Counter{query: q, handle: handle, path: path}, nil
}

// CollectData refreshes the query's data snapshot. One refresh is shared by
// every counter on the query, so a batch caller can refresh once per tick
// and then read each counter's formatted value without skewing the read
// times within the batch.
func (q *Query) CollectData() error {
	if status := q.sys.CollectQueryData(q.handle); status != StatusSuccess {
		return &CollectError{Status: status}
	}
	return nil
}

// Formatted requests the counter's value from the current snapshot in the
// given representation, without refreshing first.
func (q *Query) Formatted(c *Counter, format Format) (FormattedValue, error) {
	value, status := q.sys.FormattedValue(c.handle, format)
	if status != StatusSuccess {
		return FormattedValue{}, &CollectError{Path: c.path, Status: status}
	}
	return value, nil
}

// Collect refreshes the snapshot and reads the counter's value in the given
// representation. Failures are one-shot; the next collection is expected to
// succeed.
func (q *Query) Collect(c *Counter, format Format) (FormattedValue, error) {
	if status := q.sys.CollectQueryData(q.handle); status != StatusSuccess {
		return FormattedValue{}, &CollectError{Path: c.path, Status: status}
	}
	return q.Formatted(c, format)
}

// CollectLong collects the counter's value as a 32-bit integer.
func (q *Query) CollectLong(c *Counter) (int32, error) {
	value, err := q.Collect(c, FormatLong)
	return value.Long, err
}

// CollectLarge collects the counter's value as a 64-bit integer.
func (q *Query) CollectLarge(c *Counter) (int64, error) {
	value, err := q.Collect(c, FormatLarge)
	return value.Large, err
}

// CollectDouble collects the counter's value as a float64.
func (q *Query) CollectDouble(c *Counter) (float64, error) {
	value, err := q.Collect(c, FormatDouble)
	return value.Double, err
}

// Close releases the query handle. Closing also frees every counter still
// attached; counters obtained from this query must not be used afterwards.
// Close is idempotent.
func (q *Query) Close() error {
	if q.closed {
		return nil
	}
	q.closed = true
	if status := q.sys.CloseQuery(q.handle); status != StatusSuccess {
		return fmt.Errorf("pdh: close query: %v", status)
	}
	return nil
}

// Path returns the counter path this counter was attached with.
func (c *Counter) Path() string {
	return c.path
}

// Remove detaches the counter from its query. The counter must not be used
// afterwards.
func (c *Counter) Remove() error {
	if status := c.query.sys.RemoveCounter(c.handle); status != StatusSuccess {
		return fmt.Errorf("pdh: remove counter %q: %v", c.path, status)
	}
	return nil
}
