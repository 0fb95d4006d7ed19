package pdh

import "time"

// Value is the set of numeric representations a counter can be read in.
type Value interface {
	int32 | int64 | float64
}

// ValueStream is a pull-based, infinite sequence of readings from a single
// counter, bound to one Query and one Counter for its entire life. It is not
// restartable; an error from Next does not terminate the stream and the next
// call may succeed.
//
// The first reading after counter creation is commonly meaningless for
// rate-based counters: the subsystem has not yet observed an interval to
// compute a rate over. Callers that need a settled stream discard exactly
// one initial reading themselves; the stream does not hide it because the
// number of readings to discard is counter-type-dependent in general.
type ValueStream[T Value] struct {
	query   *Query
	counter *Counter
	delay   time.Duration
}

// StreamFromPath attaches the path to the query and wraps the resulting
// counter in a stream of T readings. The stream's counter is released when
// the query closes.
func StreamFromPath[T Value](q *Query, path string) (*ValueStream[T], error) {
	counter, err := q.AddCounter(path)
	if err != nil {
		return nil, err
	}
	return StreamFromCounter[T](q, counter), nil
}

// StreamFromCounter wraps an already-attached counter. The counter must
// belong to q; a counter from another query reads errors forever.
func StreamFromCounter[T Value](q *Query, counter *Counter) *ValueStream[T] {
	return &ValueStream[T]{query: q, counter: counter}
}

// WithDelay sets a fixed pacing delay applied before every read. Without a
// delay rapid repeated reads are permitted, but rate counters need real
// wall-clock time between samples and return stale or garbage data when
// read too quickly.
func (s *ValueStream[T]) WithDelay(d time.Duration) *ValueStream[T] {
	s.delay = d
	return s
}

// Path returns the counter path the stream reads from.
func (s *ValueStream[T]) Path() string {
	return s.counter.Path()
}

// Next blocks for the configured delay, if any, then collects the next
// reading in the representation selected by T.
func (s *ValueStream[T]) Next() (T, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	var value T
	switch p := any(&value).(type) {
	case *int32:
		v, err := s.query.CollectLong(s.counter)
		*p = v
		return value, err
	case *int64:
		v, err := s.query.CollectLarge(s.counter)
		*p = v
		return value, err
	case *float64:
		v, err := s.query.CollectDouble(s.counter)
		*p = v
		return value, err
	}
	return value, nil
}
