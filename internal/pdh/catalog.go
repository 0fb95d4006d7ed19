package pdh

import "errors"

// Catalog enumerates the counter objects, per-object counters and instances,
// and wildcard path expansions for one machine. The zero machine name means
// the local machine.
type Catalog struct {
	machine string
	sys     subsystem
}

// NewCatalog returns a catalog for the local machine.
func NewCatalog() *Catalog {
	return &Catalog{sys: defaultSubsystem()}
}

// WithMachine targets a remote machine. The name is passed through to the
// subsystem as-is, without the leading backslashes.
func (c *Catalog) WithMachine(machine string) *Catalog {
	c.machine = machine
	return c
}

// ListObjects returns the available counter object names in subsystem
// enumeration order.
func (c *Catalog) ListObjects() ([]string, error) {
	buf, err := probeThenFill("enumerate objects", func(buf []uint16, size *uint32) Status {
		return c.sys.EnumObjects(c.machine, buf, size)
	})
	if err != nil {
		return nil, err
	}
	return DecodeMultiString(buf)
}

// ListItems returns an object's counter names and instance names, each in
// enumeration order. An object with a single unnamed instance reports one
// empty instance name.
func (c *Catalog) ListItems(object string) (counters, instances []string, err error) {
	// Both buffer sizes are probed in one call; the protocol does not allow
	// sizing them independently.
	var countersLen, instancesLen uint32
	status := c.sys.EnumObjectItems(c.machine, object, nil, &countersLen, nil, &instancesLen)
	if status != MoreData {
		return nil, nil, &EnumerationError{Op: "enumerate items", Object: object, Status: status}
	}
	counterBuf := make([]uint16, countersLen)
	instanceBuf := make([]uint16, instancesLen)
	status = c.sys.EnumObjectItems(c.machine, object, counterBuf, &countersLen, instanceBuf, &instancesLen)
	if status != StatusSuccess {
		return nil, nil, &EnumerationError{Op: "enumerate items", Object: object, Status: status}
	}
	if counters, err = DecodeMultiString(counterBuf); err != nil {
		return nil, nil, err
	}
	if instances, err = DecodeMultiString(instanceBuf); err != nil {
		return nil, nil, err
	}
	return counters, instances, nil
}

// ListAllCounterPaths returns every concrete counter path on the machine:
// for each object, the cross product of its instances and counters, in
// enumeration order throughout. Objects the subsystem reports as NO_OBJECT
// between the two enumeration calls are skipped; any other item failure
// aborts the walk.
func (c *Catalog) ListAllCounterPaths() ([]CounterPath, error) {
	objects, err := c.ListObjects()
	if err != nil {
		return nil, err
	}
	var paths []CounterPath
	for _, object := range objects {
		counters, instances, err := c.ListItems(object)
		if err != nil {
			var enumErr *EnumerationError
			if errors.As(err, &enumErr) && enumErr.IsNoObject() {
				continue
			}
			return nil, err
		}
		for _, instance := range instances {
			for _, counter := range counters {
				paths = append(paths, CounterPath{
					Machine:  c.machine,
					Object:   object,
					Instance: instance,
					Counter:  counter,
				})
			}
		}
	}
	return paths, nil
}

// ExpandWildcardPath expands one wildcard counter path, such as an
// all-instances pattern, into the matching concrete paths.
func (c *Catalog) ExpandWildcardPath(path string) ([]string, error) {
	buf, err := probeThenFill("expand counter path", func(buf []uint16, size *uint32) Status {
		return c.sys.ExpandCounterPath(path, buf, size)
	})
	if err != nil {
		return nil, err
	}
	return DecodeMultiString(buf)
}
