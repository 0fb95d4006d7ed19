package pdh

// fakeSubsystem scripts the PDH call surface so the enumeration, query and
// stream logic can be exercised off Windows. Enumeration answers honor the
// real two-phase protocol: probes report sizes with MORE_DATA, fills copy
// the encoded multi-string.
type fakeSubsystem struct {
	objects    []string
	items      map[string]fakeItems
	expansions map[string][]string

	// readings are consumed one per formatted read, keyed by counter path;
	// the last reading sticks once the script runs out.
	readings map[string][]fakeReading

	// Status overrides. The zero value means the happy path (probes answer
	// MORE_DATA, everything else answers success).
	objectsProbeStatus Status
	objectsFillStatus  Status
	expandStatus       Status
	openStatus         Status
	validateStatus     map[string]Status
	addStatus          map[string]Status
	collectStatus      []Status // consumed per CollectQueryData call

	// Call records.
	validateCalls []string
	addCalls      []string
	removeCalls   []counterHandle
	collectCalls  int
	closeCalls    int

	nextHandle   counterHandle
	counterPaths map[counterHandle]string
}

type fakeItems struct {
	counters  []string
	instances []string
}

type fakeReading struct {
	value  float64
	status Status
}

func newFakeSubsystem() *fakeSubsystem {
	return &fakeSubsystem{
		items:          make(map[string]fakeItems),
		expansions:     make(map[string][]string),
		readings:       make(map[string][]fakeReading),
		validateStatus: make(map[string]Status),
		addStatus:      make(map[string]Status),
		counterPaths:   make(map[counterHandle]string),
	}
}

// fillMultiString answers one phase of the probe/fill protocol for the given
// item list.
func fillMultiString(items []string, buf []uint16, size *uint32) Status {
	encoded := EncodeMultiString(items)
	if buf == nil {
		*size = uint32(len(encoded))
		return MoreData
	}
	if len(buf) < len(encoded) {
		*size = uint32(len(encoded))
		return MoreData
	}
	copy(buf, encoded)
	*size = uint32(len(encoded))
	return StatusSuccess
}

func (f *fakeSubsystem) EnumObjects(_ string, buf []uint16, size *uint32) Status {
	if buf == nil {
		if f.objectsProbeStatus != StatusSuccess {
			return f.objectsProbeStatus
		}
		return fillMultiString(f.objects, nil, size)
	}
	if f.objectsFillStatus != StatusSuccess {
		return f.objectsFillStatus
	}
	return fillMultiString(f.objects, buf, size)
}

func (f *fakeSubsystem) EnumObjectItems(_, object string, counters []uint16, countersLen *uint32, instances []uint16, instancesLen *uint32) Status {
	items, ok := f.items[object]
	if !ok {
		return NoObject
	}
	st := fillMultiString(items.counters, counters, countersLen)
	instSt := fillMultiString(items.instances, instances, instancesLen)
	if st == MoreData || instSt == MoreData {
		return MoreData
	}
	return StatusSuccess
}

func (f *fakeSubsystem) ExpandCounterPath(path string, buf []uint16, size *uint32) Status {
	if f.expandStatus != StatusSuccess {
		return f.expandStatus
	}
	expanded, ok := f.expansions[path]
	if !ok {
		return NoCounter
	}
	return fillMultiString(expanded, buf, size)
}

func (f *fakeSubsystem) OpenQuery() (queryHandle, Status) {
	if f.openStatus != StatusSuccess {
		return 0, f.openStatus
	}
	return 1, StatusSuccess
}

func (f *fakeSubsystem) CloseQuery(queryHandle) Status {
	f.closeCalls++
	return StatusSuccess
}

func (f *fakeSubsystem) ValidatePath(path string) Status {
	f.validateCalls = append(f.validateCalls, path)
	if st, ok := f.validateStatus[path]; ok {
		return st
	}
	return StatusSuccess
}

func (f *fakeSubsystem) AddCounter(_ queryHandle, path string) (counterHandle, Status) {
	f.addCalls = append(f.addCalls, path)
	if st, ok := f.addStatus[path]; ok && st != StatusSuccess {
		return 0, st
	}
	f.nextHandle++
	f.counterPaths[f.nextHandle] = path
	return f.nextHandle, StatusSuccess
}

func (f *fakeSubsystem) RemoveCounter(c counterHandle) Status {
	f.removeCalls = append(f.removeCalls, c)
	return StatusSuccess
}

func (f *fakeSubsystem) CollectQueryData(queryHandle) Status {
	f.collectCalls++
	if len(f.collectStatus) > 0 {
		st := f.collectStatus[0]
		f.collectStatus = f.collectStatus[1:]
		return st
	}
	return StatusSuccess
}

func (f *fakeSubsystem) FormattedValue(c counterHandle, format Format) (FormattedValue, Status) {
	path := f.counterPaths[c]
	script := f.readings[path]
	if len(script) == 0 {
		return FormattedValue{}, InvalidHandle
	}
	reading := script[0]
	if len(script) > 1 {
		f.readings[path] = script[1:]
	}
	if reading.status != StatusSuccess {
		return FormattedValue{}, reading.status
	}
	var value FormattedValue
	switch format {
	case FormatLong:
		value.Long = int32(reading.value)
	case FormatLarge:
		value.Large = int64(reading.value)
	case FormatDouble:
		value.Double = reading.value
	}
	return value, StatusSuccess
}
