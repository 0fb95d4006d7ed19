package pdh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cpuPath = `\Processor Information(_Total)\% Processor Time`

func TestOpenQueryFailure(t *testing.T) {
	t.Parallel()

	sys := newFakeSubsystem()
	sys.openStatus = NoMachine

	_, err := openQuery(sys, "unreachable")
	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, NoMachine, openErr.Status)
	assert.Equal(t, "unreachable", openErr.Machine)
}

func TestAddCounterInvalidPath(t *testing.T) {
	t.Parallel()

	sys := newFakeSubsystem()
	sys.validateStatus["not a path"] = BadCounterName
	q, err := openQuery(sys, "")
	require.NoError(t, err)

	_, err = q.AddCounter("not a path")
	var pathErr *InvalidPathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, BadCounterName, pathErr.Status)

	// Validation failure must be diagnosed before any attach is attempted.
	assert.Empty(t, sys.addCalls)
}

func TestAddCounterAttachFailure(t *testing.T) {
	t.Parallel()

	sys := newFakeSubsystem()
	sys.addStatus[cpuPath] = NoCounter
	q, err := openQuery(sys, "")
	require.NoError(t, err)

	_, err = q.AddCounter(cpuPath)
	var attachErr *AttachError
	require.ErrorAs(t, err, &attachErr)
	assert.Equal(t, NoCounter, attachErr.Status)
	assert.Equal(t, cpuPath, attachErr.Path)
}

func TestCollectFormats(t *testing.T) {
	t.Parallel()

	sys := newFakeSubsystem()
	sys.readings[cpuPath] = []fakeReading{{value: 42.5}}
	q, err := openQuery(sys, "")
	require.NoError(t, err)
	counter, err := q.AddCounter(cpuPath)
	require.NoError(t, err)

	long, err := q.CollectLong(counter)
	require.NoError(t, err)
	assert.Equal(t, int32(42), long)

	large, err := q.CollectLarge(counter)
	require.NoError(t, err)
	assert.Equal(t, int64(42), large)

	double, err := q.CollectDouble(counter)
	require.NoError(t, err)
	assert.Equal(t, 42.5, double)
}

func TestCollectErrorIsTransient(t *testing.T) {
	t.Parallel()

	sys := newFakeSubsystem()
	sys.readings[cpuPath] = []fakeReading{
		{status: InvalidData},
		{value: 7},
	}
	q, err := openQuery(sys, "")
	require.NoError(t, err)
	counter, err := q.AddCounter(cpuPath)
	require.NoError(t, err)

	_, err = q.CollectDouble(counter)
	var collectErr *CollectError
	require.ErrorAs(t, err, &collectErr)
	assert.Equal(t, InvalidData, collectErr.Status)
	assert.Equal(t, cpuPath, collectErr.Path)

	double, err := q.CollectDouble(counter)
	require.NoError(t, err)
	assert.Equal(t, 7.0, double)
}

func TestCollectDataBatch(t *testing.T) {
	t.Parallel()

	// One snapshot refresh serves every counter on the query; the formatted
	// reads afterwards must not refresh again.
	sys := newFakeSubsystem()
	sys.readings[cpuPath] = []fakeReading{{value: 1}}
	sys.readings[`\Memory\Available Bytes`] = []fakeReading{{value: 2}}
	q, err := openQuery(sys, "")
	require.NoError(t, err)
	cpu, err := q.AddCounter(cpuPath)
	require.NoError(t, err)
	mem, err := q.AddCounter(`\Memory\Available Bytes`)
	require.NoError(t, err)

	require.NoError(t, q.CollectData())
	v1, err := q.Formatted(cpu, FormatDouble)
	require.NoError(t, err)
	v2, err := q.Formatted(mem, FormatDouble)
	require.NoError(t, err)

	assert.Equal(t, 1.0, v1.Double)
	assert.Equal(t, 2.0, v2.Double)
	assert.Equal(t, 1, sys.collectCalls)
}

func TestQueryCloseIdempotent(t *testing.T) {
	t.Parallel()

	sys := newFakeSubsystem()
	q, err := openQuery(sys, "")
	require.NoError(t, err)

	require.NoError(t, q.Close())
	require.NoError(t, q.Close())
	assert.Equal(t, 1, sys.closeCalls)
}

func TestCounterRemove(t *testing.T) {
	t.Parallel()

	sys := newFakeSubsystem()
	q, err := openQuery(sys, "")
	require.NoError(t, err)
	counter, err := q.AddCounter(cpuPath)
	require.NoError(t, err)
	assert.Equal(t, cpuPath, counter.Path())

	require.NoError(t, counter.Remove())
	assert.Len(t, sys.removeCalls, 1)
}
