package pdh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMultiString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
	}{
		{name: "single string", in: []string{"Memory"}},
		{name: "several strings", in: []string{"Memory", "Processor Information", "System"}},
		{name: "empty segment preserved", in: []string{""}},
		{name: "empty segment among names", in: []string{"", "_Total", "0"}},
		{name: "unicode", in: []string{"Обработчик", "Δίσκος"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeMultiString(EncodeMultiString(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestDecodeMultiStringMalformed(t *testing.T) {
	t.Parallel()

	for _, buf := range [][]uint16{nil, {}, {0}} {
		_, err := DecodeMultiString(buf)
		var protoErr *ProtocolError
		require.ErrorAs(t, err, &protoErr, "buffer %v", buf)
	}
}

func TestDecodeMultiStringSeparators(t *testing.T) {
	t.Parallel()

	// a NUL b NUL NUL: the final two units terminate the buffer, the one
	// between the names separates them.
	buf := []uint16{'a', 0, 'b', 0, 0}
	got, err := DecodeMultiString(buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}
