package pdh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PDH_MORE_DATA", MoreData.String())
	assert.Equal(t, "PDH_CSTATUS_NO_OBJECT", NoObject.String())
	assert.Equal(t, "PDH_NOT_IMPLEMENTED", NotImplemented.String())
	assert.Equal(t, "0xC0000BFF", Status(0xC0000BFF).String())
}
