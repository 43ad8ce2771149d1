package statuscode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbol(t *testing.T) {
	name, ok := Symbol(0x80340000)
	assert.True(t, ok)
	assert.Equal(t, "Bad_NodeIdUnknown", name)

	name, ok = Symbol(0x40920000)
	assert.True(t, ok)
	assert.Equal(t, "Uncertain_InitialValue", name)

	_, ok = Symbol(0xDEADBEEF)
	assert.False(t, ok)
}

func TestGoodHasNoNonTrivialSymbol(t *testing.T) {
	name, ok := Symbol(0)
	assert.True(t, ok)
	assert.Equal(t, "Good", name)
}
