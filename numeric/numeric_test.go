package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ocegraph/numeric"
	"github.com/stretchr/testify/assert"
)

func TestIsNaN(t *testing.T) {
	assert.True(t, numeric.IsNaN(math.NaN()))
	assert.False(t, numeric.IsNaN(0))
	assert.False(t, numeric.IsNaN(math.Inf(1)))
	assert.False(t, numeric.IsNaN(-1.5))
}

func TestFinite(t *testing.T) {
	assert.True(t, numeric.Finite(1))
	assert.False(t, numeric.Finite(math.NaN()))
	assert.False(t, numeric.Finite(math.Inf(-1)))
}
