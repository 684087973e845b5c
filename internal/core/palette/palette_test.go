package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresColors(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestPick_StaysInPalette(t *testing.T) {
	p, err := New(Default())
	require.NoError(t, err)

	for range 100 {
		assert.Contains(t, Default(), p.Pick())
	}
}

func TestPick_UsesSource(t *testing.T) {
	p, err := New([]string{"#000000", "#ffffff"})
	require.NoError(t, err)
	p.intN = func(n int) int { return n - 1 }

	assert.Equal(t, "#ffffff", p.Pick())
	assert.Equal(t, []string{"#000000", "#ffffff"}, p.Colors())
}
