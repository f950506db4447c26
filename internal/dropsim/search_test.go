package dropsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestMinMagicFindFullChance(t *testing.T) {
	rng := NewSeededRNG(3)
	for i := 0; i < 100; i++ {
		f, found := MinMagicFind(rng.Float64(), 100, 0, nil)
		assert.True(t, found)
		assert.Equal(t, Feasibility{Possible: true, MagicFind: 0}, f)
	}
}

func TestMinMagicFindRegression(t *testing.T) {
	f, found := MinMagicFind(0.174_911_835_457_161_56, 12, 15, intPtr(26))
	assert.True(t, found)
	assert.Equal(t, 27, f.Value())

	// starting lower finds the same answer
	f, _ = MinMagicFind(0.174_911_835_457_161_56, 12, 15, nil)
	assert.Equal(t, 27, f.Value())
}

func TestMinMagicFindImpossible(t *testing.T) {
	// 0.01% at 900 Magic Find is 0.1%, far below the draw
	f, found := MinMagicFind(0.99, 0.01, 0, nil)
	assert.True(t, found)
	assert.False(t, f.Possible)
	assert.Equal(t, ImpossibleMagicFind, f.Value())
	assert.Equal(t, Impossible, f)
}

func TestMinMagicFindBoundary(t *testing.T) {
	// needs exactly the maximum
	draw := EffectiveChance(1, MaxMagicFind, 0)/100 - 1e-9
	f, found := MinMagicFind(draw, 1, 0, intPtr(500))
	assert.True(t, found)
	assert.Equal(t, MaxMagicFind, f.Value())
}

func TestMinMagicFindNegativeStart(t *testing.T) {
	f, found := MinMagicFind(0, 5, 0, intPtr(-10))
	assert.True(t, found)
	assert.Equal(t, 0, f.Value())
}
