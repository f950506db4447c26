package dropsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededRNGReplays(t *testing.T) {
	a, b := NewSeededRNG(42), NewSeededRNG(42)
	for i := 0; i < 1000; i++ {
		x, y := a.Float64(), b.Float64()
		require.Equal(t, x, y)
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 1.0)
	}
}

func TestJavaRNGMatchesJavaUtilRandom(t *testing.T) {
	// new java.util.Random(42).nextInt() == -1170105035
	j := NewJavaRNG(42).(*javaRNG)
	assert.Equal(t, int32(-1170105035), j.next(32))
}

func TestJavaRNGRange(t *testing.T) {
	a, b := NewJavaRNG(7), NewJavaRNG(7)
	for i := 0; i < 1000; i++ {
		x := a.Float64()
		require.Equal(t, x, b.Float64())
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 1.0)
	}
}

func TestDefaultRNGRange(t *testing.T) {
	rng := DefaultRNG()
	for i := 0; i < 100; i++ {
		x := rng.Float64()
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 1.0)
	}
}

func TestNewRNG(t *testing.T) {
	for _, name := range []string{"", GeneratorPCG, GeneratorJava} {
		rng, err := NewRNG(name, 1)
		require.NoError(t, err, name)
		assert.NotNil(t, rng)
	}
	_, err := NewRNG("mersenne", 1)
	assert.Error(t, err)
}

func TestNewSeed(t *testing.T) {
	s, err := NewSeed()
	require.NoError(t, err)
	assert.NotZero(t, s)
}
