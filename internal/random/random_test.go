package random_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvist-ml/kvist/internal/random"
)

func TestUniformRange(t *testing.T) {
	random.Reseed(1)
	for i := 0; i < 1000; i++ {
		v := random.Uniform(-2, 3)
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}
}

func TestReseedIsDeterministic(t *testing.T) {
	random.Reseed(7)
	first := []float64{random.Uniform(0, 1), random.Uniform(0, 1)}

	random.Reseed(7)
	second := []float64{random.Uniform(0, 1), random.Uniform(0, 1)}

	assert.Equal(t, first, second)
}

func TestReseedOverridesWallClockSeeding(t *testing.T) {
	// Force the once-seeded generator into existence, then replace it.
	_ = random.Uniform(0, 1)

	random.Reseed(11)
	first := []float64{random.Uniform(0, 1), random.Uniform(0, 1)}

	random.Reseed(11)
	second := []float64{random.Uniform(0, 1), random.Uniform(0, 1)}

	assert.Equal(t, first, second)
}

func TestShuffleIsPermutation(t *testing.T) {
	random.Reseed(3)

	values := []int{0, 1, 2, 3, 4, 5, 6, 7}
	random.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	sorted := append([]int{}, values...)
	sort.Ints(sorted)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, sorted)
}

func TestUint32RangeInclusiveBounds(t *testing.T) {
	random.Reseed(4)

	seen := map[uint32]bool{}
	for i := 0; i < 1000; i++ {
		v := random.Uint32Range(3, 5)
		require.GreaterOrEqual(t, v, uint32(3))
		require.LessOrEqual(t, v, uint32(5))
		seen[v] = true
	}
	assert.Len(t, seen, 3)

	assert.Equal(t, uint32(9), random.Uint32Range(9, 9))
}
