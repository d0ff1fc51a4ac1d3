// Package random provides the process-wide random source shared by the
// exercise subsystems.
//
// The generator is seeded from the wall clock on first use. It is not safe
// for concurrent use; callers that construct or train several networks from
// multiple goroutines must serialize access externally.
package random

import (
	"math/rand"
	"sync"
	"time"
)

var (
	src  *rand.Rand
	once sync.Once
)

func source() *rand.Rand {
	once.Do(func() {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	})
	return src
}

// Reseed replaces the generator with one derived from seed. Intended for
// reproducible runs and tests; the default policy remains wall-clock seeding.
//
// Reseed marks the seeding as done, so a Reseed before the first draw
// suppresses wall-clock seeding entirely.
func Reseed(seed int64) {
	once.Do(func() {})
	src = rand.New(rand.NewSource(seed))
}

// Uniform returns a uniformly distributed value in the half-open
// interval [lo, hi).
func Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*source().Float64()
}

// Uint32Range returns a uniformly distributed value in [lo, hi]. Both bounds
// are inclusive; lo must not exceed hi.
func Uint32Range(lo, hi uint32) uint32 {
	return lo + uint32(source().Int63n(int64(hi)-int64(lo)+1))
}

// Shuffle permutes n elements uniformly at random using the provided
// swap function.
func Shuffle(n int, swap func(i, j int)) {
	source().Shuffle(n, swap)
}
