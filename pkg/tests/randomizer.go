package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	return NewRandomizerWithSeed(time.Now().Unix())
}

// NewRandomizerWithSeed makes property tests reproducible: log the seed and
// rerun with it on failure.
func NewRandomizerWithSeed(seed int64) Randomizer {
	random := rand.New(rand.NewSource(seed)) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// Pick returns a random element of items.
func Pick[T any](r Randomizer, items []T) T {
	return items[r.Intn(len(items))]
}
