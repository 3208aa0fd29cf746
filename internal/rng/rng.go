package rng

import "math/rand"

// Generator provides a simple random number
// Shuffles take a Generator instead of reaching for a global source so tests can seed them
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded returns a deterministic Generator
// This should only be used by tests and replays
func Seeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}
