package sim

import (
	"hash/fnv"
	"math/rand"
)

// Purpose names for seed derivation. Each consumer of randomness gets an
// isolated stream derived from the master seed, so adding a new consumer
// never perturbs another's sequence for the same seed.
const (
	// PurposeReplacement drives the Random replacement policy.
	PurposeReplacement = "replacement"
	// PurposeWorkload drives address-stream synthesis in sim/workload.
	PurposeWorkload = "workload"
)

// NewReplacementRNG returns the deterministically seeded RNG that drives
// Random-policy victim selection for one simulator instance.
func NewReplacementRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(derivedSeed(seed, PurposeReplacement)))
}

// NewWorkloadRNG returns the deterministically seeded RNG for workload
// generation. Same master seed, same address stream.
func NewWorkloadRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(derivedSeed(seed, PurposeWorkload)))
}

// derivedSeed isolates a purpose's stream: masterSeed XOR fnv1a64(purpose).
func derivedSeed(seed int64, purpose string) int64 {
	return seed ^ fnv1a64(purpose)
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
