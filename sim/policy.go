package sim

import "fmt"

// A VictimFinder decides which occupied slot in [lo, hi) should be evicted.
// It is consulted only after the simulator has ruled out empty slots, so
// every candidate is valid. The returned index is always within [lo, hi).
type VictimFinder interface {
	FindVictim(blocks []CacheBlock, lo, hi int) int
}

// FIFOVictimFinder evicts the oldest-installed block (smallest LoadOrder).
type FIFOVictimFinder struct{}

func (FIFOVictimFinder) FindVictim(blocks []CacheBlock, lo, hi int) int {
	victim := lo
	for i := lo + 1; i < hi; i++ {
		if blocks[i].LoadOrder < blocks[victim].LoadOrder {
			victim = i
		}
	}
	return victim
}

// LRUVictimFinder evicts the least recently touched block (smallest
// LastAccess), where an install counts as a touch.
type LRUVictimFinder struct{}

func (LRUVictimFinder) FindVictim(blocks []CacheBlock, lo, hi int) int {
	victim := lo
	for i := lo + 1; i < hi; i++ {
		if blocks[i].LastAccess < blocks[victim].LastAccess {
			victim = i
		}
	}
	return victim
}

// LFUVictimFinder evicts the least frequently accessed block. Ties go to
// the lowest slot index, which the strict comparison below yields for free.
type LFUVictimFinder struct{}

func (LFUVictimFinder) FindVictim(blocks []CacheBlock, lo, hi int) int {
	victim := lo
	for i := lo + 1; i < hi; i++ {
		if blocks[i].Frequency < blocks[victim].Frequency {
			victim = i
		}
	}
	return victim
}

// PickFunc returns a uniform value in [0, n). Injected into
// RandomVictimFinder so tests can seed or stub the selection.
type PickFunc func(n int) int

// RandomVictimFinder evicts a uniformly chosen candidate.
type RandomVictimFinder struct {
	pick PickFunc
}

// NewRandomVictimFinder wraps a selection function, typically
// NewReplacementRNG(seed).Intn.
func NewRandomVictimFinder(pick PickFunc) *RandomVictimFinder {
	return &RandomVictimFinder{pick: pick}
}

func (r *RandomVictimFinder) FindVictim(blocks []CacheBlock, lo, hi int) int {
	return lo + r.pick(hi-lo)
}

// newVictimFinder builds the finder for a validated configuration.
func newVictimFinder(c Config) (VictimFinder, error) {
	switch c.Policy {
	case PolicyFIFO:
		return FIFOVictimFinder{}, nil
	case PolicyLRU:
		return LRUVictimFinder{}, nil
	case PolicyLFU:
		return LFUVictimFinder{}, nil
	case PolicyRandom:
		return NewRandomVictimFinder(NewReplacementRNG(c.Seed).Intn), nil
	default:
		return nil, fmt.Errorf("%w: unknown replacement policy %q", ErrInvalidConfiguration, c.Policy)
	}
}
