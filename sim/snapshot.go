package sim

import "github.com/cachelab/cachesim/sim/trace"

// SimulatorState is an immutable snapshot of the engine after a Process,
// Reset, or Configure call. Blocks and History are deep copies: mutating
// the simulator afterwards never changes an earlier snapshot, so a
// presentation layer can diff successive states for animation.
type SimulatorState struct {
	// Blocks mirrors the cache slots, length CacheCapacity.
	Blocks []CacheBlock
	Stats  Stats
	// History holds one AccessRecord per Process call since the last
	// reset, most recent first. The engine never truncates it.
	History []trace.AccessRecord
}

// snapshot deep-copies the live state. The internal history is kept in
// chronological order; the emitted copy is reversed to most-recent-first.
func (s *Simulator) snapshot() SimulatorState {
	blocks := make([]CacheBlock, len(s.blocks))
	copy(blocks, s.blocks)

	history := make([]trace.AccessRecord, len(s.history))
	for i, rec := range s.history {
		history[len(s.history)-1-i] = rec
	}

	return SimulatorState{
		Blocks:  blocks,
		Stats:   s.stats,
		History: history,
	}
}
