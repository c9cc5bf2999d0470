package sim

import (
	"github.com/cachelab/cachesim/sim/trace"
)

// Simulator owns the cache state for one simulated cache instance and
// exposes the Process/Reset/Snapshot state-transition API.
//
// Not safe for concurrent use: Process and Reset run to completion
// synchronously and callers driving one instance from multiple goroutines
// must serialize externally. Distinct instances share nothing.
type Simulator struct {
	config Config
	finder VictimFinder

	// blocks is allocated once per configuration and only overwritten.
	blocks []CacheBlock
	// seen holds every address presented since the last reset; it drives
	// compulsory-miss detection.
	seen map[uint64]struct{}
	// tick advances once per Process call and stamps both LoadOrder and
	// LastAccess, so FIFO/LRU comparisons are total orders with no ties.
	tick    uint64
	stats   Stats
	history []trace.AccessRecord // chronological; snapshots reverse it
}

// NewSimulator validates the configuration and returns a freshly reset
// simulator. Configuration errors wrap ErrInvalidConfiguration.
func NewSimulator(config Config) (*Simulator, error) {
	s := &Simulator{}
	if _, err := s.Configure(config); err != nil {
		return nil, err
	}
	return s, nil
}

// Configure replaces the simulator's configuration and resets all state.
// No partial state carries over across a reconfiguration.
func (s *Simulator) Configure(config Config) (SimulatorState, error) {
	if err := config.Validate(); err != nil {
		return SimulatorState{}, err
	}
	finder, err := newVictimFinder(config)
	if err != nil {
		return SimulatorState{}, err
	}
	s.config = config
	s.finder = finder
	s.blocks = make([]CacheBlock, config.CacheCapacity)
	return s.Reset(), nil
}

// Config returns the active configuration.
func (s *Simulator) Config() Config {
	return s.config
}

// Reset clears all slots, the seen-address set, the stats, the history,
// and the tick counter. Callable at any time; idempotent.
func (s *Simulator) Reset() SimulatorState {
	for i := range s.blocks {
		s.blocks[i] = CacheBlock{}
	}
	s.seen = make(map[uint64]struct{})
	s.tick = 0
	s.stats = Stats{}
	s.history = nil
	return s.snapshot()
}

// Snapshot returns the current state without mutating anything.
func (s *Simulator) Snapshot() SimulatorState {
	return s.snapshot()
}

// Process runs one access through the cache: decompose, look up, then on a
// hit refresh the slot's recency/frequency metadata, or on a miss select a
// victim, classify the miss, and install the address. Returns the resulting
// snapshot, or ErrInvalidAddress if addr is outside the address space.
func (s *Simulator) Process(addr uint64) (SimulatorState, error) {
	if err := s.config.CheckAddress(addr); err != nil {
		return SimulatorState{}, err
	}
	s.tick++

	dec := s.config.Decompose(addr)
	lo, hi := s.candidateRange(dec.SetOrIndex)

	if slot, found := s.locate(addr, lo, hi); found {
		blk := &s.blocks[slot]
		blk.LastAccess = s.tick
		blk.Frequency++
		s.stats.Hits++
		s.record(addr, dec, trace.OutcomeHit, trace.MissNone)
		return s.snapshot(), nil
	}

	victim := s.selectVictim(lo, hi)
	kind := s.classifyMiss(addr, s.blocks[victim].Valid)
	s.countMiss(kind)
	s.blocks[victim] = CacheBlock{
		Valid:      true,
		Address:    addr,
		Tag:        dec.Tag,
		LoadOrder:  s.tick,
		LastAccess: s.tick,
		Frequency:  1,
	}
	s.seen[addr] = struct{}{}
	s.record(addr, dec, trace.OutcomeMiss, kind)
	return s.snapshot(), nil
}

// candidateRange returns the half-open slot range [lo, hi) an address may
// occupy. This search domain serves both lookup and victim selection.
func (s *Simulator) candidateRange(setOrIndex int) (lo, hi int) {
	switch s.config.Mapping {
	case MappingDirect:
		return setOrIndex, setOrIndex + 1
	case MappingSetAssociative:
		lo = setOrIndex * s.config.SetSize
		return lo, lo + s.config.SetSize
	default:
		return 0, len(s.blocks)
	}
}

// locate scans the candidate range for a resident copy of addr.
func (s *Simulator) locate(addr uint64, lo, hi int) (int, bool) {
	for i := lo; i < hi; i++ {
		if s.blocks[i].Valid && s.blocks[i].Address == addr {
			return i, true
		}
	}
	return 0, false
}

// selectVictim prefers the lowest-indexed empty slot; filling an empty slot
// is never an eviction. Only when every candidate is occupied does the
// replacement policy choose.
func (s *Simulator) selectVictim(lo, hi int) int {
	for i := lo; i < hi; i++ {
		if !s.blocks[i].Valid {
			return i
		}
	}
	return s.finder.FindVictim(s.blocks, lo, hi)
}

// classifyMiss combines first-time-ness with whether the install evicts a
// resident block. Checked before addr joins the seen set.
//
// The seen-but-no-eviction branch is counted as compulsory: an address
// already seen can only re-miss after being evicted itself, so its reload
// into a free slot is treated like a first-time load. This mirrors the
// original system's accounting, including the Both case incrementing two
// counters for a single access.
func (s *Simulator) classifyMiss(addr uint64, evicts bool) trace.MissKind {
	_, alreadySeen := s.seen[addr]
	switch {
	case !alreadySeen && evicts:
		return trace.MissBoth
	case alreadySeen && evicts:
		return trace.MissCapacity
	default:
		return trace.MissCompulsory
	}
}

func (s *Simulator) countMiss(kind trace.MissKind) {
	switch kind {
	case trace.MissCompulsory:
		s.stats.CompulsoryMisses++
	case trace.MissCapacity:
		s.stats.CapacityMisses++
	case trace.MissBoth:
		s.stats.CompulsoryMisses++
		s.stats.CapacityMisses++
	}
}

func (s *Simulator) record(addr uint64, dec Decomposition, outcome trace.Outcome, kind trace.MissKind) {
	s.history = append(s.history, trace.AccessRecord{
		Sequence:   s.tick,
		Address:    addr,
		Tag:        dec.Tag,
		SetOrIndex: dec.SetOrIndex,
		Offset:     dec.Offset,
		Outcome:    outcome,
		MissKind:   kind,
	})
}
