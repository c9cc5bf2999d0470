package trace

// Summary aggregates an access history for reporting.
//
// Accounting note: Accesses == Hits + Misses, but CompulsoryMisses +
// CapacityMisses may exceed Misses because a MissBoth record increments
// both buckets. BothMisses counts those records once so callers can undo
// the double count: Misses == CompulsoryMisses + CapacityMisses - BothMisses.
type Summary struct {
	Accesses         int
	Hits             int
	Misses           int
	CompulsoryMisses int
	CapacityMisses   int
	BothMisses       int
	HitRate          float64
}

// Summarize folds a history into totals. Record order does not matter.
func Summarize(records []AccessRecord) Summary {
	var s Summary
	s.Accesses = len(records)
	for _, rec := range records {
		if rec.Outcome == OutcomeHit {
			s.Hits++
			continue
		}
		s.Misses++
		switch rec.MissKind {
		case MissCompulsory:
			s.CompulsoryMisses++
		case MissCapacity:
			s.CapacityMisses++
		case MissBoth:
			s.CompulsoryMisses++
			s.CapacityMisses++
			s.BothMisses++
		}
	}
	if s.Accesses > 0 {
		s.HitRate = float64(s.Hits) / float64(s.Accesses)
	}
	return s
}

// MemoryWindow returns the most recent n distinct addresses presented,
// independent of cache residency — the "main memory window" companion view.
// Records must be ordered most recent first, as emitted in
// SimulatorState.History. Returns fewer than n addresses if the history
// holds fewer distinct ones.
func MemoryWindow(records []AccessRecord, n int) []uint64 {
	if n <= 0 {
		return nil
	}
	seen := make(map[uint64]struct{}, n)
	window := make([]uint64, 0, n)
	for _, rec := range records {
		if _, ok := seen[rec.Address]; ok {
			continue
		}
		seen[rec.Address] = struct{}{}
		window = append(window, rec.Address)
		if len(window) == n {
			break
		}
	}
	return window
}
