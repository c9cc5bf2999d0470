package sim

// Stats aggregates the running hit/miss counters. All fields are
// monotonically non-decreasing until Reset zeroes them.
//
// A miss classified Both (first-time access that also evicted a resident
// block) is a single access but increments both CompulsoryMisses and
// CapacityMisses, so the three counters do not sum to the access total.
// Use trace.Summarize over the history for per-access accounting.
type Stats struct {
	Hits             int64
	CompulsoryMisses int64
	CapacityMisses   int64
}
