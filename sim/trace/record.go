// Package trace provides access-history record types and summaries for the
// cache engine. This package has no dependency on sim/ — it stores pure
// data types.
package trace

// Outcome is the hit/miss result of a single access.
type Outcome string

const (
	OutcomeHit  Outcome = "hit"
	OutcomeMiss Outcome = "miss"
)

// MissKind classifies a miss. MissBoth marks a first-time access that also
// evicted a resident block; it is one access counted into both the
// compulsory and capacity buckets.
type MissKind string

const (
	// MissNone is the kind carried by hit records.
	MissNone       MissKind = ""
	MissCompulsory MissKind = "compulsory"
	MissCapacity   MissKind = "capacity"
	MissBoth       MissKind = "both"
)

// AccessRecord captures one Process call: the decomposed address fields and
// the hit/miss outcome. Records are append-only and never truncated by the
// engine.
type AccessRecord struct {
	// Sequence is the monotonic tick of the access, starting at 1 after a
	// reset. No two records share a sequence number.
	Sequence   uint64
	Address    uint64
	Tag        uint64
	SetOrIndex int
	Offset     uint64
	Outcome    Outcome
	MissKind   MissKind
}
