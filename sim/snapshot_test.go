package sim

import (
	"testing"

	"github.com/cachelab/cachesim/sim/trace"
)

// TestSnapshot_Immutability verifies value-type snapshot semantics:
// GIVEN a snapshot taken from a simulator
// WHEN the simulator state subsequently changes
// THEN the snapshot values remain unchanged
func TestSnapshot_Immutability(t *testing.T) {
	s := mustSimulator(t, Config{
		CacheCapacity: 4,
		AddressBits:   8,
		Mapping:       MappingFullyAssociative,
		Policy:        PolicyFIFO,
	})
	mustProcess(t, s, 7)
	before := s.Snapshot()

	savedBlock := before.Blocks[0]
	savedStats := before.Stats
	savedHistoryLen := len(before.History)
	savedRecord := before.History[0]

	// Mutate the simulator well past the snapshot
	for addr := uint64(0); addr < 20; addr++ {
		mustProcess(t, s, addr)
	}

	if before.Blocks[0] != savedBlock {
		t.Errorf("snapshot block aliased live state: %+v vs %+v", before.Blocks[0], savedBlock)
	}
	if before.Stats != savedStats {
		t.Errorf("snapshot stats aliased live state: %+v vs %+v", before.Stats, savedStats)
	}
	if len(before.History) != savedHistoryLen || before.History[0] != savedRecord {
		t.Errorf("snapshot history aliased live state: %d records", len(before.History))
	}
}

func TestSnapshot_HistoryMostRecentFirst(t *testing.T) {
	s := mustSimulator(t, directConfig(8))
	mustProcess(t, s, 1)
	mustProcess(t, s, 2)
	state := mustProcess(t, s, 3)

	want := []uint64{3, 2, 1}
	for i, addr := range want {
		if state.History[i].Address != addr {
			t.Errorf("history[%d]: got address %d, want %d", i, state.History[i].Address, addr)
		}
	}
	if state.History[0].Sequence != 3 {
		t.Errorf("latest sequence: got %d, want 3", state.History[0].Sequence)
	}
}

func TestSnapshot_NonMutating(t *testing.T) {
	s := mustSimulator(t, directConfig(4))
	mustProcess(t, s, 1)

	first := s.Snapshot()
	second := s.Snapshot()

	if first.Stats != second.Stats || len(first.History) != len(second.History) {
		t.Errorf("Snapshot mutated state: %+v vs %+v", first.Stats, second.Stats)
	}
	if second.History[0].Outcome != trace.OutcomeMiss {
		t.Errorf("history record: got %s, want miss", second.History[0].Outcome)
	}
}
