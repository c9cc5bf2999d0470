package sim

import "fmt"

// Decomposition is the split of an address into its routing fields.
// It depends only on the configuration, never on cache state.
type Decomposition struct {
	// Tag is the high-order bits identifying the block within its slot/set:
	// address >> (indexBits + offsetBits).
	Tag uint64
	// SetOrIndex selects the slot (direct) or the set (set-associative).
	// Always 0 under fully-associative mapping, which has no index partition.
	SetOrIndex int
	// Offset is the position within a block: address mod 2^OffsetBits.
	// Never consulted for hit/miss decisions.
	Offset uint64
}

// Decompose splits an address into tag, set/index, and offset fields.
// The caller must have validated the address range; Decompose itself does
// not clamp or wrap.
func (c Config) Decompose(addr uint64) Decomposition {
	d := Decomposition{
		Offset: addr & offsetMask(c.OffsetBits),
	}
	switch c.Mapping {
	case MappingDirect:
		d.SetOrIndex = int(addr % uint64(c.CacheCapacity))
	case MappingSetAssociative:
		d.SetOrIndex = int(addr % uint64(c.NumSets()))
	}
	shift := uint(c.indexBits() + c.OffsetBits)
	if shift >= 64 {
		d.Tag = 0
	} else {
		d.Tag = addr >> shift
	}
	return d
}

// CheckAddress verifies addr lies in [0, 2^AddressBits). Out-of-range input
// is a caller error, surfaced as ErrInvalidAddress.
func (c Config) CheckAddress(addr uint64) error {
	if c.AddressBits < 64 && addr>>uint(c.AddressBits) != 0 {
		return fmt.Errorf("%w: %d does not fit in %d address bits", ErrInvalidAddress, addr, c.AddressBits)
	}
	return nil
}

// offsetMask returns a mask covering the low n bits.
func offsetMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}
