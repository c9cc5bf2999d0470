package sim

import (
	"fmt"
	"math/bits"
)

// MappingStrategy selects how an address is mapped onto cache slots.
type MappingStrategy string

const (
	// MappingDirect maps each address to exactly one slot (address mod capacity).
	MappingDirect MappingStrategy = "direct"
	// MappingFullyAssociative allows any address in any slot.
	MappingFullyAssociative MappingStrategy = "fully-associative"
	// MappingSetAssociative maps each address to one set of SetSize slots.
	MappingSetAssociative MappingStrategy = "set-associative"
)

// ReplacementPolicy selects the victim when every candidate slot is occupied.
// Ignored under direct mapping, where the slot is forced.
type ReplacementPolicy string

const (
	PolicyFIFO   ReplacementPolicy = "fifo"
	PolicyLRU    ReplacementPolicy = "lru"
	PolicyLFU    ReplacementPolicy = "lfu"
	PolicyRandom ReplacementPolicy = "random"
)

// validMappings maps accepted mapping strategy strings.
var validMappings = map[MappingStrategy]bool{
	MappingDirect:           true,
	MappingFullyAssociative: true,
	MappingSetAssociative:   true,
}

// validPolicies maps accepted replacement policy strings.
var validPolicies = map[ReplacementPolicy]bool{
	PolicyFIFO:   true,
	PolicyLRU:    true,
	PolicyLFU:    true,
	PolicyRandom: true,
}

// ParseMappingStrategy converts a CLI/YAML string into a MappingStrategy.
// Accepts the short aliases "fully" and "set".
func ParseMappingStrategy(s string) (MappingStrategy, error) {
	switch s {
	case "fully":
		return MappingFullyAssociative, nil
	case "set":
		return MappingSetAssociative, nil
	}
	m := MappingStrategy(s)
	if !validMappings[m] {
		return "", fmt.Errorf("%w: unknown mapping strategy %q", ErrInvalidConfiguration, s)
	}
	return m, nil
}

// ParseReplacementPolicy converts a CLI/YAML string into a ReplacementPolicy.
func ParseReplacementPolicy(s string) (ReplacementPolicy, error) {
	p := ReplacementPolicy(s)
	if !validPolicies[p] {
		return "", fmt.Errorf("%w: unknown replacement policy %q", ErrInvalidConfiguration, s)
	}
	return p, nil
}

// Config fixes a simulator's geometry and policy at construction time.
// It is immutable for the simulator's lifetime; Configure replaces it
// wholesale and resets all state.
type Config struct {
	// CacheCapacity is the number of block slots. Must be a power of two
	// so the tag remains derivable by a plain shift.
	CacheCapacity int
	// SetSize is the number of slots per set. Only consulted for
	// set-associative mapping, where it must evenly divide CacheCapacity.
	SetSize int
	// AddressBits defines the address space [0, 2^AddressBits). 1..64.
	AddressBits int
	// OffsetBits is the block-offset width. Must not exceed AddressBits.
	OffsetBits int
	Mapping    MappingStrategy
	Policy     ReplacementPolicy
	// Seed drives the Random replacement policy. Same seed, same victims.
	Seed int64
}

// Validate checks the configuration invariants. All violations wrap
// ErrInvalidConfiguration.
func (c Config) Validate() error {
	if c.CacheCapacity <= 0 {
		return fmt.Errorf("%w: cache capacity must be positive, got %d", ErrInvalidConfiguration, c.CacheCapacity)
	}
	if !isPowerOfTwo(c.CacheCapacity) {
		return fmt.Errorf("%w: cache capacity must be a power of two, got %d", ErrInvalidConfiguration, c.CacheCapacity)
	}
	if c.AddressBits < 1 || c.AddressBits > 64 {
		return fmt.Errorf("%w: address bits must be in [1, 64], got %d", ErrInvalidConfiguration, c.AddressBits)
	}
	if c.OffsetBits < 0 || c.OffsetBits > c.AddressBits {
		return fmt.Errorf("%w: offset bits %d must be in [0, address bits %d]", ErrInvalidConfiguration, c.OffsetBits, c.AddressBits)
	}
	if !validMappings[c.Mapping] {
		return fmt.Errorf("%w: unknown mapping strategy %q", ErrInvalidConfiguration, c.Mapping)
	}
	if !validPolicies[c.Policy] {
		return fmt.Errorf("%w: unknown replacement policy %q", ErrInvalidConfiguration, c.Policy)
	}
	if c.Mapping == MappingSetAssociative {
		if c.SetSize <= 0 {
			return fmt.Errorf("%w: set size must be positive, got %d", ErrInvalidConfiguration, c.SetSize)
		}
		if c.CacheCapacity%c.SetSize != 0 {
			return fmt.Errorf("%w: set size %d does not evenly divide cache capacity %d", ErrInvalidConfiguration, c.SetSize, c.CacheCapacity)
		}
		if !isPowerOfTwo(c.SetSize) {
			return fmt.Errorf("%w: set size must be a power of two, got %d", ErrInvalidConfiguration, c.SetSize)
		}
	}
	return nil
}

// NumSets returns how many index partitions the mapping produces: one slot
// each under direct mapping, CacheCapacity/SetSize sets under set-associative
// mapping, and a single partition under fully-associative mapping.
func (c Config) NumSets() int {
	switch c.Mapping {
	case MappingDirect:
		return c.CacheCapacity
	case MappingSetAssociative:
		return c.CacheCapacity / c.SetSize
	default:
		return 1
	}
}

// indexBits is log2(NumSets): the width of the set/index field.
// Zero for fully-associative mapping.
func (c Config) indexBits() int {
	if c.Mapping == MappingFullyAssociative {
		return 0
	}
	return bits.TrailingZeros(uint(c.NumSets()))
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
