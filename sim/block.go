package sim

// CacheBlock is one slot of the cache. The engine allocates CacheCapacity of
// them at construction and only ever overwrites them in place; slots are
// never reallocated or reordered.
type CacheBlock struct {
	// Valid reports whether the slot holds a resident address. A cleared
	// slot (never installed, or wiped by Reset) has the zero value.
	Valid bool
	// Address is the resident address. Meaningless unless Valid.
	Address uint64
	// Tag is the derived tag of Address, recomputable from Address alone
	// given the configuration.
	Tag uint64
	// LoadOrder is the tick at which the block was last installed.
	// Drives FIFO eviction.
	LoadOrder uint64
	// LastAccess is the tick of the most recent install or hit.
	// Drives LRU eviction.
	LastAccess uint64
	// Frequency counts accesses since install: 1 on install, +1 per hit.
	// Drives LFU eviction.
	Frequency uint64
}
