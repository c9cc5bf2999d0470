// Package sim provides the cache simulation engine: a deterministic,
// single-threaded state machine that decides hit or miss for a stream of
// memory addresses under a configurable mapping strategy and block
// replacement policy.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - address.go: address decomposition into tag, set/index, and offset bits
//   - policy.go: victim finders for the FIFO, LRU, LFU, and Random policies
//   - simulator.go: the Process state transition, miss classification, and reset
//
// # Architecture
//
// The engine is a pure state-transition function. Every Process and Reset
// call returns a fresh SimulatorState snapshot (deep-copied blocks, stats,
// and access history) so callers can diff successive states without aliasing
// the engine's internals. Access-history record types live in sim/trace;
// deterministic address-stream synthesis lives in sim/workload.
//
// All mutable state (the tick counter, the seen-address set, the block
// array) is owned by one Simulator instance. Two instances never share
// state, so side-by-side comparison runs stay fully independent.
//
// # Determinism
//
// The only source of randomness is the Random replacement policy, which
// draws from a seeded RNG derived in rng.go. Two simulators built with the
// same Config (including Seed) produce bit-identical results for the same
// address stream.
package sim
