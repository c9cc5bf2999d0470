package sim

import "errors"

// Sentinel errors surfaced at the engine's API boundary. Callers match with
// errors.Is; the wrapped message carries the offending value.
var (
	// ErrInvalidAddress reports an address outside [0, 2^AddressBits).
	// The engine never clamps or wraps out-of-range input.
	ErrInvalidAddress = errors.New("address out of range")

	// ErrInvalidConfiguration reports a Config rejected by Validate.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
