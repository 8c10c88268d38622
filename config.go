package strvec

// Config holds configuration options for batch operations.
// A nil *Config everywhere means defaults: sequential execution,
// clamping bounds, warnings recorded on the result only.
type Config struct {
	// Workers is the number of goroutines that process vector elements.
	// Values below 2 select sequential execution. Results are identical
	// and order-preserving regardless of the worker count.
	Workers int

	// StrictBounds makes out-of-range position arguments return a
	// *BoundsError instead of clamping to the string's boundaries.
	// The default clamping preserves the engine's silent-truncation
	// compatibility semantics.
	StrictBounds bool

	// Warn, when set, receives each warning as it is detected, in
	// addition to the warnings recorded on the result.
	Warn func(Warning)
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Workers < 1 {
		c.Workers = 1
	}
}
