package ring

import "errors"

// Sentinel errors shared by every component boundary in the ring and rlwe
// packages. They are returned wrapped (fmt.Errorf("...: %w", Err...)) so
// callers can match them with errors.Is.
var (
	// ErrInvalidParameter is returned when a ring or sampler is constructed
	// with parameters that are structurally invalid (N not a power of two,
	// Q < 2, Sigma <= 0).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidInput is returned when a polynomial crossing a component
	// boundary has the wrong length, a coefficient outside [0, Q), or, for
	// a binary message, a coefficient outside {0, 1}.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRandomnessUnavailable is returned when the underlying randomness
	// Source fails to produce bytes.
	ErrRandomnessUnavailable = errors.New("randomness unavailable")
)
