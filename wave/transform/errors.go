package transform

import "errors"

var (
	// ErrLengthMismatch reports traces that are not the same length.
	ErrLengthMismatch = errors.New("traces must have the same length")

	// ErrEvenSamples reports a trace whose length is even where a unique
	// centre sample is required.
	ErrEvenSamples = errors.New("trace must have an odd number of samples")

	// ErrOddLag reports a differential shift that is not an even sample count.
	ErrOddLag = errors.New("lag must be an even number of samples")

	// ErrLagTooLong reports a shift that would consume the whole trace.
	ErrLagTooLong = errors.New("lag must be shorter than the trace")

	// ErrWindowOutOfRange reports a window extending beyond the trace bounds.
	ErrWindowOutOfRange = errors.New("window extends outside the trace")
)
