package transform

import "fmt"

// Lag applies a differential time shift to the pair: x is advanced by
// nsamps/2 samples and y is delayed by nsamps/2 samples, then both are
// truncated so they cover the same index range and the pair stays centred.
// The output is |nsamps| samples shorter than the input.
//
// nsamps must be even so the trimming splits equally around the centre; a
// negative value reverses the shift direction, and zero is the identity.
func Lag(x, y []float64, nsamps int) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	if nsamps == 0 {
		return copyTrace(x), copyTrace(y), nil
	}

	if nsamps%2 != 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrOddLag, nsamps)
	}

	shift := nsamps
	if shift < 0 {
		shift = -shift
	}

	if shift >= len(x) {
		return nil, nil, fmt.Errorf("%w: %d samples shifted by %d", ErrLagTooLong, len(x), nsamps)
	}

	if nsamps > 0 {
		return copyTrace(x[shift:]), copyTrace(y[:len(y)-shift]), nil
	}

	return copyTrace(x[:len(x)-shift]), copyTrace(y[shift:]), nil
}

func copyTrace(x []float64) []float64 {
	return append([]float64(nil), x...)
}
