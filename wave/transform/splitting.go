package transform

// Split applies the splitting operator with fast direction degrees and delay
// nsamps samples: rotate the pair onto the fast/slow axes, delay the slow
// component relative to the fast, rotate back. The original axes are
// restored but the signal energy is redistributed between them, and the
// output is |nsamps| samples shorter than the input.
func Split(x, y []float64, degrees float64, nsamps int) ([]float64, []float64, error) {
	xr, yr, err := Rotate(x, y, degrees)
	if err != nil {
		return nil, nil, err
	}

	xl, yl, err := Lag(xr, yr, nsamps)
	if err != nil {
		return nil, nil, err
	}

	return Rotate(xl, yl, -degrees)
}

// Unsplit removes the polarization and delay distortion of a previous Split
// with matching parameters. It does not restore the trimmed samples: the
// pair shrinks by a further |nsamps|, and only the surviving central region
// matches the pre-split data. Splitting is irreversible at the
// sample-truncation level even though the distortion is fully undone.
func Unsplit(x, y []float64, degrees float64, nsamps int) ([]float64, []float64, error) {
	return Split(x, y, degrees, -nsamps)
}
