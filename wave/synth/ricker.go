package synth

import "math"

// Ricker returns a Ricker (Mexican hat) wavelet of n samples with the given
// characteristic width, peaking at the centre sample:
//
//	A (1 - t^2/w^2) exp(-t^2 / (2 w^2)),  A = 2 / (sqrt(3w) pi^(1/4))
//
// with t measured in samples from the centre.
func Ricker(n int, width float64) []float64 {
	amp := 2 / (math.Sqrt(3*width) * math.Pow(math.Pi, 0.25))

	out := make([]float64, n)
	for i := range out {
		t := float64(i) - float64(n-1)/2
		v := t * t / (width * width)
		out[i] = amp * (1 - v) * math.Exp(-v/2)
	}

	return out
}
