package transform

import (
	"fmt"
	"math"
	"math/rand"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Noise returns n samples of Gaussian noise with standard deviation scale,
// low-passed by convolution with a unit-sum Gaussian kernel whose standard
// deviation is width samples. A non-positive width skips smoothing.
//
// The same seed always produces the same sequence; callers that need fresh
// noise per run must vary the seed themselves.
func Noise(n int, scale, width float64, seed int64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("noise length must be > 0: %d", n)
	}

	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64() * scale
	}

	if width <= 0 {
		return out, nil
	}

	return convolveSame(out, gaussianKernel(width))
}

// gaussianKernel builds a unit-sum Gaussian kernel truncated at four
// standard deviations.
func gaussianKernel(sigma float64) []float64 {
	half := int(math.Ceil(4 * sigma))

	k := make([]float64, 2*half+1)

	sum := 0.0
	for i := range k {
		d := float64(i - half)
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}

	vecmath.ScaleBlockInPlace(k, 1/sum)

	return k
}

// convolveSame returns the central len(signal) samples of the linear
// convolution of signal and kernel, computed as a frequency-domain product.
func convolveSame(signal, kernel []float64) ([]float64, error) {
	fftSize := nextPowerOfTwo(len(signal) + len(kernel) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("transform: failed to create FFT plan: %w", err)
	}

	a := make([]complex128, fftSize)
	b := make([]complex128, fftSize)

	for i, v := range signal {
		a[i] = complex(v, 0)
	}

	for i, v := range kernel {
		b[i] = complex(v, 0)
	}

	if err := plan.Forward(a, a); err != nil {
		return nil, fmt.Errorf("transform: forward FFT failed: %w", err)
	}

	if err := plan.Forward(b, b); err != nil {
		return nil, fmt.Errorf("transform: forward FFT failed: %w", err)
	}

	for i := range a {
		a[i] *= b[i]
	}

	if err := plan.Inverse(a, a); err != nil {
		return nil, fmt.Errorf("transform: inverse FFT failed: %w", err)
	}

	out := make([]float64, len(signal))

	// "same" alignment: drop the kernel's group delay.
	shift := (len(kernel) - 1) / 2
	for i := range out {
		out[i] = real(a[i+shift])
	}

	return out, nil
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
