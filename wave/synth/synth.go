// Package synth generates two-component waveforms with a known ground-truth
// splitting signature, for validating splitting-estimation algorithms.
package synth

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-splitwave/wave/transform"
)

// Option configures waveform synthesis.
type Option func(*config)

type config struct {
	pol    float64
	fast   float64
	lag    int
	noise  float64
	nsamps int
	width  float64
	seed   int64
}

func defaultConfig() config {
	return config{
		noise:  0.03,
		nsamps: 501,
		width:  16,
		seed:   1,
	}
}

// WithPolarization sets the source polarization in degrees.
func WithPolarization(degrees float64) Option {
	return func(c *config) {
		c.pol = degrees
	}
}

// WithFast sets the fast-axis direction of the imprinted splitting in degrees.
func WithFast(degrees float64) Option {
	return func(c *config) {
		c.fast = degrees
	}
}

// WithLag sets the splitting delay in samples. Must be even.
func WithLag(nsamps int) Option {
	return func(c *config) {
		c.lag = nsamps
	}
}

// WithNoise sets the standard deviation of the additive noise.
func WithNoise(scale float64) Option {
	return func(c *config) {
		c.noise = scale
	}
}

// WithNSamps sets the pre-splitting trace length. Must be odd.
func WithNSamps(n int) Option {
	return func(c *config) {
		c.nsamps = n
	}
}

// WithWidth sets the characteristic width of the source pulse in samples.
func WithWidth(width float64) Option {
	return func(c *config) {
		c.width = width
	}
}

// WithSeed sets the deterministic noise seed. The two components use
// independent streams derived from it.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// Generate returns a waveform pair carrying a known splitting signature: a
// Ricker source pulse polarized at pol with additive smoothed noise on both
// components, distorted by the forward splitting operator (fast, lag).
//
// The output length is nsamps - |lag|, which stays odd because lag is even.
func Generate(opts ...Option) ([]float64, []float64, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.nsamps <= 0 || cfg.nsamps%2 == 0 {
		return nil, nil, fmt.Errorf("%w: %d", transform.ErrEvenSamples, cfg.nsamps)
	}

	if cfg.width <= 0 {
		return nil, nil, fmt.Errorf("pulse width must be > 0: %f", cfg.width)
	}

	nx, err := transform.Noise(cfg.nsamps, cfg.noise, cfg.width/4, cfg.seed)
	if err != nil {
		return nil, nil, err
	}

	ny, err := transform.Noise(cfg.nsamps, cfg.noise, cfg.width/4, cfg.seed+1)
	if err != nil {
		return nil, nil, err
	}

	x := Ricker(cfg.nsamps, cfg.width)
	vecmath.AddBlockInPlace(x, nx)
	y := ny

	// Rotate to the source polarization, then imprint the splitting.
	x, y, err = transform.Rotate(x, y, -cfg.pol)
	if err != nil {
		return nil, nil, err
	}

	return transform.Split(x, y, cfg.fast, cfg.lag)
}
