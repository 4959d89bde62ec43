// Package window describes centred sub-intervals of a trace.
//
// A Window is defined relative to the trace it will be applied to: the
// offset places the window centre relative to the trace centre, so the
// same Window can be reused on traces of different lengths as long as it
// stays inside their bounds. An optional Tukey taper smooths the edges of
// the extracted segment to reduce spectral leakage.
package window

import (
	"fmt"
	"math"
)

// Window is an immutable description of a centred sub-interval: a positive
// odd width in samples, an offset of the window centre from the trace
// centre, and an optional Tukey taper fraction.
type Window struct {
	width  int
	offset int
	taper  float64
}

// Option configures window construction.
type Option func(*config)

type config struct {
	taper float64
}

// WithTaper sets the Tukey taper fraction in [0,1]. Zero disables the
// taper; one gives a full Hann shape.
func WithTaper(alpha float64) Option {
	return func(c *config) {
		c.taper = alpha
	}
}

// New creates a Window of the given width and centre offset, both in
// samples. The width must be a positive odd number so the window has an
// unambiguous centre sample.
func New(width, offset int, opts ...Option) (Window, error) {
	cfg := config{}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if width <= 0 || width%2 == 0 {
		return Window{}, fmt.Errorf("%w: %d", ErrWidth, width)
	}

	if cfg.taper < 0 || cfg.taper > 1 {
		return Window{}, fmt.Errorf("%w: %f", ErrTaper, cfg.taper)
	}

	return Window{width: width, offset: offset, taper: cfg.taper}, nil
}

// Width returns the window length in samples.
func (w Window) Width() int { return w.width }

// Offset returns the offset of the window centre from the trace centre.
func (w Window) Offset() int { return w.offset }

// Taper returns the Tukey taper fraction.
func (w Window) Taper() float64 { return w.taper }

// Start returns the first sample index covered by the window on a trace
// of n samples.
func (w Window) Start(n int) int {
	return n/2 + w.offset - w.width/2
}

// End returns the exclusive end index of the window on a trace of n samples.
func (w Window) End(n int) int {
	return w.Start(n) + w.width
}

// Coefficients returns the taper coefficients across the window width.
// A zero taper yields all ones.
func (w Window) Coefficients() []float64 {
	out := make([]float64, w.width)
	for i := range out {
		out[i] = tukeyAt(samplePosition(i, w.width), w.taper)
	}

	return out
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}

	return float64(n) / float64(size-1)
}

func tukeyAt(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}

	if alpha >= 1 {
		return 0.5 * (1 - math.Cos(2*math.Pi*x))
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}
