// Package pair holds synchronized two-component waveform data and exposes
// the splitting operator, rotation, differential lag, and windowed
// extraction as operations on it.
//
// A Pair is immutable: every operation returns a new Pair and leaves the
// receiver untouched, so intermediate states stay valid for comparison and
// a failed call can never leave a half-transformed container behind.
package pair

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-splitwave/wave/synth"
	"github.com/cwbudde/algo-splitwave/wave/transform"
	"github.com/cwbudde/algo-splitwave/wave/window"
)

// Pair holds two synchronized traces together with their sample interval
// and the current orientation of the x axis in the reference frame.
type Pair struct {
	x, y   []float64
	delta  float64
	angle  float64
	units  string
	geom   Geometry
	window *window.Window
	srcLoc *Location
	rcvLoc *Location
}

// New creates a Pair from two traces. Both must have the same odd length so
// the pair has an unambiguous centre sample. The input slices are copied.
func New(x, y []float64, opts ...Option) (*Pair, error) {
	cfg := applyOptions(opts...)

	if err := validateTraces(x, y); err != nil {
		return nil, err
	}

	if cfg.delta <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrDelta, cfg.delta)
	}

	p := cfg.newPair()
	p.x = copyTrace(x)
	p.y = copyTrace(y)

	return p, nil
}

// NewSynthetic creates a Pair with a known ground-truth splitting signature,
// generated by the synth package. The WithLag delay is given in seconds and
// converted to the nearest even sample count.
func NewSynthetic(opts ...Option) (*Pair, error) {
	cfg := applyOptions(opts...)

	if cfg.delta <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrDelta, cfg.delta)
	}

	x, y, err := synth.Generate(
		synth.WithPolarization(cfg.pol),
		synth.WithFast(cfg.fast),
		synth.WithLag(evenSamples(cfg.lag, cfg.delta)),
		synth.WithNoise(cfg.noise),
		synth.WithNSamps(cfg.nsamps),
		synth.WithWidth(cfg.width),
		synth.WithSeed(cfg.seed),
	)
	if err != nil {
		return nil, err
	}

	p := cfg.newPair()
	p.x = x
	p.y = y

	return p, nil
}

// Split applies the splitting operator with fast direction degrees and
// delay tlag seconds. The rotation is taken relative to the pair's current
// orientation, and the result is shorter by the delay's sample count.
func (p *Pair) Split(degrees, tlag float64) (*Pair, error) {
	x, y, err := transform.Split(p.x, p.y, degrees-p.angle, evenSamples(tlag, p.delta))
	if err != nil {
		return nil, err
	}

	return p.withTraces(x, y), nil
}

// Unsplit removes a previously applied splitting with matching parameters.
// The trimmed samples are not restored; see transform.Unsplit.
func (p *Pair) Unsplit(degrees, tlag float64) (*Pair, error) {
	x, y, err := transform.Unsplit(p.x, p.y, degrees-p.angle, evenSamples(tlag, p.delta))
	if err != nil {
		return nil, err
	}

	return p.withTraces(x, y), nil
}

// RotateTo rotates the traces so the x axis comes to lie along degrees in
// the reference frame, and records the new orientation.
func (p *Pair) RotateTo(degrees float64) (*Pair, error) {
	x, y, err := transform.Rotate(p.x, p.y, -degrees-p.angle)
	if err != nil {
		return nil, err
	}

	out := p.withTraces(x, y)
	out.angle = degrees

	return out, nil
}

// Lag applies a differential time shift of tlag seconds between the two
// traces, converted to the nearest even sample count.
func (p *Pair) Lag(tlag float64) (*Pair, error) {
	x, y, err := transform.Lag(p.x, p.y, evenSamples(tlag, p.delta))
	if err != nil {
		return nil, err
	}

	return p.withTraces(x, y), nil
}

// Chop extracts the windowed segment from both traces and records w as the
// pair's window.
func (p *Pair) Chop(w window.Window) (*Pair, error) {
	x, y, err := transform.Chop(p.x, p.y, w)
	if err != nil {
		return nil, err
	}

	out := p.withTraces(x, y)
	out.window = &w

	return out, nil
}

// Window builds a Window centred at timeCentre seconds with width timeWidth
// seconds in this pair's sample geometry. The width is forced to the
// nearest larger odd sample count. The pair itself is not touched.
func (p *Pair) Window(timeCentre, timeWidth float64, opts ...window.Option) (window.Window, error) {
	width := int(math.Round(timeWidth / p.delta))
	if width%2 == 0 {
		width++
	}

	offset := int(math.Round(timeCentre/p.delta)) - p.Centre()

	return window.New(width, offset, opts...)
}

// Clone returns an independent deep copy of the pair.
func (p *Pair) Clone() *Pair {
	out := *p
	out.x = copyTrace(p.x)
	out.y = copyTrace(p.y)

	return &out
}

func (p *Pair) withTraces(x, y []float64) *Pair {
	out := *p
	out.x, out.y = x, y

	return &out
}

func validateTraces(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d vs %d", transform.ErrLengthMismatch, len(x), len(y))
	}

	if len(x)%2 == 0 {
		return fmt.Errorf("%w: %d", transform.ErrEvenSamples, len(x))
	}

	return nil
}

// evenSamples converts a time shift to samples, rounded to the nearest even
// count with ties rounded up.
func evenSamples(tlag, delta float64) int {
	n := int(math.Round(tlag / delta))
	if n%2 != 0 {
		n++
	}

	return n
}

func copyTrace(x []float64) []float64 {
	return append([]float64(nil), x...)
}

// NSamps returns the trace length in samples.
func (p *Pair) NSamps() int { return len(p.x) }

// Delta returns the sample interval in seconds.
func (p *Pair) Delta() float64 { return p.delta }

// Angle returns the current orientation of the x axis in degrees.
func (p *Pair) Angle() float64 { return p.angle }

// Units returns the time axis label.
func (p *Pair) Units() string { return p.units }

// Geometry returns the coordinate convention of the two components.
func (p *Pair) Geometry() Geometry { return p.geom }

// Centre returns the index of the centre sample.
func (p *Pair) Centre() int { return len(p.x) / 2 }

// Time returns the elapsed time of each sample from the start of the trace.
func (p *Pair) Time() []float64 {
	out := make([]float64, len(p.x))
	for i := range out {
		out[i] = float64(i) * p.delta
	}

	return out
}

// Power returns the per-sample power x^2 + y^2.
func (p *Pair) Power() []float64 {
	out := make([]float64, len(p.x))
	vecmath.Power(out, p.x, p.y)

	return out
}

// X returns a copy of the first trace.
func (p *Pair) X() []float64 { return copyTrace(p.x) }

// Y returns a copy of the second trace.
func (p *Pair) Y() []float64 { return copyTrace(p.y) }

// XY returns both traces stacked as a 2 x N view.
func (p *Pair) XY() [2][]float64 {
	return [2][]float64{p.X(), p.Y()}
}

// LastWindow returns the window applied by the most recent Chop, if any.
func (p *Pair) LastWindow() (window.Window, bool) {
	if p.window == nil {
		return window.Window{}, false
	}

	return *p.window, true
}

// SourceLocation returns the source location metadata, if set.
func (p *Pair) SourceLocation() (Location, bool) {
	if p.srcLoc == nil {
		return Location{}, false
	}

	return *p.srcLoc, true
}

// ReceiverLocation returns the receiver location metadata, if set.
func (p *Pair) ReceiverLocation() (Location, bool) {
	if p.rcvLoc == nil {
		return Location{}, false
	}

	return *p.rcvLoc, true
}
