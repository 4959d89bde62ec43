// Package triple extends the two-component pair with a third component.
//
// The vertical trace rides along: it is never rotated or lagged on its own,
// it only loses samples symmetrically from both ends whenever an operation
// trims the horizontal pair, so all three components stay time-aligned by
// construction.
package triple

import (
	"fmt"

	"github.com/cwbudde/algo-splitwave/wave/pair"
	"github.com/cwbudde/algo-splitwave/wave/transform"
	"github.com/cwbudde/algo-splitwave/wave/window"
)

// Triple holds three synchronized traces: a horizontal pair x,y carrying
// the splitting operations and a passthrough component z.
type Triple struct {
	h *pair.Pair
	z []float64
}

// New creates a Triple from three traces of equal odd length. The pair
// options apply to the embedded horizontal pair.
func New(x, y, z []float64, opts ...pair.Option) (*Triple, error) {
	h, err := pair.New(x, y, opts...)
	if err != nil {
		return nil, err
	}

	if len(z) != len(x) {
		return nil, fmt.Errorf("%w: %d vs %d", transform.ErrLengthMismatch, len(z), len(x))
	}

	return &Triple{h: h, z: append([]float64(nil), z...)}, nil
}

// Split applies the splitting operator to the horizontal pair and trims z
// in lockstep.
func (t *Triple) Split(degrees, tlag float64) (*Triple, error) {
	h, err := t.h.Split(degrees, tlag)
	if err != nil {
		return nil, err
	}

	return t.withPair(h), nil
}

// Unsplit removes a previously applied splitting from the horizontal pair
// and trims z in lockstep.
func (t *Triple) Unsplit(degrees, tlag float64) (*Triple, error) {
	h, err := t.h.Unsplit(degrees, tlag)
	if err != nil {
		return nil, err
	}

	return t.withPair(h), nil
}

// Lag applies a differential shift to the horizontal pair and trims z in
// lockstep.
func (t *Triple) Lag(tlag float64) (*Triple, error) {
	h, err := t.h.Lag(tlag)
	if err != nil {
		return nil, err
	}

	return t.withPair(h), nil
}

// RotateTo rotates the horizontal pair; z is untouched.
func (t *Triple) RotateTo(degrees float64) (*Triple, error) {
	h, err := t.h.RotateTo(degrees)
	if err != nil {
		return nil, err
	}

	return &Triple{h: h, z: append([]float64(nil), t.z...)}, nil
}

// Chop extracts the same windowed segment from all three traces.
func (t *Triple) Chop(w window.Window) (*Triple, error) {
	h, err := t.h.Chop(w)
	if err != nil {
		return nil, err
	}

	z, err := transform.ChopTrace(t.z, w)
	if err != nil {
		return nil, err
	}

	return &Triple{h: h, z: z}, nil
}

// Pair returns the horizontal pair. The pair is immutable, so the returned
// value can be shared safely.
func (t *Triple) Pair() *pair.Pair { return t.h }

// Z returns a copy of the passthrough component.
func (t *Triple) Z() []float64 { return append([]float64(nil), t.z...) }

// NSamps returns the trace length in samples.
func (t *Triple) NSamps() int { return t.h.NSamps() }

// Clone returns an independent deep copy.
func (t *Triple) Clone() *Triple {
	return &Triple{h: t.h.Clone(), z: append([]float64(nil), t.z...)}
}

// withPair pairs a trimmed horizontal pair with a symmetrically trimmed z.
// The trim is split equally between both ends, preserving centrality.
func (t *Triple) withPair(h *pair.Pair) *Triple {
	trim := (t.h.NSamps() - h.NSamps()) / 2
	z := t.z[trim : len(t.z)-trim]

	return &Triple{h: h, z: append([]float64(nil), z...)}
}
