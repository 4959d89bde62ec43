package transform

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-splitwave/wave/window"
)

// Chop extracts the sub-range described by w from both traces and applies
// the window's taper, if any. The result always has exactly w.Width()
// samples for any in-range window.
func Chop(x, y []float64, w window.Window) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	xc, err := ChopTrace(x, w)
	if err != nil {
		return nil, nil, err
	}

	yc, err := ChopTrace(y, w)
	if err != nil {
		return nil, nil, err
	}

	return xc, yc, nil
}

// ChopTrace extracts the windowed segment of a single trace.
func ChopTrace(x []float64, w window.Window) ([]float64, error) {
	start, end := w.Start(len(x)), w.End(len(x))
	if start < 0 || end > len(x) {
		return nil, fmt.Errorf("%w: [%d,%d) on %d samples", ErrWindowOutOfRange, start, end, len(x))
	}

	out := copyTrace(x[start:end])

	if w.Taper() > 0 {
		vecmath.MulBlockInPlace(out, w.Coefficients())
	}

	return out, nil
}
