package transform

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Rotate rotates the two-component pair by degrees, taken positive from the
// x axis towards the y axis (north towards east in geographic convention):
//
//	xr = x*cos(t) - y*sin(t)
//	yr = x*sin(t) + y*cos(t)
//
// The length never changes, and a zero angle returns exact copies.
func Rotate(x, y []float64, degrees float64) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	sin, cos := math.Sincos(degrees * math.Pi / 180)

	xr := make([]float64, len(x))
	yr := make([]float64, len(y))
	tmp := make([]float64, len(x))

	vecmath.ScaleBlock(xr, x, cos)
	vecmath.ScaleBlock(tmp, y, -sin)
	vecmath.AddBlockInPlace(xr, tmp)

	vecmath.ScaleBlock(yr, x, sin)
	vecmath.ScaleBlock(tmp, y, cos)
	vecmath.AddBlockInPlace(yr, tmp)

	return xr, yr, nil
}
