// Package transform provides the invertible-by-construction geometric
// transforms applied to synchronized two-component waveforms when modelling
// shear-wave splitting: rotation, differential time-lag, windowed extraction,
// and the split/unsplit operator composed from them.
//
// All functions are pure: argument slices are never modified and results are
// returned in freshly allocated slices. Sample-count bookkeeping is strict
// because downstream splitting estimation depends on exact alignment:
//
//   - Rotate never changes the length.
//   - Lag trims |nsamps| samples in total and keeps the pair centred.
//   - Split and Unsplit each trim |nsamps| samples, so removing a previously
//     applied splitting shortens the pair twice. That irreversibility is part
//     of the physical model, not an accounting error.
//
// A typical forward/inverse cycle:
//
//	xs, ys, _ := transform.Split(x, y, 30, 10)
//	xr, yr, _ := transform.Unsplit(xs, ys, 30, 10)
//	// len(xr) == len(x) - 20; xr matches the central region of x.
package transform
