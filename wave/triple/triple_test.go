package triple

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-splitwave/wave/pair"
	"github.com/cwbudde/algo-splitwave/wave/transform"
	"github.com/cwbudde/algo-splitwave/wave/window"
)

func TestNewValidation(t *testing.T) {
	t.Run("z length mismatch", func(t *testing.T) {
		_, err := New(make([]float64, 5), make([]float64, 5), make([]float64, 7))
		if !errors.Is(err, transform.ErrLengthMismatch) {
			t.Fatalf("err=%v, want ErrLengthMismatch", err)
		}
	})

	t.Run("even length", func(t *testing.T) {
		_, err := New(make([]float64, 4), make([]float64, 4), make([]float64, 4))
		if !errors.Is(err, transform.ErrEvenSamples) {
			t.Fatalf("err=%v, want ErrEvenSamples", err)
		}
	})
}

func TestLagTrimsZInLockstep(t *testing.T) {
	x := ramp(101, 0)
	y := ramp(101, 100)
	z := ramp(101, 200)

	tr, err := New(x, y, z)
	if err != nil {
		t.Fatal(err)
	}

	lagged, err := tr.Lag(10)
	if err != nil {
		t.Fatal(err)
	}

	if lagged.NSamps() != 91 || len(lagged.Z()) != 91 {
		t.Fatalf("lengths %d %d, want 91", lagged.NSamps(), len(lagged.Z()))
	}

	// z loses 5 samples from each end, keeping its centre sample.
	checkClose(t, lagged.Z(), z[5:96], 0)
}

func TestSplitKeepsComponentsAligned(t *testing.T) {
	tr := syntheticTriple(t)

	split, err := tr.Split(30, 10)
	if err != nil {
		t.Fatal(err)
	}

	if split.NSamps() != 491 || len(split.Z()) != 491 {
		t.Fatalf("lengths %d %d, want 491", split.NSamps(), len(split.Z()))
	}

	rec, err := split.Unsplit(30, 10)
	if err != nil {
		t.Fatal(err)
	}

	if rec.NSamps() != 481 || len(rec.Z()) != 481 {
		t.Fatalf("lengths %d %d, want 481", rec.NSamps(), len(rec.Z()))
	}

	checkClose(t, rec.Z(), tr.Z()[10:491], 0)
}

func TestRotateToLeavesZUntouched(t *testing.T) {
	tr := syntheticTriple(t)

	rotated, err := tr.RotateTo(45)
	if err != nil {
		t.Fatal(err)
	}

	checkClose(t, rotated.Z(), tr.Z(), 0)

	if rotated.Pair().Angle() != 45 {
		t.Fatalf("angle=%v, want 45", rotated.Pair().Angle())
	}
}

func TestChopAllComponents(t *testing.T) {
	tr := syntheticTriple(t)

	w, err := window.New(51, 3)
	if err != nil {
		t.Fatal(err)
	}

	chopped, err := tr.Chop(w)
	if err != nil {
		t.Fatal(err)
	}

	if chopped.NSamps() != 51 || len(chopped.Z()) != 51 {
		t.Fatalf("lengths %d %d, want 51", chopped.NSamps(), len(chopped.Z()))
	}

	start := w.Start(tr.NSamps())
	checkClose(t, chopped.Z(), tr.Z()[start:start+51], 0)
}

func TestCloneIndependence(t *testing.T) {
	tr := syntheticTriple(t)

	c := tr.Clone()
	if _, err := c.Lag(10); err != nil {
		t.Fatal(err)
	}

	if tr.NSamps() != c.NSamps() {
		t.Fatal("clone shares state with the original")
	}

	checkClose(t, c.Z(), tr.Z(), 0)
}

func syntheticTriple(t *testing.T) *Triple {
	t.Helper()

	p, err := pair.NewSynthetic(testOptions()...)
	if err != nil {
		t.Fatal(err)
	}

	z, err := transform.Noise(p.NSamps(), 0.5, 4, 99)
	if err != nil {
		t.Fatal(err)
	}

	tr, err := New(p.X(), p.Y(), z)
	if err != nil {
		t.Fatal(err)
	}

	return tr
}

func testOptions() []pair.Option {
	return []pair.Option{pair.WithPolarization(15), pair.WithNoise(0.01), pair.WithSeed(3)}
}

func ramp(n int, base float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = base + float64(i)
	}

	return out
}

func checkClose(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("len mismatch got=%d want=%d", len(got), len(want))
	}

	for i := range got {
		if !almostEqual(got[i], want[i], tol) {
			t.Fatalf("index %d: got=%.16f want=%.16f", i, got[i], want[i])
		}
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
