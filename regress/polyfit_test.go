package regress

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestPolyFitExact(t *testing.T) {
	// y = 2x + 1 must be recovered exactly by a degree-1 fit
	x := []float64{1, 2, 3, 4}
	y := []float64{3, 5, 7, 9}

	p, err := PolyFit(x, y, 1)
	if err != nil {
		t.Fatalf("error fitting: %v", err)
	}
	for _, v := range []float64{0, 2.5, 5, 6} {
		want := 2*v + 1
		if !scalar.EqualWithinAbsOrRel(p.At(v), want, 1e-10, 1e-10) {
			t.Errorf("wrong value at %v. Expected %v, found %v", v, want, p.At(v))
		}
	}
	if p.Degree() != 1 {
		t.Errorf("wrong degree. Expected 1, found %d", p.Degree())
	}
}

func TestPolyFitCubic(t *testing.T) {
	f := func(x float64) float64 { return 0.5*x*x*x - 2*x*x + x - 4 }

	var x, y []float64
	for v := -3.0; v <= 3; v += 0.5 {
		x = append(x, v)
		y = append(y, f(v))
	}

	p, err := PolyFit(x, y, 3)
	if err != nil {
		t.Fatalf("error fitting: %v", err)
	}
	for _, v := range []float64{-2.7, -1, 0.3, 2.9} {
		if !scalar.EqualWithinAbsOrRel(p.At(v), f(v), 1e-8, 1e-8) {
			t.Errorf("wrong value at %v. Expected %v, found %v", v, f(v), p.At(v))
		}
	}
}

func TestPolyFitOverdetermined(t *testing.T) {
	// Noisy line: the fit cannot match any point exactly but must land
	// between the two interleaved offsets
	x := []float64{0, 1, 2, 3, 4, 5}
	y := []float64{1, 2.2, 3, 4.2, 5, 6.2}

	p, err := PolyFit(x, y, 1)
	if err != nil {
		t.Fatalf("error fitting: %v", err)
	}
	mid := p.At(2.5)
	if mid < 3.4 || mid > 3.8 {
		t.Errorf("fit at 2.5 outside the data band: %v", mid)
	}
}

func TestPolyFitBadInput(t *testing.T) {
	if _, err := PolyFit([]float64{1, 2}, []float64{1}, 1); err == nil {
		t.Error("expected an error for mismatched lengths")
	}
	if _, err := PolyFit([]float64{1, 2}, []float64{1, 2}, 3); err == nil {
		t.Error("expected an error for too few samples")
	}
	if _, err := PolyFit([]float64{1, 2}, []float64{1, 2}, -1); err == nil {
		t.Error("expected an error for a negative degree")
	}
}

func TestPolyFitConstant(t *testing.T) {
	// All x identical: the stddev guard must keep the solve finite
	p, err := PolyFit([]float64{2, 2, 2}, []float64{5, 5, 5}, 0)
	if err != nil {
		t.Fatalf("error fitting: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(p.At(2), 5, 1e-10, 1e-10) {
		t.Errorf("wrong constant fit. Expected 5, found %v", p.At(2))
	}
}
