// Package regress provides the least-squares tools used in the course:
// polynomial regression and a linear classifier. All solves go through
// gonum's matrix routines; no linear algebra is implemented here.
package regress

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Poly is a polynomial fitted to data by least squares. The fit is performed
// in a normalized coordinate (x shifted by the sample mean and scaled by the
// sample standard deviation) to keep the Vandermonde system well conditioned
// for high degrees.
type Poly struct {
	coeffs []float64 // ascending powers of the normalized coordinate
	mean   float64
	std    float64
}

// PolyFit fits a polynomial of the given degree to the points (x[i], y[i])
// by minimizing the sum of squared residuals. The system is solved through a
// QR factorization of the Vandermonde matrix.
func PolyFit(x, y []float64, degree int) (*Poly, error) {
	if len(x) != len(y) {
		return nil, errors.Errorf("regress: input length mismatch: %d x values, %d y values", len(x), len(y))
	}
	if degree < 0 {
		return nil, errors.Errorf("regress: negative degree %d", degree)
	}
	if len(x) < degree+1 {
		return nil, errors.Errorf("regress: %d samples cannot determine a degree %d polynomial", len(x), degree)
	}

	mean := stat.Mean(x, nil)
	std := stat.StdDev(x, nil)
	if std == 0 || math.IsNaN(std) {
		std = 1
	}

	xn := make([]float64, len(x))
	for i, v := range x {
		xn[i] = (v - mean) / std
	}

	a := vandermonde(xn, degree)
	b := mat.NewVecDense(len(y), y)
	c := mat.NewVecDense(degree+1, nil)

	var qr mat.QR
	qr.Factorize(a)
	if err := qr.SolveVecTo(c, false, b); err != nil {
		return nil, errors.Wrap(err, "regress: least squares solve failed")
	}

	return &Poly{
		coeffs: c.RawVector().Data,
		mean:   mean,
		std:    std,
	}, nil
}

// At evaluates the fitted polynomial at x.
func (p *Poly) At(x float64) float64 {
	xn := (x - p.mean) / p.std
	var y float64
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*xn + p.coeffs[i]
	}
	return y
}

// Degree returns the degree of the fitted polynomial.
func (p *Poly) Degree() int {
	return len(p.coeffs) - 1
}

// Coeffs returns the fitted coefficients in ascending powers of the
// normalized coordinate (x - mean) / stddev.
func (p *Poly) Coeffs() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// vandermonde builds the design matrix with ascending powers of a.
func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}
