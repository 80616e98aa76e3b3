// Package functions provides closed-form objective functions used throughout
// the course material. Each type exposes both the objective value and its
// derivative so it can drive the minimizers and be plotted by the demos.
package functions

import "math"

// Quadratic is the bowl (x-Center)^2 + Min. Its derivative is linear and
// monotonic, so fixed-step descent converges for any step size below one
// over the curvature.
type Quadratic struct {
	Center float64 // Location of the minimum
	Min    float64 // Objective value at the minimum
}

func (q Quadratic) Obj(x float64) float64 {
	return (x-q.Center)*(x-q.Center) + q.Min
}

func (q Quadratic) Grad(x float64) float64 {
	return 2 * (x - q.Center)
}

func (q Quadratic) OptLoc() float64 { return q.Center }

func (q Quadratic) OptVal() float64 { return q.Min }

// FlatWell has the derivative (x-Center) * exp(-(x-Center)^2 / Sigma^2).
// The derivative decays toward zero away from the center, so descent slows
// dramatically when started far from the minimum. It is the course's example
// of a flat region penalizing gradient methods.
type FlatWell struct {
	Center float64
	Sigma  float64 // Width of the well. Zero means 1
}

func (w FlatWell) sigma() float64 {
	if w.Sigma == 0 {
		return 1
	}
	return w.Sigma
}

func (w FlatWell) Obj(x float64) float64 {
	d := x - w.Center
	s := w.sigma()
	return -s * s / 2 * math.Exp(-d*d/(s*s))
}

func (w FlatWell) Grad(x float64) float64 {
	d := x - w.Center
	s := w.sigma()
	return d * math.Exp(-d*d/(s*s))
}

func (w FlatWell) OptLoc() float64 { return w.Center }
