package univariate

import (
	"errors"
	"math"

	"github.com/nmcourse/opt/common"
)

// DefaultStepDeltaTol is the convergence tolerance used by Descent when none
// is set. It is a threshold on the absolute change between successive
// candidates.
const DefaultStepDeltaTol = 1e-12

// Descent performs fixed-step gradient descent: each iteration moves the
// candidate by -StepSize times the derivative. The caller is responsible for
// choosing a step size appropriate to the derivative's scale; there is no
// adaptive step-size logic. If the step is too large the candidates may
// oscillate or grow without bound, and the run simply continues until an
// iteration limit stops it. Divergence is an observable outcome, not an
// error.
type Descent struct {
	StepSize float64 // Fixed learning rate applied to the derivative
	// Tol is the threshold on the change between successive candidates
	// below which the search is considered converged. Zero means
	// DefaultStepDeltaTol.
	Tol float64

	f         Grader
	loc       float64
	converged bool
}

func NewDescent(stepSize, tol float64) *Descent {
	return &Descent{
		StepSize: stepSize,
		Tol:      tol,
	}
}

func (d *Descent) Init(f Grader, initLoc, initGrad float64) error {
	if d.StepSize == 0 {
		return errors.New("descent: step size not set")
	}
	if d.Tol == 0 {
		d.Tol = DefaultStepDeltaTol
	}

	d.f = f
	d.loc = initLoc
	d.converged = false
	return nil
}

func (d *Descent) Status() common.Status {
	if d.converged {
		return common.StepDeltaTol
	}
	return common.Continue
}

func (d *Descent) Iterate() (loc, grad float64, nFunEvals int, err error) {
	grad = d.f.Grad(d.loc)
	next := d.loc - d.StepSize*grad

	if math.Abs(next-d.loc) < d.Tol {
		// The converged step is not committed: the reported location is the
		// candidate from before the final update, matching the reference
		// behavior of this method. Do not change this to return next.
		d.converged = true
		return d.loc, grad, 1, nil
	}

	d.loc = next
	return d.loc, grad, 1, nil
}

func (d *Descent) Result() {}
