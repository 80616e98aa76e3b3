// Package univariate minimizes differentiable functions of a single real
// variable. The central routine is Minimize, which drives an Optimizer such
// as Descent until a convergence tolerance or a resource limit from the
// settings is reached.
package univariate

import (
	"math"

	"github.com/nmcourse/opt/common"
	"github.com/nmcourse/opt/write"
)

// Grader computes the derivative of the objective function at x. The
// objective itself is never evaluated by the minimizer; only its derivative
// is needed.
type Grader interface {
	Grad(x float64) float64
}

// GradFunc adapts an ordinary function to the Grader interface.
type GradFunc func(x float64) float64

func (f GradFunc) Grad(x float64) float64 { return f(x) }

// Settings is a structure containing settings for univariate
// minimizers. Some settings may not apply to certain algorithms
type Settings struct {
	*common.CommonSettings
	*common.DerivSettings

	// InitialDeriv is the value of the derivative at the initial location.
	// If NaN it is computed during initialization.
	InitialDeriv float64

	// IterationHook, if non-nil, is called with the iteration number and the
	// candidate location after every iteration. It is for diagnostics and
	// visualization and has no effect on the returned result.
	IterationHook func(iter int, loc float64)
}

// DefaultSettings returns the default settings for univariate minimizers:
// an iteration cap of 10000 and no derivative tolerances, so termination
// comes from the algorithm's own step-delta check or from the cap.
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings: common.DefaultCommonSettings(),
		DerivSettings:  common.DefaultDerivSettings(),
		InitialDeriv:   math.NaN(),
	}
}

// Helper is a helper struct for minimizers. Not intended for use by
// callers of minimization functions, but exported to aid others who are
// building minimization algorithms
//
// Algorithm implementers should call Init() at the beginning of a run
// and should call Status() to check tolerances. At the end of every iteration
// they should call Iterate()
type Helper struct {
	*common.Common
	*common.DerivToler

	locCurr  float64
	gradCurr float64
}

// NewHelper creates a new univariate helper and adds itself to the data adders
func NewHelper() *Helper {
	u := &Helper{
		Common:     common.NewCommon(),
		DerivToler: common.NewDerivToler(),
	}
	u.AddDataAdder(u)
	return u
}

func (u *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Loc", Value: u.locCurr})
	v = append(v, &write.Value{Heading: "Deriv", Value: u.gradCurr})
	return v
}

func (u *Helper) Init(s *Settings, gradFunction interface{}, initLoc, initGrad float64) {
	u.Common.Init(s.CommonSettings, gradFunction)
	u.DerivToler.Init(s.DerivSettings, math.Abs(initGrad))

	u.locCurr = initLoc
	u.gradCurr = initGrad
}

func (u *Helper) Iterate(loc, grad float64, nFunEvals int) {
	// Update the candidate before Common.Iterate so the trace row for
	// iteration N carries candidate N, not N-1.
	u.locCurr = loc
	u.gradCurr = grad

	u.DerivToler.Iterate(math.Abs(grad))
	u.Common.Iterate(nFunEvals)
}

func (u *Helper) Status() common.Status {
	status := u.Common.Status()
	if status != common.Continue {
		return status
	}
	return u.DerivToler.Status()
}

func (u *Helper) Result(status common.Status) *Result {
	return &Result{
		CommonResult: u.Common.Result(status),
		Loc:          u.locCurr,
		Grad:         u.gradCurr,
	}
}

type Result struct {
	*common.CommonResult
	Loc  float64 // Final candidate location (may not be a minimum if the run hit a limit)
	Grad float64 // Derivative at the last evaluated candidate
}
