package univariate

import (
	"errors"
	"math"

	"github.com/nmcourse/opt/common"
)

// Optimizer represents a derivative-based univariate minimization algorithm
type Optimizer interface {
	Init(f Grader, initLoc, initGrad float64) error
	Status() common.Status
	// The loc is what is passed to convergence checking. grad is the
	// derivative evaluated during the iteration
	Iterate() (loc float64, grad float64, nFunEvals int, err error)
	// Result does any cleanup needed
	Result()
}

// Wrapper is a convenience wrapper around a minimization algorithm that
// allows more fine-grained control over progress. See Minimize for example
// usage
type Wrapper struct {
	optimizer Optimizer
	helper    *Helper

	hook func(iter int, loc float64)
	iter int
}

func NewWrapper(optimizer Optimizer) *Wrapper {
	return &Wrapper{
		optimizer: optimizer,
		helper:    NewHelper(),
	}
}

func (g *Wrapper) Init(settings *Settings, fun Grader, initLoc float64) error {
	initGrad := settings.InitialDeriv
	if math.IsNaN(initGrad) {
		initGrad = fun.Grad(initLoc)
	}

	g.hook = settings.IterationHook
	g.iter = 0

	g.helper.Init(settings, fun, initLoc, initGrad)
	return g.optimizer.Init(fun, initLoc, initGrad)
}

func (g *Wrapper) Status() common.Status {
	return common.CheckStatus(g.helper, g.optimizer)
}

func (g *Wrapper) Iterate() (loc, grad float64, err error) {
	var nFunEvals int
	loc, grad, nFunEvals, err = g.optimizer.Iterate()
	if err != nil {
		return loc, grad, errors.New("error iterating optimizer: " + err.Error())
	}
	g.helper.Iterate(loc, grad, nFunEvals)
	g.iter++
	if g.hook != nil {
		g.hook(g.iter, loc)
	}
	return loc, grad, nil
}

func (g *Wrapper) Result(status common.Status) *Result {
	g.optimizer.Result()
	return g.helper.Result(status)
}

// Minimize refines a candidate minimizer of a differentiable function until
// the optimizer reports convergence or a limit in the settings is reached.
//
// Failure to converge is not an error: a run that hits the iteration cap
// terminates with a negative Status and the last candidate in Loc. A nil
// error only means no derivative evaluation itself failed.
func Minimize(f Grader, initLoc float64, settings *Settings, optimizer Optimizer) (*Result, error) {
	if optimizer == nil {
		panic("no optimizer provided")
	}

	if settings == nil {
		settings = DefaultSettings()
	}

	wrapper := NewWrapper(optimizer)

	err := wrapper.Init(settings, f, initLoc)
	if err != nil {
		return nil, errors.New("error initializing: " + err.Error())
	}

	var status common.Status
	for {
		// Check if it has converged or hit a limit
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		_, _, err := wrapper.Iterate()
		if err != nil {
			return nil, err
		}
	}
	return wrapper.Result(status), nil
}
