package common

import (
	"math"
	"time"

	"github.com/nmcourse/opt/write"
)

type Initer interface {
	Init()
}

type Resulter interface {
	Result()
}

// ObjectiveWrapper is a helper for wrapping the user-supplied function.
//
// If the function is an Initer it will be called once at the start of a run.
// If the function is a Statuser its status is checked every iteration, and
// if it is a Resulter it is given a chance to clean up at the end.
type ObjectiveWrapper struct {
	fun        interface{}
	initCalled bool
}

func (o *ObjectiveWrapper) Init(objectiveFunction interface{}) {
	if o.initCalled {
		return
	}
	o.initCalled = true
	o.fun = objectiveFunction

	initer, ok := objectiveFunction.(Initer)
	if ok {
		initer.Init()
	}
}

func (o *ObjectiveWrapper) Status() Status {
	statuser, isStatuser := o.fun.(Statuser)
	if isStatuser {
		return statuser.Status()
	}
	return Continue
}

func (o *ObjectiveWrapper) Result() {
	resulter, ok := o.fun.(Resulter)
	if ok {
		resulter.Result()
	}
}

func (o *ObjectiveWrapper) AppendWriteData(v []*write.Value) []*write.Value {
	dataWriter, ok := o.fun.(write.DataAdder)
	if ok {
		return dataWriter.AppendWriteData(v)
	}
	return v
}

// DerivSettings controls the optional convergence checks on the magnitude
// of the derivative. Both checks are disabled by default: the minimizer's
// primary convergence criterion is the change between successive candidates,
// and a diverging run should hit the iteration cap rather than be masked by
// a derivative test.
type DerivSettings struct {
	DerivAbsTol    float64 // Absolute tolerance on the derivative magnitude. NaN disables
	DerivRelTol    float64 // Relative tolerance on the derivative magnitude. Negative disables
	DerivRelWindow int     // Window for measuring the relative value
}

func DefaultDerivSettings() *DerivSettings {
	return &DerivSettings{
		DerivAbsTol:    math.NaN(),
		DerivRelTol:    -1,
		DerivRelWindow: 5,
	}
}

// DerivToler tracks the derivative magnitude across iterations and reports
// convergence against DerivSettings.
type DerivToler struct {
	deriv *UniToler
}

func NewDerivToler() *DerivToler {
	return &DerivToler{
		deriv: &UniToler{},
	}
}

func (s *DerivToler) Init(settings *DerivSettings, initDeriv float64) {
	s.deriv.Init(settings.DerivAbsTol, settings.DerivRelTol, settings.DerivRelWindow, initDeriv)
}

func (s *DerivToler) Iterate(derivMag float64) {
	s.deriv.Add(derivMag)
}

func (s *DerivToler) Status() Status {
	if s.deriv.AbsConverged() {
		return DerivAbsTol
	}
	if s.deriv.RelConverged() {
		return DerivChangeTol
	}
	return Continue
}

// CommonSettings is a set of options available to all minimizers
type CommonSettings struct {
	// MaximumIterations sets the maximum number of major iterations that can
	// occur before the run is terminated. The check happens before the step
	// is taken, so a maximum of zero returns the initial location untouched.
	// A negative value means no limit.
	MaximumIterations          int
	MaximumFunctionEvaluations int           // Sets the maximum number of function evaluations that can occur
	MaximumRuntime             time.Duration // Sets the maximum runtime that can elapse
	*write.WriteSettings
}

// DefaultCommonSettings returns the default settings for the common structure
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		MaximumIterations:          10000,
		MaximumFunctionEvaluations: -1, // Defaults to no maximum function evaluations
		MaximumRuntime:             -1, // Defaults to no maximum runtime
		WriteSettings:              write.DefaultWriteSettings(),
	}
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations          int           // Total number of iterations taken by the minimizer
	FunctionEvaluations int           // Total number of function evaluations taken by the minimizer
	Runtime             time.Duration // Total runtime elapsed during the run
	Status              Status        // How did the run end
}

// Common provides routines for controlling the settings provided by CommonSettings.
type Common struct {
	iter      int
	funEvals  int
	startTime time.Time

	settings *CommonSettings

	*write.Display
	*ObjectiveWrapper
}

// NewCommon creates a new Common structure, and adds itself to the datawriter
func NewCommon() *Common {
	c := &Common{
		Display:          write.NewDisplay(),
		ObjectiveWrapper: &ObjectiveWrapper{},
	}
	c.AddDataAdder(c, c.ObjectiveWrapper)
	return c
}

// Init initializes all of the values in common at the start of a run
func (c *Common) Init(settings *CommonSettings, objectiveFunction interface{}) {
	c.iter = 0
	c.funEvals = 0
	c.startTime = time.Now()

	c.settings = settings

	c.Display.Init(c.settings.WriteSettings)
	c.ObjectiveWrapper.Init(objectiveFunction)
}

func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	return d
}

// Status checks if any of the limits controlled by common has been reached
// (iterations, funevals, runtime). The iteration check is a pre-step check:
// it trips when taking another step would exceed the maximum.
func (c *Common) Status() Status {
	status := c.ObjectiveWrapper.Status()
	if status != Continue {
		return status
	}

	if c.settings.MaximumIterations > -1 && c.iter >= c.settings.MaximumIterations {
		return MaximumIterations
	}
	if c.settings.MaximumFunctionEvaluations > -1 && c.funEvals >= c.settings.MaximumFunctionEvaluations {
		return MaximumFunctionEvaluations
	}
	if c.settings.MaximumRuntime > -1 && time.Since(c.startTime) > c.settings.MaximumRuntime {
		return MaximumRuntime
	}
	return Continue
}

// Result returns the results from the common structure
func (c *Common) Result(status Status) *CommonResult {
	c.ObjectiveWrapper.Result()
	r := &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
	}
	return r
}

// Iterate performs an iteration of the common structure, incrementing
// the iteration, appending the number of function evaluations, and
// writing to the writers
func (c *Common) Iterate(nFunEvals int) {
	c.iter++
	c.funEvals += nFunEvals
	c.Display.Iterate()
}
