package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks the status of a variadic number of Statusers
// and returns the first result that is not Continue
func CheckStatus(cs ...Statuser) Status {
	for _, val := range cs {
		c := val.Status()
		if c != Continue {
			return c
		}
	}
	return Continue
}

// NewStatus is used to get a unique value for Status to avoid any accidental
// collisions. NewStatus is not thread-safe as it is intended to only be used
// during initialization
func NewStatus(str string) Status {
	lastStatus++
	statusStrings[lastStatus] = str
	return Status(lastStatus)
}

var statusStrings map[Status]string

func init() {
	statusStrings = make(map[Status]string)
	statusStrings[Continue] = "Continue"
	statusStrings[StepDeltaTol] = "StepDeltaTol"
	statusStrings[DerivAbsTol] = "DerivAbsTol"
	statusStrings[DerivChangeTol] = "DerivChangeTol"

	statusStrings[UserFunctionError] = "ErrorInUserFunction"
	statusStrings[MaximumIterations] = "MaximumIterations"
	statusStrings[MaximumFunctionEvaluations] = "MaximumFunctionEvaluations"
	statusStrings[MaximumRuntime] = "MaximumRuntimeElapsed"
}

// Status is a type for expressing if the minimizer has finished or not.
// Zero signifies no convergence so the minimizer should continue.
// Positive values indicate successful convergence, negative values express
// that a resource limit was hit before convergence.
//
// Hitting a resource limit is not an error: a diverging run terminates with
// MaximumIterations and the last candidate is still reported.
//
// If a custom status value is desired, NewStatus should be called. NewStatus
// is not thread-safe as it is intended to only be used during initialization
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

// Converged returns true if the status represents successful convergence
// rather than a resource limit being reached.
func (s Status) Converged() bool {
	return s > 0
}

const (
	Continue Status = iota
	StepDeltaTol
	DerivAbsTol
	DerivChangeTol
)

const (
	_                        = iota
	UserFunctionError Status = -1 * iota
	MaximumIterations
	MaximumFunctionEvaluations
	MaximumRuntime
)

var lastStatus Status = 256
