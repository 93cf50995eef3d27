package common

type Statuser interface {
	Status() Status
}

// CheckStatus returns the first status in cs that is not Continue, or
// Continue if all of them are.
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
	statusStrings[LocChangeTol] = "LocChangeTol"
	statusStrings[ObjAbsTol] = "ObjAbsTol"
	statusStrings[ObjChangeTol] = "ObjChangeTol"

	statusStrings[OptimizerError] = "OptimizerError"
	statusStrings[ZeroCurvature] = "ZeroCurvature"
	statusStrings[MaximumIterations] = "MaximumIterations"
	statusStrings[MaximumFunctionEvaluations] = "MaximumFunctionEvaluations"
	statusStrings[MaximumRuntime] = "MaximumRuntimeElapsed"
}

// Status is a type for expressing if the optimizer has finished or not
// Zero signifies no convergence or error so the optimizer should continue.
// Positive values indicate successful convergence.
// Negative values mean the run stopped before converging. These are still
// normal terminations, and the result holds the best location reached.
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

// Converged reports whether s is a successful convergence.
func (s Status) Converged() bool {
	return s > Continue
}

const (
	Continue Status = iota
	LocChangeTol
	ObjAbsTol
	ObjChangeTol
)

const (
	_                     = iota
	OptimizerError Status = -1 * iota
	ZeroCurvature         // Second derivative estimate too small to take a Newton step
	MaximumIterations
	MaximumFunctionEvaluations
	MaximumRuntime
)

var lastStatus Status = 256
