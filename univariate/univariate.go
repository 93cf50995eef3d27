package univariate

import (
	"math"

	"github.com/btracey/fdnewton/common"
	"github.com/btracey/fdnewton/write"
)

type Objective interface {
	Obj(x float64) float64
}

// Func adapts an ordinary function to an Objective.
type Func func(x float64) float64

func (f Func) Obj(x float64) float64 {
	return f(x)
}

// Point is one entry of the iteration history: a location and the
// objective value there.
type Point struct {
	Loc float64
	Obj float64
}

// Settings is a structure containing settings for univariate
// optimizers. Some settings may not apply to certain algorithms
type Settings struct {
	*common.CommonSettings
	*common.SingleOutputSettings
	InitialObjective float64 // The value of the objective function at the initial location. NaN means it is evaluated.
}

// DefaultSettings returns the default settings for univariate optimizers.
// The optimizer runs until it stops on its own or 100 iterations have been
// accepted. Consider changing MaximumIterations, MaximumFunctionEvaluations,
// and MaximumRuntime for other limits. Unlike the other limits,
// MaximumIterations may not be negative.
func DefaultSettings() *Settings {
	s := &Settings{
		CommonSettings:       common.DefaultCommonSettings(),
		SingleOutputSettings: common.DefaultSingleOutputSettings(),
		InitialObjective:     math.NaN(),
	}
	s.MaximumIterations = 100
	return s
}

// Helper is a helper struct for optimizers. Not intended for use by
// callers of optimization functions, but exported to aid others who are building
// optimization algorithms
//
// Optimization implementers should call Init() at the beginning of an optimization run
// and should call Status() to check tolerances. Every accepted iteration
// should be passed to Iterate(), and evaluations spent on a rejected
// iteration to AddFunEvals().
type Helper struct {
	*common.Common
	*common.SingleOutput

	trace   []Point
	objCurr float64
	locCurr float64
}

// NewHelper creates a new Helper and adds itself to the data adders
func NewHelper() *Helper {
	u := &Helper{
		Common:       common.NewCommon(),
		SingleOutput: common.NewSingleOutput(),
	}
	u.AddDataAdder(u)
	return u
}

func (u *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Loc", Value: u.locCurr})
	v = append(v, &write.Value{Heading: "Obj", Value: u.objCurr})
	return v
}

// Init starts a new run at initLoc. nFunEvals is the number of evaluations
// spent finding initObj.
func (u *Helper) Init(s *Settings, objectiveFunction interface{}, initLoc, initObj float64, nFunEvals int) error {
	u.trace = []Point{{Loc: initLoc, Obj: initObj}}
	u.locCurr = initLoc
	u.objCurr = initObj

	if err := u.Common.Init(s.CommonSettings, objectiveFunction); err != nil {
		return err
	}
	u.Common.AddFunEvals(nFunEvals)
	u.SingleOutput.Init(s.SingleOutputSettings, initObj)
	u.Display.Iterate()
	return nil
}

// Iterate appends an accepted location to the history.
func (u *Helper) Iterate(loc, obj float64, nFunEvals int) {
	u.locCurr = loc
	u.objCurr = obj
	u.trace = append(u.trace, Point{Loc: loc, Obj: obj})

	u.SingleOutput.Iterate(obj)
	u.Common.Iterate(nFunEvals)
}

func (u *Helper) Status() common.Status {
	status := u.SingleOutput.Status()
	if status != common.Continue {
		return status
	}
	return u.Common.Status()
}

func (u *Helper) Result(status common.Status) *Result {
	return &Result{
		CommonResult: u.Common.Result(status),
		Obj:          u.objCurr,
		Loc:          u.locCurr,
		Trace:        u.trace,
	}
}

type Result struct {
	*common.CommonResult
	Obj   float64 // Objective value at Loc
	Loc   float64 // Last accepted location
	Trace []Point // Initial location followed by every accepted location, in order
}
