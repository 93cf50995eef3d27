package common

import (
	"math"
	"time"

	"github.com/btracey/fdnewton/write"
)

type Initer interface {
	Init()
}

type Resulter interface {
	Result()
}

// ObjectiveWrapper forwards optional hooks to the objective function.
// If the objective is an Initer, Init is called at the start of every run.
// If it is a Statuser, its Status can stop the run. If it is a Resulter,
// Result is called once the run ends, and if it is a write.DataAdder its
// values are displayed alongside the optimizer's.
type ObjectiveWrapper struct {
	fun interface{}
}

func (o *ObjectiveWrapper) Init(objectiveFunction interface{}) {
	o.fun = objectiveFunction
	if initer, ok := objectiveFunction.(Initer); ok {
		initer.Init()
	}
}

func (o *ObjectiveWrapper) Status() Status {
	if statuser, ok := o.fun.(Statuser); ok {
		return statuser.Status()
	}
	return Continue
}

func (o *ObjectiveWrapper) Result() {
	if resulter, ok := o.fun.(Resulter); ok {
		resulter.Result()
	}
}

func (o *ObjectiveWrapper) AppendWriteData(v []*write.Value) []*write.Value {
	if dataWriter, ok := o.fun.(write.DataAdder); ok {
		return dataWriter.AppendWriteData(v)
	}
	return v
}

// SingleOutputSettings are the tolerances on the objective value for
// optimizers of a single-output function. All are off by default.
type SingleOutputSettings struct {
	ObjAbsTol    float64 // Stop once the objective is below this value. NaN disables.
	ObjRelTol    float64 // Stop once the objective changes by less than this over ObjRelWindow iterations. Non-positive disables.
	ObjRelWindow int     // Window for measuring the relative change
}

func DefaultSingleOutputSettings() *SingleOutputSettings {
	return &SingleOutputSettings{
		ObjAbsTol:    math.NaN(),
		ObjRelTol:    -1,
		ObjRelWindow: 5,
	}
}

// SingleOutput checks the objective tolerances of a single-output function.
type SingleOutput struct {
	obj *UniToler
}

func NewSingleOutput() *SingleOutput {
	return &SingleOutput{
		obj: &UniToler{},
	}
}

func (s *SingleOutput) Init(settings *SingleOutputSettings, initObj float64) {
	s.obj.Init(settings.ObjAbsTol, settings.ObjRelTol, settings.ObjRelWindow, initObj)
}

func (s *SingleOutput) Iterate(obj float64) {
	s.obj.Add(obj)
}

func (s *SingleOutput) Status() Status {
	if s.obj.AbsConverged() {
		return ObjAbsTol
	}
	if s.obj.RelConverged() {
		return ObjChangeTol
	}
	return Continue
}

// CommonSettings is a set of options available to all optimizers
type CommonSettings struct {
	MaximumIterations          int           // Maximum number of accepted iterations. Negative means no limit.
	MaximumFunctionEvaluations int           // Maximum number of objective evaluations. Negative means no limit.
	MaximumRuntime             time.Duration // Maximum runtime. Negative means no limit.
	*write.WriteSettings
}

// DefaultCommonSettings returns settings with no limits and no display.
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		MaximumIterations:          -1,
		MaximumFunctionEvaluations: -1,
		MaximumRuntime:             -1,
		WriteSettings:              write.DefaultWriteSettings(),
	}
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations          int           // Number of accepted iterations
	FunctionEvaluations int           // Number of objective evaluations, including the initial one
	Runtime             time.Duration // Total runtime elapsed during the optimization
	Status              Status        // How did the optimizer end
}

// Common keeps the bookkeeping shared by all optimizers: iteration and
// evaluation counts, runtime, the limits on them, and the display.
type Common struct {
	iter      int
	funEvals  int
	startTime time.Time

	settings *CommonSettings

	*write.Display
	*ObjectiveWrapper
}

// NewCommon creates a new Common, and adds itself to the display's data adders
func NewCommon() *Common {
	c := &Common{
		Display:          write.NewDisplay(),
		ObjectiveWrapper: &ObjectiveWrapper{},
	}
	c.AddDataAdder(c, c.ObjectiveWrapper)
	return c
}

// Init resets the counters at the start of an optimization run and writes
// the display headers.
func (c *Common) Init(settings *CommonSettings, objectiveFunction interface{}) error {
	c.iter = 0
	c.funEvals = 0
	c.startTime = time.Now()

	c.settings = settings

	c.ObjectiveWrapper.Init(objectiveFunction)
	return c.Display.Init(c.settings.WriteSettings)
}

func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	return d
}

// Note: These have names that are different because we want optimizers
// to specifically implement all of them. If it has the name Status(), then
// an optimizer will implement by embedding common

// Status checks the objective's own status and whether any of the limits
// (iterations, function evaluations, runtime) have been reached.
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
	return &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
	}
}

// AddFunEvals records objective evaluations that did not produce an
// accepted iteration.
func (c *Common) AddFunEvals(nFunEvals int) {
	c.funEvals += nFunEvals
}

// Iterate records an accepted iteration and its function evaluations, and
// writes to the display.
func (c *Common) Iterate(nFunEvals int) {
	c.iter++
	c.funEvals += nFunEvals
	c.Display.Iterate()
}
