package univariate

import (
	"errors"
	"math"

	"github.com/btracey/fdnewton/common"
	"github.com/btracey/fdnewton/write"
)

// GradFreeOptimizer represents an optimizer that only uses objective values.
type GradFreeOptimizer interface {
	Init(f Objective, initLoc, initObj float64) error
	// Status reports why the optimizer has stopped, or Continue.
	Status() common.Status
	// Iterate performs one iteration. If accepted is false the optimizer
	// has not moved and loc and obj are its current location. nFunEvals
	// counts the objective evaluations made either way.
	Iterate() (loc, obj float64, accepted bool, nFunEvals int, err error)
	// Result does any cleanup needed
	Result()
}

// GradFreeWrapper is a convenience wrapper around a gradient-free algorithm that
// allows more fine-grained control over optimization progress. See OptimizeGradFree
// for example usage
type GradFreeWrapper struct {
	optimizer GradFreeOptimizer
	helper    *Helper
}

// NewGradFreeWrapper wraps optimizer. If the optimizer is a write.DataAdder
// its values are displayed along with the helper's.
func NewGradFreeWrapper(optimizer GradFreeOptimizer) *GradFreeWrapper {
	g := &GradFreeWrapper{
		optimizer: optimizer,
		helper:    NewHelper(),
	}
	if adder, ok := optimizer.(write.DataAdder); ok {
		g.helper.AddDataAdder(adder)
	}
	return g
}

func (g *GradFreeWrapper) Init(settings *Settings, fun Objective, initLoc float64) error {
	var nFunEvals int
	initObj := settings.InitialObjective
	if math.IsNaN(initObj) {
		initObj = fun.Obj(initLoc)
		nFunEvals = 1
	}

	if err := g.optimizer.Init(fun, initLoc, initObj); err != nil {
		return err
	}
	return g.helper.Init(settings, fun, initLoc, initObj, nFunEvals)
}

// Status checks the optimizer before the helper, so a run the optimizer
// stopped itself is reported with the optimizer's reason.
func (g *GradFreeWrapper) Status() common.Status {
	return common.CheckStatus(g.optimizer, g.helper)
}

func (g *GradFreeWrapper) Iterate() (loc, obj float64, err error) {
	loc, obj, accepted, nFunEvals, err := g.optimizer.Iterate()
	if err != nil {
		return loc, obj, errors.New("error iterating optimizer: " + err.Error())
	}
	if !accepted {
		g.helper.AddFunEvals(nFunEvals)
		return loc, obj, nil
	}
	g.helper.Iterate(loc, obj, nFunEvals)
	return loc, obj, nil
}

func (g *GradFreeWrapper) Result(status common.Status) *Result {
	g.optimizer.Result()
	return g.helper.Result(status)
}

// Err returns the first error from writing the display, if any.
func (g *GradFreeWrapper) Err() error {
	return g.helper.Display.Err()
}

// OptimizeGradFree optimizes a function using only its values. A nil
// settings uses DefaultSettings. The optimizer may be reused between calls
// but not shared by concurrent ones.
func OptimizeGradFree(f Objective, initLoc float64, settings *Settings, optimizer GradFreeOptimizer) (*Result, error) {
	if optimizer == nil {
		panic("no optimizer provided")
	}
	if f == nil {
		return nil, errors.New("objective function is nil")
	}

	if settings == nil {
		settings = DefaultSettings()
	}
	if settings.MaximumIterations < 0 {
		return nil, errors.New("maximum iterations must not be negative")
	}

	wrapper := NewGradFreeWrapper(optimizer)

	err := wrapper.Init(settings, f, initLoc)
	if err != nil {
		return nil, errors.New("error initializing: " + err.Error())
	}

	var status common.Status
	for {
		// Check if it has converged
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		_, _, err := wrapper.Iterate()
		if err != nil {
			return nil, err
		}
	}
	result := wrapper.Result(status)
	if err := wrapper.Err(); err != nil {
		return result, errors.New("error writing display: " + err.Error())
	}
	return result, nil
}

// StationaryPoint finds a location where the derivative of f is zero using
// Newton's method with finite difference derivatives, starting from x0.
// It uses a tolerance of 1e-6 on the step, a finite difference step of 1e-5
// and at most 100 iterations. It returns the final location and the history
// of accepted locations, which starts with x0.
func StationaryPoint(f func(float64) float64, x0 float64) (float64, []Point, error) {
	if f == nil {
		return math.NaN(), nil, errors.New("objective function is nil")
	}
	result, err := OptimizeGradFree(Func(f), x0, nil, NewNewton())
	if err != nil {
		return math.NaN(), nil, err
	}
	return result.Loc, result.Trace, nil
}
