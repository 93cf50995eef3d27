package univariate

import (
	"errors"
	"math"

	"github.com/btracey/fdnewton/common"
	"github.com/btracey/fdnewton/write"
	"gonum.org/v1/gonum/diff/fd"
)

// Newton finds a stationary point of the objective with Newton's method
// applied to its derivative. Both the first and second derivatives are
// estimated with finite differences around the current location.
//
// An iteration stops the optimizer without moving if the magnitude of the
// second derivative estimate is below MinCurvature (ZeroCurvature), or if
// the Newton step is shorter than Tol (LocChangeTol). In the latter case the
// location before the short step is kept, unless AcceptFinalStep is set.
type Newton struct {
	Tol          float64 // Convergence tolerance on the length of the Newton step
	Step         float64 // Finite difference step size
	MinCurvature float64 // Smallest usable magnitude of the second derivative

	// Formulas for the first and second derivatives. The zero value uses
	// fd.Forward and CentralSecond. Only the stencil of a formula is used;
	// the spacing is always Step. Stencil points are summed in order.
	FirstDeriv  fd.Formula
	SecondDeriv fd.Formula

	// AcceptFinalStep takes the step that met Tol instead of discarding it.
	AcceptFinalStep bool

	f       Objective
	loc     float64
	obj     float64
	deriv   float64
	curv    float64
	step    float64
	status  common.Status
	locStep common.UniToler
	stencil stencil
}

// CentralSecond is the three point central difference for the second
// derivative. It holds the same stencil as fd.Central2nd ordered so that the
// sum is f(x+h) - 2f(x) + f(x-h) evaluated left to right.
var CentralSecond = fd.Formula{
	Stencil:    []fd.Point{{Loc: 1, Coeff: 1}, {Loc: 0, Coeff: -2}, {Loc: -1, Coeff: 1}},
	Derivative: 2,
}

// NewNewton returns a Newton with a step tolerance of 1e-6, a finite
// difference step of 1e-5 and a curvature threshold of 1e-10.
func NewNewton() *Newton {
	return &Newton{
		Tol:          1e-6,
		Step:         1e-5,
		MinCurvature: 1e-10,
		FirstDeriv:   fd.Forward,
		SecondDeriv:  CentralSecond,
	}
}

func (n *Newton) Init(f Objective, initLoc, initObj float64) error {
	if !(n.Tol > 0) {
		return errors.New("newton: tolerance must be positive")
	}
	if !(n.Step > 0) {
		return errors.New("newton: finite difference step must be positive")
	}
	if n.MinCurvature < 0 || math.IsNaN(n.MinCurvature) {
		return errors.New("newton: minimum curvature must not be negative")
	}
	first, err := derivFormula(n.FirstDeriv, fd.Forward, 1)
	if err != nil {
		return err
	}
	second, err := derivFormula(n.SecondDeriv, CentralSecond, 2)
	if err != nil {
		return err
	}
	n.FirstDeriv = first
	n.SecondDeriv = second

	n.f = f
	n.loc = initLoc
	n.obj = initObj
	n.deriv = math.NaN()
	n.curv = math.NaN()
	n.step = math.NaN()
	n.status = common.Continue
	n.locStep.Init(n.Tol, -1, 0, math.Inf(1))
	return nil
}

// derivFormula returns formula, or def if formula is the zero value, after
// checking that it approximates a derivative of the given order.
func derivFormula(formula, def fd.Formula, order int) (fd.Formula, error) {
	if formula.Stencil == nil && formula.Derivative == 0 {
		return def, nil
	}
	if formula.Derivative != order {
		return formula, errors.New("newton: wrong derivative order for finite difference formula")
	}
	if len(formula.Stencil) == 0 {
		return formula, errors.New("newton: empty finite difference stencil")
	}
	return formula, nil
}

func (n *Newton) Status() common.Status {
	return n.status
}

func (n *Newton) Iterate() (loc, obj float64, accepted bool, nFunEvals int, err error) {
	// f(loc) is known from the previous iteration
	n.stencil.reset(n.f, n.loc, n.obj, n.Step)
	n.deriv = n.stencil.estimate(n.FirstDeriv)
	n.curv = n.stencil.estimate(n.SecondDeriv)
	nFunEvals = len(n.stencil.evals)

	if math.Abs(n.curv) < n.MinCurvature {
		n.step = math.NaN()
		n.status = common.ZeroCurvature
		return n.loc, n.obj, false, nFunEvals, nil
	}

	newLoc := n.loc - n.deriv/n.curv
	n.step = newLoc - n.loc
	n.locStep.Add(math.Abs(n.step))
	if n.locStep.AbsConverged() {
		n.status = common.LocChangeTol
		if !n.AcceptFinalStep {
			return n.loc, n.obj, false, nFunEvals, nil
		}
	}

	n.loc = newLoc
	n.obj = n.f.Obj(newLoc)
	nFunEvals++
	return n.loc, n.obj, true, nFunEvals, nil
}

func (n *Newton) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "Deriv", Value: n.deriv})
	v = append(v, &write.Value{Heading: "Curv", Value: n.curv})
	v = append(v, &write.Value{Heading: "NewtonStep", Value: n.step})
	return v
}

func (n *Newton) Result() {}
