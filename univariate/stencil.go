package univariate

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// stencil evaluates finite difference formulas around a single location,
// evaluating the objective at most once per stencil point. The value at
// the location itself is supplied by the caller.
type stencil struct {
	f     Objective
	loc   float64
	obj   float64
	step  float64
	evals []sample // objective values away from loc
}

type sample struct {
	pt  float64 // stencil location, in units of step
	obj float64
}

func (s *stencil) reset(f Objective, loc, obj, step float64) {
	s.f = f
	s.loc = loc
	s.obj = obj
	s.step = step
	s.evals = s.evals[:0]
}

func (s *stencil) at(pt float64) float64 {
	if pt == 0 {
		return s.obj
	}
	for _, e := range s.evals {
		if e.pt == pt {
			return e.obj
		}
	}
	v := s.f.Obj(s.loc + s.step*pt)
	s.evals = append(s.evals, sample{pt: pt, obj: v})
	return v
}

// estimate returns the derivative approximated by formula.
func (s *stencil) estimate(formula fd.Formula) float64 {
	var deriv float64
	for _, pt := range formula.Stencil {
		deriv += pt.Coeff * s.at(pt.Loc)
	}
	return deriv / math.Pow(s.step, float64(formula.Derivative))
}
