package univariate

import "math"

type quadratic struct {
	b float64
	c float64
}

func (q quadratic) Obj(x float64) float64 {
	return (x-q.b)*(x-q.b) + q.c
}

func (q quadratic) OptVal() float64 {
	return q.c
}

func (q quadratic) OptLoc() float64 {
	return q.b
}

type constant float64

func (c constant) Obj(x float64) float64 {
	return float64(c)
}

// cycle has derivative x^3 - 2x + 2, on which Newton's method alternates
// between 0 and 1 forever.
type cycle struct{}

func (cycle) Obj(x float64) float64 {
	return math.Pow(x, 4)/4 - x*x + 2*x
}

// counter counts the evaluations of an objective.
type counter struct {
	Objective
	n int
}

func (c *counter) Obj(x float64) float64 {
	c.n++
	return c.Objective.Obj(x)
}

// initCounter records the hooks called by ObjectiveWrapper.
type initCounter struct {
	quadratic
	inits   int
	results int
}

func (i *initCounter) Init()   { i.inits++ }
func (i *initCounter) Result() { i.results++ }
