package common

import "math"

// UniToler tracks a scalar quantity over the iterations of an optimizer and
// reports whether it has dropped below an absolute tolerance, or has stopped
// changing by more than a relative tolerance over a window of iterations.
// A NaN absolute tolerance or a non-positive relative tolerance disables
// that check.
type UniToler struct {
	hist   []float64
	last   int // Index of the last value added
	filled bool

	absTol float64
	relTol float64

	recent float64
}

// Init resets the toler. window is the number of values kept for the relative
// check, and is ignored when relTol is not positive.
func (t *UniToler) Init(absTol, relTol float64, window int, initVal float64) {
	t.absTol = absTol
	t.relTol = relTol
	t.recent = initVal
	t.last = 0
	t.filled = false
	if relTol <= 0 {
		t.hist = t.hist[:0]
		return
	}
	if window < 2 {
		window = 2
	}
	if cap(t.hist) < window {
		t.hist = make([]float64, window)
	}
	t.hist = t.hist[:window]
	t.hist[0] = initVal
}

// Add records the value from the most recent iteration.
func (t *UniToler) Add(v float64) {
	t.recent = v
	if t.relTol <= 0 {
		return
	}
	t.last++
	if t.last == len(t.hist) {
		t.last = 0
	}
	t.hist[t.last] = v
	if t.last == len(t.hist)-1 {
		t.filled = true
	}
}

// Recent returns the most recently added value.
func (t *UniToler) Recent() float64 {
	return t.recent
}

// AbsConverged returns true if the most recent value is below the absolute tolerance
func (t *UniToler) AbsConverged() bool {
	if math.IsNaN(t.absTol) {
		return false
	}
	return t.recent < t.absTol
}

// RelConverged returns true if the most recent value differs from the oldest
// value in the window by less than the relative tolerance. It is false until
// the window has been filled.
func (t *UniToler) RelConverged() bool {
	if t.relTol <= 0 || !t.filled {
		return false
	}
	oldest := t.last + 1
	if oldest == len(t.hist) {
		oldest = 0
	}
	return math.Abs(t.hist[oldest]-t.hist[t.last]) < t.relTol
}
