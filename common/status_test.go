package common

import (
	"testing"
	"time"

	"github.com/btracey/fdnewton/write"
)

type fixedStatus Status

func (f fixedStatus) Status() Status { return Status(f) }

func TestStatusString(t *testing.T) {
	for _, test := range []struct {
		s    Status
		want string
	}{
		{Continue, "Continue"},
		{LocChangeTol, "LocChangeTol"},
		{ZeroCurvature, "ZeroCurvature"},
		{MaximumIterations, "MaximumIterations"},
		{MaximumRuntime, "MaximumRuntimeElapsed"},
		{Status(1000), "UnregisteredStatus"},
	} {
		if got := test.s.String(); got != test.want {
			t.Errorf("status %d: got %q, want %q", int(test.s), got, test.want)
		}
	}

	custom := NewStatus("Custom")
	if custom.String() != "Custom" || custom <= Continue {
		t.Errorf("bad custom status %d %q", int(custom), custom)
	}
	if !LocChangeTol.Converged() || ZeroCurvature.Converged() || Continue.Converged() {
		t.Errorf("wrong convergence classification")
	}
}

func TestCheckStatus(t *testing.T) {
	if s := CheckStatus(fixedStatus(Continue), fixedStatus(ZeroCurvature), fixedStatus(LocChangeTol)); s != ZeroCurvature {
		t.Errorf("got %v, want the first stopped status", s)
	}
	if s := CheckStatus(fixedStatus(Continue)); s != Continue {
		t.Errorf("got %v, want Continue", s)
	}
}

func TestCommonLimits(t *testing.T) {
	c := NewCommon()
	settings := DefaultCommonSettings()
	settings.MaximumIterations = 2
	settings.WriteSettings = &write.WriteSettings{}
	if err := c.Init(settings, nil); err != nil {
		t.Fatal(err)
	}
	c.Iterate(3)
	if s := c.Status(); s != Continue {
		t.Errorf("stopped early with %v", s)
	}
	c.AddFunEvals(2)
	c.Iterate(3)
	if s := c.Status(); s != MaximumIterations {
		t.Errorf("got %v, want MaximumIterations", s)
	}
	r := c.Result(MaximumIterations)
	if r.Iterations != 2 || r.FunctionEvaluations != 8 {
		t.Errorf("got %d iterations and %d evaluations, want 2 and 8", r.Iterations, r.FunctionEvaluations)
	}

	settings = DefaultCommonSettings()
	settings.MaximumRuntime = 0
	if err := c.Init(settings, nil); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if s := c.Status(); s != MaximumRuntime {
		t.Errorf("got %v, want MaximumRuntime", s)
	}
}
