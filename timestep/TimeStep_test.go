package timestep

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSetEnd(t *testing.T) {
	tests := []struct {
		end        EndType
		last       bool
		terminated bool
		truncated  bool
	}{
		{Unset, false, false, false},
		{TerminalStateReached, true, true, false},
		{Timeout, true, false, true},
	}

	for _, test := range tests {
		step := New(Mid, 0, 1, mat.NewVecDense(1, nil), 3)
		step.SetEnd(test.end)

		if step.Last() != test.last {
			t.Errorf("%v: last = %v, want %v", test.end, step.Last(),
				test.last)
		}
		if step.Terminated() != test.terminated {
			t.Errorf("%v: terminated = %v, want %v", test.end,
				step.Terminated(), test.terminated)
		}
		if step.Truncated() != test.truncated {
			t.Errorf("%v: truncated = %v, want %v", test.end,
				step.Truncated(), test.truncated)
		}
		if step.EndType() != test.end {
			t.Errorf("end type = %v, want %v", step.EndType(), test.end)
		}
	}
}

func TestInfoString(t *testing.T) {
	info := Info{"size": 5, "distance": 3}
	if got, want := info.String(), "{distance: 3, size: 5}"; got != want {
		t.Errorf("info string = %q, want %q", got, want)
	}
}
