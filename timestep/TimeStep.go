// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended. A TimeStep whose StepType is
// not Last always has EndType Unset.
type EndType int

const (
	Unset EndType = iota

	// TerminalStateReached means the goal condition of the episode was
	// met. This is the "terminated" signal.
	TerminalStateReached

	// Timeout means the episode step budget was exhausted before the
	// goal was reached. This is the "truncated" signal.
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "Unset"
	}
}

// Info holds diagnostic values reported alongside a TimeStep. Keys are
// defined by the environment that produced the TimeStep.
type Info map[string]float64

func (i Info) String() string {
	keys := make([]string, 0, len(i))
	for k := range i {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for j, k := range keys {
		parts[j] = fmt.Sprintf("%v: %v", k, i[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// TimeStep packages together a single timestep in an environment
type TimeStep struct {
	StepType
	Reward      float64
	Discount    float64
	Observation *mat.VecDense
	Number      int
	Info        Info
	endType     EndType
}

// New creates and returns a new TimeStep
func New(t StepType, r, d float64, o *mat.VecDense, n int) TimeStep {
	return TimeStep{
		StepType:    t,
		Reward:      r,
		Discount:    d,
		Observation: o,
		Number:      n,
	}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd sets the ending type of the TimeStep. Setting an end type
// other than Unset also marks the TimeStep as the last in its episode.
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
	if e != Unset {
		t.StepType = Last
	}
}

// EndType returns why the episode ended on this TimeStep
func (t *TimeStep) EndType() EndType {
	return t.endType
}

// Terminated returns whether the episode ended because the goal was
// reached on this TimeStep
func (t *TimeStep) Terminated() bool {
	return t.Last() && t.endType == TerminalStateReached
}

// Truncated returns whether the episode ended because its step budget
// ran out on this TimeStep
func (t *TimeStep) Truncated() bool {
	return t.Last() && t.endType == Timeout
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Step Number:  %v  |  End: %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Discount, t.Number,
		t.endType)
}
