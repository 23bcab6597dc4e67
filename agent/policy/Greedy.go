package policy

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/environment"
	"github.com/samuelfneumann/gridenv/environment/gridworld"
	"github.com/samuelfneumann/gridenv/timestep"
	"github.com/samuelfneumann/gridenv/utils/intutils"
	"gonum.org/v1/gonum/mat"
)

// Greedy implements a policy which always moves the agent one cell
// closer to the target along the axis on which they are furthest
// apart. Ties go to the lowest axis.
//
// Greedy reads the agent and target coordinates from the first 2·D
// elements of each observation, which every gridworld observation
// encoding starts with. Greedy ignores obstacles and may therefore get
// stuck behind one.
type Greedy struct {
	dims int
}

// NewGreedy returns a new Greedy policy
func NewGreedy(e environment.Environment) (*Greedy, error) {
	actions, err := numActions(e)
	if err != nil {
		return nil, errors.Wrap(err, "newGreedy")
	}
	if actions%2 != 0 || actions/2 > gridworld.MaxDims {
		return nil, errors.Errorf("newGreedy: %d actions do not describe "+
			"a gridworld", actions)
	}

	return &Greedy{dims: actions / 2}, nil
}

// SelectAction selects the greedy action
func (g *Greedy) SelectAction(t timestep.TimeStep) *mat.VecDense {
	return gridworld.Action(g.greedy(t.Observation)).Vec()
}

// greedy returns the greedy action index for an observation
func (g *Greedy) greedy(obs *mat.VecDense) int {
	agent := gridworld.PositionFromVec(obs, g.dims)
	target := gridworld.PositionFromVec(obs.SliceVec(g.dims, 2*g.dims),
		g.dims)

	axis, furthest := 0, 0
	for i := 0; i < g.dims; i++ {
		if d := intutils.Abs(target[i] - agent[i]); d > furthest {
			axis, furthest = i, d
		}
	}

	toward := [gridworld.MaxDims][2]gridworld.Action{
		{gridworld.Right, gridworld.Left},
		{gridworld.Down, gridworld.Up},
		{gridworld.Forward, gridworld.Backward},
	}
	if target[axis] >= agent[axis] {
		return int(toward[axis][0])
	}
	return int(toward[axis][1])
}
