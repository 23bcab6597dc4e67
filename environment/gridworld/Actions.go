package gridworld

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Action is a unit step along one axis of the grid. A grid with
// dimensionality D has the first 2·D actions:
//
//	Action	Meaning		Direction
//	  0		Right		+x
//	  1		Up			-y
//	  2		Left		-x
//	  3		Down		+y
//	  4		Forward		+z
//	  5		Backward	-z
type Action int

const (
	Right Action = iota
	Up
	Left
	Down
	Forward
	Backward
)

var directions = [...]Position{
	Right:    {1, 0, 0},
	Up:       {0, -1, 0},
	Left:     {-1, 0, 0},
	Down:     {0, 1, 0},
	Forward:  {0, 0, 1},
	Backward: {0, 0, -1},
}

var actionNames = [...]string{
	Right:    "right",
	Up:       "up",
	Left:     "left",
	Down:     "down",
	Forward:  "forward",
	Backward: "backward",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Direction returns the unit vector the action moves the agent along
func (a Action) Direction() Position {
	return directions[a]
}

// Vec returns the action encoded as a 1-dimensional action vector
func (a Action) Vec() *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(a)})
}

// NumActions returns the number of legal actions in a grid with the
// given dimensionality
func NumActions(dims int) int {
	return 2 * dims
}

// ParseAction converts a 1-dimensional action vector into an Action,
// returning an error wrapping ErrInvalidAction if the vector is not a
// legal action for a grid with the given dimensionality
func ParseAction(v mat.Vector, dims int) (Action, error) {
	if vec, ok := v.(*mat.VecDense); v == nil || (ok && vec == nil) {
		return 0, errors.Wrap(ErrInvalidAction, "parseAction: nil action")
	}
	if v.Len() != 1 {
		return 0, errors.Wrap(ErrInvalidAction,
			"parseAction: actions must be 1-dimensional")
	}

	value := v.AtVec(0)
	a := int(value)
	if float64(a) != value || a < 0 || a >= NumActions(dims) {
		return 0, errors.Wrapf(ErrInvalidAction,
			"parseAction: action %v ∉ [0, %d)", value, NumActions(dims))
	}
	return Action(a), nil
}
