package gridworld

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/utils/intutils"
)

// ObservationType determines how the environment state is encoded in
// the observation vector of each TimeStep
type ObservationType string

const (
	// Coordinates observations are the agent coordinates followed by
	// the target coordinates
	Coordinates ObservationType = "Coordinates"

	// Neighbours observations are Coordinates observations followed by
	// an occupancy mask of the cells surrounding the agent
	Neighbours ObservationType = "Neighbours"

	// Matrix observations are Coordinates observations followed by the
	// occupancy of every cell in the grid
	Matrix ObservationType = "Matrix"
)

// RewardType determines the Task used to compute rewards of steps
// which neither reach the goal nor collide with an obstacle
type RewardType string

const (
	Sparse    RewardType = "Sparse"
	Shaped    RewardType = "Shaped"
	Penalised RewardType = "Penalised"
)

// Rewards holds the reward constants of a Task. Which constants are
// used depends on the RewardType:
//
//	Field		Used by				Meaning
//	Goal		all					reward for reaching the target
//	Step		all					reward for every other step
//	Collision	all					reward for a move blocked by an obstacle
//	Timeout		all					reward on the step the step budget runs out
//	Scale		Shaped, Penalised	factor on the decrease in distance to the target
//	Wall		Penalised			added when a move leaves the agent in place
type Rewards struct {
	Goal      float64 `json:"goal"`
	Step      float64 `json:"step"`
	Collision float64 `json:"collision"`
	Timeout   float64 `json:"timeout"`
	Scale     float64 `json:"scale"`
	Wall      float64 `json:"wall"`
}

// Config is the configuration of a GridWorld. A Config is a value and
// the GridWorld constructed from it keeps its own copy.
type Config struct {
	Size        int             `json:"size"`
	Dims        int             `json:"dims"`
	MaxSteps    int             `json:"max_steps"`
	Obstacles   int             `json:"obstacles"`
	Observation ObservationType `json:"observation"`
	Reward      RewardType      `json:"reward"`
	Rewards     Rewards         `json:"rewards"`
	Discount    float64         `json:"discount"`
}

// Cells returns the number of cells in the grid, Size^Dims
func (c Config) Cells() int {
	return intutils.Pow(c.Size, c.Dims)
}

// Validate returns an error if the Config cannot be used to construct
// a GridWorld. If the grid does not have enough cells to hold the
// agent, target, and obstacles at distinct positions, the returned
// error wraps ErrUnsatisfiableConfiguration.
func (c Config) Validate() error {
	if c.Size < 2 {
		return errors.Errorf("validate: size must be at least 2, got %d",
			c.Size)
	}
	if c.Dims != 2 && c.Dims != 3 {
		return errors.Errorf("validate: dims must be 2 or 3, got %d",
			c.Dims)
	}
	if c.MaxSteps <= 0 {
		return errors.Errorf("validate: max steps must be positive, got %d",
			c.MaxSteps)
	}
	if c.Obstacles < 0 {
		return errors.Errorf("validate: obstacles must be non-negative, "+
			"got %d", c.Obstacles)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return errors.Errorf("validate: discount must be in [0, 1], got %v",
			c.Discount)
	}

	switch c.Observation {
	case Coordinates, Neighbours, Matrix:
	default:
		return errors.Errorf("validate: no such observation type %q",
			c.Observation)
	}

	switch c.Reward {
	case Sparse, Shaped, Penalised:
	default:
		return errors.Errorf("validate: no such reward type %q", c.Reward)
	}

	if need := c.Obstacles + 2; need > c.Cells() {
		return errors.Wrapf(ErrUnsatisfiableConfiguration,
			"validate: %d obstacles, agent, and target need %d cells but "+
				"the grid has %d", c.Obstacles, need, c.Cells())
	}

	return nil
}
