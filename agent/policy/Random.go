// Package policy implements policies which do not learn, used to drive
// rollouts in gridworld environments
package policy

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/agent"
	"github.com/samuelfneumann/gridenv/environment"
	"github.com/samuelfneumann/gridenv/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// New returns the policy described by c for the environment e
func New(c agent.Config, e environment.Environment,
	seed uint64) (agent.Policy, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "new")
	}

	switch c.Type {
	case agent.Random:
		return NewRandom(seed, e)
	case agent.Greedy:
		return NewGreedy(e)
	default:
		return NewEGreedy(c.Epsilon, seed, e)
	}
}

// numActions returns the number of actions of an environment, which
// must be 1-dimensional and discrete
func numActions(e environment.Environment) (int, error) {
	spec := e.ActionSpec()

	if spec.Shape.Len() != 1 {
		return 0, fmt.Errorf("actions must be 1-dimensional")
	}
	if spec.Cardinality != environment.Discrete {
		return 0, fmt.Errorf("actions must be discrete")
	}

	return int(spec.UpperBound.AtVec(0)) + 1, nil
}

// Random implements a policy which selects actions uniformly at random
type Random struct {
	dist distuv.Categorical
}

// NewRandom returns a new Random policy
func NewRandom(seed uint64, e environment.Environment) (*Random, error) {
	actions, err := numActions(e)
	if err != nil {
		return nil, errors.Wrap(err, "newRandom")
	}

	probs := make([]float64, actions)
	for i := range probs {
		probs[i] = 1.0 / float64(actions)
	}

	source := rand.NewSource(seed)
	return &Random{distuv.NewCategorical(probs, source)}, nil
}

// SelectAction selects an action uniformly at random
func (r *Random) SelectAction(_ timestep.TimeStep) *mat.VecDense {
	return mat.NewVecDense(1, []float64{r.dist.Rand()})
}
