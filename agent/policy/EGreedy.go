package policy

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/environment"
	"github.com/samuelfneumann/gridenv/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy, which selects the Greedy
// action with probability 1 - ε and an action uniformly at random
// otherwise
type EGreedy struct {
	*Greedy
	epsilon    float64
	numActions int
	seed       rand.Source // Seed for random number generation
}

// NewEGreedy constructs a new EGreedy policy, where e=epislon is the
// probability with which a random action is selected
func NewEGreedy(e float64, seed uint64,
	env environment.Environment) (*EGreedy, error) {
	if e < 0 || e > 1 {
		return nil, errors.Errorf("newEGreedy: epsilon must be in [0, 1], "+
			"got %v", e)
	}

	greedy, err := NewGreedy(env)
	if err != nil {
		return nil, errors.Wrap(err, "newEGreedy")
	}

	return &EGreedy{
		Greedy:     greedy,
		epsilon:    e,
		numActions: 2 * greedy.dims,
		seed:       rand.NewSource(seed),
	}, nil
}

// Epsilon returns the probability of selecting a random action
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SelectAction selects and action from an ε-greedy policy
func (p *EGreedy) SelectAction(t timestep.TimeStep) *mat.VecDense {
	greedyAction := p.greedy(t.Observation)

	// Calculate the ε probability of choosing any action at random
	prob := p.epsilon / float64(p.numActions)
	actionProbabilites := make([]float64, p.numActions)
	for i := range actionProbabilites {
		actionProbabilites[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilites[greedyAction] += (1.0 - p.epsilon)

	// Construct a categorical distribution over actions using action
	// probabilities
	dist := distuv.NewCategorical(actionProbabilites, p.seed)

	return mat.NewVecDense(1, []float64{dist.Rand()})
}
