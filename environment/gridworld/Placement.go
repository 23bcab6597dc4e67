package gridworld

import (
	"golang.org/x/exp/rand"

	"github.com/pkg/errors"
	env "github.com/samuelfneumann/gridenv/environment"
	"github.com/samuelfneumann/gridenv/utils/intutils"
)

// maxRejections is the number of uniform draws made for a single
// position before falling back to sampling from the free cells directly
const maxRejections int = 64

// sampler places the agent, target, and obstacles uniformly at random
// over the cells of a grid
type sampler struct {
	starter    *env.CategoricalStarter
	rng        *rand.Rand
	size, dims int
}

func newSampler(size, dims int, seed uint64) *sampler {
	bounds := make([]int, dims)
	for i := range bounds {
		bounds[i] = size
	}

	starter := env.NewCategoricalStarter(bounds, seed)
	return &sampler{
		starter: starter,
		rng:     rand.New(starter.Source()),
		size:    size,
		dims:    dims,
	}
}

// seed reseeds the sampler
func (s *sampler) seed(seed uint64) {
	s.starter.Seed(seed)
}

// position returns a cell drawn uniformly from the whole grid
func (s *sampler) position() Position {
	return PositionFromVec(s.starter.Start(), s.dims)
}

// place returns a cell drawn uniformly from the cells not in taken.
// Cells are drawn from the whole grid and rejected until a free one is
// found; after maxRejections draws the free cells are enumerated and
// one is chosen among them.
func (s *sampler) place(taken map[Position]bool) (Position, error) {
	for i := 0; i < maxRejections; i++ {
		if p := s.position(); !taken[p] {
			return p, nil
		}
	}

	cells := intutils.Pow(s.size, s.dims)
	free := make([]Position, 0, cells)
	for i := 0; i < cells; i++ {
		if p := PositionFromIndex(i, s.size, s.dims); !taken[p] {
			free = append(free, p)
		}
	}

	if len(free) == 0 {
		return Position{}, errors.Wrapf(ErrUnsatisfiableConfiguration,
			"place: all %d cells are taken", cells)
	}
	return free[s.rng.Intn(len(free))], nil
}

// sample draws a new agent position, a target distinct from it, and
// the given number of obstacles distinct from both and from each other
func (s *sampler) sample(obstacles int) (State, error) {
	agent := s.position()
	taken := map[Position]bool{agent: true}

	target, err := s.place(taken)
	if err != nil {
		return State{}, errors.Wrap(err, "sample: could not place target")
	}
	taken[target] = true

	placed := make([]Position, 0, obstacles)
	for i := 0; i < obstacles; i++ {
		o, err := s.place(taken)
		if err != nil {
			return State{}, errors.Wrapf(err, "sample: could not place "+
				"obstacle %d", i)
		}
		taken[o] = true
		placed = append(placed, o)
	}

	return newState(agent, target, placed), nil
}
