package gridworld

import (
	"fmt"

	env "github.com/samuelfneumann/gridenv/environment"
	"github.com/samuelfneumann/gridenv/utils/intutils"
	"gonum.org/v1/gonum/mat"
)

// Values of cells in Matrix observations
const (
	EmptyCell    float64 = 0
	AgentCell    float64 = 1
	TargetCell   float64 = 2
	ObstacleCell float64 = 3
)

// Values of cells in the neighbour mask of Neighbours observations
const (
	FreeNeighbour    float64 = 0
	BlockedNeighbour float64 = 1
)

// Encoder converts the State of a GridWorld into an observation vector.
// Every Encoder starts its observations with the agent coordinates
// followed by the target coordinates.
type Encoder interface {
	Encode(s *State) *mat.VecDense
	Spec() env.Spec
}

// NewEncoder returns the Encoder described by the argument Config
func NewEncoder(c Config) (Encoder, error) {
	coords := &CoordinatesEncoder{c.Size, c.Dims}

	switch c.Observation {
	case Coordinates:
		return coords, nil

	case Neighbours:
		return &NeighboursEncoder{coords, neighbourOffsets(c.Dims)}, nil

	case Matrix:
		return &MatrixEncoder{coords, c.Cells(), c.Obstacles > 0}, nil
	}

	return nil, fmt.Errorf("newEncoder: no such observation type %q",
		c.Observation)
}

// CoordinatesEncoder encodes a State as the agent coordinates followed
// by the target coordinates
type CoordinatesEncoder struct {
	size, dims int
}

// Encode returns the observation vector of s
func (c *CoordinatesEncoder) Encode(s *State) *mat.VecDense {
	obs := c.coordinates(s)
	return mat.NewVecDense(len(obs), obs)
}

// Spec returns the observation specification of the Encoder
func (c *CoordinatesEncoder) Spec() env.Spec {
	return env.NewBoxSpec(2*c.dims, env.Observation, 0, float64(c.size-1),
		env.Discrete)
}

func (c *CoordinatesEncoder) coordinates(s *State) []float64 {
	obs := make([]float64, 0, 2*c.dims)
	obs = append(obs, s.Agent.Vec(c.dims)...)
	return append(obs, s.Target.Vec(c.dims)...)
}

// NeighboursEncoder encodes a State as its coordinates followed by a
// mask over the 3^D - 1 cells surrounding the agent. A cell is marked
// BlockedNeighbour if it lies outside the grid or holds an obstacle.
//
// The mask first lists the cells reached by each action, in action
// order, followed by the diagonal cells. In 2D the order is right, up,
// left, down, up-left, up-right, down-left, down-right.
type NeighboursEncoder struct {
	*CoordinatesEncoder
	offsets []Position
}

// Encode returns the observation vector of s
func (n *NeighboursEncoder) Encode(s *State) *mat.VecDense {
	obs := n.coordinates(s)
	for _, offset := range n.offsets {
		cell := s.Agent.Add(offset)
		if !cell.InBounds(n.size, n.dims) || s.IsObstacle(cell) {
			obs = append(obs, BlockedNeighbour)
		} else {
			obs = append(obs, FreeNeighbour)
		}
	}
	return mat.NewVecDense(len(obs), obs)
}

// Spec returns the observation specification of the Encoder
func (n *NeighboursEncoder) Spec() env.Spec {
	coords := 2 * n.dims
	length := coords + len(n.offsets)

	upper := make([]float64, length)
	for i := range upper {
		if i < coords {
			upper[i] = float64(n.size - 1)
		} else {
			upper[i] = BlockedNeighbour
		}
	}

	return env.NewSpec(mat.NewVecDense(length, nil), env.Observation,
		mat.NewVecDense(length, nil), mat.NewVecDense(length, upper),
		env.Discrete)
}

// neighbourOffsets returns the offsets of the cells surrounding a cell:
// first the direction of each action, then the remaining offsets in
// {-1, 0, 1}^dims with the first axis varying fastest
func neighbourOffsets(dims int) []Position {
	offsets := make([]Position, 0, intutils.Pow(3, dims)-1)
	for a := 0; a < NumActions(dims); a++ {
		offsets = append(offsets, Action(a).Direction())
	}

	for i := 0; i < intutils.Pow(3, dims); i++ {
		var offset Position
		nonZero := 0
		for axis, rest := 0, i; axis < dims; axis, rest = axis+1, rest/3 {
			offset[axis] = rest%3 - 1
			if offset[axis] != 0 {
				nonZero++
			}
		}

		// Zero and axis-aligned offsets are already listed
		if nonZero > 1 {
			offsets = append(offsets, offset)
		}
	}
	return offsets
}

// MatrixEncoder encodes a State as its coordinates followed by the
// occupancy of every cell, in row-major order over the axes (see
// Position.Index). Cells hold EmptyCell, AgentCell, TargetCell, or
// ObstacleCell. When the agent reaches the target, the cell holds
// AgentCell.
type MatrixEncoder struct {
	*CoordinatesEncoder
	cells     int
	obstacles bool
}

// Encode returns the observation vector of s
func (m *MatrixEncoder) Encode(s *State) *mat.VecDense {
	coords := m.coordinates(s)
	obs := make([]float64, len(coords)+m.cells)
	copy(obs, coords)

	grid := obs[len(coords):]
	for _, o := range s.Obstacles {
		grid[o.Index(m.size, m.dims)] = ObstacleCell
	}
	grid[s.Target.Index(m.size, m.dims)] = TargetCell
	grid[s.Agent.Index(m.size, m.dims)] = AgentCell

	return mat.NewVecDense(len(obs), obs)
}

// Spec returns the observation specification of the Encoder
func (m *MatrixEncoder) Spec() env.Spec {
	coords := 2 * m.dims
	length := coords + m.cells

	maxCell := TargetCell
	if m.obstacles {
		maxCell = ObstacleCell
	}

	upper := make([]float64, length)
	for i := range upper {
		if i < coords {
			upper[i] = float64(m.size - 1)
		} else {
			upper[i] = maxCell
		}
	}

	return env.NewSpec(mat.NewVecDense(length, nil), env.Observation,
		mat.NewVecDense(length, nil), mat.NewVecDense(length, upper),
		env.Discrete)
}
