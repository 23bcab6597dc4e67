package gridworld

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gridenv/utils/intutils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MaxDims is the largest supported grid dimensionality
const MaxDims int = 3

// Position is a cell coordinate in a grid. Components on axes at or
// beyond the grid dimensionality are always 0, so Positions of the same
// grid can be compared with ==.
type Position [MaxDims]int

// NewPosition returns the Position with the given coordinates
func NewPosition(coords ...int) Position {
	if len(coords) > MaxDims {
		panic(fmt.Sprintf("newPosition: at most %d coordinates allowed, "+
			"got %d", MaxDims, len(coords)))
	}

	var p Position
	copy(p[:], coords)
	return p
}

// PositionFromVec reads a Position from the first dims elements of v
func PositionFromVec(v mat.Vector, dims int) Position {
	var p Position
	for i := 0; i < dims; i++ {
		p[i] = int(v.AtVec(i))
	}
	return p
}

// Add returns p + q
func (p Position) Add(q Position) Position {
	for i := range p {
		p[i] += q[i]
	}
	return p
}

// Clip clamps each of the first dims components of p into [0, size-1]
func (p Position) Clip(size, dims int) Position {
	for i := 0; i < dims; i++ {
		p[i] = intutils.Clip(p[i], 0, size-1)
	}
	return p
}

// InBounds returns whether p lies in [0, size-1]^dims
func (p Position) InBounds(size, dims int) bool {
	for i := range p {
		if i >= dims {
			if p[i] != 0 {
				return false
			}
			continue
		}
		if p[i] < 0 || p[i] >= size {
			return false
		}
	}
	return true
}

// Manhattan returns the sum of absolute coordinate differences between
// p and q
func (p Position) Manhattan(q Position) int {
	dist := 0
	for i := range p {
		dist += intutils.Abs(p[i] - q[i])
	}
	return dist
}

// Euclidean returns the straight-line distance between p and q
func (p Position) Euclidean(q Position) float64 {
	return floats.Distance(p.floats(), q.floats(), 2)
}

// Index returns the row-major index of p in a grid with edge length
// size, where the first axis varies slowest
func (p Position) Index(size, dims int) int {
	index := 0
	for i := 0; i < dims; i++ {
		index = index*size + p[i]
	}
	return index
}

// PositionFromIndex is the inverse of Position.Index
func PositionFromIndex(index, size, dims int) Position {
	var p Position
	for i := dims - 1; i >= 0; i-- {
		p[i] = index % size
		index /= size
	}
	return p
}

// Vec returns the first dims components of p as floats
func (p Position) Vec(dims int) []float64 {
	return p.floats()[:dims]
}

// Format returns p as a tuple of its first dims components
func (p Position) Format(dims int) string {
	parts := make([]string, dims)
	for i := range parts {
		parts[i] = fmt.Sprint(p[i])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (p Position) floats() []float64 {
	f := make([]float64, len(p))
	for i := range p {
		f[i] = float64(p[i])
	}
	return f
}
