package gridworld

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNeighbourOffsets2D(t *testing.T) {
	want := []Position{
		{1, 0, 0},   // right
		{0, -1, 0},  // up
		{-1, 0, 0},  // left
		{0, 1, 0},   // down
		{-1, -1, 0}, // up-left
		{1, -1, 0},  // up-right
		{-1, 1, 0},  // down-left
		{1, 1, 0},   // down-right
	}

	got := neighbourOffsets(2)
	if len(got) != len(want) {
		t.Fatalf("offsets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("offset %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNeighbourOffsets3D(t *testing.T) {
	offsets := neighbourOffsets(3)
	if len(offsets) != 26 {
		t.Fatalf("3D offsets = %d, want 26", len(offsets))
	}

	seen := make(map[Position]bool)
	for _, o := range offsets {
		if o == (Position{}) {
			t.Error("offsets should not contain the zero offset")
		}
		if seen[o] {
			t.Errorf("duplicate offset %v", o)
		}
		seen[o] = true
	}
}

func TestNeighboursEncoder(t *testing.T) {
	c := Config{Size: 5, Dims: 2, Observation: Neighbours, Obstacles: 1}
	enc, err := NewEncoder(c)
	if err != nil {
		t.Fatal(err)
	}

	// Agent in the top-left corner with an obstacle on its right
	s := newState(NewPosition(0, 0), NewPosition(4, 4),
		[]Position{NewPosition(1, 0)})

	want := []float64{
		0, 0, 4, 4, // agent, target
		1, 1, 1, 0, // right (obstacle), up (wall), left (wall), down
		1, 1, 1, 0, // up-left, up-right, down-left, down-right
	}

	got := enc.Encode(&s)
	if !mat.Equal(got, mat.NewVecDense(len(want), want)) {
		t.Errorf("observation = %v, want %v", mat.Formatted(got.T()), want)
	}
	if !enc.Spec().Contains(got) {
		t.Error("observation should lie within the observation spec")
	}
}

func TestMatrixEncoder(t *testing.T) {
	c := Config{Size: 3, Dims: 2, Observation: Matrix, Obstacles: 1}
	enc, err := NewEncoder(c)
	if err != nil {
		t.Fatal(err)
	}

	s := newState(NewPosition(0, 1), NewPosition(2, 2),
		[]Position{NewPosition(1, 1)})

	got := enc.Encode(&s)
	if got.Len() != 4+9 {
		t.Fatalf("observation length = %d, want 13", got.Len())
	}

	cells := map[int]float64{
		NewPosition(0, 1).Index(3, 2): AgentCell,
		NewPosition(2, 2).Index(3, 2): TargetCell,
		NewPosition(1, 1).Index(3, 2): ObstacleCell,
	}
	for i := 0; i < 9; i++ {
		if got.AtVec(4+i) != cells[i] {
			t.Errorf("cell %d = %v, want %v", i, got.AtVec(4+i), cells[i])
		}
	}
	if !enc.Spec().Contains(got) {
		t.Error("observation should lie within the observation spec")
	}

	// The agent covers the target when it reaches it
	s.Agent = s.Target
	got = enc.Encode(&s)
	if v := got.AtVec(4 + s.Target.Index(3, 2)); v != AgentCell {
		t.Errorf("target cell under agent = %v, want %v", v, AgentCell)
	}
}

func TestMatrixSpecWithoutObstacles(t *testing.T) {
	enc, _ := NewEncoder(Config{Size: 4, Dims: 3, Observation: Matrix})
	spec := enc.Spec()

	if spec.Shape.Len() != 6+64 {
		t.Fatalf("spec length = %d, want 70", spec.Shape.Len())
	}
	if upper := spec.UpperBound.AtVec(6); upper != TargetCell {
		t.Errorf("cell upper bound = %v, want %v", upper, TargetCell)
	}
}
