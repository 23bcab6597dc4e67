package gridworld

import (
	"math"
	"testing"
)

func TestPositionClip(t *testing.T) {
	tests := []struct {
		p, want Position
		dims    int
	}{
		{Position{-1, 2, 0}, Position{0, 2, 0}, 2},
		{Position{5, 5, 0}, Position{4, 4, 0}, 2},
		{Position{2, -3, 7}, Position{2, 0, 4}, 3},
		{Position{1, 1, 1}, Position{1, 1, 1}, 3},
	}

	for _, test := range tests {
		if got := test.p.Clip(5, test.dims); got != test.want {
			t.Errorf("clip(%v) = %v, want %v", test.p, got, test.want)
		}
	}
}

func TestPositionIndexRoundTrip(t *testing.T) {
	for _, dims := range []int{2, 3} {
		size := 4
		seen := make(map[int]bool)
		for i := 0; i < pow(size, dims); i++ {
			p := PositionFromIndex(i, size, dims)
			if !p.InBounds(size, dims) {
				t.Errorf("position %v of index %d out of bounds", p, i)
			}
			if got := p.Index(size, dims); got != i {
				t.Errorf("index(%v) = %d, want %d", p, got, i)
			}
			seen[p.Index(size, dims)] = true
		}
		if len(seen) != pow(size, dims) {
			t.Errorf("dims %d: %d distinct indices, want %d", dims,
				len(seen), pow(size, dims))
		}
	}
}

func TestPositionDistances(t *testing.T) {
	p := NewPosition(0, 0, 0)
	q := NewPosition(3, 4, 0)

	if got := p.Manhattan(q); got != 7 {
		t.Errorf("manhattan = %d, want 7", got)
	}
	if got := p.Euclidean(q); math.Abs(got-5) > 1e-12 {
		t.Errorf("euclidean = %v, want 5", got)
	}
}

func TestPositionInBoundsUnusedAxis(t *testing.T) {
	if NewPosition(1, 1, 1).InBounds(5, 2) {
		t.Error("2D position with non-zero z should be out of bounds")
	}
}

func pow(b, e int) int {
	return int(math.Pow(float64(b), float64(e)))
}
