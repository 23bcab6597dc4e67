package policy

import (
	"testing"

	"github.com/samuelfneumann/gridenv/agent"
	"github.com/samuelfneumann/gridenv/environment/gridworld"
)

func newGridWorld(t *testing.T, dims int) *gridworld.GridWorld {
	t.Helper()
	c := gridworld.Config{
		Size:        5,
		Dims:        dims,
		MaxSteps:    50,
		Observation: gridworld.Neighbours,
		Reward:      gridworld.Sparse,
		Rewards:     gridworld.Rewards{Goal: 1, Collision: -2, Timeout: -1},
		Discount:    0.99,
	}

	g, _, err := gridworld.New(c, nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGreedyReachesTarget(t *testing.T) {
	for _, dims := range []int{2, 3} {
		g := newGridWorld(t, dims)
		p, err := NewGreedy(g)
		if err != nil {
			t.Fatal(err)
		}

		agentPos := gridworld.NewPosition(0, 0, 0)
		target := gridworld.NewPosition(4, 4)
		if dims == 3 {
			target = gridworld.NewPosition(4, 4, 4)
		}
		step, err := g.ResetTo(agentPos, target)
		if err != nil {
			t.Fatal(err)
		}

		for !step.Last() {
			step, _, err = g.Step(p.SelectAction(step))
			if err != nil {
				t.Fatal(err)
			}
		}

		if !step.Terminated() {
			t.Errorf("%dD: greedy policy did not reach the target", dims)
		}
		if want := 4 * dims; step.Number != want {
			t.Errorf("%dD: greedy policy took %d steps, want %d", dims,
				step.Number, want)
		}
	}
}

func TestGreedyFurthestAxis(t *testing.T) {
	g := newGridWorld(t, 2)
	p, _ := NewGreedy(g)

	tests := []struct {
		agent, target gridworld.Position
		want          gridworld.Action
	}{
		{gridworld.NewPosition(2, 2), gridworld.NewPosition(4, 3), gridworld.Right},
		{gridworld.NewPosition(2, 2), gridworld.NewPosition(0, 2), gridworld.Left},
		{gridworld.NewPosition(2, 2), gridworld.NewPosition(3, 0), gridworld.Up},
		{gridworld.NewPosition(2, 2), gridworld.NewPosition(1, 4), gridworld.Down},
		{gridworld.NewPosition(1, 1), gridworld.NewPosition(3, 3), gridworld.Right},
	}

	for _, test := range tests {
		step, err := g.ResetTo(test.agent, test.target)
		if err != nil {
			t.Fatal(err)
		}

		action := gridworld.Action(p.SelectAction(step).AtVec(0))
		if action != test.want {
			t.Errorf("greedy from %v to %v = %v, want %v", test.agent,
				test.target, action, test.want)
		}
	}
}

func TestRandomReproducible(t *testing.T) {
	g := newGridWorld(t, 3)
	p1, _ := NewRandom(7, g)
	p2, _ := NewRandom(7, g)
	step := g.LastTimeStep()

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		v1 := p1.SelectAction(step)
		v2 := p2.SelectAction(step)
		if v1.AtVec(0) != v2.AtVec(0) {
			t.Fatalf("random policies with equal seeds differ at %d", i)
		}
		if !g.ActionSpec().Contains(v1) {
			t.Fatalf("random action outside the action spec")
		}
		seen[int(v1.AtVec(0))] = true
	}

	if len(seen) != 6 {
		t.Errorf("random policy selected %d distinct actions, want 6",
			len(seen))
	}
}

func TestEGreedy(t *testing.T) {
	g := newGridWorld(t, 2)
	step, _ := g.ResetTo(gridworld.NewPosition(0, 0),
		gridworld.NewPosition(4, 0))

	greedy, _ := NewEGreedy(0, 3, g)
	for i := 0; i < 50; i++ {
		if a := greedy.SelectAction(step).AtVec(0); a != float64(gridworld.Right) {
			t.Fatalf("ε = 0 selected non-greedy action %v", a)
		}
	}

	random, _ := NewEGreedy(1, 3, g)
	seen := make(map[float64]bool)
	for i := 0; i < 200; i++ {
		seen[random.SelectAction(step).AtVec(0)] = true
	}
	if len(seen) != 4 {
		t.Errorf("ε = 1 selected %d distinct actions, want 4", len(seen))
	}

	if _, err := NewEGreedy(1.5, 3, g); err == nil {
		t.Error("newEGreedy should fail for ε > 1")
	}
}

func TestNew(t *testing.T) {
	g := newGridWorld(t, 2)

	tests := []struct {
		config agent.Config
		ok     bool
	}{
		{agent.Config{Type: agent.Random}, true},
		{agent.Config{Type: agent.Greedy}, true},
		{agent.Config{Type: agent.EGreedy, Epsilon: 0.1}, true},
		{agent.Config{Type: agent.EGreedy, Epsilon: -0.1}, false},
		{agent.Config{Type: "softmax"}, false},
	}

	for _, test := range tests {
		p, err := New(test.config, g, 0)
		if test.ok && (err != nil || p == nil) {
			t.Errorf("%+v: unexpected error %v", test.config, err)
		}
		if !test.ok && err == nil {
			t.Errorf("%+v: expected an error", test.config)
		}
	}
}
