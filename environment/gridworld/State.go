package gridworld

// State is the mutable state of a single episode. Obstacles never
// coincide with each other, the target, or the agent's starting cell.
type State struct {
	Agent     Position
	Target    Position
	Obstacles []Position
	Steps     int

	blocked map[Position]bool
}

func newState(agent, target Position, obstacles []Position) State {
	blocked := make(map[Position]bool, len(obstacles))
	for _, o := range obstacles {
		blocked[o] = true
	}

	return State{
		Agent:     agent,
		Target:    target,
		Obstacles: obstacles,
		blocked:   blocked,
	}
}

// IsObstacle returns whether an obstacle occupies p
func (s *State) IsObstacle(p Position) bool {
	return s.blocked[p]
}

// Scene is a read-only snapshot of a GridWorld which holds everything a
// Renderer needs to draw it
type Scene struct {
	Size      int
	Dims      int
	Agent     Position
	Target    Position
	Obstacles []Position
	Steps     int
	MaxSteps  int
}

// IsObstacle returns whether an obstacle occupies p
func (s Scene) IsObstacle(p Position) bool {
	for _, o := range s.Obstacles {
		if o == p {
			return true
		}
	}
	return false
}
