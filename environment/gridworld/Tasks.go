package gridworld

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Transition describes a single accepted step of the agent
type Transition struct {
	Before   Position // agent position before the step
	After    Position // agent position after the step
	Target   Position
	Collided bool // the move was blocked by an obstacle
}

// Reached returns whether the transition ends on the target
func (t Transition) Reached() bool {
	return t.After == t.Target
}

// Task implements the reward scheme of a GridWorld.
//
// GetReward is only consulted for transitions which neither reach the
// target nor collide with an obstacle; those two cases, and running out
// of steps, are rewarded with the Goal, Collision, and Timeout constants
// of Rewards by every Task.
type Task interface {
	fmt.Stringer
	GetReward(t Transition) float64
	Rewards() Rewards
	Min() float64
	Max() float64
}

// NewTask returns the Task described by the argument Config
func NewTask(c Config) (Task, error) {
	switch c.Reward {
	case Sparse:
		return NewSparse(c.Rewards), nil

	case Shaped:
		return NewShaped(c.Rewards), nil

	case Penalised:
		return NewPenalised(c.Rewards), nil
	}

	return nil, fmt.Errorf("newTask: no such reward type %q", c.Reward)
}

// reward resolves the reward of a transition with the precedence shared
// by all Tasks: reaching the goal, then colliding, then the Task's own
// reward.
func reward(task Task, t Transition) float64 {
	if t.Reached() {
		return task.Rewards().Goal
	}
	if t.Collided {
		return task.Rewards().Collision
	}
	return task.GetReward(t)
}

// SparseTask rewards a constant Step reward on every step that does not
// reach the target or collide.
type SparseTask struct {
	rewards Rewards
}

// NewSparse returns a new sparse-reward Task
func NewSparse(r Rewards) *SparseTask {
	return &SparseTask{r}
}

// GetReward returns the constant per-step reward
func (s *SparseTask) GetReward(Transition) float64 {
	return s.rewards.Step
}

// Rewards returns the reward constants of the Task
func (s *SparseTask) Rewards() Rewards { return s.rewards }

// Min returns the minimum reward attainable in the Task
func (s *SparseTask) Min() float64 {
	return floats.Min([]float64{s.rewards.Step, s.rewards.Goal,
		s.rewards.Collision, s.rewards.Timeout})
}

// Max returns the maximum reward attainable in the Task
func (s *SparseTask) Max() float64 {
	return floats.Max([]float64{s.rewards.Step, s.rewards.Goal,
		s.rewards.Collision, s.rewards.Timeout})
}

func (s *SparseTask) String() string {
	return fmt.Sprintf("Sparse | Goal: %v  |  Step: %v", s.rewards.Goal,
		s.rewards.Step)
}

// ShapedTask rewards each step by how much closer it brings the agent
// to the target, in Euclidean distance, scaled by Scale and offset by
// the Step reward:
//
//	r = Scale * (d(before, target) - d(after, target)) + Step
type ShapedTask struct {
	rewards Rewards
}

// NewShaped returns a new distance-shaped Task
func NewShaped(r Rewards) *ShapedTask {
	return &ShapedTask{r}
}

// GetReward returns the shaped reward of the transition
func (s *ShapedTask) GetReward(t Transition) float64 {
	progress := t.Before.Euclidean(t.Target) - t.After.Euclidean(t.Target)
	return s.rewards.Scale*progress + s.rewards.Step
}

// Rewards returns the reward constants of the Task
func (s *ShapedTask) Rewards() Rewards { return s.rewards }

// Min returns the minimum reward attainable in the Task. A unit move
// changes the Euclidean distance to the target by at most 1.
func (s *ShapedTask) Min() float64 {
	return floats.Min([]float64{s.rewards.Step - math.Abs(s.rewards.Scale),
		s.rewards.Goal, s.rewards.Collision, s.rewards.Timeout})
}

// Max returns the maximum reward attainable in the Task
func (s *ShapedTask) Max() float64 {
	return floats.Max([]float64{s.rewards.Step + math.Abs(s.rewards.Scale),
		s.rewards.Goal, s.rewards.Collision, s.rewards.Timeout})
}

func (s *ShapedTask) String() string {
	return fmt.Sprintf("Shaped | Goal: %v  |  Step: %v  |  Scale: %v",
		s.rewards.Goal, s.rewards.Step, s.rewards.Scale)
}

// PenalisedTask is a ShapedTask which additionally adds the Wall reward
// whenever a move leaves the agent where it was, such as pushing
// against the edge of the grid.
type PenalisedTask struct {
	*ShapedTask
}

// NewPenalised returns a new penalty-augmented, distance-shaped Task
func NewPenalised(r Rewards) *PenalisedTask {
	return &PenalisedTask{NewShaped(r)}
}

// GetReward returns the shaped reward of the transition plus the wall
// penalty if the agent did not move
func (p *PenalisedTask) GetReward(t Transition) float64 {
	r := p.ShapedTask.GetReward(t)
	if t.Before == t.After {
		r += p.rewards.Wall
	}
	return r
}

// Min returns the minimum reward attainable in the Task
func (p *PenalisedTask) Min() float64 {
	return floats.Min([]float64{p.ShapedTask.Min(),
		p.rewards.Step + p.rewards.Wall})
}

// Max returns the maximum reward attainable in the Task
func (p *PenalisedTask) Max() float64 {
	return floats.Max([]float64{p.ShapedTask.Max(),
		p.rewards.Step + p.rewards.Wall})
}

func (p *PenalisedTask) String() string {
	return fmt.Sprintf("Penalised | Goal: %v  |  Step: %v  |  Scale: %v  "+
		"|  Wall: %v", p.rewards.Goal, p.rewards.Step, p.rewards.Scale,
		p.rewards.Wall)
}
