// Package gridworld implements 2D and 3D gridworld environments, with
// and without obstacles.
//
// An agent moves one cell per step along an axis of an N^D grid and
// must reach a target cell. Moves which would leave the grid are
// clipped to its edge, and moves onto an obstacle are rejected. An
// episode terminates when the agent reaches the target and is
// truncated when its step budget runs out first.
//
// The variants of the environment differ only in their Config: the
// grid dimensionality, the number of obstacles, how states are
// encoded as observations (see Encoder), and how steps are rewarded
// (see Task).
package gridworld

import (
	"fmt"
	"image"

	"github.com/pkg/errors"
	env "github.com/samuelfneumann/gridenv/environment"
	ts "github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/mat"
)

// Keys of the Info map of each TimeStep
const (
	DistanceKey  string = "distance"  // Manhattan distance agent to target
	EuclideanKey string = "euclidean" // Euclidean distance agent to target
	SizeKey      string = "size"
	DimsKey      string = "dims"
	StepsKey     string = "steps"
)

// Renderer draws Scenes of a GridWorld. Renderers which do not produce
// images, such as terminal renderers, return a nil image.
type Renderer interface {
	Render(s Scene) (image.Image, error)
	Close() error
}

// GridWorld implements a gridworld environment. A GridWorld is not
// safe for concurrent use.
type GridWorld struct {
	config    Config
	task      Task
	encoder   Encoder
	sampler   *sampler
	stepLimit env.Ender
	renderer  Renderer

	state    State
	lastStep ts.TimeStep
	ended    bool
}

// New creates a new GridWorld from a Config and returns it along with
// the first TimeStep of its first episode. The renderer r may be nil,
// in which case Render returns a nil image.
func New(c Config, r Renderer, seed uint64) (*GridWorld, ts.TimeStep,
	error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, errors.Wrap(err, "new")
	}

	task, err := NewTask(c)
	if err != nil {
		return nil, ts.TimeStep{}, errors.Wrap(err, "new")
	}

	encoder, err := NewEncoder(c)
	if err != nil {
		return nil, ts.TimeStep{}, errors.Wrap(err, "new")
	}

	g := &GridWorld{
		config:    c,
		task:      task,
		encoder:   encoder,
		sampler:   newSampler(c.Size, c.Dims, seed),
		stepLimit: env.NewStepLimit(c.MaxSteps),
		renderer:  r,
	}

	step, err := g.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, errors.Wrap(err, "new")
	}
	return g, step, nil
}

// Reset starts a new episode, drawing the agent, target, and obstacle
// positions with the environment's random number generator
func (g *GridWorld) Reset() (ts.TimeStep, error) {
	state, err := g.sampler.sample(g.config.Obstacles)
	if err != nil {
		return ts.TimeStep{}, errors.Wrap(err, "reset")
	}
	return g.start(state), nil
}

// ResetSeed reseeds the environment's random number generator and then
// starts a new episode. Two GridWorlds with the same Config reset with
// the same seed start from the same state.
func (g *GridWorld) ResetSeed(seed uint64) (ts.TimeStep, error) {
	g.sampler.seed(seed)
	return g.Reset()
}

// ResetTo starts a new episode from the given positions instead of
// sampling them. Positions must lie in the grid and the agent and target
// must differ. Exactly Config.Obstacles obstacles must be given, none of
// which may coincide with another obstacle, the agent, or the target.
func (g *GridWorld) ResetTo(agent, target Position,
	obstacles ...Position) (ts.TimeStep, error) {
	size, dims := g.config.Size, g.config.Dims

	// The observation spec is derived from the configured obstacle count
	if len(obstacles) != g.config.Obstacles {
		return ts.TimeStep{}, errors.Errorf("resetTo: got %d obstacles, "+
			"the environment is configured with %d", len(obstacles),
			g.config.Obstacles)
	}

	if !agent.InBounds(size, dims) || !target.InBounds(size, dims) {
		return ts.TimeStep{}, errors.Errorf("resetTo: agent %v or target "+
			"%v outside the grid", agent.Format(dims), target.Format(dims))
	}
	if agent == target {
		return ts.TimeStep{}, errors.Errorf("resetTo: agent and target "+
			"both at %v", agent.Format(dims))
	}

	taken := map[Position]bool{agent: true, target: true}
	for _, o := range obstacles {
		if !o.InBounds(size, dims) || taken[o] {
			return ts.TimeStep{}, errors.Errorf("resetTo: obstacle %v "+
				"outside the grid or on an occupied cell", o.Format(dims))
		}
		taken[o] = true
	}

	placed := make([]Position, len(obstacles))
	copy(placed, obstacles)
	return g.start(newState(agent, target, placed)), nil
}

// start begins a new episode from the argument state
func (g *GridWorld) start(s State) ts.TimeStep {
	g.state = s
	g.ended = false

	step := ts.New(ts.First, 0, g.config.Discount, g.observation(), 0)
	step.Info = g.info()
	g.lastStep = step

	return step
}

// Step takes one environmental step given a 1-dimensional action
// vector holding one of the 2·D actions, and returns the next TimeStep
// and whether the episode has ended.
//
// Illegal actions return an error wrapping ErrInvalidAction, and
// stepping after the episode has ended returns an error wrapping
// ErrEpisodeEnded. In both cases the environment is left unchanged.
func (g *GridWorld) Step(a *mat.VecDense) (ts.TimeStep, bool, error) {
	if a == nil {
		return ts.TimeStep{}, false, errors.Wrap(ErrInvalidAction,
			"step: nil action")
	}

	action, err := ParseAction(a, g.config.Dims)
	if err != nil {
		return ts.TimeStep{}, false, errors.Wrap(err, "step")
	}
	return g.StepAction(action)
}

// StepAction is Step for an already decoded Action
func (g *GridWorld) StepAction(a Action) (ts.TimeStep, bool, error) {
	if a < 0 || int(a) >= NumActions(g.config.Dims) {
		return ts.TimeStep{}, false, errors.Wrapf(ErrInvalidAction,
			"step: action %d ∉ [0, %d)", a, NumActions(g.config.Dims))
	}
	if g.ended {
		return ts.TimeStep{}, true, errors.Wrapf(ErrEpisodeEnded,
			"step: episode ended at step %d", g.state.Steps)
	}

	// Clip the move to the grid, then reject it if it hits an obstacle
	before := g.state.Agent
	next := before.Add(a.Direction()).Clip(g.config.Size, g.config.Dims)
	collided := g.state.IsObstacle(next)
	if collided {
		next = before
	}
	g.state.Agent = next
	g.state.Steps++

	transition := Transition{
		Before:   before,
		After:    next,
		Target:   g.state.Target,
		Collided: collided,
	}

	step := ts.New(ts.Mid, reward(g.task, transition), g.config.Discount,
		g.observation(), g.state.Steps)

	// Reaching the target takes precedence over running out of steps
	if transition.Reached() {
		step.SetEnd(ts.TerminalStateReached)
	} else if g.stepLimit.End(&step) {
		step.Reward = g.config.Rewards.Timeout
	}

	step.Info = g.info()
	g.lastStep = step
	g.ended = step.Last()

	return step, g.ended, nil
}

// Render sends the current Scene to the environment's Renderer
func (g *GridWorld) Render() (image.Image, error) {
	if g.renderer == nil {
		return nil, nil
	}

	frame, err := g.renderer.Render(g.Scene())
	if err != nil {
		return nil, errors.Wrap(err, "render")
	}
	return frame, nil
}

// Close releases the resources held by the environment's Renderer
func (g *GridWorld) Close() error {
	if g.renderer == nil {
		return nil
	}
	return g.renderer.Close()
}

// Scene returns a snapshot of the environment for rendering
func (g *GridWorld) Scene() Scene {
	obstacles := make([]Position, len(g.state.Obstacles))
	copy(obstacles, g.state.Obstacles)

	return Scene{
		Size:      g.config.Size,
		Dims:      g.config.Dims,
		Agent:     g.state.Agent,
		Target:    g.state.Target,
		Obstacles: obstacles,
		Steps:     g.state.Steps,
		MaxSteps:  g.config.MaxSteps,
	}
}

// LastTimeStep returns the last TimeStep that occurred in the
// environment
func (g *GridWorld) LastTimeStep() ts.TimeStep {
	return g.lastStep
}

// Ended returns whether the current episode has ended
func (g *GridWorld) Ended() bool {
	return g.ended
}

// Agent returns the current agent position
func (g *GridWorld) Agent() Position { return g.state.Agent }

// Target returns the target position
func (g *GridWorld) Target() Position { return g.state.Target }

// Obstacles returns the obstacle positions
func (g *GridWorld) Obstacles() []Position {
	obstacles := make([]Position, len(g.state.Obstacles))
	copy(obstacles, g.state.Obstacles)
	return obstacles
}

// Steps returns the number of steps taken in the current episode
func (g *GridWorld) Steps() int { return g.state.Steps }

// Config returns the configuration of the environment
func (g *GridWorld) Config() Config { return g.config }

// Task returns the reward scheme of the environment
func (g *GridWorld) Task() Task { return g.task }

// ActionSpec returns the action specification of the environment
func (g *GridWorld) ActionSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{
		float64(NumActions(g.config.Dims) - 1),
	})

	return env.NewSpec(shape, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (g *GridWorld) ObservationSpec() env.Spec {
	return g.encoder.Spec()
}

// RewardSpec returns the reward specification of the environment
func (g *GridWorld) RewardSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{g.task.Min()})
	upperBound := mat.NewVecDense(1, []float64{g.task.Max()})

	return env.NewSpec(shape, env.Reward, lowerBound, upperBound,
		env.Continuous)
}

// DiscountSpec returns the discounting specification of the environment
func (g *GridWorld) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{g.config.Discount})

	return env.NewSpec(shape, env.Discount, bound, bound, env.Continuous)
}

func (g *GridWorld) String() string {
	str := "GridWorld | At: %v  |  Goal: %v  |  Obstacles: %d  |  " +
		"Bounds: %d^%d  |  Task: %v"

	return fmt.Sprintf(str, g.state.Agent.Format(g.config.Dims),
		g.state.Target.Format(g.config.Dims), len(g.state.Obstacles),
		g.config.Size, g.config.Dims, g.task)
}

func (g *GridWorld) observation() *mat.VecDense {
	return g.encoder.Encode(&g.state)
}

func (g *GridWorld) info() ts.Info {
	return ts.Info{
		DistanceKey:  float64(g.state.Agent.Manhattan(g.state.Target)),
		EuclideanKey: g.state.Agent.Euclidean(g.state.Target),
		SizeKey:      float64(g.config.Size),
		DimsKey:      float64(g.config.Dims),
		StepsKey:     float64(g.state.Steps),
	}
}
