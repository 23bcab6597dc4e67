package experiment

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/agent"
	env "github.com/samuelfneumann/gridenv/environment"
	"github.com/samuelfneumann/gridenv/experiment/trackers"
	ts "github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/mat"
)

// Online is an Experiment that runs a policy online in an environment
type Online struct {
	env.Environment
	agent.Policy
	maxSteps        uint
	maxEpisodes     uint
	currentSteps    uint
	currentEpisodes uint
	trackers        []trackers.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given policy. The steps and episodes parameters
// limit how many timesteps and episodes the experiment is run for, where
// a limit of 0 is no limit. The t parameter is a slice of
// trackers.Tracker which determine what data is saved.
func NewOnline(e env.Environment, p agent.Policy, steps, episodes uint,
	t ...trackers.Tracker) *Online {
	return &Online{
		Environment: e,
		Policy:      p,
		maxSteps:    steps,
		maxEpisodes: episodes,
		trackers:    t,
	}
}

// Register registers a trackers.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// Steps returns the number of steps taken so far
func (o *Online) Steps() uint {
	return o.currentSteps
}

// Episodes returns the number of episodes finished so far
func (o *Online) Episodes() uint {
	return o.currentEpisodes
}

// Done returns whether the step or episode budget has been spent
func (o *Online) Done() bool {
	return (o.maxSteps > 0 && o.currentSteps >= o.maxSteps) ||
		(o.maxEpisodes > 0 && o.currentEpisodes >= o.maxEpisodes)
}

// RunEpisode runs a single episode of the experiment and returns
// whether the experiment is done
func (o *Online) RunEpisode() (bool, error) {
	step, err := o.Environment.Reset()
	if err != nil {
		return true, errors.Wrap(err, "runEpisode")
	}
	o.track(nil, step)

	// Run the next timestep
	for !step.Last() && (o.maxSteps == 0 || o.currentSteps < o.maxSteps) {
		o.currentSteps++

		// Select action, step in environment
		action := o.Policy.SelectAction(step)
		step, _, err = o.Environment.Step(action)
		if err != nil {
			return true, errors.Wrapf(err, "runEpisode: step %d",
				o.currentSteps)
		}

		// Cache the environment step in each Tracker
		o.track(action, step)
	}

	if step.Last() {
		o.currentEpisodes++
	}
	return o.Done(), nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() error {
	for !o.Done() {
		if _, err := o.RunEpisode(); err != nil {
			return errors.Wrap(err, "run")
		}
	}
	return nil
}

// Save saves the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return errors.Wrap(err, "save")
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(action *mat.VecDense, t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(action, t)
	}
}
