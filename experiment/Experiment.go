// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/agent"
	"github.com/samuelfneumann/gridenv/agent/policy"
	"github.com/samuelfneumann/gridenv/environment/envconfig"
	"github.com/samuelfneumann/gridenv/environment/gridworld"
	"github.com/samuelfneumann/gridenv/experiment/trackers"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments send each environment TimeStep to their Trackers, which
// cache the data they need to be later saved to disk. The Save()
// function will then save all cached data. The Run() method runs
// episodes until the step or episode budget of the experiment is spent.
// The RunEpisode() function will run a single episode.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error) // Returns whether the experiment is done

	// Save all tracked data to disk
	Save() error

	// Adds a new trackers.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t trackers.Tracker)
}

type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment. A zero MaxSteps
// or MaxEpisodes places no limit on steps or episodes respectively,
// but at least one of them must be set.
type Config struct {
	Type        `json:"type"`
	MaxSteps    uint             `json:"max_steps"`
	MaxEpisodes uint             `json:"max_episodes"`
	EnvConf     envconfig.Config `json:"environment"`
	PolicyConf  agent.Config     `json:"policy"`
}

// Validate returns an error describing whether or not the
// configuration is valid
func (c Config) Validate() error {
	if c.Type != OnlineExp {
		return fmt.Errorf("validate: no such experiment type %v", c.Type)
	}
	if c.MaxSteps == 0 && c.MaxEpisodes == 0 {
		return fmt.Errorf("validate: experiment must be limited by steps " +
			"or episodes")
	}
	return c.PolicyConf.Validate()
}

// CreateExp creates the experiment described by the Config. The
// renderer r may be nil.
func (c Config) CreateExp(seed uint64, r gridworld.Renderer,
	t ...trackers.Tracker) (Experiment, *gridworld.GridWorld, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "createExp")
	}

	env, _, err := c.EnvConf.Create(r, seed)
	if err != nil {
		return nil, nil, errors.Wrap(err, "createExp: could not create "+
			"environment")
	}

	p, err := policy.New(c.PolicyConf, env, seed)
	if err != nil {
		return nil, nil, errors.Wrap(err, "createExp: could not create "+
			"policy")
	}

	return NewOnline(env, p, c.MaxSteps, c.MaxEpisodes, t...), env, nil
}
