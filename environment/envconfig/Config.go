// Package envconfig provides configuration structs for configuring
// gridworld environments with the default parameters of each named
// variant. Environment configurations in this package are JSON
// serializable.
//
// Environments are created explicitly with Config.Create; there is no
// global registry of environment names.
package envconfig

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/environment/gridworld"
	ts "github.com/samuelfneumann/gridenv/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	GridWorldV0        EnvName = "GridWorld-v0"
	GridWorld3D        EnvName = "GridWorld3D-v0"
	GridWorldObstacles EnvName = "GridWorldObstacles-v0"
	GridWorldMatrix    EnvName = "GridWorldMatrix-v0"
)

const (
	DefaultSize     int     = 5
	DefaultMaxSteps int     = 100
	DefaultDiscount float64 = 0.99
)

// Names returns the names of all configurable environments
func Names() []EnvName {
	return []EnvName{GridWorldV0, GridWorld3D, GridWorldObstacles,
		GridWorldMatrix}
}

// Preset returns the default gridworld configuration of a named
// environment:
//
//	Environment				Dims	Observation		Reward		Obstacles
//	GridWorld-v0			2		Coordinates		Sparse		0
//	GridWorld3D-v0			3		Coordinates		Sparse		0
//	GridWorldObstacles-v0	2		Neighbours		Sparse		5
//	GridWorldMatrix-v0		2		Matrix			Penalised	0
func Preset(name EnvName) (gridworld.Config, error) {
	c := gridworld.Config{
		Size:        DefaultSize,
		Dims:        2,
		MaxSteps:    DefaultMaxSteps,
		Observation: gridworld.Coordinates,
		Reward:      gridworld.Sparse,
		Rewards: gridworld.Rewards{
			Goal:      1.0,
			Collision: -2.0,
			Timeout:   -1.0,
		},
		Discount: DefaultDiscount,
	}

	switch name {
	case GridWorldV0:
		return c, nil

	case GridWorld3D:
		c.Dims = 3
		return c, nil

	case GridWorldObstacles:
		c.Obstacles = 5
		c.Observation = gridworld.Neighbours
		c.Rewards = gridworld.Rewards{
			Goal:      10.0,
			Step:      -0.1,
			Collision: -2.0,
			Timeout:   -10.0,
		}
		return c, nil

	case GridWorldMatrix:
		c.Observation = gridworld.Matrix
		c.Reward = gridworld.Penalised
		c.Rewards = gridworld.Rewards{
			Goal:      100.0,
			Step:      -1.0,
			Collision: -2.0,
			Timeout:   -10.0,
			Scale:     10.0,
			Wall:      -5.0,
		}
		return c, nil
	}

	return gridworld.Config{}, fmt.Errorf("preset: no such environment %v",
		name)
}

// Config implements a specific configuration of a named environment.
// The GridWorld field starts out as the environment's Preset and may be
// modified before calling Create.
type Config struct {
	Environment EnvName          `json:"environment"`
	GridWorld   gridworld.Config `json:"gridworld"`
}

// NewConfig returns a new Config holding the preset of the named
// environment
func NewConfig(name EnvName) (Config, error) {
	preset, err := Preset(name)
	if err != nil {
		return Config{}, errors.Wrap(err, "newConfig")
	}
	return Config{Environment: name, GridWorld: preset}, nil
}

// Load reads a Config from a JSON file. Fields of the "gridworld"
// object which are missing from the file keep their preset values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "load: could not read config")
	}

	var named struct {
		Environment EnvName `json:"environment"`
	}
	if err := json.Unmarshal(data, &named); err != nil {
		return Config{}, errors.Wrap(err, "load: could not decode config")
	}

	c, err := NewConfig(named.Environment)
	if err != nil {
		return Config{}, errors.Wrap(err, "load")
	}

	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(err, "load: could not decode config")
	}
	return c, nil
}

// Save writes the Config as indented JSON to a file
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return errors.Wrap(err, "save: could not encode config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "save: could not write config")
	}
	return nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment. The renderer r may be nil.
func (c Config) Create(r gridworld.Renderer, seed uint64) (
	*gridworld.GridWorld, ts.TimeStep, error) {
	g, step, err := gridworld.New(c.GridWorld, r, seed)
	if err != nil {
		return nil, ts.TimeStep{}, errors.Wrapf(err, "create: could not "+
			"create %v", c.Environment)
	}
	return g, step, nil
}
