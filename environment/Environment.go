// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"image"

	"github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/mat"
)

// Ender determines when episodes end. If End returns true, it has
// modified the argument TimeStep so that it is the last in the episode
// and carries the appropriate EndType.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Environment implements a simulated environment which an agent
// interacts with through Reset and Step.
//
// Step returns the next TimeStep and whether the episode has ended.
// Stepping an environment whose episode has ended is an error until
// Reset is called.
type Environment interface {
	Reset() (timestep.TimeStep, error)
	Step(action *mat.VecDense) (timestep.TimeStep, bool, error)

	// Render returns a frame of the current state, or nil if the
	// environment renders somewhere other than an image
	Render() (image.Image, error)

	// Close releases any rendering resources
	Close() error

	LastTimeStep() timestep.TimeStep

	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
