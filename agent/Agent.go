// Package agent defines the interface of policies which select actions
// in gridworld environments
package agent

import (
	"github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/mat"
)

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. Given the last TimeStep
// of an environment, a Policy returns the action vector to pass to the
// environment's Step method.
type Policy interface {
	SelectAction(t timestep.TimeStep) *mat.VecDense
}
