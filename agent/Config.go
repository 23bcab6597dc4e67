package agent

import (
	"fmt"
)

// PolicyType represents a kind of policy that can be configured
type PolicyType string

const (
	Random  PolicyType = "random"
	Greedy  PolicyType = "greedy"
	EGreedy PolicyType = "egreedy"
)

// Config represents a configuration for creating a policy
type Config struct {
	Type    PolicyType `json:"type"`
	Epsilon float64    `json:"epsilon,omitempty"` // Used by EGreedy only
}

// Validate returns an error describing whether or not the
// configuration is valid
func (c Config) Validate() error {
	switch c.Type {
	case Random, Greedy:
		return nil

	case EGreedy:
		if c.Epsilon < 0 || c.Epsilon > 1 {
			return fmt.Errorf("validate: epsilon must be in [0, 1], got %v",
				c.Epsilon)
		}
		return nil
	}

	return fmt.Errorf("validate: no such policy type %q", c.Type)
}
