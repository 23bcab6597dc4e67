// Command gridworld runs, views, and plots rollouts of policies in
// gridworld environments
package main

import (
	"log"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/agent"
	"github.com/samuelfneumann/gridenv/environment/envconfig"
	"github.com/spf13/cobra"
)

var (
	envName    string
	configPath string
	seed       uint64
	policyType string
	epsilon    float64

	size      int
	maxSteps  int
	obstacles int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridworld",
		Short: "Roll out policies in 2D and 3D gridworlds",
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envName, "env", string(envconfig.GridWorldV0),
		"name of the environment preset")
	flags.StringVar(&configPath, "config", "",
		"JSON environment config, overrides --env")
	flags.Uint64Var(&seed, "seed", 0, "seed for the environment and policy")
	flags.StringVar(&policyType, "policy", string(agent.Random),
		"policy to roll out: random, greedy, or egreedy")
	flags.Float64Var(&epsilon, "epsilon", 0.1, "ε of the egreedy policy")
	flags.IntVar(&size, "size", 0, "override the grid size")
	flags.IntVar(&maxSteps, "max-steps", 0, "override the episode step budget")
	flags.IntVar(&obstacles, "obstacles", 0, "override the number of obstacles")

	rootCmd.AddCommand(RunCommand())
	rootCmd.AddCommand(ViewCommand())
	rootCmd.AddCommand(PlotCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// envConfig returns the environment configuration selected by the
// command line flags
func envConfig(cmd *cobra.Command) (envconfig.Config, error) {
	var c envconfig.Config
	var err error
	if configPath != "" {
		c, err = envconfig.Load(configPath)
	} else {
		c, err = envconfig.NewConfig(envconfig.EnvName(envName))
	}
	if err != nil {
		return envconfig.Config{}, errors.Wrap(err, "envConfig")
	}

	if cmd.Flags().Changed("size") {
		c.GridWorld.Size = size
	}
	if cmd.Flags().Changed("max-steps") {
		c.GridWorld.MaxSteps = maxSteps
	}
	if cmd.Flags().Changed("obstacles") {
		c.GridWorld.Obstacles = obstacles
	}

	return c, nil
}

// policyConfig returns the policy configuration selected by the command
// line flags
func policyConfig() agent.Config {
	return agent.Config{Type: agent.PolicyType(policyType), Epsilon: epsilon}
}
