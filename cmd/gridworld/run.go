package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/environment/gridworld"
	"github.com/samuelfneumann/gridenv/environment/render"
	"github.com/samuelfneumann/gridenv/experiment"
	"github.com/samuelfneumann/gridenv/experiment/trackers"
	ts "github.com/samuelfneumann/gridenv/timestep"
	"github.com/samuelfneumann/gridenv/utils/progressbar"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

// runOptions determines what a rollout saves and prints
type runOptions struct {
	returns string
	lengths string
	rollout string
	frame   string
	quiet   bool
}

// progress is a Tracker which advances a progress bar at the end of
// each episode
type progress struct {
	bar *progressbar.Bar
}

func (p progress) Track(_ *mat.VecDense, t ts.TimeStep) {
	if t.Last() {
		p.bar.Increment()
		p.bar.Display()
	}
}

func (p progress) Save() error {
	p.bar.Finish()
	return nil
}

// Run rolls out a policy in an environment for a number of episodes,
// then saves the data of all trackers
func Run(c experiment.Config, seed uint64, opts runOptions) error {
	var t []trackers.Tracker
	if opts.quiet {
		bar := progressbar.NewBar(os.Stdout, 50, int(c.MaxEpisodes))
		t = append(t, progress{bar})
	} else {
		t = append(t, trackers.NewLogger(nil))
	}
	if opts.returns != "" {
		t = append(t, trackers.NewReturn(opts.returns))
	}
	if opts.lengths != "" {
		t = append(t, trackers.NewEpisodeLength(opts.lengths))
	}
	if opts.rollout != "" {
		t = append(t, trackers.NewRollout(opts.rollout,
			c.EnvConf.GridWorld.Dims))
	}

	var r gridworld.Renderer
	if opts.frame != "" {
		img, err := render.NewImage(render.DefaultWindowSize)
		if err != nil {
			return errors.Wrap(err, "run")
		}
		r = img
	}

	exp, env, err := c.CreateExp(seed, r, t...)
	if err != nil {
		return errors.Wrap(err, "run")
	}
	defer env.Close()
	log.Printf("Running %v: %v", c.EnvConf.Environment, env)

	if err := exp.Run(); err != nil {
		return errors.Wrap(err, "run")
	}
	if err := exp.Save(); err != nil {
		return errors.Wrap(err, "run")
	}

	if opts.frame != "" {
		frame, err := env.Render()
		if err != nil {
			return errors.Wrap(err, "run")
		}
		if err := render.SavePNG(opts.frame, frame); err != nil {
			return errors.Wrap(err, "run")
		}
	}
	return nil
}

func RunCommand() *cobra.Command {
	var episodes uint
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Roll out a policy for a number of episodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			envConf, err := envConfig(cmd)
			if err != nil {
				return err
			}

			c := experiment.Config{
				Type:        experiment.OnlineExp,
				MaxEpisodes: episodes,
				EnvConf:     envConf,
				PolicyConf:  policyConfig(),
			}
			return Run(c, seed, opts)
		},
	}

	cmd.Flags().UintVar(&episodes, "episodes", 1, "number of episodes to run")
	cmd.Flags().StringVar(&opts.returns, "returns", "",
		"file to save episodic returns to")
	cmd.Flags().StringVar(&opts.lengths, "lengths", "",
		"file to save episode lengths to")
	cmd.Flags().StringVar(&opts.rollout, "rollout", "",
		"parquet file to save every step to")
	cmd.Flags().StringVar(&opts.frame, "frame", "",
		"PNG file to save the final frame to")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false,
		"show a progress bar instead of logging every step")

	return cmd
}
