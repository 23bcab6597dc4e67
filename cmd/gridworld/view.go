package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/agent"
	"github.com/samuelfneumann/gridenv/agent/policy"
	"github.com/samuelfneumann/gridenv/environment/gridworld"
	"github.com/samuelfneumann/gridenv/environment/render"
	ts "github.com/samuelfneumann/gridenv/timestep"
	"github.com/spf13/cobra"
)

// keyActions maps keys to the actions they take
var keyActions = map[string]gridworld.Action{
	"right": gridworld.Right,
	"d":     gridworld.Right,
	"up":    gridworld.Up,
	"w":     gridworld.Up,
	"left":  gridworld.Left,
	"a":     gridworld.Left,
	"down":  gridworld.Down,
	"s":     gridworld.Down,
	"f":     gridworld.Forward,
	"b":     gridworld.Backward,
}

type TickMsg time.Time

func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// model is the state of the interactive viewer. Without a policy, keys
// step the environment.
type model struct {
	env    *gridworld.GridWorld
	text   *render.Text
	policy agent.Policy
	delay  time.Duration

	step     ts.TimeStep
	ret      float64
	episodes int
	status   string
}

func initialModel(env *gridworld.GridWorld, p agent.Policy,
	delay time.Duration) model {
	return model{
		env:    env,
		text:   render.NewText(nil, true),
		policy: p,
		delay:  delay,
		step:   env.LastTimeStep(),
	}
}

func (m model) Init() tea.Cmd {
	if m.policy != nil {
		return tickCmd(m.delay)
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m.reset(), nil
		}

		if a, ok := keyActions[key]; ok && m.policy == nil {
			return m.act(a), nil
		}

	case TickMsg:
		if m.env.Ended() {
			m = m.reset()
		} else {
			a := gridworld.Action(int(m.policy.SelectAction(m.step).AtVec(0)))
			m = m.act(a)
		}
		return m, tickCmd(m.delay)
	}
	return m, nil
}

// act takes an action in the environment
func (m model) act(a gridworld.Action) model {
	step, _, err := m.env.StepAction(a)
	switch {
	case errors.Is(err, gridworld.ErrEpisodeEnded):
		m.status = "Episode ended, press r to reset"
		return m
	case err != nil:
		m.status = err.Error()
		return m
	}

	m.step = step
	m.ret += step.Reward
	m.status = fmt.Sprintf("Action: %v, Reward: %v", a, step.Reward)
	if step.Terminated() {
		m.status += ", target reached"
	} else if step.Truncated() {
		m.status += ", out of steps"
	}
	if step.Last() {
		m.episodes++
	}
	return m
}

// reset starts a new episode
func (m model) reset() model {
	step, err := m.env.Reset()
	if err != nil {
		m.status = err.Error()
		return m
	}
	m.step = step
	m.ret = 0
	m.status = "Reset"
	return m
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.text.Grid(m.env.Scene()))
	fmt.Fprintf(&b, "Return: %.2f  Episodes: %d\n", m.ret, m.episodes)
	fmt.Fprintf(&b, "Info: %v\n", m.step.Info)
	b.WriteString(m.status + "\n\n")

	if m.policy == nil {
		b.WriteString("Move with the arrow keys or WASD")
		if m.env.Config().Dims == 3 {
			b.WriteString(", f/b move forward/backward")
		}
		b.WriteString(".\n")
	}
	b.WriteString("Press r to reset, q to quit.\n")

	return b.String()
}

func ViewCommand() *cobra.Command {
	var drive bool
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Step through an environment interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			envConf, err := envConfig(cmd)
			if err != nil {
				return err
			}

			env, _, err := envConf.Create(nil, seed)
			if err != nil {
				return err
			}
			defer env.Close()

			var p agent.Policy
			if drive {
				p, err = policy.New(policyConfig(), env, seed)
				if err != nil {
					return err
				}
			}

			prog := tea.NewProgram(initialModel(env, p, delay),
				tea.WithOutput(os.Stdout))
			_, err = prog.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&drive, "drive", false,
		"let the --policy drive instead of the keyboard")
	cmd.Flags().DurationVar(&delay, "delay", 200*time.Millisecond,
		"time between policy steps")

	return cmd
}
