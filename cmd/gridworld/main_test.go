package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samuelfneumann/gridenv/agent"
	"github.com/samuelfneumann/gridenv/agent/policy"
	"github.com/samuelfneumann/gridenv/environment/envconfig"
	"github.com/samuelfneumann/gridenv/environment/gridworld"
	"github.com/samuelfneumann/gridenv/experiment"
	"github.com/samuelfneumann/gridenv/experiment/trackers"
)

func newModel(t *testing.T, name envconfig.EnvName) model {
	t.Helper()
	c, _ := envconfig.NewConfig(name)
	env, _, err := c.Create(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	return initialModel(env, nil, 0)
}

func key(k string) tea.KeyMsg {
	switch k {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func update(m model, msg tea.Msg) (model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func TestViewKeysStepEnvironment(t *testing.T) {
	m := newModel(t, envconfig.GridWorldV0)
	if _, err := m.env.ResetTo(gridworld.NewPosition(0, 0),
		gridworld.NewPosition(2, 1)); err != nil {
		t.Fatal(err)
	}

	for _, k := range []string{"right", "d", "down"} {
		m, _ = update(m, key(k))
	}

	if !m.step.Terminated() {
		t.Fatalf("episode should have terminated, status %q", m.status)
	}
	if m.ret != 1 || m.episodes != 1 {
		t.Errorf("return, episodes = %v, %v, want 1, 1", m.ret, m.episodes)
	}

	m, _ = update(m, key("w"))
	if !strings.Contains(m.status, "press r") {
		t.Errorf("stepping an ended episode reported %q", m.status)
	}

	m, _ = update(m, key("r"))
	if m.env.Ended() || m.ret != 0 {
		t.Error("r should start a new episode")
	}
}

func TestViewRejects3DKeysIn2D(t *testing.T) {
	m := newModel(t, envconfig.GridWorldV0)
	before := m.env.Agent()

	m, _ = update(m, key("f"))
	if m.env.Agent() != before || m.env.Steps() != 0 {
		t.Error("forward should not move the agent in 2D")
	}
	if m.status == "" {
		t.Error("invalid action should be reported")
	}
	if strings.Contains(m.View(), "f/b") {
		t.Error("2D view should not offer forward/backward")
	}
}

func TestViewQuit(t *testing.T) {
	m := newModel(t, envconfig.GridWorld3D)
	if !strings.Contains(m.View(), "f/b") {
		t.Error("3D view should offer forward/backward")
	}

	if _, cmd := update(m, key("q")); cmd == nil {
		t.Error("q should quit")
	}
}

func TestViewPolicyDrives(t *testing.T) {
	m := newModel(t, envconfig.GridWorldV0)
	p, err := policy.NewGreedy(m.env)
	if err != nil {
		t.Fatal(err)
	}
	m.policy = p

	for i := 0; i < 8 && !m.env.Ended(); i++ {
		m, _ = update(m, TickMsg{})
	}
	if !m.step.Terminated() {
		t.Error("greedy policy should reach the target within 8 ticks")
	}

	m, _ = update(m, TickMsg{})
	if m.env.Ended() || m.env.Steps() != 0 {
		t.Error("a tick after the episode ended should reset")
	}
}

func TestRun(t *testing.T) {
	envConf, _ := envconfig.NewConfig(envconfig.GridWorldObstacles)
	c := experiment.Config{
		Type:        experiment.OnlineExp,
		MaxEpisodes: 4,
		EnvConf:     envConf,
		PolicyConf:  agent.Config{Type: agent.EGreedy, Epsilon: 0.3},
	}

	dir := t.TempDir()
	opts := runOptions{
		returns: filepath.Join(dir, "returns.bin"),
		lengths: filepath.Join(dir, "lengths.bin"),
		rollout: filepath.Join(dir, "rollout.parquet"),
		frame:   filepath.Join(dir, "frame.png"),
		quiet:   true,
	}
	if err := Run(c, 9, opts); err != nil {
		t.Fatal(err)
	}

	returns, err := trackers.LoadData(opts.returns)
	if err != nil || len(returns) != 4 {
		t.Errorf("returns = %v, %v", returns, err)
	}
	lengths, err := trackers.LoadData(opts.lengths)
	if err != nil || len(lengths) != 4 {
		t.Errorf("lengths = %v, %v", lengths, err)
	}
	if _, err := trackers.LoadRollout(opts.rollout); err != nil {
		t.Error(err)
	}
	if _, err := os.Stat(opts.frame); err != nil {
		t.Error(err)
	}
}

func TestPlot(t *testing.T) {
	var buf bytes.Buffer
	s := series{"returns", []float64{-1, 1, 1, -1}}

	if err := Plot(&buf, "Returns", 2, s); err != nil {
		t.Fatal(err)
	}
	if html := buf.String(); !strings.Contains(html, "Returns") ||
		!strings.Contains(html, "echarts") {
		t.Error("chart should hold its title and the echarts script")
	}

	if err := Plot(&buf, "Empty", 1); err == nil {
		t.Error("plot should fail without series")
	}
}

func TestSmooth(t *testing.T) {
	got := smooth([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("smooth = %v, want %v", got, want)
		}
	}
}
