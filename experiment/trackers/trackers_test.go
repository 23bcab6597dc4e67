package trackers

import (
	"bytes"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/gridenv/environment/gridworld"
	ts "github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/mat"
)

// episode returns the timesteps of an episode of length n which ends
// with end and pays reward 1 per step
func episode(n int, end ts.EndType) []ts.TimeStep {
	obs := mat.NewVecDense(4, []float64{0, 1, 3, 2})
	info := ts.Info{gridworld.DistanceKey: 4}

	steps := []ts.TimeStep{ts.New(ts.First, 0, 0.99, obs, 0)}
	steps[0].Info = info
	for i := 1; i <= n; i++ {
		step := ts.New(ts.Mid, 1, 0.99, obs, i)
		step.Info = info
		if i == n {
			step.SetEnd(end)
		}
		steps = append(steps, step)
	}
	return steps
}

func track(t Tracker, steps []ts.TimeStep) {
	for i, step := range steps {
		var action *mat.VecDense
		if i > 0 {
			action = gridworld.Down.Vec()
		}
		t.Track(action, step)
	}
}

func TestReturn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "returns.bin")
	r := NewReturn(path)

	track(r, episode(3, ts.TerminalStateReached))
	track(r, episode(5, ts.Timeout))

	// Unfinished episodes are discarded
	track(r, episode(2, ts.TerminalStateReached)[:2])

	want := []float64{3, 5}
	if got := r.Returns(); !floatsEqual(got, want) {
		t.Errorf("returns = %v, want %v", got, want)
	}

	if err := r.Save(); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadData(path)
	if err != nil {
		t.Fatal(err)
	}
	if !floatsEqual(loaded, want) {
		t.Errorf("loaded returns = %v, want %v", loaded, want)
	}
}

func TestReturnNonSequentialPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("track should panic on non-sequential timesteps")
		}
	}()

	r := NewReturn("")
	steps := episode(4, ts.Timeout)
	r.Track(nil, steps[0])
	r.Track(nil, steps[2])
}

func TestEpisodeLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lengths.bin")
	e := NewEpisodeLength(path)

	track(e, episode(3, ts.TerminalStateReached))
	track(e, episode(7, ts.Timeout))

	if err := e.Save(); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadData(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{3, 7}; !floatsEqual(loaded, want) {
		t.Errorf("loaded lengths = %v, want %v", loaded, want)
	}
}

func TestLoadDataMissingFile(t *testing.T) {
	if _, err := LoadData(filepath.Join(t.TempDir(), "none")); err == nil {
		t.Error("loadData should fail for a missing file")
	}
}

func TestRollout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rollout.parquet")
	r := NewRollout(path, 2)

	track(r, episode(2, ts.TerminalStateReached))
	track(r, episode(1, ts.Timeout))

	if r.Rows() != 5 {
		t.Fatalf("rows = %d, want 5", r.Rows())
	}
	if err := r.Save(); err != nil {
		t.Fatal(err)
	}

	rows, err := LoadRollout(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 {
		t.Fatalf("loaded %d rows, want 5", len(rows))
	}

	first, last := rows[0], rows[4]
	if first.Episode != 0 || first.Action != NoAction {
		t.Errorf("first row = %+v", first)
	}
	if last.Episode != 1 || last.Step != 1 || !last.Truncated ||
		last.Terminated {
		t.Errorf("last row = %+v", last)
	}
	if rows[2].Action != int32(gridworld.Down) || !rows[2].Terminated {
		t.Errorf("terminal row = %+v", rows[2])
	}
	if rows[1].Agent[0] != 0 || rows[1].Agent[1] != 1 ||
		rows[1].Target[0] != 3 || rows[1].Target[1] != 2 {
		t.Errorf("coordinates = %v, %v", rows[1].Agent, rows[1].Target)
	}
	if rows[1].Distance != 4 || len(rows[1].Observation) != 4 {
		t.Errorf("distance, observation = %v, %v", rows[1].Distance,
			rows[1].Observation)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(log.New(&buf, "", 0))

	track(l, episode(1, ts.TerminalStateReached))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("logged %d lines, want 2", len(lines))
	}
	want := "Step: 1 Action: down, Reward: 1, Terminated: true, " +
		"Truncated: false, Info: {distance: 4}"
	if lines[1] != want {
		t.Errorf("logged %q, want %q", lines[1], want)
	}
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
