package trackers

import (
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gridenv/environment/gridworld"
	ts "github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/mat"
)

// NoAction is the action recorded for the first step of an episode
const NoAction int32 = -1

// RolloutRow is a single environment step as stored by a Rollout
// Tracker
type RolloutRow struct {
	Episode     int32     `parquet:"episode"`
	Step        int32     `parquet:"step"`
	Action      int32     `parquet:"action"`
	Reward      float64   `parquet:"reward"`
	Terminated  bool      `parquet:"terminated"`
	Truncated   bool      `parquet:"truncated"`
	Distance    float64   `parquet:"distance"`
	Agent       []int32   `parquet:"agent"`
	Target      []int32   `parquet:"target"`
	Observation []float64 `parquet:"observation"`
}

// Rollout tracks every step of an experiment on a gridworld and saves
// them as rows of a zstd compressed parquet file
type Rollout struct {
	dims     int
	episode  int32
	rows     []RolloutRow
	filename string
}

// NewRollout returns a new Rollout Tracker for a gridworld with dims
// dimensions which will save its data at filename
func NewRollout(filename string, dims int) *Rollout {
	return &Rollout{dims: dims, episode: -1, filename: filename}
}

// Track caches a row for the step
func (r *Rollout) Track(action *mat.VecDense, t ts.TimeStep) {
	if t.First() {
		r.episode++
	}

	row := RolloutRow{
		Episode:     r.episode,
		Step:        int32(t.Number),
		Action:      NoAction,
		Reward:      t.Reward,
		Terminated:  t.Terminated(),
		Truncated:   t.Truncated(),
		Distance:    t.Info[gridworld.DistanceKey],
		Agent:       make([]int32, r.dims),
		Target:      make([]int32, r.dims),
		Observation: mat.Col(nil, 0, t.Observation),
	}
	if action != nil {
		row.Action = int32(action.AtVec(0))
	}

	// Every gridworld observation starts with the agent and target
	// coordinates
	for i := 0; i < r.dims; i++ {
		row.Agent[i] = int32(t.Observation.AtVec(i))
		row.Target[i] = int32(t.Observation.AtVec(r.dims + i))
	}

	r.rows = append(r.rows, row)
}

// Rows returns the number of rows cached by the Tracker
func (r *Rollout) Rows() int {
	return len(r.rows)
}

// Save writes all cached rows to disk
func (r *Rollout) Save() error {
	tmpPath := r.filename + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, r.rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "gridworld_rollout_v1"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "save: could not write parquet")
	}

	if err := os.Rename(tmpPath, r.filename); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "save: could not rename parquet")
	}
	return nil
}

// LoadRollout reads the rows saved by a Rollout Tracker
func LoadRollout(filename string) ([]RolloutRow, error) {
	rows, err := parquet.ReadFile[RolloutRow](filename)
	if err != nil {
		return nil, errors.Wrap(err, "loadRollout")
	}
	return rows, nil
}
