package trackers

import (
	"log"

	"github.com/samuelfneumann/gridenv/environment/gridworld"
	ts "github.com/samuelfneumann/gridenv/timestep"
	"gonum.org/v1/gonum/mat"
)

// Logger logs every step of an experiment with a log.Logger
type Logger struct {
	logger *log.Logger
}

// NewLogger returns a new Logger Tracker. If l is nil, the standard
// logger is used.
func NewLogger(l *log.Logger) *Logger {
	if l == nil {
		l = log.Default()
	}
	return &Logger{l}
}

// Track logs the step
func (l *Logger) Track(action *mat.VecDense, t ts.TimeStep) {
	if action == nil {
		l.logger.Printf("Reset: Info: %v", t.Info)
		return
	}

	l.logger.Printf("Step: %d Action: %v, Reward: %v, Terminated: %v, "+
		"Truncated: %v, Info: %v", t.Number,
		gridworld.Action(int(action.AtVec(0))), t.Reward, t.Terminated(),
		t.Truncated(), t.Info)
}

// Save implements the Tracker interface
func (l *Logger) Save() error {
	return nil
}
