package gridworld

import "github.com/pkg/errors"

var (
	// ErrInvalidAction is returned when an action is not one of the
	// 2·D legal directions of the environment
	ErrInvalidAction = errors.New("invalid action")

	// ErrEpisodeEnded is returned when Step is called after the episode
	// has terminated or been truncated, without an intervening reset
	ErrEpisodeEnded = errors.New("episode ended")

	// ErrUnsatisfiableConfiguration is returned when the grid does not
	// have enough distinct cells for the agent, the target, and all
	// obstacles
	ErrUnsatisfiableConfiguration = errors.New("unsatisfiable configuration")
)
