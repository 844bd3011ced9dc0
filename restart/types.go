package restart

import (
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/freqassign/localsearch"
)

// ErrInvalidOptions indicates a negative count in Options.
var ErrInvalidOptions = errors.New("restart: invalid options")

// Defaults applied to zero-valued Options fields.
const (
	DefaultRestarts             = 5
	DefaultIterationsPerRestart = 200

	// RepairAttemptsPerNode scales the repair budget when RepairAttempts is 0.
	RepairAttemptsPerNode = 10
)

// Options configures SolveWithRestarts. Zero values select the defaults.
type Options struct {
	// Restarts is the number of starts, including restart 0.
	Restarts int

	// IterationsPerRestart caps hill-climbing moves per restart and
	// overrides Search.MaxIter.
	IterationsPerRestart int

	// RepairAttempts caps repair steps per restart; 0 means
	// RepairAttemptsPerNode · n.
	RepairAttempts int

	// Search tunes the hill climber. A zero value means
	// localsearch.DefaultOptions().
	Search localsearch.Options

	// Rand is the base stream; nil selects the default deterministic seed.
	Rand *rand.Rand

	// Logger receives per-restart debug lines; nil discards them.
	Logger *zap.Logger
}

// normalize validates counts and fills defaults.
func (o Options) normalize(n int) (Options, error) {
	if o.Restarts < 0 || o.IterationsPerRestart < 0 || o.RepairAttempts < 0 {
		return o, ErrInvalidOptions
	}
	if o.Restarts == 0 {
		o.Restarts = DefaultRestarts
	}
	if o.IterationsPerRestart == 0 {
		o.IterationsPerRestart = DefaultIterationsPerRestart
	}
	if o.RepairAttempts == 0 {
		o.RepairAttempts = RepairAttemptsPerNode * n
	}
	if s := o.Search; s.ConflictPenalty == 0 && s.TabuTenure == 0 && s.TabuPenalty == 0 && s.Eps == 0 {
		o.Search = localsearch.DefaultOptions()
		o.Search.OnMove = s.OnMove
	}
	o.Search.MaxIter = o.IterationsPerRestart
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o, nil
}
