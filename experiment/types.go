package experiment

import (
	"errors"
	"time"

	"github.com/katalvlaran/freqassign/greedy"
	"github.com/katalvlaran/freqassign/localsearch"
	"github.com/katalvlaran/freqassign/problem"
	"github.com/katalvlaran/freqassign/verify"
)

// Sentinel errors.
var (
	// ErrInvalidPipeline indicates a negative count or invalid search options.
	ErrInvalidPipeline = errors.New("experiment: invalid pipeline")

	// ErrUnknownFormat indicates a report format other than json or yaml.
	ErrUnknownFormat = errors.New("experiment: unknown report format")
)

// Pipeline defaults, matching the interactive solver of the CLI.
const (
	DefaultGreedyAttempts = 5
	DefaultIterations     = 500
	DefaultTopK           = 5

	// MethodRestart labels runs that go through the restart driver.
	MethodRestart = "restart"
)

// Pipeline selects and tunes the stages of one run.
type Pipeline struct {
	// Strategy is used when GreedyAttempts ≤ 1.
	Strategy greedy.Strategy

	// GreedyAttempts > 1 runs greedy.ConstructWithRestarts instead.
	GreedyAttempts int

	// Method is the engine used when Restarts is 0.
	Method localsearch.Method

	// Search tunes the engine; MaxIter is the iteration budget (per restart
	// when Restarts > 0).
	Search localsearch.Options

	// Restarts > 0 hands the greedy result to restart.SolveWithRestarts.
	Restarts int
}

// DefaultPipeline returns the mixed-greedy, conflict-tolerant pipeline.
func DefaultPipeline() Pipeline {
	search := localsearch.DefaultOptions()
	search.MaxIter = DefaultIterations

	return Pipeline{
		Strategy:       greedy.Mixed,
		GreedyAttempts: DefaultGreedyAttempts,
		Method:         localsearch.ConflictTolerant,
		Search:         search,
	}
}

// Label names the search stage for logs and metrics.
func (pl Pipeline) Label() string {
	if pl.Restarts > 0 {
		return MethodRestart
	}

	return pl.Method.String()
}

// Stage summarizes one stage of a run.
type Stage struct {
	Cost       float64 `json:"cost" yaml:"cost"`
	Valid      bool    `json:"valid" yaml:"valid"`
	Conflicts  int     `json:"conflicts" yaml:"conflicts"`
	Iterations int     `json:"iterations" yaml:"iterations"`
	Note       string  `json:"note" yaml:"note"`
	Seconds    float64 `json:"seconds" yaml:"seconds"`
}

// stage converts a solver result.
func stage(res problem.Result, elapsed time.Duration) Stage {
	return Stage{
		Cost:       res.Cost,
		Valid:      res.Valid,
		Conflicts:  res.Conflicts,
		Iterations: res.Iterations,
		Note:       res.Note,
		Seconds:    elapsed.Seconds(),
	}
}

// Outcome is the record of one run.
type Outcome struct {
	ID    string `json:"id" yaml:"id"`
	Group string `json:"group,omitempty" yaml:"group,omitempty"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	Nodes       int     `json:"nodes" yaml:"nodes"`
	Frequencies int     `json:"frequencies" yaml:"frequencies"`
	Edges       int     `json:"edges" yaml:"edges"`
	Density     float64 `json:"density" yaml:"density"`
	MaxDegree   int     `json:"max_degree" yaml:"max_degree"`

	Strategy string `json:"strategy" yaml:"strategy"`
	Method   string `json:"method" yaml:"method"`

	Initial Stage `json:"initial" yaml:"initial"`
	Final   Stage `json:"final" yaml:"final"`

	// Improvement is (initial − final) / initial in percent; negative when
	// the cost grew, 0 when the initial cost is 0.
	Improvement float64 `json:"improvement_pct" yaml:"improvement_pct"`

	Seconds    float64            `json:"seconds" yaml:"seconds"`
	Assignment problem.Assignment `json:"assignment" yaml:"assignment,flow"`
	Analysis   verify.Analysis    `json:"analysis" yaml:"analysis"`
}

// Report is the output of a Suite.
type Report struct {
	ID        string    `json:"id" yaml:"id"`
	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	Seconds   float64   `json:"seconds" yaml:"seconds"`
	Outcomes  []Outcome `json:"outcomes" yaml:"outcomes"`
}

// Format is a report encoding.
type Format string

// Report encodings.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// improvement computes Outcome.Improvement.
func improvement(initial, final float64) float64 {
	if initial <= 0 {
		return 0
	}

	return (initial - final) / initial * 100
}
