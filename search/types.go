package search

import (
	"errors"
	"time"
)

// Sentinel errors returned by Solve and Reconstruct.
var (
	// ErrNilGraph indicates a nil *graph.Graph was supplied.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNodeNotFound indicates the start or a target node is absent from
	// the graph. Detected before the search loop; consumes no budget.
	ErrNodeNotFound = errors.New("search: node not found in graph")

	// ErrTooManyTargets indicates more than 64 distinct targets were
	// requested; the visited-subset bitmask cannot represent them.
	ErrTooManyTargets = errors.New("search: more than 64 distinct targets")

	// ErrBrokenPath indicates a reconstructed path references an edge the
	// graph does not contain. The search only walks existing edges, so this
	// is an internal-consistency defect, never a user-input condition.
	ErrBrokenPath = errors.New("search: path references a missing edge")

	// ErrBadMaxIterations indicates a negative iteration budget.
	ErrBadMaxIterations = errors.New("search: MaxIterations must be non-negative")

	// ErrBadTimeLimit indicates a non-positive time budget.
	ErrBadTimeLimit = errors.New("search: TimeLimit must be positive")
)

// Default budgets for a Solve call.
const (
	// DefaultMaxIterations bounds the number of frontier pops.
	DefaultMaxIterations = 200_000

	// DefaultTimeLimit bounds wall-clock time, checked once per pop.
	DefaultTimeLimit = 10 * time.Second
)

// epsilon is the dominance tolerance: a successor is re-queued only when
// its cost beats the best known one by more than this, so floating-point
// noise never causes redundant expansions.
const epsilon = 1e-9

// StopReason records why the search loop ended. Callers distinguish only
// Found vs. not found; the reason exists so adapters can log which
// no-result case occurred.
type StopReason int

const (
	// ReasonGoal: an optimal route was popped.
	ReasonGoal StopReason = iota

	// ReasonExhausted: the frontier emptied without reaching the goal
	// (targets unreachable from the start, or pruned as unreachable).
	ReasonExhausted

	// ReasonIterationLimit: the pop budget ran out.
	ReasonIterationLimit

	// ReasonTimeLimit: the wall-clock budget ran out.
	ReasonTimeLimit
)

// String returns a short human-readable label for logging.
func (r StopReason) String() string {
	switch r {
	case ReasonGoal:
		return "goal"
	case ReasonExhausted:
		return "frontier exhausted"
	case ReasonIterationLimit:
		return "iteration limit"
	case ReasonTimeLimit:
		return "time limit"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Solve call.
//
// Found=true: Path is the ordered node sequence from start through every
// target and Cost its total edge weight. Found=false: no route was proven
// within the budgets (Reason says why); this is a normal outcome, not an
// error.
type Result struct {
	Path       []string
	Cost       float64
	Found      bool
	Reason     StopReason
	Iterations int
}

// Options configures one Solve call.
type Options struct {
	// MaxIterations is the frontier-pop budget. Zero permits no pops at
	// all, which always yields a no-result.
	MaxIterations int

	// TimeLimit is the wall-clock budget, checked before each pop.
	TimeLimit time.Duration
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithMaxIterations caps the number of frontier pops. Zero is legal and
// yields an immediate no-result; negative values panic.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithTimeLimit caps wall-clock time. Non-positive durations panic.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			panic(ErrBadTimeLimit.Error())
		}
		o.TimeLimit = d
	}
}

// DefaultOptions returns the budgets used when no Option overrides them.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		TimeLimit:     DefaultTimeLimit,
	}
}
