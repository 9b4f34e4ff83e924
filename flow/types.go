package flow

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/wallcut/core"
)

var (
	// ErrGraphNil is returned when a nil network is passed.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the source id is out of range.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink id is out of range.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameVertex is returned when source and sink coincide.
	ErrSameVertex = errors.New("flow: source and sink must differ")

	// ErrPhaseLimit is returned when FlowOptions.MaxPhases is exceeded.
	ErrPhaseLimit = errors.New("flow: phase limit exceeded")
)

// EdgeError is returned when an edge carries a negative residual weight
// before solving starts.
type EdgeError struct {
	From, To core.Vertex
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures the max-flow engine.
//   - Logger: receives one debug record per phase and per augmentation.
//   - MaxPhases: abort with ErrPhaseLimit after this many phases (0 = unlimited).
type FlowOptions struct {
	Logger    *slog.Logger
	MaxPhases int
}

// Option mutates FlowOptions.
type Option func(*FlowOptions)

// DefaultOptions returns production defaults: a discarding logger and
// no phase limit.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger routes debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *FlowOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxPhases caps the number of blocking-flow phases. Phases are
// bounded by the vertex count, so a limit only trips on corrupted input.
func WithMaxPhases(n int) Option {
	return func(o *FlowOptions) {
		if n >= 0 {
			o.MaxPhases = n
		}
	}
}

// Result is the outcome of MinCut.
//
// Cut lists the saturated arcs leaving the source side of the final
// residual graph, in vertex order. CutCapacity is the sum of their
// initial capacities and always equals MaxFlow.
type Result struct {
	MaxFlow       int64
	Cut           []core.Arc
	CutCapacity   int64
	SourceSide    int
	Phases        int
	Augmentations int
}
