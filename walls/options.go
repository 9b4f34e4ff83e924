package walls

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/wallcut/flow"
	"github.com/katalvlaran/wallcut/gridgraph"
)

// Options configures Solve, SolveRoom and SolveAll.
//   - Logger: debug records for network size and solve outcome.
//   - ExitBuffer: classify NEAR_EXIT tiles (default true).
//   - Verify: run Verify on the result and fail with its error.
//   - MaxPhases: forwarded to flow.WithMaxPhases.
//   - Concurrency: SolveAll worker limit (default GOMAXPROCS).
type Options struct {
	Logger      *slog.Logger
	ExitBuffer  bool
	Verify      bool
	MaxPhases   int
	Concurrency int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a discarding logger, exit buffer on, no
// verification, no phase limit and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		ExitBuffer:  true,
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithLogger routes debug records (including the flow engine's) to l.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithoutExitBuffer disables NEAR_EXIT classification; see
// gridgraph.WithoutExitBuffer.
func WithoutExitBuffer() Option {
	return func(o *Options) { o.ExitBuffer = false }
}

// WithVerify makes every solve check its own result with Verify.
func WithVerify() Option {
	return func(o *Options) { o.Verify = true }
}

// WithMaxPhases caps the flow engine's phases (0 = unlimited).
func WithMaxPhases(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxPhases = n
		}
	}
}

// WithConcurrency bounds the number of rooms SolveAll solves at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Concurrency = n
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) roomOptions() []gridgraph.RoomOption {
	if o.ExitBuffer {
		return nil
	}

	return []gridgraph.RoomOption{gridgraph.WithoutExitBuffer()}
}

func (o Options) flowOptions() []flow.Option {
	return []flow.Option{flow.WithLogger(o.Logger), flow.WithMaxPhases(o.MaxPhases)}
}
