package runner

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathkit/puzzle"
)

// Options controls Run.
type Options struct {
	// Watch logs every part's answer and duration at info level.
	Watch bool
	// Logger receives watch records. Discards by default.
	Logger *slog.Logger
}

// Option configures Run.
type Option func(*Options)

// WithWatch toggles watch mode.
func WithWatch(on bool) Option {
	return func(o *Options) { o.Watch = on }
}

// WithLogger routes watch records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// PartResult is the outcome of one part.
type PartResult struct {
	Answer  any
	Err     error
	Elapsed time.Duration
}

// Report holds the outcome of both parts.
type Report struct {
	Part1, Part2 PartResult
}

// Failed reports whether either part returned an error or panicked.
func (r Report) Failed() bool {
	return r.Part1.Err != nil || r.Part2.Err != nil
}

// Run executes both parts of s against in and writes their answers to w.
func Run(w io.Writer, s Solver, in puzzle.Input, opts ...Option) Report {
	o := Options{Logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	var rep Report
	rep.Part1 = runPart(w, 1, s.Part1, in, o)
	rep.Part2 = runPart(w, 2, s.Part2, in, o)
	return rep
}

func runPart(w io.Writer, n int, part func(puzzle.Input) (any, error), in puzzle.Input, o Options) PartResult {
	fmt.Fprintf(w, "Part %d:\n", n)

	start := time.Now()
	ans, err := guard(part, in)
	res := PartResult{Answer: ans, Err: err, Elapsed: time.Since(start)}

	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
	} else {
		fmt.Fprintln(w, ans)
	}

	if o.Watch {
		if err != nil {
			o.Logger.Error("part failed", "part", n, "test", in.Test, "elapsed", res.Elapsed, "err", err)
		} else {
			o.Logger.Info("part finished", "part", n, "test", in.Test, "elapsed", res.Elapsed, "answer", ans)
		}
	}
	return res
}

// guard calls part and turns a panic into ErrPanic.
func guard(part func(puzzle.Input) (any, error), in puzzle.Input) (ans any, err error) {
	defer func() {
		if r := recover(); r != nil {
			ans, err = nil, fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return part(in)
}
