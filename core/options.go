package core

import (
	"context"
	"fmt"
	"log/slog"
)

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the search starts.
type Option func(*Options)

// Options holds the knobs shared by every search engine.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit once that many
	// states have been expanded. 0 means no limit.
	MaxExpansions int

	// Logger receives debug-level trace records. Discards by default.
	Logger *slog.Logger

	// OnExpand is called after each expansion with the running count.
	OnExpand func(expanded int)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion limit
//   - a logger that discards everything
//   - a no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		Logger:        slog.New(slog.DiscardHandler),
		OnExpand:      func(int) {},
	}
}

// Apply builds Options from defaults and opts, returning the first
// recorded violation.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expanded states.
//
//	n > 0:  limit to n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger routes trace records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run after every expansion.
func WithOnExpand(fn func(expanded int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Step records one expansion: it checks cancellation, enforces the
// expansion cap and runs the OnExpand hook. Engines call it right before
// enumerating neighbors; expanded is the count including this one.
func (o *Options) Step(expanded int) error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
	}
	if o.MaxExpansions > 0 && expanded > o.MaxExpansions {
		return fmt.Errorf("%w: %d", ErrExpansionLimit, o.MaxExpansions)
	}
	o.OnExpand(expanded)
	return nil
}
