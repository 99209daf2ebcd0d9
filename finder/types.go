// Package finder defines the data model and options for exhaustive
// combinatorial search: parameters, pools, slots, scoring callbacks,
// and the functional options accepted by Search.
package finder

import (
	"context"
	"errors"
)

var (
	// ErrNilPool is returned by NewFinder when a slot references a nil *Pool.
	ErrNilPool = errors.New("finder: slot pool is nil")

	// ErrNilScoreFunc is returned by NewFinder when the scoring function is nil.
	ErrNilScoreFunc = errors.New("finder: score function is nil")
)

// Parameter is the display name of one slot. It carries no behavior and
// never influences ranking; it exists only for rendering results.
type Parameter string

// ScoreFunc evaluates one fully assigned combination. values holds one
// candidate value per slot, in slot order. The slice is reused between
// invocations and must not be retained; copy it if needed.
// Returning an error aborts the search with that error.
type ScoreFunc func(values []float64) (float64, error)

// InterpretFunc renders one combination for display. values holds one value
// per slot, in slot order. It is used only for presentation, never for
// ranking, and is invoked lazily when a ResultSet is formatted.
type InterpretFunc func(values []float64) string

// Slot binds a Parameter to the Pool it draws from, at a fixed position in
// the enumeration order. Two slots holding the same *Pool handle share one
// stock of values: a draw in one slot reduces availability for the other.
// Pools with equal contents but distinct handles remain independent stocks.
type Slot struct {
	// Param names the slot for display.
	Param Parameter

	// Pool is the stock of candidate values this slot draws from.
	Pool *Pool
}

// NewSlot pairs a parameter name with the pool it draws from.
func NewSlot(param Parameter, pool *Pool) Slot {
	return Slot{Param: param, Pool: pool}
}

// Option configures optional behavior of Search.
// Use with (*Finder).Search(k, opts...).
type Option func(*Options)

// Options holds configurable parameters for one Search call.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is polled once per slot-level iteration, the only natural progress
	// checkpoint the traversal has.
	Ctx context.Context

	// Workers sets the number of parallel workers. With Workers > 1 the
	// candidate values of the first slot are partitioned across workers,
	// each searching an independent copy of every pool. Default is 1
	// (fully sequential).
	Workers int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - Sequential search (Workers = 1)
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers returns an Option that sets the number of search workers.
// Values below 1 have no effect. Worker counts above the number of distinct
// values in the first slot's pool are clamped to that number.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}
