package cip

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvchem/chem"
)

// Sentinel errors for CIP ranking.
var (
	// ErrNilAtom is returned when the center atom is nil.
	ErrNilAtom = errors.New("cip: atom is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cip: invalid option supplied")

	// ErrRoundLimit is returned when MaxRounds is reached before the
	// ranking is decided.
	ErrRoundLimit = errors.New("cip: round limit reached")
)

// Gap separates layers in a Cursor stream. It sorts below every ordinal.
const Gap = 0

// Option configures RankNeighbors and IsChiral via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of a ranking run.
type Options struct {
	// Ctx allows cancellation; it is checked once per round and once per
	// visited atom while branches are laid out.
	Ctx context.Context

	// MaxRounds, if > 0, bounds the number of rounds.
	// A value of 0 disables the limit.
	MaxRounds int

	// MaxDepth, if > 0, stops each branch walk at this distance from the
	// neighbor it starts at. A value of 0 disables the limit.
	MaxDepth int

	// Log receives round traces at V(2) and outcomes at V(1).
	Log logr.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no round or
// depth limit and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
		Log: logr.Discard(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxRounds bounds the number of rounds.
//
//	n > 0: at most n rounds, then ErrRoundLimit
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// WithMaxDepth bounds how far each neighbor's branch is explored.
//
//	d > 0: layers beyond distance d are never produced
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLogger attaches a logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Log = l }
}

// parseOptions applies opts over DefaultOptions and surfaces the first
// recorded violation.
func parseOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Ranking is the outcome of RankNeighbors.
type Ranking struct {
	// Order lists the neighbors from highest to lowest precedence.
	Order []*chem.Atom

	// Histories holds the ordinal stream pulled for each entry of Order.
	Histories [][]int

	// Unique is false when some neighbors could not be told apart; Order is
	// then the best partial order available.
	Unique bool
}
