// Package search defines outcomes, tunable options, and sentinel errors
// for the search subpackage of github.com/katalvlaran/gridsearch.
package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for stepper construction and driving.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStepLimit is returned by Run when the step budget is exhausted
	// before the search reaches a terminal outcome.
	ErrStepLimit = errors.New("search: step limit reached before a terminal outcome")
)

// Outcome is the stepper's state-machine position. The zero value is
// Pending (constructed, not yet initialized); a Stepper returned by
// NewStepper already reports Continue.
type Outcome uint8

const (
	// Pending marks a stepper that has not begun searching.
	Pending Outcome = iota
	// Continue marks an active search with pending frontier nodes.
	Continue
	// FoundSolution is the terminal success outcome.
	FoundSolution
	// NoSolution is the terminal exhausted-frontier outcome.
	NoSolution
)

// String returns the human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Pending:
		return "Pending"
	case Continue:
		return "Continue"
	case FoundSolution:
		return "FoundSolution"
	case NoSolution:
		return "NoSolution"
	}

	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Terminal reports whether o is one of the two terminal outcomes.
func (o Outcome) Terminal() bool {
	return o == FoundSolution || o == NoSolution
}

// Option configures stepper behavior via functional arguments.
// An invalid Option (e.g. negative step budget) is recorded internally
// and surfaced as ErrOptionViolation when NewStepper is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a search run.
type Options struct {
	// Ctx allows Run to honor cancellation and deadlines. Step itself
	// never blocks and ignores it.
	Ctx context.Context

	// MaxSteps, if > 0, caps the number of Step calls Run performs.
	// A value of 0 explicitly disables the budget.
	MaxSteps int

	// OnStep is called after every completed step with the resulting
	// outcome and the explored-node count so far.
	OnStep func(outcome Outcome, explored int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no step budget (MaxSteps == 0)
//   - no-op OnStep hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		OnStep:   func(Outcome, int) {},
		err:      nil,
	}
}

// WithContext sets a custom context consulted by Run between steps.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps caps the number of steps Run performs.
//
//	n > 0: budget of n steps
//	n == 0: explicit no budget
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no budget"
			o.MaxSteps = 0
		default:
			o.MaxSteps = n
		}
	}
}

// WithOnStep registers a callback to run after each completed step.
func WithOnStep(fn func(outcome Outcome, explored int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
