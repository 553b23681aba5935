package nfsr

import (
	"github.com/keystream/nfsr-cycles/internal/nfsr/boolexpr"
	"github.com/keystream/nfsr-cycles/internal/nfsr/cycles"
	"github.com/keystream/nfsr-cycles/internal/nfsr/funcs"
	"github.com/keystream/nfsr-cycles/internal/nfsr/register"
)

// Calculator is the public interface for enumerating the cycle structure of
// a feedback shift register.
type Calculator interface {
	// FindCycles partitions the full state space into the cycles induced
	// by the transition function, discarding transient tails.
	FindCycles() (*CycleSet, error)

	// Successor computes the unique next state of the given state.
	Successor(state uint64) (uint64, error)

	// Length returns the register length n.
	Length() int

	// FeedbackDescription names the feedback rule the calculator runs.
	FeedbackDescription() string
}

// calcImpl is the internal implementation of Calculator
type calcImpl struct {
	reg  *register.Register
	desc string
}

// New creates a Calculator from a validated configuration, resolving the
// feedback source (named function or expression) exactly once.
func New(cfg *Config) (Calculator, error) {
	if cfg == nil {
		return nil, newError(ErrInvalidConfig, "configuration must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var fb register.Feedback
	var desc string
	switch {
	case cfg.FeedbackName != "":
		f, err := funcs.Lookup(cfg.FeedbackName)
		if err != nil {
			return nil, wrapError(ErrUnknownFunction, err, "feedback function %q", cfg.FeedbackName)
		}
		fb, err = f.Build(cfg.RegisterLength)
		if err != nil {
			return nil, wrapError(ErrInvalidLength, err, "feedback function %q at length %d", cfg.FeedbackName, cfg.RegisterLength)
		}
		desc = f.Name
	default:
		var err error
		fb, err = boolexpr.Compile(cfg.FeedbackExpr, cfg.RegisterLength)
		if err != nil {
			return nil, wrapError(ErrExpression, err, "feedback expression %q", cfg.FeedbackExpr)
		}
		desc = cfg.FeedbackExpr
	}

	return newCalculator(cfg.RegisterLength, desc, fb)
}

// NewWithFeedback creates a Calculator around an opaque feedback rule
// supplied by the caller. The rule must be total and deterministic; desc is
// used in reports.
func NewWithFeedback(length int, desc string, fb FeedbackFunc) (Calculator, error) {
	if fb == nil {
		return nil, newError(ErrInvalidConfig, "feedback rule must not be nil")
	}
	if length < 1 || length > cycles.MaxLength {
		return nil, newError(ErrInvalidLength, "register length must be in [1, %d], got %d", cycles.MaxLength, length)
	}
	return newCalculator(length, desc, fb)
}

func newCalculator(length int, desc string, fb register.Feedback) (Calculator, error) {
	reg, err := register.New(length, fb)
	if err != nil {
		return nil, wrapError(ErrInvalidLength, err, "register construction")
	}
	return &calcImpl{reg: reg, desc: desc}, nil
}

// FindCycles partitions the state space into cycles
func (c *calcImpl) FindCycles() (*CycleSet, error) {
	res, err := cycles.Decompose(c.reg)
	if err != nil {
		return nil, wrapError(ErrDecomposition, err, "cycle decomposition")
	}
	return res, nil
}

// Successor computes the next state
func (c *calcImpl) Successor(state uint64) (uint64, error) {
	next, err := c.reg.Next(state)
	if err != nil {
		return 0, wrapError(ErrDecomposition, err, "successor of state %d", state)
	}
	return next, nil
}

// Length returns the register length
func (c *calcImpl) Length() int {
	return c.reg.Length()
}

// FeedbackDescription names the feedback rule
func (c *calcImpl) FeedbackDescription() string {
	return c.desc
}

// FunctionNames returns the names of the built-in feedback function library
// in sorted order.
func FunctionNames() []string {
	return funcs.Names()
}
