package nfsr

import (
	"github.com/keystream/nfsr-cycles/internal/nfsr/cycles"
	"github.com/keystream/nfsr-cycles/internal/nfsr/register"
)

// FeedbackFunc computes the new bit shifted into the register from the
// current bit vector. bits[0] is the front of the register. Rules must be
// total over all 2^n inputs and deterministic.
type FeedbackFunc = register.Feedback

// Cycle is an ordered sequence of distinct states closed under the
// transition function. The first entry is the first state of the cycle
// encountered during the discovering walk.
type Cycle = cycles.Cycle

// CycleSet is the full cycle decomposition of a register's state space:
// every cycle grouped by length, plus the derived totals.
type CycleSet = cycles.Result

// LengthBucket summarizes the cycles of one length within a CycleSet.
type LengthBucket = cycles.LengthBucket

// DefaultMaxRegisterLength is the default capacity guard: configurations
// asking for longer registers are rejected before any state is enumerated.
// The engine itself supports lengths up to 30; raise the guard deliberately
// if the memory for 2^n states is actually available.
const DefaultMaxRegisterLength = 24

// Config describes one decomposition run. Exactly one of FeedbackName and
// FeedbackExpr selects the feedback rule.
type Config struct {
	// RegisterLength is the register length n; the state space has 2^n states.
	RegisterLength int

	// FeedbackName selects a rule from the named function library.
	FeedbackName string

	// FeedbackExpr is a boolean expression over x[0]..x[n-1], parsed into
	// a typed expression tree.
	FeedbackExpr string

	// MaxRegisterLength is the capacity guard applied during validation.
	// Zero means DefaultMaxRegisterLength.
	MaxRegisterLength int
}

// DefaultConfig returns a configuration with the default capacity guard and
// no feedback source selected.
func DefaultConfig() *Config {
	return &Config{
		MaxRegisterLength: DefaultMaxRegisterLength,
	}
}

// Validate checks that the configuration selects a feasible run.
func (c *Config) Validate() error {
	max := c.MaxRegisterLength
	if max == 0 {
		max = DefaultMaxRegisterLength
	}
	if max < 1 || max > cycles.MaxLength {
		return newError(ErrInvalidConfig, "max register length must be in [1, %d], got %d", cycles.MaxLength, max)
	}
	if c.RegisterLength < 1 {
		return newError(ErrInvalidLength, "register length must be positive, got %d", c.RegisterLength)
	}
	if c.RegisterLength > max {
		return newError(ErrInvalidLength, "register length %d exceeds the configured ceiling %d", c.RegisterLength, max)
	}
	if c.FeedbackName == "" && c.FeedbackExpr == "" {
		return newError(ErrInvalidConfig, "a feedback source is required: set a function name or an expression")
	}
	if c.FeedbackName != "" && c.FeedbackExpr != "" {
		return newError(ErrInvalidConfig, "feedback name and expression are mutually exclusive")
	}
	return nil
}

// WithRegisterLength sets the register length
func (c *Config) WithRegisterLength(n int) *Config {
	c.RegisterLength = n
	return c
}

// WithFeedbackName selects a named feedback function
func (c *Config) WithFeedbackName(name string) *Config {
	c.FeedbackName = name
	return c
}

// WithFeedbackExpr selects a feedback expression
func (c *Config) WithFeedbackExpr(expr string) *Config {
	c.FeedbackExpr = expr
	return c
}

// WithMaxRegisterLength sets the capacity guard
func (c *Config) WithMaxRegisterLength(max int) *Config {
	c.MaxRegisterLength = max
	return c
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	out := *c
	return &out
}
