// Package funcs is the library of named example feedback functions. Each
// entry builds a feedback rule bound to a concrete register length,
// rejecting lengths the rule is not defined for, so the decomposition
// engine never sees a partial rule.
package funcs

import (
	"fmt"
	"sort"

	"github.com/keystream/nfsr-cycles/internal/nfsr/register"
)

// Function describes one named feedback rule.
type Function struct {
	// Name is the registry key used on the command line.
	Name string

	// Description is a one-line human-readable summary.
	Description string

	// MinLength is the smallest register length the rule is defined for.
	MinLength int

	// RecommendedLength is a sensible register length for exploring the
	// rule's cycle structure.
	RecommendedLength int

	// Build returns the rule bound to a register of length n.
	Build func(n int) (register.Feedback, error)
}

// galoisTaps maps register lengths to tap positions producing
// maximum-length sequences.
var galoisTaps = map[int][]int{
	2:  {0, 1},
	3:  {0, 1},
	4:  {0, 1},
	5:  {0, 2},
	6:  {0, 1},
	7:  {0, 1},
	8:  {0, 2, 3, 4},
	9:  {0, 4},
	10: {0, 3},
	11: {0, 2},
	15: {0, 1},
	16: {0, 1, 3, 12},
	17: {0, 3},
	18: {0, 7},
	19: {0, 1, 4, 18},
	20: {0, 3},
	21: {0, 2},
	22: {0, 1},
	23: {0, 5},
	24: {0, 1, 3, 4},
	25: {0, 3},
	28: {0, 3},
	29: {0, 2},
	30: {0, 1, 4, 6},
	31: {0, 3},
	32: {0, 1, 2, 22},
}

var registry = map[string]Function{
	"grain": {
		Name:              "grain",
		Description:       "Simplified Grain stream cipher feedback: x0^x1^x3^x4 ^ x1x2 ^ x2x3 ^ x3x4",
		MinLength:         5,
		RecommendedLength: 5,
		Build: fixed(5, func(b []uint8) uint8 {
			linear := b[0] ^ b[1] ^ b[3] ^ b[4]
			nonlinear := (b[1] & b[2]) ^ (b[2] & b[3]) ^ (b[3] & b[4])
			return linear ^ nonlinear
		}),
	},
	"trivium": {
		Name:              "trivium",
		Description:       "Simplified Trivium stream cipher feedback: x0 ^ x2 ^ x1x2",
		MinLength:         3,
		RecommendedLength: 4,
		Build: fixed(3, func(b []uint8) uint8 {
			return b[0] ^ b[2] ^ (b[1] & b[2])
		}),
	},
	"alternating-step": {
		Name:              "alternating-step",
		Description:       "Alternating step generator: x1 if x0 is set, else x2",
		MinLength:         3,
		RecommendedLength: 4,
		Build: fixed(3, func(b []uint8) uint8 {
			if b[0] == 1 {
				return b[1]
			}
			return b[2]
		}),
	},
	"majority": {
		Name:              "majority",
		Description:       "Majority vote over all bits; even-length ties resolve to 0",
		MinLength:         1,
		RecommendedLength: 5,
		Build: fixed(1, func(b []uint8) uint8 {
			ones := 0
			for _, x := range b {
				ones += int(x)
			}
			if ones > len(b)/2 {
				return 1
			}
			return 0
		}),
	},
	"threshold70": {
		Name:              "threshold70",
		Description:       "1 when at least 70% of the bits are set",
		MinLength:         1,
		RecommendedLength: 5,
		Build: fixed(1, func(b []uint8) uint8 {
			ones := 0
			for _, x := range b {
				ones += int(x)
			}
			// ones/n >= 0.7 without floating point.
			if 10*ones >= 7*len(b) {
				return 1
			}
			return 0
		}),
	},
	"parity": {
		Name:              "parity",
		Description:       "Even parity: XOR of all bits",
		MinLength:         1,
		RecommendedLength: 4,
		Build: fixed(1, func(b []uint8) uint8 {
			var s uint8
			for _, x := range b {
				s ^= x
			}
			return s
		}),
	},
	"galois-lfsr": {
		Name:              "galois-lfsr",
		Description:       "Maximum-length LFSR taps for the chosen register length",
		MinLength:         2,
		RecommendedLength: 8,
		Build: func(n int) (register.Feedback, error) {
			taps, ok := galoisTaps[n]
			if !ok {
				return nil, fmt.Errorf("no tap positions defined for register length %d", n)
			}
			return func(b []uint8) uint8 {
				var s uint8
				for _, t := range taps {
					s ^= b[t]
				}
				return s
			}, nil
		},
	},
	"fibonacci": {
		Name:              "fibonacci",
		Description:       "Two-tap Fibonacci LFSR feedback: x0 ^ x1",
		MinLength:         2,
		RecommendedLength: 4,
		Build: fixed(2, func(b []uint8) uint8 {
			return b[0] ^ b[1]
		}),
	},
	"example-nonlinear": {
		Name:              "example-nonlinear",
		Description:       "Small nonlinear demo rule: x0 ^ x1x2",
		MinLength:         3,
		RecommendedLength: 3,
		Build: fixed(3, func(b []uint8) uint8 {
			return b[0] ^ (b[1] & b[2])
		}),
	},
}

// fixed wraps a length-independent rule with a minimum-length check.
func fixed(min int, fb register.Feedback) func(int) (register.Feedback, error) {
	return func(n int) (register.Feedback, error) {
		if n < min {
			return nil, fmt.Errorf("rule requires at least %d bits, register has %d", min, n)
		}
		return fb, nil
	}
}

// Lookup returns the named function.
func Lookup(name string) (Function, error) {
	f, ok := registry[name]
	if !ok {
		return Function{}, fmt.Errorf("unknown feedback function %q", name)
	}
	return f, nil
}

// Names returns all registered function names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered function, sorted by name.
func All() []Function {
	fns := make([]Function, 0, len(registry))
	for _, name := range Names() {
		fns = append(fns, registry[name])
	}
	return fns
}
