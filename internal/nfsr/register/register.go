// Package register implements the state transition function of a feedback
// shift register: decode a state into bits, evaluate the feedback rule,
// shift, and re-encode.
package register

import "fmt"

// MaxLength is the largest register length the transition function accepts.
// States are packed into a uint64 and bit n-1 must stay addressable.
const MaxLength = 63

// Feedback computes the new bit shifted into the register from the current
// bit vector. bits[0] is the front of the register. Implementations must be
// total over all 2^n inputs and deterministic; the slice is owned by the
// caller and must not be retained.
type Feedback func(bits []uint8) uint8

// Register holds a fixed-length shift register and its feedback rule.
// The bit at index 0 is the front of the register and maps to the least
// significant bit of the packed state.
type Register struct {
	length   int
	feedback Feedback
	buf      []uint8 // scratch bit vector, reused across Next calls
}

// New creates a register of the given length driven by the given feedback
// rule.
func New(length int, feedback Feedback) (*Register, error) {
	if length < 1 || length > MaxLength {
		return nil, fmt.Errorf("register length must be in [1, %d], got %d", MaxLength, length)
	}
	if feedback == nil {
		return nil, fmt.Errorf("feedback rule must not be nil")
	}
	return &Register{
		length:   length,
		feedback: feedback,
		buf:      make([]uint8, length),
	}, nil
}

// Length returns the register length n.
func (r *Register) Length() int {
	return r.length
}

// States returns the size of the state space, 2^n.
func (r *Register) States() uint64 {
	return uint64(1) << uint(r.length)
}

// Next computes the unique successor of state: the register contents shift
// one position toward the front (x'[i] = x[i+1]) and the feedback bit fills
// the vacated end (x'[n-1] = feedback(x)). For length 1 the single bit is
// replaced by the feedback bit.
func (r *Register) Next(state uint64) (uint64, error) {
	if state >= r.States() {
		return 0, fmt.Errorf("state %d out of range [0, %d)", state, r.States())
	}
	Unpack(state, r.length, r.buf)
	fb := r.feedback(r.buf) & 1
	return (state >> 1) | (uint64(fb) << uint(r.length-1)), nil
}

// Unpack decodes state into buf, front bit first: buf[i] = bit i of state.
// buf must have length n.
func Unpack(state uint64, n int, buf []uint8) {
	for i := 0; i < n; i++ {
		buf[i] = uint8((state >> uint(i)) & 1)
	}
}

// Pack is the inverse of Unpack: bits[0] becomes the least significant bit.
func Pack(bits []uint8) uint64 {
	var state uint64
	for i, b := range bits {
		state |= uint64(b&1) << uint(i)
	}
	return state
}
