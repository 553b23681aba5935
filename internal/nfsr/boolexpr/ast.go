// Package boolexpr compiles user-supplied feedback expressions into typed
// boolean expression trees over the register bits. Expressions reference
// bits as x[i] and combine them with NOT, AND, XOR and OR (in that
// precedence order, NOT binding tightest); the literals 0 and 1 and
// parentheses are also accepted. Operators may be spelled symbolically
// (!, ~, &, ^, |) or as case-insensitive words (NOT, AND, XOR, OR).
package boolexpr

import (
	"fmt"

	"github.com/keystream/nfsr-cycles/internal/nfsr/register"
)

// Node is a node of a parsed boolean expression tree.
type Node interface {
	// Eval computes the node's bit value for the given register bits.
	Eval(bits []uint8) uint8

	// MaxIndex returns the largest bit index the subtree references,
	// or -1 if it references none.
	MaxIndex() int

	// String renders the subtree in symbolic form.
	String() string
}

// varNode is a reference to register bit x[index].
type varNode struct {
	index int
}

func (v *varNode) Eval(bits []uint8) uint8 { return bits[v.index] & 1 }
func (v *varNode) MaxIndex() int           { return v.index }
func (v *varNode) String() string          { return fmt.Sprintf("x[%d]", v.index) }

// litNode is a constant 0 or 1.
type litNode struct {
	value uint8
}

func (l *litNode) Eval([]uint8) uint8 { return l.value }
func (l *litNode) MaxIndex() int      { return -1 }
func (l *litNode) String() string     { return fmt.Sprintf("%d", l.value) }

// notNode negates its operand.
type notNode struct {
	x Node
}

func (n *notNode) Eval(bits []uint8) uint8 { return n.x.Eval(bits) ^ 1 }
func (n *notNode) MaxIndex() int           { return n.x.MaxIndex() }
func (n *notNode) String() string          { return "!" + n.x.String() }

// binOp identifies a binary boolean operator.
type binOp int

const (
	opAnd binOp = iota
	opXor
	opOr
)

func (op binOp) String() string {
	switch op {
	case opAnd:
		return "&"
	case opXor:
		return "^"
	case opOr:
		return "|"
	default:
		return "?"
	}
}

// binNode applies a binary operator to two subtrees.
type binNode struct {
	op   binOp
	l, r Node
}

func (b *binNode) Eval(bits []uint8) uint8 {
	lv, rv := b.l.Eval(bits), b.r.Eval(bits)
	switch b.op {
	case opAnd:
		return lv & rv
	case opXor:
		return lv ^ rv
	default:
		return lv | rv
	}
}

func (b *binNode) MaxIndex() int {
	l, r := b.l.MaxIndex(), b.r.MaxIndex()
	if l > r {
		return l
	}
	return r
}

func (b *binNode) String() string {
	return fmt.Sprintf("(%s %s %s)", b.l, b.op, b.r)
}

// Compile parses expr and binds it against a register of length n,
// rejecting any bit reference outside [0, n). The returned feedback rule is
// pure: it evaluates the tree against the supplied bits on every call.
func Compile(expr string, n int) (register.Feedback, error) {
	node, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	if max := node.MaxIndex(); max >= n {
		return nil, fmt.Errorf("expression references x[%d] but the register has only %d bits", max, n)
	}
	return node.Eval, nil
}
