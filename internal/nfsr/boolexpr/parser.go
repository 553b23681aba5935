package boolexpr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// tokenKind classifies lexer output.
type tokenKind int

const (
	tokVar tokenKind = iota // x[i]
	tokLit                  // 0 or 1
	tokNot
	tokAnd
	tokXor
	tokOr
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind  tokenKind
	index int   // bit index for tokVar
	value uint8 // literal value for tokLit
	pos   int   // byte offset in the input, for error messages
	text  string
}

// lex splits expr into tokens. Word operators are matched
// case-insensitively so expressions copied from papers (AND, xor, Not)
// parse unchanged.
func lex(expr string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i, text: "("})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i, text: ")"})
			i++
		case c == '!' || c == '~':
			toks = append(toks, token{kind: tokNot, pos: i, text: string(c)})
			i++
		case c == '&':
			toks = append(toks, token{kind: tokAnd, pos: i, text: "&"})
			i++
		case c == '^':
			toks = append(toks, token{kind: tokXor, pos: i, text: "^"})
			i++
		case c == '|':
			toks = append(toks, token{kind: tokOr, pos: i, text: "|"})
			i++
		case c == '0' || c == '1':
			toks = append(toks, token{kind: tokLit, value: c - '0', pos: i, text: string(c)})
			i++
		case unicode.IsLetter(rune(c)):
			start := i
			for i < len(expr) && unicode.IsLetter(rune(expr[i])) {
				i++
			}
			word := expr[start:i]
			switch strings.ToLower(word) {
			case "x":
				tok, next, err := lexIndex(expr, i, start)
				if err != nil {
					return nil, err
				}
				toks = append(toks, tok)
				i = next
			case "not":
				toks = append(toks, token{kind: tokNot, pos: start, text: word})
			case "and":
				toks = append(toks, token{kind: tokAnd, pos: start, text: word})
			case "xor":
				toks = append(toks, token{kind: tokXor, pos: start, text: word})
			case "or":
				toks = append(toks, token{kind: tokOr, pos: start, text: word})
			default:
				return nil, fmt.Errorf("unknown identifier %q at position %d", word, start)
			}
		default:
			return nil, fmt.Errorf("unexpected character %q at position %d", c, i)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(expr), text: "end of expression"})
	return toks, nil
}

// lexIndex consumes the "[i]" part of a bit reference whose "x" ended at
// offset i.
func lexIndex(expr string, i, start int) (token, int, error) {
	if i >= len(expr) || expr[i] != '[' {
		return token{}, 0, fmt.Errorf("expected '[' after 'x' at position %d", i)
	}
	i++
	digits := i
	for i < len(expr) && expr[i] >= '0' && expr[i] <= '9' {
		i++
	}
	if digits == i {
		return token{}, 0, fmt.Errorf("expected bit index after 'x[' at position %d", digits)
	}
	idx, err := strconv.Atoi(expr[digits:i])
	if err != nil {
		return token{}, 0, fmt.Errorf("invalid bit index at position %d: %w", digits, err)
	}
	if i >= len(expr) || expr[i] != ']' {
		return token{}, 0, fmt.Errorf("expected ']' after bit index at position %d", i)
	}
	return token{kind: tokVar, index: idx, pos: start, text: expr[start : i+1]}, i + 1, nil
}

// parser is a recursive-descent parser over the token stream. Grammar, from
// loosest to tightest binding:
//
//	or    := xor ( OR xor )*
//	xor   := and ( XOR and )*
//	and   := unary ( AND unary )*
//	unary := NOT unary | '(' or ')' | x[i] | 0 | 1
type parser struct {
	toks []token
	cur  int
}

// Parse builds the expression tree for expr.
func Parse(expr string) (Node, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("empty expression")
	}
	toks, err := lex(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		t := p.peek()
		return nil, fmt.Errorf("unexpected %q at position %d", t.text, t.pos)
	}
	return node, nil
}

func (p *parser) peek() token {
	return p.toks[p.cur]
}

func (p *parser) next() token {
	t := p.toks[p.cur]
	if t.kind != tokEOF {
		p.cur++
	}
	return t
}

func (p *parser) parseOr() (Node, error) {
	node, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		node = &binNode{op: opOr, l: node, r: right}
	}
	return node, nil
}

func (p *parser) parseXor() (Node, error) {
	node, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokXor {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		node = &binNode{op: opXor, l: node, r: right}
	}
	return node, nil
}

func (p *parser) parseAnd() (Node, error) {
	node, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		node = &binNode{op: opAnd, l: node, r: right}
	}
	return node, nil
}

func (p *parser) parseUnary() (Node, error) {
	switch t := p.next(); t.kind {
	case tokNot:
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &notNode{x: x}, nil
	case tokLParen:
		node, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, fmt.Errorf("expected ')' but found %q at position %d", closing.text, closing.pos)
		}
		return node, nil
	case tokVar:
		return &varNode{index: t.index}, nil
	case tokLit:
		return &litNode{value: t.value}, nil
	default:
		return nil, fmt.Errorf("expected a term but found %q at position %d", t.text, t.pos)
	}
}
