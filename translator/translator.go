// Package translator turns infix arithmetic into postfix (Reverse Polish) notation.
//
// It is a recursive-descent parser for the left-recursion-free grammar
//
//	expr   --> term rest
//	rest   --> + term rest | - term rest | ε
//	term   --> factor other
//	other  --> * factor other | / factor other | ε
//	factor --> ( expr ) | num
//
// Each rule synthesizes the postfix string of the text it consumed; no tree
// is built.
package translator

import (
	"strconv"
	"strings"
)

// Options tune the output of a translation.
type Options struct {
	// Separator is written between output tokens. The zero value
	// concatenates them, so "1+2" becomes "12+".
	Separator string
}

// Translate converts the infix expression src to postfix.
// The whole of src must form a single expression.
func Translate(src string, opts ...Options) (string, error) {
	return TranslateCursor(NewCursor(src), opts...)
}

// TranslateCursor translates the expression read from c. On success c is
// exhausted; on failure it is left at the offending character.
func TranslateCursor(c Cursor, opts ...Options) (string, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	p := &parser{cur: c, sep: o.Separator}

	res, err := p.expr()
	if err != nil {
		return "", err
	}

	if r, ok := c.Peek(); ok {
		return "", &SyntaxError{Err: ErrUnconsumedTrailingInput, Offset: c.Offset(), Char: r, Detail: "expected operator or end of input"}
	}

	return res, nil
}

type parser struct {
	cur Cursor
	sep string
}

func (p *parser) expr() (string, error) {
	t, err := p.term()
	if err != nil {
		return "", err
	}

	r, err := p.rest()
	if err != nil {
		return "", err
	}

	return p.join(t, r), nil
}

// rest handles the additive operators following a term.
func (p *parser) rest() (string, error) {
	op, ok := p.cur.Peek()
	if !ok || (op != '+' && op != '-') {
		return "", nil
	}

	p.cur.Next()

	t, err := p.term()
	if err != nil {
		return "", err
	}

	r, err := p.rest()
	if err != nil {
		return "", err
	}

	return p.join(t, string(op), r), nil
}

func (p *parser) term() (string, error) {
	f, err := p.factor()
	if err != nil {
		return "", err
	}

	o, err := p.other()
	if err != nil {
		return "", err
	}

	return p.join(f, o), nil
}

// other handles the multiplicative operators following a factor.
func (p *parser) other() (string, error) {
	op, ok := p.cur.Peek()
	if !ok || (op != '*' && op != '/') {
		return "", nil
	}

	p.cur.Next()

	f, err := p.factor()
	if err != nil {
		return "", err
	}

	o, err := p.other()
	if err != nil {
		return "", err
	}

	return p.join(f, string(op), o), nil
}

func (p *parser) factor() (string, error) {
	r, ok := p.cur.Peek()
	switch {
	case !ok:
		return "", p.fail(ErrPrematureEndOfInput, "expected number or '('")
	case r == '(':
		open := p.cur.Offset()
		p.cur.Next()

		inner, err := p.expr()
		if err != nil {
			return "", err
		}

		if c, ok := p.cur.Peek(); !ok || c != ')' {
			return "", p.fail(ErrUnmatchedParenthesis, "expected ')' closing '(' at position "+strconv.Itoa(open+1))
		}

		p.cur.Next()

		return inner, nil
	case isDigit(r):
		return p.number()
	default:
		return "", p.fail(ErrUnexpectedCharacter, "expected number or '('")
	}
}

// number scans digit+ ('.' digit+)? ([eE] [+-]? digit+)? and returns it verbatim.
func (p *parser) number() (string, error) {
	var b strings.Builder

	p.digits(&b)

	if r, ok := p.cur.Peek(); ok && r == '.' {
		b.WriteRune(r)
		p.cur.Next()

		if p.digits(&b) == 0 {
			return "", p.fail(ErrInvalidNumber, "expected digit after '.'")
		}
	}

	if r, ok := p.cur.Peek(); ok && (r == 'e' || r == 'E') {
		b.WriteRune(r)
		p.cur.Next()

		if s, ok := p.cur.Peek(); ok && (s == '+' || s == '-') {
			b.WriteRune(s)
			p.cur.Next()
		}

		if p.digits(&b) == 0 {
			return "", p.fail(ErrInvalidNumber, "expected exponent digits")
		}
	}

	return b.String(), nil
}

func (p *parser) digits(b *strings.Builder) int {
	n := 0

	for {
		r, ok := p.cur.Peek()
		if !ok || !isDigit(r) {
			return n
		}

		b.WriteRune(r)
		p.cur.Next()
		n++
	}
}

// join concatenates synthesized attributes, placing the separator between
// non-empty ones.
func (p *parser) join(parts ...string) string {
	if p.sep == "" {
		return strings.Join(parts, "")
	}

	nonEmpty := parts[:0:0]
	for _, s := range parts {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	return strings.Join(nonEmpty, p.sep)
}

func (p *parser) fail(sentinel error, detail string) error {
	r, ok := p.cur.Peek()

	return &SyntaxError{Err: sentinel, Offset: p.cur.Offset(), Char: r, AtEOF: !ok, Detail: detail}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
