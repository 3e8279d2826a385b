package testhelper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrStackUnderflow indicates an operator without enough operands.
	ErrStackUnderflow = errors.New("postfix: stack underflow")
	// ErrDivisionByZero indicates a '/' with a zero right operand.
	ErrDivisionByZero = errors.New("postfix: division by zero")
	// ErrLeftoverOperands indicates more than one value left after evaluation.
	ErrLeftoverOperands = errors.New("postfix: leftover operands")
)

// EvalPostfix evaluates a whitespace separated postfix expression with a
// value stack. Numbers are kept as exact decimals; only division rounds,
// to decimal.DivisionPrecision places.
func EvalPostfix(src string) (decimal.Decimal, error) {
	var stack []decimal.Decimal

	for _, tok := range strings.Fields(src) {
		switch tok {
		case "+", "-", "*", "/":
			if len(stack) < 2 {
				return decimal.Zero, fmt.Errorf("%w: operator '%s'", ErrStackUnderflow, tok)
			}

			lhs, rhs := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]

			var v decimal.Decimal

			switch tok {
			case "+":
				v = lhs.Add(rhs)
			case "-":
				v = lhs.Sub(rhs)
			case "*":
				v = lhs.Mul(rhs)
			case "/":
				if rhs.IsZero() {
					return decimal.Zero, ErrDivisionByZero
				}

				v = lhs.Div(rhs)
			}

			stack = append(stack, v)
		default:
			d, err := decimal.NewFromString(tok)
			if err != nil {
				return decimal.Zero, fmt.Errorf("postfix: bad operand '%s': %w", tok, err)
			}

			stack = append(stack, d)
		}
	}

	if len(stack) != 1 {
		return decimal.Zero, fmt.Errorf("%w: %d values on stack", ErrLeftoverOperands, len(stack))
	}

	return stack[0], nil
}
