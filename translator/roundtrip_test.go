package translator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/cel-go/cel"
	"github.com/shibukawa/postfix/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalInfix evaluates src as a CEL expression. Every literal produced by
// genExpr is a double, so CEL applies ordinary floating point arithmetic.
func evalInfix(t *testing.T, env *cel.Env, src string) float64 {
	t.Helper()

	ast, issues := env.Compile(src)
	if issues != nil && issues.Err() != nil {
		t.Fatalf("CEL compilation error for %q: %v", src, issues.Err())
	}

	program, err := env.Program(ast)
	require.NoError(t, err)

	out, _, err := program.Eval(map[string]any{})
	require.NoError(t, err, src)

	v, ok := out.Value().(float64)
	require.True(t, ok, "CEL result of %q is %T", src, out.Value())

	return v
}

func genLiteral(r *rand.Rand) string {
	return fmt.Sprintf("%d.%d", 1+r.IntN(9), r.IntN(10))
}

// genExpr builds a random well-formed expression. Right operands of '/'
// are always literals so divisors never cancel out to zero.
func genExpr(r *rand.Rand, depth int) string {
	if depth == 0 || r.IntN(4) == 0 {
		return genLiteral(r)
	}

	op := "+-*/"[r.IntN(4)]

	lhs := genExpr(r, depth-1)

	rhs := genLiteral(r)
	if op != '/' {
		rhs = genExpr(r, depth-1)
	}

	s := lhs + string(op) + rhs
	if r.IntN(3) == 0 {
		s = "(" + s + ")"
	}

	return s
}

func TestTranslate_RoundTrip(t *testing.T) {
	env, err := cel.NewEnv()
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(20260101, 42))

	for range 300 {
		src := genExpr(r, 3)

		postfix, err := Translate(src, Options{Separator: " "})
		if !assert.NoError(t, err, src) {
			continue
		}

		got, err := testhelper.EvalPostfix(postfix)
		if errors.Is(err, testhelper.ErrDivisionByZero) {
			continue
		}

		if !assert.NoError(t, err, "%s => %s", src, postfix) {
			continue
		}

		want := evalInfix(t, env, src)
		gotF := got.InexactFloat64()

		tolerance := 1e-6 * math.Max(1, math.Abs(want))
		assert.InDelta(t, want, gotF, tolerance, "%s => %s", src, postfix)
	}
}

func TestTranslate_RoundTripScientific(t *testing.T) {
	env, err := cel.NewEnv()
	require.NoError(t, err)

	inputs := []string{
		"9e9-5e2+(2e3+3.14*114.321)*7.1/9.0*(9.1+5.55e-1)",
		"1.5e2/2.5e1",
		"(1.0e1-2.5)*(4.0+6.0e-1)",
	}

	for _, src := range inputs {
		postfix, err := Translate(src, Options{Separator: " "})
		require.NoError(t, err)
		assert.NotContains(t, postfix, "(")

		got, err := testhelper.EvalPostfix(postfix)
		require.NoError(t, err)

		want := evalInfix(t, env, src)
		assert.InDelta(t, want, got.InexactFloat64(), 1e-6*math.Max(1, math.Abs(want)), src)
	}
}

func TestTranslate_OutputHasNoParentheses(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))

	for range 100 {
		src := genExpr(r, 4)

		postfix, err := Translate(src)
		require.NoError(t, err, src)
		assert.False(t, strings.ContainsAny(postfix, "()"), postfix)
	}
}
