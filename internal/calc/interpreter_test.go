package calc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// interpretLine runs a single line through the whole pipeline the way the
// REPL does, returning everything printed to the output.
func interpretLine(t *testing.T, src string) (string, *mockReporter) {
	t.Helper()

	report := newMockReporter()
	var out strings.Builder
	interpreter := NewInterpreter(&out, report)

	toks, err := NewScanner([]rune(src)).Scan()
	if err != nil {
		report.Report(err)
		return out.String(), report
	}
	exprs, err := NewParser(toks).Parse()
	interpreter.Interpret(exprs)
	if err != nil {
		report.Report(err)
	}
	return out.String(), report
}

func TestInterpretLiteralExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		eval string
	}{
		{NewLiteralExpr(1.0), "1"},
		{NewLiteralExpr(3.14), "3.14"},
		{NewLiteralExpr(3.14000), "3.14"},
		{NewLiteralExpr(4294967296.0), "4294967296"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		var out strings.Builder
		interpreter := NewInterpreter(&out, report)
		interpreter.Interpret([]Expr{tc.expr})

		assert.False(report.HadError())
		assert.False(report.HadRuntimeError())
		assert.Equal(tc.eval, strings.TrimSpace(out.String()))
	}
}

func TestInterpretUnaryExpr(t *testing.T) {
	assert := assert.New(t)

	report := newMockReporter()
	var out strings.Builder
	interpreter := NewInterpreter(&out, report)
	interpreter.Interpret([]Expr{
		NewUnaryExpr(
			NewToken(MINUS, "-", nil, 0),
			NewLiteralExpr(3.14)),
	})

	assert.False(report.HadRuntimeError())
	assert.Equal("-3.14", strings.TrimSpace(out.String()))
}

func TestInterpretBinaryExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		eval string
	}{
		{
			NewBinaryExpr(
				NewToken(PLUS, "+", nil, 2),
				NewLiteralExpr(2.0),
				NewLiteralExpr(3.0)),
			"5",
		},
		{
			NewBinaryExpr(
				NewToken(MINUS, "-", nil, 2),
				NewLiteralExpr(2.0),
				NewLiteralExpr(3.0)),
			"-1",
		},
		{
			NewBinaryExpr(
				NewToken(STAR, "*", nil, 2),
				NewLiteralExpr(2.0),
				NewLiteralExpr(3.0)),
			"6",
		},
		{
			NewBinaryExpr(
				NewToken(SLASH, "/", nil, 2),
				NewLiteralExpr(5.0),
				NewLiteralExpr(2.0)),
			"2.5",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		report := newMockReporter()
		var out strings.Builder
		interpreter := NewInterpreter(&out, report)
		interpreter.Interpret([]Expr{tc.expr})

		assert.False(report.HadRuntimeError())
		assert.Equal(tc.eval, strings.TrimSpace(out.String()))
	}
}

func TestInterpretExpressions(t *testing.T) {
	testCases := []struct {
		src  string
		eval string
	}{
		{"2 + 3 * 4", "14"},
		{"2 * 3 + 4", "10"},
		{"-2 * 3", "-6"},
		{"1 - 2 - 3", "-4"},
		{"6 / 3 / 2", "1"},
		{"1 - -5", "6"},
		{"1+2", "3"},
		{" 1 + 2 ", "3"},
		{"10.5 * 2", "21"},
		{"1.", "1"},
		{"5 / 2", "2.5"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		out, report := interpretLine(t, tc.src)

		assert.False(report.HadError())
		assert.False(report.HadRuntimeError())
		assert.Equal(tc.eval, strings.TrimSpace(out))
	}
}

func TestInterpretDivisionByZero(t *testing.T) {
	testCases := []struct {
		src string
		err string
	}{
		{"5 / 0", "[pos 2] Error at '/': Division by zero."},
		{"5 / 0.0", "[pos 2] Error at '/': Division by zero."},
		{"10 / -0", "[pos 3] Error at '/': Division by zero."},
		{"1 + 4 / 0", "[pos 6] Error at '/': Division by zero."},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		out, report := interpretLine(t, tc.src)

		assert.Empty(out)
		assert.True(report.HadRuntimeError())
		assert.EqualError(report.errors[0], tc.err)
	}
}

func TestInterpretTermsIndependently(t *testing.T) {
	assert := assert.New(t)

	// the first term fails at runtime, the second still prints
	out, report := interpretLine(t, "1 / 0 2 + 2")

	assert.True(report.HadRuntimeError())
	assert.Len(report.errors, 1)
	assert.Equal("4", strings.TrimSpace(out))
}

func TestInterpretTermsBeforeParseError(t *testing.T) {
	assert := assert.New(t)

	// the second term is malformed, the first still prints
	out, report := interpretLine(t, "1 + 2 3 *")

	assert.True(report.HadError())
	assert.Len(report.errors, 1)
	assert.Equal("3", strings.TrimSpace(out))
}

func TestEvaluateIsPure(t *testing.T) {
	assert := assert.New(t)

	expr := NewBinaryExpr(
		NewToken(SLASH, "/", nil, 2),
		NewBinaryExpr(
			NewToken(STAR, "*", nil, 6),
			NewLiteralExpr(3.0),
			NewLiteralExpr(4.0)),
		NewUnaryExpr(
			NewToken(MINUS, "-", nil, 10),
			NewLiteralExpr(2.0)),
	)

	interpreter := NewInterpreter(&strings.Builder{}, newMockReporter())
	first, err := interpreter.Evaluate(expr)
	assert.NoError(err)
	second, err := interpreter.Evaluate(expr)
	assert.NoError(err)

	assert.Equal(-6.0, first)
	assert.Equal(first, second)
}
