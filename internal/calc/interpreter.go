package calc

import (
	"fmt"
	"io"
	"strconv"
)

// Interpreter exposes methods for evaluating the given syntax trees. This
// struct implements ExprVisitor
type Interpreter struct {
	output   io.Writer
	reporter Reporter
}

// NewInterpreter creates a new interpreter writing one result per term to
// the given output
func NewInterpreter(output io.Writer, reporter Reporter) *Interpreter {
	return &Interpreter{output, reporter}
}

// Interpret evaluates each top-level term in order and prints one result
// per term. A term that fails to evaluate is reported and does not stop
// the terms that follow it.
func (in *Interpreter) Interpret(exprs []Expr) {
	for _, expr := range exprs {
		val, err := in.Evaluate(expr)
		if err != nil {
			in.reporter.Report(err)
			continue
		}
		fmt.Fprintln(in.output, stringify(val))
	}
}

// Evaluate reduces the tree to a single 64-bit float. The tree is never
// mutated, evaluating it twice yields the same value.
func (in *Interpreter) Evaluate(expr Expr) (float64, error) {
	val, err := expr.Accept(in)
	if err != nil {
		return 0, err
	}
	// visitors only ever produce 64-bit floats
	return val.(float64), nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.Evaluate(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.Evaluate(expr.Rhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case PLUS:
		return lhs + rhs, nil

	case MINUS:
		return lhs - rhs, nil

	case STAR:
		return lhs * rhs, nil

	case SLASH:
		if rhs == 0 {
			return nil, NewRuntimeError(expr.Op, "Division by zero.")
		}
		return lhs / rhs, nil
	}
	panic("Unreachable")
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Val, nil
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	exprVal, err := in.Evaluate(expr.Expr)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case MINUS:
		return -exprVal, nil
	}
	panic("Unreachable")
}

func stringify(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
