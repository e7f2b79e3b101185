package main

import (
	"fmt"

	"github.com/ltungv/calc/gcalc/internal/calc"
)

func main() {
	expression := calc.NewBinaryExpr(
		calc.NewToken(calc.STAR, "*", nil, 5),
		calc.NewUnaryExpr(
			calc.NewToken(calc.MINUS, "-", nil, 0),
			calc.NewLiteralExpr(123),
		),
		calc.NewLiteralExpr(45.67),
	)

	printer := calc.AstPrinter{}
	fmt.Println(printer.Print(expression))
}
