package main

// This is an interactive calculator for arithmetic expressions written in Go.

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/ltungv/calc/gcalc/internal/calc"
)

func main() {
	args := os.Args[1:]
	if len(args) > 1 {
		fmt.Println("Usage: gcalc [script]")
		os.Exit(64)
	}

	reporter := calc.NewSimpleReporter(os.Stderr)
	interpreter := calc.NewInterpreter(os.Stdout, reporter)
	if len(args) != 1 {
		runPrompt(interpreter, reporter)
	} else {
		runFile(args[0], interpreter, reporter)
	}
}

func run(line string, interpreter *calc.Interpreter, reporter calc.Reporter) {
	scanner := calc.NewScanner([]rune(line))
	tokens, err := scanner.Scan()
	if err != nil {
		reporter.Report(err)
		return
	}
	parser := calc.NewParser(tokens)
	exprs, err := parser.Parse()
	// terms that were parsed before the error still get evaluated
	interpreter.Interpret(exprs)
	if err != nil {
		reporter.Report(err)
	}
}

// Run the calculator in REPL mode
func runPrompt(interpreter *calc.Interpreter, reporter calc.Reporter) {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !s.Scan() {
			break
		}
		run(s.Text(), interpreter, reporter)
		reporter.Reset()
	}
	exitOnError(s.Err(), 1)
}

// Run the given file as script, one expression line at a time
func runFile(fpath string, interpreter *calc.Interpreter, reporter calc.Reporter) {
	f, err := os.Open(fpath)
	exitOnError(err, 1)
	defer f.Close()

	s := bufio.NewScanner(f)
	s.Split(bufio.ScanLines)
	for s.Scan() {
		run(s.Text(), interpreter, reporter)
	}
	exitOnError(s.Err(), 1)
	exitIf(reporter.HadError(), 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
