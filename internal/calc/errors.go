package calc

import "fmt"

// ScanError wraps a lexical error with the column at which the offending
// characters were found.
type ScanError struct {
	pos     int
	message string
}

// NewUnexpectedCharError creates a scan error for a character that cannot
// start any token
func NewUnexpectedCharError(char rune, pos int) error {
	return &ScanError{pos, fmt.Sprintf("Unexpected character '%c'.", char)}
}

// NewInvalidNumberError creates a scan error for a malformed numeric run
func NewInvalidNumberError(lexeme string, pos int) error {
	return &ScanError{pos, fmt.Sprintf("Invalid number '%s'.", lexeme)}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf(
		"[pos %d] Error: %s",
		err.pos,
		err.message,
	)
}

// ParseError wraps the error message returned by the parser with the token
// that was found instead of the expected construct.
type ParseError struct {
	token   *Token
	message string
}

// NewParseError creates a new parser error
func NewParseError(token *Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.token.Typ == EOF {
		return fmt.Sprintf(
			"[pos %d] Error at end: %s",
			err.token.Pos,
			err.message,
		)
	}
	return fmt.Sprintf(
		"[pos %d] Error at '%s': %s",
		err.token.Pos,
		err.token.Lexeme,
		err.message,
	)
}

// RuntimeError wraps the error message returned by the interpreter with the
// token of the operator whose evaluation failed.
type RuntimeError struct {
	token   *Token
	message string
}

// NewRuntimeError creates a new interpreter error
func NewRuntimeError(token *Token, message string) error {
	return &RuntimeError{token, message}
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf(
		"[pos %d] Error at '%s': %s",
		err.token.Pos,
		err.token.Lexeme,
		err.message,
	)
}
