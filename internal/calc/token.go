package calc

import "fmt"

// Token represents a group of characters with additional information that
// was obtained during the scanning phase.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal interface{}
	Pos     int
}

// NewToken creates a new token positioned at the given column
func NewToken(typ TokenType, lexeme string, literal interface{}, pos int) *Token {
	return &Token{typ, lexeme, literal, pos}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Typ, t.Lexeme, t.Literal)
}

const (
	// Single-character tokens
	PLUS TokenType = iota
	MINUS
	STAR
	SLASH

	// Literals
	NUMBER

	EOF
)

// TokenType tags the kind of lexeme held by a token
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case NUMBER:
		return "NUMBER"
	case EOF:
		return "EOF"
	}
	return ""
}
