package calc

import (
	"strconv"
	"unicode"
)

// Scanner reads the input line and collects all the tokens that can be found
type Scanner struct {
	start   int
	current int
	source  []rune
	tokens  []*Token
}

// NewScanner creates a new token scanner for a single line of input
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Scan reads the source and collects all the tokens that were found. The
// first lexical error stops the scan, no tokens are returned alongside an
// error.
func (scanner *Scanner) Scan() ([]*Token, error) {
	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t', '\n':
		// Single character tokens
		case '+':
			scanner.addToken(PLUS, nil)
		case '-':
			scanner.addToken(MINUS, nil)
		case '*':
			scanner.addToken(STAR, nil)
		case '/':
			scanner.addToken(SLASH, nil)
		// Literals
		default:
			if !unicode.IsDigit(r) {
				return nil, NewUnexpectedCharError(r, scanner.start)
			}
			if err := scanner.scanNumber(); err != nil {
				return nil, err
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", nil, len(scanner.source)),
	)
	return scanner.tokens, nil
}

func (scanner *Scanner) scanNumber() error {
	// go through continuous digits
	for unicode.IsDigit(scanner.peek()) {
		scanner.advance()
	}
	// a single '.' may follow, the digits after it are optional so "1."
	// still reads as 1.0
	if scanner.peek() == '.' {
		scanner.advance()
		for unicode.IsDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	if scanner.peek() == '.' {
		// a second '.' makes the whole run malformed, consume the rest of
		// the dotted run so the error can name the full lexeme
		for unicode.IsDigit(scanner.peek()) || scanner.peek() == '.' {
			scanner.advance()
		}
		lexeme := string(scanner.source[scanner.start:scanner.current])
		return NewInvalidNumberError(lexeme, scanner.start)
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	// NOTE: we're ignoring the error, since we have already verified that
	// the lexeme contains a valid 64-bit floating point.
	literal, _ := strconv.ParseFloat(lexeme, 64)
	scanner.addToken(NUMBER, literal)
	return nil
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given type and carries the given literal
func (scanner *Scanner) addToken(typ TokenType, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, literal, scanner.start)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}
