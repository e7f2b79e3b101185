package calc

// Parser composes the syntax trees for the calculator language from the
// sequence of valid tokens that follow the following grammar rule.
//
// Grammar
//
//	program --> term* EOF ;
//	term    --> factor ( ( "-" | "+" ) factor )* ;
//	factor  --> unary ( ( "/" | "*" ) unary )* ;
//	unary   --> "-" literal
//	          | literal ;
//	literal --> NUMBER ;
//
// "unary" matches a single leading minus, it binds to the number that
// immediately follows. Chained unary minus is not representable by this
// grammar and fails to parse.
type Parser struct {
	current int
	tokens  []*Token
}

// NewParser creates a new parser for the calculator language
func NewParser(tokens []*Token) *Parser {
	return &Parser{0, tokens}
}

// Parse returns one expression tree per top-level term. When a term is
// malformed, the terms that were already parsed are returned alongside the
// error so the caller can still evaluate them.
func (parser *Parser) Parse() ([]Expr, error) {
	exprs := make([]Expr, 0)
	for !parser.isEOF() {
		expr, err := parser.term()
		if err != nil {
			return exprs, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// Creates a left-associative nested tree of binary operator nodes. Matches
// the higher precedence rule `factor` if it does not hit "-" or "+".
//
// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (Expr, error) {
	expr, err := parser.factor()
	if err != nil {
		return nil, err
	}
	for parser.match(MINUS, PLUS) {
		op := parser.prev()
		right, err := parser.factor()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (Expr, error) {
	expr, err := parser.unary()
	if err != nil {
		return nil, err
	}
	for parser.match(SLASH, STAR) {
		op := parser.prev()
		right, err := parser.unary()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, right)
	}
	return expr, nil
}

// unary --> "-" literal
//         | literal ;
func (parser *Parser) unary() (Expr, error) {
	if parser.match(MINUS) {
		op := parser.prev()
		expr, err := parser.literal()
		if err != nil {
			return nil, err
		}
		return NewUnaryExpr(op, expr), nil
	}
	return parser.literal()
}

// literal --> NUMBER ;
func (parser *Parser) literal() (Expr, error) {
	if parser.match(NUMBER) {
		return NewLiteralExpr(parser.prev().Literal.(float64)), nil
	}
	return nil, NewParseError(parser.peek(), "Expect a number.")
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}
