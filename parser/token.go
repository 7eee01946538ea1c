package parser

// TokenType represents the type of token scanned from an expression.
type TokenType uint8

const (
	// Literals
	NUMBER TokenType = iota // 123, 1.5, 2e10

	// Operators
	PLUS   // + (binary)
	MINUS  // - (binary)
	UMINUS // - (unary negation)
	STAR   // x, X, * (multiplication)
	SLASH  // /, ÷ (division)

	// Grouping
	LPAREN // (
	RPAREN // )
)

var tokenNames = map[TokenType]string{
	NUMBER: "NUMBER",
	PLUS:   "+",
	MINUS:  "-",
	UMINUS: "u-",
	STAR:   "x",
	SLASH:  "÷",
	LPAREN: "(",
	RPAREN: ")",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsOperator reports whether the token type is an operator (unary or binary).
// Parentheses are not operators.
func (t TokenType) IsOperator() bool {
	switch t {
	case PLUS, MINUS, UMINUS, STAR, SLASH:
		return true
	}
	return false
}

// IsBinary reports whether the token type is a binary operator.
func (t TokenType) IsBinary() bool {
	return t.IsOperator() && t != UMINUS
}

// Precedence returns the operator precedence rank. Higher binds tighter.
// Returns 0 for non-operators.
func (t TokenType) Precedence() int {
	switch t {
	case PLUS, MINUS:
		return 1
	case STAR, SLASH:
		return 2
	case UMINUS:
		return 3
	}
	return 0
}

// RightAssociative reports whether equal-precedence operators group to the
// right. Only unary minus does; the binary operators evaluate left-to-right.
func (t TokenType) RightAssociative() bool {
	return t == UMINUS
}

// Token is a single lexical token. Number tokens carry their parsed value;
// all tokens carry the byte offset they started at for error reporting.
type Token struct {
	Type  TokenType
	Value float64 // populated for NUMBER tokens
	Pos   int     // byte offset into the input
}
