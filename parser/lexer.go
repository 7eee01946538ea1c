package parser

// Lexer implements a single-pass tokenizer for calculator expressions.
//
// Operator disambiguation is state-tracked: the lexer always knows whether it
// expects an operand or an operator, which is what decides whether a '-' is a
// binary subtraction or a unary negation. A '-' directly after a binary '+',
// 'x' or '÷' is rejected as consecutive operators, while a '-' after a binary
// '-' reads as negation ("2--3" is 2-(-3)). The asymmetry is deliberate and
// kept for compatibility; do not "fix" it here.

import (
	"errors"
	"math"
	"strconv"
)

// MaxMagnitude is the largest absolute value accepted for any literal and for
// every intermediate and final result.
const MaxMagnitude = 1e100

// lexState tracks what the lexer expects at the current position.
type lexState uint8

const (
	expectOperand  lexState = iota // start of input, after an operator, after '('
	expectOperator                 // after a number or ')'
)

// Lexer tokenizes a calculator expression left to right, no backtracking.
type Lexer struct {
	input string
	pos   int

	state      lexState
	afterBinop bool      // last emitted token was a binary operator
	lastBinop  TokenType // which one, valid when afterBinop
	tokens     []Token
}

// Tokenize converts an expression into a token sequence. Multiplication and
// division glyph variants (x, X, *, /, ÷) are normalized to a single token
// type here; glyph choice is a display concern only.
func Tokenize(input string) ([]Token, error) {
	l := &Lexer{
		input:  input,
		state:  expectOperand,
		tokens: make([]Token, 0, len(input)/2+1),
	}
	return l.scanAll()
}

func (l *Lexer) scanAll() ([]Token, error) {
	for l.pos < len(l.input) {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			break
		}

		start := l.pos
		ch := l.peek()

		switch {
		case isDigit(ch) || ch == '.':
			if err := l.scanNumber(); err != nil {
				return nil, err
			}

		case ch == '-':
			l.pos++
			if l.state == expectOperand {
				if l.afterBinop && l.lastBinop != MINUS {
					return nil, &SyntaxError{Pos: start, Message: "consecutive operators"}
				}
				l.emit(Token{Type: UMINUS, Pos: start})
			} else {
				l.emit(Token{Type: MINUS, Pos: start})
			}

		case ch == '+':
			l.pos++
			if err := l.checkBinaryAllowed(start); err != nil {
				return nil, err
			}
			l.emit(Token{Type: PLUS, Pos: start})

		case ch == 'x' || ch == 'X' || ch == '*':
			l.pos++
			if err := l.checkBinaryAllowed(start); err != nil {
				return nil, err
			}
			l.emit(Token{Type: STAR, Pos: start})

		case ch == '/':
			l.pos++
			if err := l.checkBinaryAllowed(start); err != nil {
				return nil, err
			}
			l.emit(Token{Type: SLASH, Pos: start})

		case l.hasDivisionSign():
			l.pos += len("÷")
			if err := l.checkBinaryAllowed(start); err != nil {
				return nil, err
			}
			l.emit(Token{Type: SLASH, Pos: start})

		case ch == '(':
			l.pos++
			l.emit(Token{Type: LPAREN, Pos: start})

		case ch == ')':
			l.pos++
			if l.state == expectOperand {
				return nil, &SyntaxError{Pos: start, Message: "missing operand"}
			}
			l.emit(Token{Type: RPAREN, Pos: start})

		default:
			// The validator charset is a superset of what the lexer accepts,
			// so only stray 'e'/'E' outside a literal can land here.
			return nil, &SyntaxError{Pos: start, Message: "unexpected character " + strconv.QuoteRune(rune(ch))}
		}
	}

	return l.tokens, nil
}

// checkBinaryAllowed rejects a binary operator in operand position.
func (l *Lexer) checkBinaryAllowed(pos int) error {
	if l.state != expectOperand {
		return nil
	}
	if l.afterBinop {
		return &SyntaxError{Pos: pos, Message: "consecutive operators"}
	}
	return &SyntaxError{Pos: pos, Message: "unexpected operator"}
}

// emit appends the token and advances the lexer state machine.
func (l *Lexer) emit(tok Token) {
	l.tokens = append(l.tokens, tok)

	switch {
	case tok.Type == NUMBER || tok.Type == RPAREN:
		l.state = expectOperator
		l.afterBinop = false
	case tok.Type == LPAREN:
		l.state = expectOperand
		l.afterBinop = false
	case tok.Type == UMINUS:
		// Still expecting the operand being negated. Negation does not
		// count as a binary operator for the consecutive-operator rule.
		l.state = expectOperand
		l.afterBinop = false
	default: // binary operator
		l.state = expectOperand
		l.afterBinop = true
		l.lastBinop = tok.Type
	}
}

// scanNumber scans a numeric literal: digits with at most one decimal point
// and at most one 'e'/'E' exponent marker. A sign directly after the marker
// is absorbed into the literal, not treated as an operator.
func (l *Lexer) scanNumber() error {
	start := l.pos
	seenDot := false
	seenExp := false

	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case isDigit(ch):
			l.pos++
		case ch == '.':
			if seenDot {
				return &NumberError{Text: "multiple decimal points"}
			}
			if seenExp {
				// An exponent is integral; the dot starts something else.
				return l.finishNumber(start)
			}
			seenDot = true
			l.pos++
		case (ch == 'e' || ch == 'E') && !seenExp:
			seenExp = true
			l.pos++
			if l.pos < len(l.input) && (l.input[l.pos] == '+' || l.input[l.pos] == '-') {
				l.pos++
			}
		default:
			return l.finishNumber(start)
		}
	}

	return l.finishNumber(start)
}

// finishNumber parses the scanned literal text with bounds checking and
// emits the NUMBER token. Any parse failure aborts tokenization.
func (l *Lexer) finishNumber(start int) error {
	text := l.input[start:l.pos]
	value, err := ParseNumber(text)
	if err != nil {
		return err
	}
	l.emit(Token{Type: NUMBER, Value: value, Pos: start})
	return nil
}

// hasDivisionSign reports whether the input at the current position starts
// with the multi-byte '÷' glyph.
func (l *Lexer) hasDivisionSign() bool {
	const division = "÷"
	return len(l.input)-l.pos >= len(division) && l.input[l.pos:l.pos+len(division)] == division
}

// ParseNumber parses a numeric literal with bounds checking. Values that are
// non-finite or whose magnitude exceeds MaxMagnitude are out of range.
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &NumberError{Text: s, OutOfRange: true}
		}
		return 0, &NumberError{Text: s}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > MaxMagnitude {
		return 0, &NumberError{Text: s, OutOfRange: true}
	}
	return v, nil
}

// InRange reports whether a computed value satisfies the same bounds as
// parsed literals.
func InRange(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) <= MaxMagnitude
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && (l.input[l.pos] == ' ' || l.input[l.pos] == '\t') {
		l.pos++
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
