// Package calculator implements the expression evaluation engine and the
// incremental input state machine behind a calculator UI.
//
// The engine side (Validate, Evaluate) turns an expression string into a
// float64 or a terminal error. The state machine side (Calculator, Apply)
// builds that expression string one keystroke at a time and keeps the
// display text in sync.
package calculator

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Op is a basic arithmetic operation selected from the UI.
type Op uint8

const (
	Add Op = iota
	Subtract
	Multiply
	Divide
)

// Glyph returns the display glyph stored in the expression buffer.
func (op Op) Glyph() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "x"
	case Divide:
		return "÷"
	}
	return "?"
}

// Calculate applies a single operation to two operands. Division by zero is
// the only failure mode.
func Calculate(op Op, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}
	return 0, &InvalidExpressionError{Reason: "unknown operation"}
}

// Calculator is the input state machine. It is an immutable value: every
// handler returns a new state, which makes snapshot-based testing and undo
// trivial. The zero value is not ready to use; start from New.
//
// Expression is the buffer under construction, never empty; "0" is the
// canonical reset state. Display is the text shown between keystrokes.
// NewInput marks that the next digit or decimal starts a fresh operand.
type Calculator struct {
	Expression string
	Display    string
	NewInput   bool
}

// New returns the initial calculator state.
func New() Calculator {
	return Calculator{Expression: "0", Display: "0"}
}

// DisplayString returns the text to render: the error text verbatim while in
// an error state, otherwise the formatted expression. It is derived from
// current state on every call, never cached.
func (c Calculator) DisplayString() string {
	if c.HasError() {
		return c.Display
	}
	return FormatExpression(c.Expression)
}

// HasError reports whether the display currently shows an error marker.
func (c Calculator) HasError() bool {
	return c.Display == "Error" ||
		strings.HasPrefix(c.Display, "Division by zero") ||
		strings.HasPrefix(c.Display, "Invalid") ||
		strings.HasPrefix(c.Display, "Input too long") ||
		strings.HasPrefix(c.Display, "Number out of range")
}

// handleDigit appends a digit, or starts over after an error or a result.
func (c Calculator) handleDigit(digit uint8) Calculator {
	ds := strconv.Itoa(int(digit))
	switch {
	case c.HasError():
		return Calculator{Expression: ds, Display: ds}
	case c.NewInput && !strings.ContainsAny(c.Expression, operatorRunes):
		// The expression is a bare result; replace it wholesale.
		return Calculator{Expression: ds, Display: ds}
	case c.NewInput:
		expr := c.Expression + ds
		return Calculator{Expression: expr, Display: FormatExpression(expr)}
	case c.Display == "0":
		return Calculator{Expression: ds, Display: ds}
	default:
		return Calculator{Expression: c.Expression + ds, Display: c.Display + ds}
	}
}

// handleDecimal starts or extends the fractional part of the current
// operand. A second point within the same operand is ignored.
func (c Calculator) handleDecimal() Calculator {
	switch {
	case c.HasError():
		return Calculator{Expression: "0.", Display: "0."}
	case c.NewInput && !strings.ContainsAny(c.Expression, operatorRunes):
		return Calculator{Expression: "0.", Display: "0."}
	case c.NewInput:
		expr := c.Expression + "0."
		return Calculator{Expression: expr, Display: FormatExpression(expr)}
	case c.Display == "0":
		return Calculator{Expression: "0.", Display: "0."}
	case !strings.Contains(lastSegment(c.Display), "."):
		return Calculator{Expression: c.Expression + ".", Display: c.Display + "."}
	default:
		return c
	}
}

// handleOperator appends a binary operator. A trailing operator is replaced
// rather than chained, so "5+" followed by x yields "5x", never "5+x".
func (c Calculator) handleOperator(op Op) Calculator {
	if c.HasError() {
		return c
	}
	expr := trimTrailingOperator(c.Expression) + op.Glyph()
	return Calculator{Expression: expr, Display: FormatExpression(expr), NewInput: true}
}

// handleEquals evaluates the buffer. On success the display shows the
// formatted result and the buffer holds it at full precision; on failure the
// error text becomes the display and the buffer resets.
func (c Calculator) handleEquals() Calculator {
	if c.HasError() {
		return c
	}
	result, err := Evaluate(c.Expression)
	if err != nil {
		return Calculator{Expression: "0", Display: err.Error(), NewInput: c.NewInput}
	}
	return Calculator{
		Expression: formatFloat(result),
		Display:    FormatResult(result),
		NewInput:   true,
	}
}

// handleBackspace pops the last character and recomputes the display from
// whatever remains.
func (c Calculator) handleBackspace() Calculator {
	switch {
	case c.HasError():
		return New()
	case utf8.RuneCountInString(c.Expression) > 1:
		r, size := utf8.DecodeLastRuneInString(c.Expression)
		expr := c.Expression[:len(c.Expression)-size]
		if isOperatorRune(r) {
			// Removed an operator; show the operand that precedes it.
			return Calculator{Expression: expr, Display: lastOperand(expr), NewInput: true}
		}
		if operand := lastOperand(expr); operand != "" {
			return Calculator{Expression: expr, Display: operand, NewInput: true}
		}
		return Calculator{Expression: expr, Display: "0"}
	case c.Expression == "0":
		return c
	default:
		return New()
	}
}

// handlePercent divides the displayed number by 100 and splices it back as
// the tail of the expression. A display that does not parse as a number is a
// defined no-op, not an error.
func (c Calculator) handlePercent() Calculator {
	v, err := strconv.ParseFloat(c.Display, 64)
	if err != nil {
		return c
	}
	ps := formatFloat(v / 100)
	c.Display = ps
	if end, ok := lastSeparatingOperator(c.Expression); ok {
		c.Expression = c.Expression[:end] + ps
	} else {
		c.Expression = ps
	}
	return c
}

// handleSignToggle negates the operand after the last separating operator.
// Positive operands become parenthesized negatives for display clarity;
// negative ones lose sign and parentheses. Zero stays "0" (no signed zero).
// Like percent, an unparsable display is a defined no-op.
func (c Calculator) handleSignToggle() Calculator {
	v, err := strconv.ParseFloat(c.Display, 64)
	if err != nil {
		return c
	}
	if v == 0 {
		c.Display = "0"
		return c
	}

	if end, ok := lastSeparatingOperator(c.Expression); ok {
		head := c.Expression[:end]
		if v > 0 {
			vs := formatFloat(v)
			return Calculator{Expression: head + "(-" + vs + ")", Display: "-" + vs}
		}
		vs := formatFloat(-v)
		return Calculator{Expression: head + vs, Display: vs}
	}

	if v > 0 {
		expr := "-" + formatFloat(v)
		return Calculator{Expression: expr, Display: expr, NewInput: c.NewInput}
	}
	expr := formatFloat(-v)
	return Calculator{Expression: expr, Display: expr, NewInput: c.NewInput}
}

// handleClear resets to the initial state unconditionally.
func (c Calculator) handleClear() Calculator {
	return New()
}

// trimTrailingOperator drops a trailing operator glyph, if any.
func trimTrailingOperator(expr string) string {
	r, size := utf8.DecodeLastRuneInString(expr)
	if size > 0 && isOperatorRune(r) {
		return expr[:len(expr)-size]
	}
	return expr
}

// lastOperand returns the text after the last operator glyph, or the whole
// expression if it has none.
func lastOperand(expr string) string {
	idx := strings.LastIndexAny(expr, operatorRunes)
	if idx < 0 {
		return expr
	}
	_, size := utf8.DecodeRuneInString(expr[idx:])
	return expr[idx+size:]
}

// lastSegment returns the display text after the last operator or
// parenthesis, the portion that belongs to the operand being typed.
func lastSegment(s string) string {
	idx := strings.LastIndexAny(s, operatorRunes+"()")
	if idx < 0 {
		return s
	}
	_, size := utf8.DecodeRuneInString(s[idx:])
	return s[idx+size:]
}

// lastSeparatingOperator locates the last binary operator that separates two
// operands at the top parenthesis level, skipping any '-' that is a unary
// sign (one at the start of the expression, or directly after another
// operator or an open paren). It returns the byte offset just past the
// operator glyph.
func lastSeparatingOperator(expr string) (int, bool) {
	rs := []rune(expr)

	// Byte offset of each rune, so callers can slice the original string.
	offsets := make([]int, len(rs)+1)
	for i, r := range rs {
		offsets[i+1] = offsets[i] + utf8.RuneLen(r)
	}

	depth := 0
	for i := len(rs) - 1; i >= 0; i-- {
		c := rs[i]
		switch {
		case c == ')':
			depth++
		case c == '(':
			if depth > 0 {
				depth--
			}
		case depth == 0 && isOperatorRune(c):
			if c == '-' {
				if i == 0 {
					continue
				}
				if p := rs[i-1]; isOperatorRune(p) || p == '(' {
					continue
				}
			}
			return offsets[i+1], true
		}
	}
	return 0, false
}
