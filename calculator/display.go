package calculator

import (
	"math"
	"strconv"
	"strings"
)

// operatorRunes are the canonical operator glyphs stored in the expression
// buffer. Parsing accepts more spellings (x/X/*, //÷); the buffer keeps one.
const operatorRunes = "+-x÷"

func isOperatorRune(r rune) bool {
	return strings.ContainsRune(operatorRunes, r)
}

// FormatExpression renders an expression buffer for display. It is a pure
// function of the buffer: long or tiny numeric substrings are rewritten in
// one-decimal scientific notation and negative operands gain parentheses
// ("7+-9" becomes "7+(-9)").
func FormatExpression(expr string) string {
	return parenthesizeNegatives(formatNumbers(expr))
}

// formatNumbers rewrites numeric substrings whose magnitude is >= 1e9, or
// strictly between 0 and 1, or whose plain-integer text exceeds 10
// characters, in one-decimal scientific notation. Everything else passes
// through untouched.
func formatNumbers(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))
	rs := []rune(expr)

	i := 0
	for i < len(rs) {
		c := rs[i]
		if isDigitRune(c) || c == '.' || (c == '-' && i+1 < len(rs) && isDigitRune(rs[i+1])) {
			start := i
			i++
			for i < len(rs) {
				nc := rs[i]
				if isDigitRune(nc) || nc == '.' ||
					(nc == 'e' && i+1 < len(rs) && (isDigitRune(rs[i+1]) || rs[i+1] == '+' || rs[i+1] == '-')) {
					i++
					continue
				}
				break
			}
			numStr := string(rs[start:i])
			if v, err := strconv.ParseFloat(numStr, 64); err == nil && wantsScientific(v, numStr) {
				b.WriteString(strconv.FormatFloat(v, 'e', 1, 64))
			} else {
				b.WriteString(numStr)
			}
			continue
		}
		b.WriteRune(c)
		i++
	}

	return b.String()
}

func wantsScientific(v float64, text string) bool {
	abs := math.Abs(v)
	if abs >= 1e9 || (abs > 0 && abs < 1) {
		return true
	}
	return len(text) > 10 && !strings.Contains(text, ".") && !strings.Contains(text, "e")
}

// parenthesizeNegatives wraps a negative operand that directly follows an
// operator in parentheses for readability.
func parenthesizeNegatives(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))
	rs := []rune(expr)

	i := 0
	for i < len(rs) {
		c := rs[i]
		if isOperatorRune(c) && i+1 < len(rs) && rs[i+1] == '-' {
			b.WriteRune(c)
			b.WriteRune('(')
			b.WriteRune('-')
			i += 2
			for i < len(rs) {
				nc := rs[i]
				if isDigitRune(nc) || nc == '.' || nc == 'e' || nc == '+' || nc == '-' {
					b.WriteRune(nc)
					i++
					continue
				}
				break
			}
			b.WriteRune(')')
			continue
		}
		b.WriteRune(c)
		i++
	}

	return b.String()
}

// FormatResult renders an evaluation result for the display: scientific
// notation for large or tiny magnitudes, otherwise fixed-point with trailing
// zeros and a dangling decimal point trimmed.
func FormatResult(v float64) string {
	abs := math.Abs(v)
	if abs >= 1e6 || (abs < 1e-4 && v != 0) {
		return strconv.FormatFloat(v, 'e', 4, 64)
	}
	s := strconv.FormatFloat(v, 'f', 8, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

func isDigitRune(r rune) bool {
	return r >= '0' && r <= '9'
}
