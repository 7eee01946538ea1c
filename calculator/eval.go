package calculator

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/calcpad/calcpad/parser"
	"github.com/calcpad/calcpad/telemetry"
)

// Evaluate validates and evaluates an expression string. Errors from any
// stage abort immediately; there is no partial result.
func Evaluate(expr string) (float64, error) {
	return EvaluateContext(context.Background(), expr)
}

// EvaluateContext is Evaluate with per-stage telemetry when the context
// carries a collector.
//
// The pipeline is Validate -> Tokenize -> ToPostfix -> evaluatePostfix, with
// two fast paths: blank input (or the canonical "0") is zero, and input
// without any operator or parenthesis is parsed as a single bounded literal.
func EvaluateContext(ctx context.Context, expr string) (float64, error) {
	timer := telemetry.FromContext(ctx).Start("Evaluate")
	defer timer.End()

	t := timer.Child("Validate")
	err := Validate(expr)
	t.End()
	if err != nil {
		return 0, err
	}

	trimmed := strings.TrimSpace(expr)
	if trimmed == "" || trimmed == "0" {
		return 0, nil
	}

	if !strings.ContainsAny(trimmed, "+-xX*/()÷") {
		return ParseNumber(trimmed)
	}

	t = timer.Child("Tokenize")
	tokens, err := parser.Tokenize(trimmed)
	t.End()
	if err != nil {
		return 0, convertParserError(err)
	}

	t = timer.Child("Postfix")
	postfix, err := parser.ToPostfix(tokens)
	t.End()
	if err != nil {
		return 0, convertParserError(err)
	}

	t = timer.Child("Reduce")
	result, err := evaluatePostfix(postfix)
	t.End()
	return result, err
}

// evaluatePostfix reduces a postfix token sequence to a single value using an
// explicit value stack. Binary operators pop b then a and push a op b; the
// result of every operation is bounds-checked like a literal.
func evaluatePostfix(tokens []parser.Token) (float64, error) {
	stack := make([]float64, 0, len(tokens))

	for _, tok := range tokens {
		switch {
		case tok.Type == parser.NUMBER:
			stack = append(stack, tok.Value)

		case tok.Type == parser.UMINUS:
			if len(stack) == 0 {
				return 0, &InvalidExpressionError{Reason: "missing operand"}
			}
			stack[len(stack)-1] = -stack[len(stack)-1]

		case tok.Type.IsBinary():
			if len(stack) < 2 {
				return 0, &InvalidExpressionError{Reason: "missing operand"}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			v, err := applyBinary(tok.Type, a, b)
			if err != nil {
				return 0, err
			}
			if !parser.InRange(v) {
				return 0, &NumberOutOfRangeError{Text: formatFloat(v)}
			}
			stack = append(stack, v)
		}
	}

	switch {
	case len(stack) == 0:
		return 0, &InvalidExpressionError{Reason: "missing operand"}
	case len(stack) > 1:
		return 0, &InvalidExpressionError{Reason: "too many operands"}
	}

	result := stack[0]
	if !parser.InRange(result) {
		return 0, &NumberOutOfRangeError{Text: formatFloat(result)}
	}
	return result, nil
}

func applyBinary(op parser.TokenType, a, b float64) (float64, error) {
	switch op {
	case parser.PLUS:
		return a + b, nil
	case parser.MINUS:
		return a - b, nil
	case parser.STAR:
		return a * b, nil
	case parser.SLASH:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}
	return 0, &InvalidExpressionError{Reason: "unknown operator " + op.String()}
}

// convertParserError maps parser errors onto the calculator's error variants
// so every failure reaching the display has a stable, human-readable text.
func convertParserError(err error) error {
	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		return &InvalidExpressionError{Reason: serr.Message}
	}
	return convertNumberError(err)
}

// formatFloat renders a value for the expression buffer at full precision.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
