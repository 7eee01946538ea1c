package calculator

import "errors"

// Error variants surfaced by the calculator. Their Error() strings are the
// exact texts shown on the display, so they are capitalized like UI copy
// rather than like wrapped Go errors.

// ErrDivisionByZero is returned when a division's right operand is zero.
var ErrDivisionByZero = errors.New("Division by zero")

// ErrInputTooLong is returned when the input exceeds MaxInputLength. This is
// a resource-exhaustion guard, not a UX limit.
var ErrInputTooLong = errors.New("Input too long")

// InvalidNumberError reports a literal that does not parse as a number.
type InvalidNumberError struct {
	Text string
}

func (e *InvalidNumberError) Error() string {
	return "Invalid number: " + e.Text
}

// NumberOutOfRangeError reports a literal or result that is non-finite or
// exceeds the supported magnitude.
type NumberOutOfRangeError struct {
	Text string
}

func (e *NumberOutOfRangeError) Error() string {
	return "Number out of range: " + e.Text
}

// InvalidCharactersError reports characters outside the accepted set. The
// offending characters are collected in encounter order, duplicates included.
type InvalidCharactersError struct {
	Chars string
}

func (e *InvalidCharactersError) Error() string {
	return "Invalid characters: " + e.Chars
}

// InvalidExpressionError reports a syntactically malformed expression:
// consecutive operators, missing operands, mismatched parentheses, and the
// like.
type InvalidExpressionError struct {
	Reason string
}

func (e *InvalidExpressionError) Error() string {
	return "Invalid expression: " + e.Reason
}
