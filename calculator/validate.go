package calculator

import (
	"errors"
	"strings"

	"github.com/calcpad/calcpad/parser"
)

// MaxInputLength is the input ceiling enforced before any parsing happens.
const MaxInputLength = 1000

// validChars is the full accepted input alphabet. Whitespace is permitted
// but carries no meaning; it is skipped by the tokenizer.
const validChars = "0123456789+-xX*/÷.eE() "

// Validate rejects malformed or oversized input before any parsing. Every
// offending character is collected, in encounter order with duplicates, so
// the error names all of them rather than just the first.
func Validate(input string) error {
	if len(input) > MaxInputLength {
		return ErrInputTooLong
	}

	var invalid []rune
	for _, ch := range input {
		if !strings.ContainsRune(validChars, ch) {
			invalid = append(invalid, ch)
		}
	}
	if len(invalid) > 0 {
		return &InvalidCharactersError{Chars: string(invalid)}
	}

	return nil
}

// ParseNumber parses a numeric literal with the same bounds applied to every
// intermediate and final result: finite, magnitude at most 1e100.
func ParseNumber(s string) (float64, error) {
	v, err := parser.ParseNumber(s)
	if err != nil {
		return 0, convertNumberError(err)
	}
	return v, nil
}

// convertNumberError maps the parser's number error onto the calculator's
// error variants.
func convertNumberError(err error) error {
	var nerr *parser.NumberError
	if errors.As(err, &nerr) {
		if nerr.OutOfRange {
			return &NumberOutOfRangeError{Text: nerr.Text}
		}
		return &InvalidNumberError{Text: nerr.Text}
	}
	return err
}
