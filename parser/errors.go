package parser

// SyntaxError reports a malformed token sequence: misplaced operators,
// missing operands, or unbalanced parentheses.
type SyntaxError struct {
	Pos     int // byte offset into the input
	Message string
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// NumberError reports a numeric literal that either does not parse as a
// float or whose magnitude falls outside the supported range.
type NumberError struct {
	Text       string
	OutOfRange bool
}

func (e *NumberError) Error() string {
	if e.OutOfRange {
		return "Number out of range: " + e.Text
	}
	return "Invalid number: " + e.Text
}
