package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles == nil {
		t.Fatal("NewStyles should return non-nil Styles")
	}
	if styles.output == nil {
		t.Error("Styles should have non-nil output")
	}
}

func TestStylesContainText(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	for name, fn := range map[string]func(string) string{
		"Success":    styles.Success,
		"Error":      styles.Error,
		"FilePath":   styles.FilePath,
		"Expression": styles.Expression,
		"Number":     styles.Number,
		"Keyword":    styles.Keyword,
		"Dim":        styles.Dim,
		"Warning":    styles.Warning,
	} {
		if got := fn("7+8x3"); !strings.Contains(got, "7+8x3") {
			t.Errorf("%s() should contain the text, got: %s", name, got)
		}
	}
}

func TestStylesOutput(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles.Output() == nil {
		t.Error("Output() should return the underlying termenv output")
	}
}
