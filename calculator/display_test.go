package calculator

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFormatExpression(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"passthrough", "5+3", "5+3"},
		{"decimal passthrough", "3.14x2", "3.14x2"},
		{"negative operand gains parens", "7+-9", "7+(-9)"},
		{"already parenthesized", "7+(-9)", "7+(-9)"},
		{"large number", "1200000000+1", "1.2e+09+1"},
		{"small number", "0.5x2", "5.0e-01x2"},
		{"long integer", "12345678901", "1.2e+10"},
		{"short integer below 1e9", "123456789", "123456789"},
		{"zero untouched", "0", "0"},
		{"trailing operator", "5+", "5+"},
		{"partial decimal", "0.", "0."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatExpression(tt.input))
		})
	}
}

func TestFormatExpressionIdempotent(t *testing.T) {
	for _, input := range []string{"7+-9", "1200000000+1", "0.5x2", "100+(-50)"} {
		once := FormatExpression(input)
		assert.Equal(t, once, FormatExpression(once))
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"integer", 8, "8"},
		{"negative integer", -8, "-8"},
		{"fraction", 2.5, "2.5"},
		{"repeating fraction", 1.0 / 3.0, "0.33333333"},
		{"zero", 0, "0"},
		{"million boundary", 1e6, "1.0000e+06"},
		{"just below million", 999999.5, "999999.5"},
		{"tiny", 0.00005, "5.0000e-05"},
		{"just above tiny cutoff", 0.0001, "0.0001"},
		{"negative tiny", -0.00005, "-5.0000e-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.v))
		})
	}
}
