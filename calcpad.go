// Package calcpad exposes the calculator engine at the module root for
// convenience. The full API lives in the calculator and parser packages.
package calcpad

import "github.com/calcpad/calcpad/calculator"

// Evaluate validates and evaluates an arithmetic expression.
func Evaluate(expr string) (float64, error) {
	return calculator.Evaluate(expr)
}

// New returns the initial calculator input state.
func New() calculator.Calculator {
	return calculator.New()
}
