package calculator

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

// apply runs a sequence of events and returns the final state.
func apply(c Calculator, events ...Event) Calculator {
	for _, e := range events {
		c, _ = c.Apply(e)
	}
	return c
}

func digits(ds ...uint8) []Event {
	events := make([]Event, len(ds))
	for i, d := range ds {
		events[i] = NumberPressed{Digit: d}
	}
	return events
}

func TestNew(t *testing.T) {
	c := New()
	assert.Equal(t, Calculator{Expression: "0", Display: "0"}, c)
	assert.Equal(t, "0", c.DisplayString())
}

func TestSimpleCalculation(t *testing.T) {
	c := apply(New(),
		NumberPressed{Digit: 5},
		OperationPressed{Op: Add},
		NumberPressed{Digit: 3},
		EqualsPressed{},
	)

	assert.Equal(t, "8", c.Expression)
	assert.Equal(t, "8", c.Display)
	assert.True(t, c.NewInput)
}

func TestChainingFromResult(t *testing.T) {
	c := apply(New(),
		NumberPressed{Digit: 5},
		OperationPressed{Op: Add},
		NumberPressed{Digit: 3},
		EqualsPressed{},
		OperationPressed{Op: Multiply},
		NumberPressed{Digit: 2},
		EqualsPressed{},
	)

	assert.Equal(t, "16", c.Display)
}

func TestDigitAfterResultStartsOver(t *testing.T) {
	c := apply(New(),
		NumberPressed{Digit: 5},
		OperationPressed{Op: Add},
		NumberPressed{Digit: 3},
		EqualsPressed{},
		NumberPressed{Digit: 7},
	)

	assert.Equal(t, Calculator{Expression: "7", Display: "7"}, c)
}

func TestLeadingZeroReplaced(t *testing.T) {
	c := apply(New(), NumberPressed{Digit: 0}, NumberPressed{Digit: 5})
	assert.Equal(t, "5", c.Expression)
}

func TestDecimalEntry(t *testing.T) {
	c := apply(New(), DecimalPressed{}, NumberPressed{Digit: 5})
	assert.Equal(t, Calculator{Expression: "0.5", Display: "0.5"}, c)

	// A second point in the same operand is ignored.
	c = apply(c, DecimalPressed{})
	assert.Equal(t, "0.5", c.Expression)

	// A fresh operand can take its own point.
	c = apply(c, OperationPressed{Op: Add}, DecimalPressed{})
	assert.Equal(t, "0.5+0.", c.Expression)
}

func TestOperatorReplacesTrailingOperator(t *testing.T) {
	c := apply(New(),
		NumberPressed{Digit: 5},
		OperationPressed{Op: Add},
		OperationPressed{Op: Multiply},
	)

	assert.Equal(t, "5x", c.Expression)
	assert.True(t, c.NewInput)
}

func TestDivideUsesDisplayGlyph(t *testing.T) {
	c := apply(New(),
		NumberPressed{Digit: 8},
		OperationPressed{Op: Divide},
		NumberPressed{Digit: 2},
	)

	assert.Equal(t, "8÷2", c.Expression)

	c = apply(c, EqualsPressed{})
	assert.Equal(t, "4", c.Display)
}

func TestBackspaceSequence(t *testing.T) {
	c := apply(New(), digits(1, 2, 3)...)
	c = apply(c, OperationPressed{Op: Add})
	c = apply(c, digits(4, 5)...)
	assert.Equal(t, "123+45", c.Expression)

	c = apply(c, BackspacePressed{})
	assert.Equal(t, "123+4", c.Expression)
	assert.Equal(t, "4", c.Display)

	c = apply(c, BackspacePressed{})
	assert.Equal(t, "123+", c.Expression)
	assert.Equal(t, "0", c.Display)

	c = apply(c, BackspacePressed{})
	assert.Equal(t, "123", c.Expression)
	assert.Equal(t, "123", c.Display)
}

func TestBackspaceOnSingleCharacterResets(t *testing.T) {
	c := apply(New(), NumberPressed{Digit: 5}, BackspacePressed{})
	assert.Equal(t, New(), c)
}

func TestBackspaceOnZeroIsNoOp(t *testing.T) {
	c := apply(New(), BackspacePressed{})
	assert.Equal(t, New(), c)
}

func TestBackspaceRemovesMultibyteOperator(t *testing.T) {
	c := apply(New(),
		NumberPressed{Digit: 8},
		OperationPressed{Op: Divide},
		BackspacePressed{},
	)

	assert.Equal(t, "8", c.Expression)
	assert.Equal(t, "8", c.Display)
}

func TestClear(t *testing.T) {
	c := apply(New(), digits(1, 2, 3)...)
	c = apply(c, ClearPressed{})
	assert.Equal(t, New(), c)
}

func TestEqualsErrorState(t *testing.T) {
	c := apply(New(),
		NumberPressed{Digit: 5},
		OperationPressed{Op: Divide},
		NumberPressed{Digit: 0},
		EqualsPressed{},
	)

	assert.Equal(t, "Division by zero", c.Display)
	assert.Equal(t, "0", c.Expression)
	assert.True(t, c.HasError())
	assert.Equal(t, "Division by zero", c.DisplayString())
}

func TestDigitAfterErrorStartsOver(t *testing.T) {
	c := apply(New(),
		NumberPressed{Digit: 5},
		OperationPressed{Op: Divide},
		NumberPressed{Digit: 0},
		EqualsPressed{},
		NumberPressed{Digit: 7},
	)

	assert.Equal(t, Calculator{Expression: "7", Display: "7"}, c)
	assert.False(t, c.HasError())
}

func TestOperatorAfterErrorIsNoOp(t *testing.T) {
	c := apply(New(),
		NumberPressed{Digit: 5},
		OperationPressed{Op: Divide},
		NumberPressed{Digit: 0},
		EqualsPressed{},
	)
	after := apply(c, OperationPressed{Op: Add})

	assert.Equal(t, c, after)
}

func TestBackspaceClearsError(t *testing.T) {
	c := apply(New(),
		NumberPressed{Digit: 5},
		OperationPressed{Op: Divide},
		NumberPressed{Digit: 0},
		EqualsPressed{},
		BackspacePressed{},
	)

	assert.Equal(t, New(), c)
}

func TestPercentOnBareNumber(t *testing.T) {
	c := apply(New(), digits(5, 0)...)
	c = apply(c, PercentagePressed{})

	assert.Equal(t, "0.5", c.Expression)
	assert.Equal(t, "0.5", c.Display)
}

func TestPercentReplacesLastOperand(t *testing.T) {
	c := apply(New(), digits(1, 0, 0)...)
	c = apply(c, OperationPressed{Op: Add})
	c = apply(c, digits(5, 0)...)
	c = apply(c, PercentagePressed{})

	assert.Equal(t, "100+0.5", c.Expression)
	assert.Equal(t, "0.5", c.Display)
}

func TestPercentNoOpWhenDisplayNotNumeric(t *testing.T) {
	// Right after an operator the display shows the whole expression tail,
	// which does not parse as a number.
	c := apply(New(), NumberPressed{Digit: 5}, OperationPressed{Op: Add})
	after := apply(c, PercentagePressed{})
	assert.Equal(t, c, after)

	// Same for an error display.
	c = apply(New(),
		NumberPressed{Digit: 5},
		OperationPressed{Op: Divide},
		NumberPressed{Digit: 0},
		EqualsPressed{},
	)
	after = apply(c, PercentagePressed{})
	assert.Equal(t, c, after)
}

func TestSignToggleBareNumber(t *testing.T) {
	c := apply(New(), NumberPressed{Digit: 5}, SignTogglePressed{})
	assert.Equal(t, "-5", c.Expression)
	assert.Equal(t, "-5", c.Display)

	c = apply(c, SignTogglePressed{})
	assert.Equal(t, "5", c.Expression)
	assert.Equal(t, "5", c.Display)
}

func TestSignToggleLastOperand(t *testing.T) {
	c := apply(New(), digits(1, 0, 0)...)
	c = apply(c, OperationPressed{Op: Add})
	c = apply(c, digits(5, 0)...)

	c = apply(c, SignTogglePressed{})
	assert.Equal(t, "100+(-50)", c.Expression)
	assert.Equal(t, "-50", c.Display)
	assert.Equal(t, "100+(-50)", c.DisplayString())

	c = apply(c, SignTogglePressed{})
	assert.Equal(t, "100+50", c.Expression)
	assert.Equal(t, "50", c.Display)
}

func TestSignToggleZero(t *testing.T) {
	c := apply(New(), SignTogglePressed{})
	assert.Equal(t, "0", c.Expression)
	assert.Equal(t, "0", c.Display)
}

func TestSignToggleNoOpWhenDisplayNotNumeric(t *testing.T) {
	c := apply(New(), NumberPressed{Digit: 5}, OperationPressed{Op: Add})
	after := apply(c, SignTogglePressed{})
	assert.Equal(t, c, after)
}

func TestScrollHints(t *testing.T) {
	c := New()

	// "0" to "5" does not grow the expression.
	c, hint := c.Apply(NumberPressed{Digit: 5})
	assert.Equal(t, NoScroll, hint)

	c, hint = c.Apply(NumberPressed{Digit: 3})
	assert.Equal(t, ScrollToEnd, hint)

	c, hint = c.Apply(OperationPressed{Op: Add})
	assert.Equal(t, ScrollToEnd, hint)

	c, hint = c.Apply(NumberPressed{Digit: 2})
	assert.Equal(t, ScrollToEnd, hint)

	// "53+2" collapses to "55".
	c, hint = c.Apply(EqualsPressed{})
	assert.Equal(t, NoScroll, hint)

	_, hint = c.Apply(ClearPressed{})
	assert.Equal(t, NoScroll, hint)
}

func TestDisplayStringFormatsExpression(t *testing.T) {
	c := Calculator{Expression: "1200000000+1", Display: "1"}
	assert.Equal(t, "1.2e+09+1", c.DisplayString())
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		op   Op
		a, b float64
		want float64
	}{
		{Add, 5, 3, 8},
		{Subtract, 5, 3, 2},
		{Multiply, 5, 3, 15},
		{Divide, 6, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.op.Glyph(), func(t *testing.T) {
			got, err := Calculate(tt.op, tt.a, tt.b)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Calculate(Divide, 1, 0)
	assert.IsError(t, err, ErrDivisionByZero)
}
