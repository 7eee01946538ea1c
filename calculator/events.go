package calculator

// The shell-facing message contract. A UI delivers one Event per keystroke;
// Apply returns the next state plus a scroll hint derived purely from
// comparing expression lengths before and after.

// Event is a discrete UI event delivered to the state machine.
type Event interface {
	isEvent()
}

// NumberPressed is a digit key, 0 through 9.
type NumberPressed struct {
	Digit uint8
}

// DecimalPressed is the decimal point key.
type DecimalPressed struct{}

// OperationPressed is one of the four operator keys.
type OperationPressed struct {
	Op Op
}

// EqualsPressed requests evaluation of the current expression.
type EqualsPressed struct{}

// ClearPressed resets the calculator.
type ClearPressed struct{}

// BackspacePressed removes the last entered character.
type BackspacePressed struct{}

// PercentagePressed divides the displayed value by 100.
type PercentagePressed struct{}

// SignTogglePressed negates the current operand.
type SignTogglePressed struct{}

func (NumberPressed) isEvent()     {}
func (DecimalPressed) isEvent()    {}
func (OperationPressed) isEvent()  {}
func (EqualsPressed) isEvent()     {}
func (ClearPressed) isEvent()      {}
func (BackspacePressed) isEvent()  {}
func (PercentagePressed) isEvent() {}
func (SignTogglePressed) isEvent() {}

// ScrollHint tells the shell whether its display widget should scroll to the
// end after an event. It carries no other semantics.
type ScrollHint uint8

const (
	NoScroll ScrollHint = iota
	ScrollToEnd
)

// Apply processes one event and returns the next state. The hint is
// ScrollToEnd exactly when the expression text grew in length.
func (c Calculator) Apply(event Event) (Calculator, ScrollHint) {
	before := len(c.Expression)

	var next Calculator
	switch e := event.(type) {
	case NumberPressed:
		next = c.handleDigit(e.Digit)
	case DecimalPressed:
		next = c.handleDecimal()
	case OperationPressed:
		next = c.handleOperator(e.Op)
	case EqualsPressed:
		next = c.handleEquals()
	case ClearPressed:
		next = c.handleClear()
	case BackspacePressed:
		next = c.handleBackspace()
	case PercentagePressed:
		next = c.handlePercent()
	case SignTogglePressed:
		next = c.handleSignToggle()
	default:
		next = c
	}

	if len(next.Expression) > before {
		return next, ScrollToEnd
	}
	return next, NoScroll
}
