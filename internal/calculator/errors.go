package calculator

import "errors"

var (
	// ErrQueueEmpty is returned when an item is required from a queue that
	// holds none. At the formula level it means no calculation is possible yet.
	ErrQueueEmpty = errors.New("queue is empty")

	// ErrDividedByZero is returned when Divide is applied with a zero
	// right-hand operand. It aborts the whole evaluation.
	ErrDividedByZero = errors.New("divided by zero")

	// ErrInvalidOperand is returned by the parser for a token that is neither
	// an operator glyph nor a decimal literal.
	ErrInvalidOperand = errors.New("invalid operand")
)
