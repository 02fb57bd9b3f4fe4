package calculator

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Formula is a flat expression held as an operand queue and an operator
// queue. It is evaluated strictly in entry order: 3 + 2 × 4 is (3+2)×4.
//
// A Formula is built for a single evaluation; Result drains both queues.
type Formula struct {
	Operands  *ItemQueue[decimal.Decimal]
	Operators *ItemQueue[Operator]
}

// Step describes one applied operation during a reduction.
type Step struct {
	Index    int
	Operator Operator
	LHS      decimal.Decimal
	RHS      decimal.Decimal
	Result   decimal.Decimal
}

// StepFunc observes each successfully applied step.
type StepFunc func(Step)

// NewFormula returns a Formula with empty queues.
func NewFormula() *Formula {
	return &Formula{
		Operands:  NewItemQueue[decimal.Decimal](),
		Operators: NewItemQueue[Operator](),
	}
}

// Result reduces the queues left to right.
//
// It fails with ErrQueueEmpty when there is no first operand and with
// ErrDividedByZero when any step divides by zero. An operator with no
// following operand is dropped and the value computed so far is returned.
// Both queues are empty afterwards, whatever the outcome.
func (f *Formula) Result() (decimal.Decimal, error) {
	return f.ResultFunc(nil)
}

// ResultFunc is Result with fn called after every applied step.
func (f *Formula) ResultFunc(fn StepFunc) (decimal.Decimal, error) {
	defer f.Operators.RemoveAll()
	defer f.Operands.RemoveAll()

	acc, err := f.Operands.Dequeue()
	if err != nil {
		return decimal.Decimal{}, err
	}

	for i := 0; !f.Operators.IsEmpty(); i++ {
		op, err := f.Operators.Dequeue()
		if err != nil {
			return decimal.Decimal{}, err
		}

		rhs, err := f.Operands.Dequeue()
		if errors.Is(err, ErrQueueEmpty) {
			// trailing operator
			break
		}

		next, err := op.Apply(acc, rhs)
		if err != nil {
			return decimal.Decimal{}, err
		}

		if fn != nil {
			fn(Step{Index: i, Operator: op, LHS: acc, RHS: rhs, Result: next})
		}
		acc = next
	}

	return acc, nil
}
