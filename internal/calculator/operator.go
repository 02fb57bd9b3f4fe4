package calculator

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// DivisionPrecision is the number of fractional digits kept by Divide.
// Quotients that terminate earlier are exact.
var DivisionPrecision int32 = 16

// Operator is one of the four binary arithmetic operations.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

var operatorGlyphs = [...]rune{
	Add:      '+',
	Subtract: '−',
	Multiply: '×',
	Divide:   '÷',
}

var operatorNames = [...]string{
	Add:      "add",
	Subtract: "subtract",
	Multiply: "multiply",
	Divide:   "divide",
}

// Operators returns every operator in declaration order.
func Operators() []Operator {
	return []Operator{Add, Subtract, Multiply, Divide}
}

func (o Operator) valid() bool {
	return o >= Add && o <= Divide
}

// Glyph returns the display glyph for o, or utf8.RuneError if o is not a
// known operator.
func (o Operator) Glyph() rune {
	if !o.valid() {
		return utf8.RuneError
	}
	return operatorGlyphs[o]
}

// String returns the lower-case operation name ("add", "subtract", ...).
func (o Operator) String() string {
	if !o.valid() {
		return "unknown"
	}
	return operatorNames[o]
}

// OperatorFromGlyph maps one of +, −, ×, ÷ back to its Operator.
func OperatorFromGlyph(r rune) (Operator, bool) {
	for _, o := range Operators() {
		if operatorGlyphs[o] == r {
			return o, true
		}
	}
	return 0, false
}

// ParseOperator accepts either a single operator glyph or an operation name.
func ParseOperator(s string) (Operator, bool) {
	if r, size := utf8.DecodeRuneInString(s); size > 0 && size == len(s) {
		if o, ok := OperatorFromGlyph(r); ok {
			return o, true
		}
	}
	for _, o := range Operators() {
		if operatorNames[o] == s {
			return o, true
		}
	}
	return 0, false
}

// Apply computes lhs o rhs. Only Divide can fail, with ErrDividedByZero.
func (o Operator) Apply(lhs, rhs decimal.Decimal) (decimal.Decimal, error) {
	switch o {
	case Add:
		return lhs.Add(rhs), nil
	case Subtract:
		return lhs.Sub(rhs), nil
	case Multiply:
		return lhs.Mul(rhs), nil
	case Divide:
		if rhs.IsZero() {
			return decimal.Decimal{}, ErrDividedByZero
		}
		return lhs.DivRound(rhs, DivisionPrecision), nil
	}
	panic("calculator: unknown operator " + o.String())
}
