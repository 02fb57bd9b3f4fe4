package calculator

import (
	"errors"
	"testing"
)

// Formulas are single-goroutine values; none of these tests share one.

func newTestFormula(operands []string, glyphs []rune) *Formula {
	f := NewFormula()
	for _, o := range operands {
		f.Operands.Enqueue(dec(o))
	}
	for _, g := range glyphs {
		op, ok := OperatorFromGlyph(g)
		if !ok {
			panic("bad glyph " + string(g))
		}
		f.Operators.Enqueue(op)
	}
	return f
}

func TestFormulaResult(t *testing.T) {
	tests := []struct {
		name     string
		operands []string
		glyphs   []rune
		want     string
	}{
		{name: "addition only", operands: []string{"3.0", "-2.0", "15.0"}, glyphs: []rune{'+', '+'}, want: "16.0"},
		{name: "subtraction only", operands: []string{"3.0", "-2.0", "15.0"}, glyphs: []rune{'−', '−'}, want: "-10.0"},
		{name: "multiplication only", operands: []string{"3.0", "-2.0", "15.0"}, glyphs: []rune{'×', '×'}, want: "-90.0"},
		{name: "division only", operands: []string{"15.0", "3.0", "-2.0"}, glyphs: []rune{'÷', '÷'}, want: "-2.5"},
		{name: "entry order not precedence", operands: []string{"15.0", "3.0", "-2.0"}, glyphs: []rune{'+', '×'}, want: "-36.0"},
		{name: "three plus two times four", operands: []string{"3", "2", "4"}, glyphs: []rune{'+', '×'}, want: "20"},
		{name: "trailing operator dropped", operands: []string{"15.0", "3.0"}, glyphs: []rune{'+', '×'}, want: "18.0"},
		{name: "single operand", operands: []string{"42.5"}, want: "42.5"},
		{name: "single operand with dangling operator", operands: []string{"7"}, glyphs: []rune{'÷'}, want: "7"},
		{name: "decimal exactness", operands: []string{"0.1", "0.2"}, glyphs: []rune{'+'}, want: "0.3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := newTestFormula(tc.operands, tc.glyphs).Result()
			if err != nil {
				t.Fatalf("Result: %v", err)
			}
			checkDecimal(t, tc.want, got)
		})
	}
}

func TestFormulaDividedByZero(t *testing.T) {
	f := newTestFormula([]string{"15.0", "3.0", "0.0", "-2.0"}, []rune{'÷', '÷', '+'})

	if _, err := f.Result(); !errors.Is(err, ErrDividedByZero) {
		t.Fatalf("expected ErrDividedByZero, got %v", err)
	}
}

func TestFormulaDividedByZeroAnyPosition(t *testing.T) {
	for pos := 0; pos < 4; pos++ {
		operands := []string{"8", "4", "2", "1", "5"}
		glyphs := []rune{'+', '+', '+', '+'}
		glyphs[pos] = '÷'
		operands[pos+1] = "0"

		if _, err := newTestFormula(operands, glyphs).Result(); !errors.Is(err, ErrDividedByZero) {
			t.Fatalf("zero divisor at step %d: expected ErrDividedByZero, got %v", pos, err)
		}
	}
}

func TestFormulaEmptyOperands(t *testing.T) {
	for _, glyphs := range [][]rune{nil, {'+'}, {'+', '×', '÷'}} {
		if _, err := newTestFormula(nil, glyphs).Result(); !errors.Is(err, ErrQueueEmpty) {
			t.Fatalf("operators %q: expected ErrQueueEmpty, got %v", string(glyphs), err)
		}
	}
}

func TestFormulaSecondResultIsEmpty(t *testing.T) {
	f := newTestFormula([]string{"1", "2"}, []rune{'+'})

	got, err := f.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	checkDecimal(t, "3", got)

	if _, err := f.Result(); !errors.Is(err, ErrQueueEmpty) {
		t.Fatalf("second Result: expected ErrQueueEmpty, got %v", err)
	}
}

func TestFormulaDrainsQueuesOnEveryOutcome(t *testing.T) {
	tests := []struct {
		name     string
		operands []string
		glyphs   []rune
		firstErr error
	}{
		{name: "divided by zero mid chain", operands: []string{"15.0", "3.0", "0.0", "-2.0"}, glyphs: []rune{'÷', '÷', '+'}, firstErr: ErrDividedByZero},
		{name: "trailing operator", operands: []string{"15.0", "3.0"}, glyphs: []rune{'+', '×'}},
		{name: "surplus operands", operands: []string{"1", "2", "3"}, glyphs: []rune{'+'}},
		{name: "operators without operands", glyphs: []rune{'+', '×'}, firstErr: ErrQueueEmpty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestFormula(tc.operands, tc.glyphs)

			_, err := f.Result()
			if tc.firstErr == nil && err != nil {
				t.Fatalf("first Result: %v", err)
			}
			if tc.firstErr != nil && !errors.Is(err, tc.firstErr) {
				t.Fatalf("first Result: expected %v, got %v", tc.firstErr, err)
			}

			if !f.Operands.IsEmpty() || !f.Operators.IsEmpty() {
				t.Fatalf("expected drained queues, got %d operands and %d operators", f.Operands.Count(), f.Operators.Count())
			}

			got, err := f.Result()
			if !errors.Is(err, ErrQueueEmpty) {
				t.Fatalf("second Result: expected ErrQueueEmpty, got %s, %v", got, err)
			}
		})
	}
}

func TestFormulaMatchesLeftFold(t *testing.T) {
	operands := []string{"12.5", "-3", "0.25", "7", "-1.5", "4", "0.1", "100"}
	ops := []Operator{Multiply, Add, Divide, Subtract, Multiply, Divide, Add}

	// every prefix, with and without one extra trailing operator
	for n := 1; n <= len(operands); n++ {
		want := dec(operands[0])
		for i := 1; i < n; i++ {
			var err error
			want, err = ops[i-1].Apply(want, dec(operands[i]))
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
		}

		for _, extra := range []int{0, 1} {
			if n-1+extra > len(ops) {
				continue
			}
			f := NewFormula()
			for _, o := range operands[:n] {
				f.Operands.Enqueue(dec(o))
			}
			for _, op := range ops[:n-1+extra] {
				f.Operators.Enqueue(op)
			}

			got, err := f.Result()
			if err != nil {
				t.Fatalf("n=%d extra=%d: %v", n, extra, err)
			}
			if !want.Equal(got) {
				t.Fatalf("n=%d extra=%d: expected %s, got %s", n, extra, want, got)
			}
		}
	}
}

func TestFormulaResultFuncReportsSteps(t *testing.T) {
	f := newTestFormula([]string{"15", "3", "-2"}, []rune{'+', '×', '÷'})

	var steps []Step
	got, err := f.ResultFunc(func(s Step) { steps = append(steps, s) })
	if err != nil {
		t.Fatalf("ResultFunc: %v", err)
	}
	checkDecimal(t, "-36", got)

	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}

	if steps[0].Index != 0 || steps[0].Operator != Add {
		t.Fatalf("unexpected first step %+v", steps[0])
	}
	checkDecimal(t, "15", steps[0].LHS)
	checkDecimal(t, "3", steps[0].RHS)
	checkDecimal(t, "18", steps[0].Result)

	if steps[1].Index != 1 || steps[1].Operator != Multiply {
		t.Fatalf("unexpected second step %+v", steps[1])
	}
	checkDecimal(t, "-36", steps[1].Result)
}

func TestFormulaResultFuncStopsAtDivideByZero(t *testing.T) {
	f := newTestFormula([]string{"15", "3", "0", "-2"}, []rune{'÷', '÷', '+'})

	var seen int
	if _, err := f.ResultFunc(func(Step) { seen++ }); !errors.Is(err, ErrDividedByZero) {
		t.Fatalf("expected ErrDividedByZero, got %v", err)
	}
	if seen != 1 {
		t.Fatalf("expected 1 step before the failure, got %d", seen)
	}
}

func TestFormulaDivisionPrecision(t *testing.T) {
	old := DivisionPrecision
	DivisionPrecision = 2
	t.Cleanup(func() { DivisionPrecision = old })

	got, err := newTestFormula([]string{"10", "3"}, []rune{'÷'}).Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	checkDecimal(t, "3.33", got)
}
