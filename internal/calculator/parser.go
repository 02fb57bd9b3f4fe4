package calculator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ParseTokens splits a flat token sequence into a Formula. A token that is
// exactly one operator glyph is queued as an operator; every other token
// must be a decimal literal.
func ParseTokens(tokens []string) (*Formula, error) {
	f := NewFormula()

	for i, tok := range tokens {
		if r, size := utf8.DecodeRuneInString(tok); size > 0 && size == len(tok) {
			if op, ok := OperatorFromGlyph(r); ok {
				f.Operators.Enqueue(op)
				continue
			}
		}

		d, err := decimal.NewFromString(tok)
		if err != nil {
			return nil, fmt.Errorf("token %d %q: %w", i, tok, ErrInvalidOperand)
		}
		f.Operands.Enqueue(d)
	}

	return f, nil
}

// ParseExpression splits expr on white space and parses the tokens.
func ParseExpression(expr string) (*Formula, error) {
	return ParseTokens(strings.Fields(expr))
}
