package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-chi-calculator/internal/calculator"
)

// asciiGlyphs maps keyboard-friendly operator spellings onto the glyphs the
// parser accepts. A lone "-" is subtraction; "-2" stays a negative literal.
var asciiGlyphs = map[string]string{
	"-": "−",
	"*": "×",
	"x": "×",
	"/": "÷",
}

const notANumber = "NaN"

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate one expression",
		Example: `  calc eval 3 + 2 '*' 4
  calc eval "15 / 3 / -2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := evaluate(opts, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// normalizeTokens splits expr into tokens and rewrites ASCII operators.
func normalizeTokens(expr string) []string {
	tokens := strings.Fields(expr)
	for i, tok := range tokens {
		if glyph, ok := asciiGlyphs[tok]; ok {
			tokens[i] = glyph
		}
	}
	return tokens
}

// evaluate returns the display text for expr. Division by zero is
// displayed as NaN rather than reported as an error.
func evaluate(opts *options, expr string) (string, error) {
	tokens := normalizeTokens(expr)

	formula, err := calculator.ParseTokens(tokens)
	if err != nil {
		return "", err
	}

	result, err := formula.ResultFunc(func(s calculator.Step) {
		opts.logger.Debug("step",
			zap.Int("index", s.Index),
			zap.String("operator", string(s.Operator.Glyph())),
			zap.Stringer("lhs", s.LHS),
			zap.Stringer("rhs", s.RHS),
			zap.Stringer("result", s.Result),
		)
	})
	switch {
	case errors.Is(err, calculator.ErrDividedByZero):
		opts.logger.Debug("division by zero", zap.Strings("tokens", tokens))
		return notANumber, nil
	case errors.Is(err, calculator.ErrQueueEmpty):
		return "", errors.New("no calculation possible yet")
	case err != nil:
		return "", err
	}

	return formatResult(result, opts.group), nil
}

// formatResult renders d, optionally inserting a comma every three integer
// digits.
func formatResult(d decimal.Decimal, group bool) string {
	s := d.String()
	if !group {
		return s
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := sign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}

// printError writes a highlighted error line to w.
func printError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "error: %v\n", err)
}
