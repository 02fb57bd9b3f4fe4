package calculator

import "github.com/shopspring/decimal"

// CalcRequest is the JSON body for binary operations (add, subtract, multiply, divide).
// Operands may be sent as JSON strings or numbers; strings avoid float rounding.
type CalcRequest struct {
	A decimal.Decimal `json:"a"`
	B decimal.Decimal `json:"b"`
}

// CalcResponse is the JSON response for binary operations.
type CalcResponse struct {
	Operation string          `json:"operation"`
	A         decimal.Decimal `json:"a"`
	B         decimal.Decimal `json:"b"`
	Result    decimal.Decimal `json:"result"`
}

// ChainStep describes a single step in a chained calculation.
type ChainStep struct {
	Op    string          `json:"op"`    // name ("add") or glyph ("+")
	Value decimal.Decimal `json:"value"` // the operand applied with the running total
}

// ChainRequest is the JSON body for POST /calculator/chain.
type ChainRequest struct {
	Initial decimal.Decimal `json:"initial"`
	Steps   []ChainStep     `json:"steps"`
}

// ChainResponse is the JSON response for POST /calculator/chain.
type ChainResponse struct {
	Initial decimal.Decimal `json:"initial"`
	Steps   []ChainResult   `json:"steps"`
	Result  decimal.Decimal `json:"result"`
}

// ChainResult records one executed step.
type ChainResult struct {
	Op     string          `json:"op"`
	Value  decimal.Decimal `json:"value"`
	Result decimal.Decimal `json:"result"`
}

// EvaluateRequest is the JSON body for POST /calculator/evaluate. Tokens
// takes precedence over Expression when both are set.
type EvaluateRequest struct {
	Tokens     []string `json:"tokens,omitempty"`
	Expression string   `json:"expression,omitempty"`
}

// EvaluateResponse is the JSON response for POST /calculator/evaluate.
type EvaluateResponse struct {
	Expression string          `json:"expression"`
	Result     decimal.Decimal `json:"result"`
}
