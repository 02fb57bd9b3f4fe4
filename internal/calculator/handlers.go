package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// ---------------------------------------------------------------------------
// Handlers — binary operations
// ---------------------------------------------------------------------------

// HandleAdd handles POST /calculator/add
func HandleAdd(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, Add)
}

// HandleSubtract handles POST /calculator/subtract
func HandleSubtract(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, Subtract)
}

// HandleMultiply handles POST /calculator/multiply
func HandleMultiply(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, Multiply)
}

// HandleDivide handles POST /calculator/divide. A zero divisor is a 400.
func HandleDivide(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, Divide)
}

// handleBinaryOp is the shared implementation for all binary calculator operations:
// a child span, metrics, trace-correlated logging and the JSON response.
func handleBinaryOp(w http.ResponseWriter, r *http.Request, op Operator) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	opName := op.String()

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.String("calculator.operand.a", req.A.String()),
		attribute.String("calculator.operand.b", req.B.String()),
	)

	start := time.Now()
	result, err := op.Apply(req.A, req.B)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		status, msg := describeError(err)
		observability.RecordError(ctx, span, logger, errorCounter, opName, msg, err, status, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result.InexactFloat64(), attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.String("result", result.String()),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.String("calculator.result", result.String()))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.Stringer("a", req.A),
		zap.Stringer("b", req.B),
		zap.Stringer("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalcResponse{
		Operation: opName,
		A:         req.A,
		B:         req.B,
		Result:    result,
	})
}

// ---------------------------------------------------------------------------
// Handler — chained operations (nested spans)
// ---------------------------------------------------------------------------

// HandleChain handles POST /calculator/chain. The steps are queued into a
// Formula and reduced left to right; every applied step gets a child span.
func HandleChain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.chain",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ChainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "chain", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Steps) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "chain", "no steps provided", errors.New("steps array is empty"), http.StatusBadRequest, w)
		return
	}

	formula := NewFormula()
	formula.Operands.Enqueue(req.Initial)
	ops := make([]Operator, 0, len(req.Steps))
	for i, step := range req.Steps {
		op, ok := ParseOperator(step.Op)
		if !ok {
			err := fmt.Errorf("unknown operation %q at step %d", step.Op, i)
			observability.RecordError(ctx, span, logger, errorCounter, "chain", err.Error(), err, http.StatusBadRequest, w)
			return
		}
		ops = append(ops, op)
		formula.Operators.Enqueue(op)
		formula.Operands.Enqueue(step.Value)
	}

	span.SetAttributes(
		attribute.String("chain.initial", req.Initial.String()),
		attribute.Int("chain.steps_count", len(req.Steps)),
	)

	logger.Info("starting chained calculation",
		zap.Stringer("initial", req.Initial),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	results := make([]ChainResult, 0, len(req.Steps))
	stepStart := time.Now()

	result, err := formula.ResultFunc(func(s Step) {
		stepElapsed := float64(time.Since(stepStart).Microseconds()) / 1000.0
		opName := s.Operator.String()

		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.chain.step.%d.%s", s.Index, opName),
			trace.WithAttributes(
				attribute.Int("chain.step.index", s.Index),
				attribute.String("chain.step.operation", opName),
				attribute.String("chain.step.input", s.LHS.String()),
				attribute.String("chain.step.value", s.RHS.String()),
			),
		)
		stepSpan.AddEvent("step.complete", trace.WithAttributes(
			attribute.String("input", s.LHS.String()),
			attribute.String("result", s.Result.String()),
		))
		stepSpan.SetAttributes(attribute.String("chain.step.result", s.Result.String()))
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		attrs := metric.WithAttributes(attribute.String("operation", opName))
		opsCounter.Add(ctx, 1, attrs)
		opsHistogram.Record(ctx, stepElapsed, attrs)

		logger.Info("chain step completed",
			zap.Int("step", s.Index),
			zap.String("operation", opName),
			zap.Stringer("input", s.LHS),
			zap.Stringer("value", s.RHS),
			zap.Stringer("result", s.Result),
			zap.Float64("duration_ms", stepElapsed),
		)

		results = append(results, ChainResult{
			Op:     opName,
			Value:  s.RHS,
			Result: s.Result,
		})
		stepStart = time.Now()
	})
	if err != nil {
		failed := len(results)
		status, msg := describeError(err)
		observability.RecordError(ctx, span, logger, errorCounter, ops[failed].String(),
			fmt.Sprintf("%s at step %d", msg, failed), err, status, w)
		return
	}

	resultGauge.Record(ctx, result.InexactFloat64(), metric.WithAttributes(attribute.String("operation", "chain")))

	span.AddEvent("chain.complete", trace.WithAttributes(
		attribute.String("final_result", result.String()),
		attribute.Int("total_steps", len(req.Steps)),
	))
	span.SetAttributes(attribute.String("chain.result", result.String()))
	span.SetStatus(codes.Ok, "")

	logger.Info("chained calculation completed",
		zap.Stringer("initial", req.Initial),
		zap.Stringer("result", result),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, ChainResponse{
		Initial: req.Initial,
		Steps:   results,
		Result:  result,
	})
}

// ---------------------------------------------------------------------------
// Handler — token expressions
// ---------------------------------------------------------------------------

// HandleEvaluate handles POST /calculator/evaluate. The body carries either
// a token list or a space-separated expression using the glyphs + − × ÷.
func HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.evaluate",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		evaluations.WithLabelValues(outcomeInvalid).Inc()
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	tokens := req.Tokens
	if len(tokens) == 0 {
		tokens = strings.Fields(req.Expression)
	}
	expression := strings.Join(tokens, " ")
	span.SetAttributes(attribute.String("calculator.expression", expression))

	formula, err := ParseTokens(tokens)
	if err != nil {
		evaluations.WithLabelValues(outcomeInvalid).Inc()
		_, msg := describeError(err)
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", msg, err, http.StatusBadRequest, w)
		return
	}

	start := time.Now()
	result, err := formula.Result()
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	switch {
	case errors.Is(err, ErrDividedByZero):
		evaluations.WithLabelValues(outcomeDividedByZero).Inc()
		observability.RecordErrorResponse(ctx, span, logger, errorCounter, "evaluate",
			handlers.ErrorResponse{Error: "divided by zero", Result: "NaN"}, err, http.StatusBadRequest, w)
		return
	case err != nil:
		evaluations.WithLabelValues(outcomeEmpty).Inc()
		status, msg := describeError(err)
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", msg, err, status, w)
		return
	}

	evaluations.WithLabelValues(outcomeOK).Inc()

	attrs := metric.WithAttributes(attribute.String("operation", "evaluate"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result.InexactFloat64(), attrs)

	span.SetAttributes(attribute.String("calculator.result", result.String()))
	span.SetStatus(codes.Ok, "")

	logger.Info("expression evaluated",
		zap.String("expression", expression),
		zap.Stringer("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, EvaluateResponse{
		Expression: expression,
		Result:     result,
	})
}

// describeError maps engine errors to an HTTP status and client message.
func describeError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrQueueEmpty):
		return http.StatusUnprocessableEntity, "no calculation possible yet"
	case errors.Is(err, ErrDividedByZero):
		return http.StatusBadRequest, "divided by zero"
	case errors.Is(err, ErrInvalidOperand):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "internal error"
}
