package calculator

import (
	"fmt"
	"math"
	"time"

	"github.com/example/calculator-demo/domain/calc"
	"github.com/example/calculator-demo/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
)

// Service performs arithmetic and maintains the append-only history of
// completed operations. Failed operations leave the history untouched
// and the Service stays usable afterwards.
//
// A Service assumes a single logical owner; callers needing concurrent
// access must serialize it externally.
type Service struct {
	history  calc.HistoryStore
	eventBus mono.EventBus
	logger   types.Logger
}

// NewService creates a calculator service on top of the given history
// store. A nil event bus disables event publishing.
func NewService(history calc.HistoryStore, eventBus mono.EventBus, logger types.Logger) *Service {
	return &Service{
		history:  history,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Add returns a + b and records the operation.
func (s *Service) Add(a, b float64) (float64, error) {
	return s.record(calc.OperationAdd, a+b, a, b)
}

// Subtract returns a - b and records the operation.
func (s *Service) Subtract(a, b float64) (float64, error) {
	return s.record(calc.OperationSubtract, a-b, a, b)
}

// Multiply returns a * b and records the operation.
func (s *Service) Multiply(a, b float64) (float64, error) {
	return s.record(calc.OperationMultiply, a*b, a, b)
}

// Divide returns a / b and records the operation. It fails with
// calc.ErrDivisionByZero when b is exactly zero; nothing is recorded
// on failure.
func (s *Service) Divide(a, b float64) (float64, error) {
	if b == 0.0 {
		return 0, calc.ErrDivisionByZero
	}
	return s.record(calc.OperationDivide, a/b, a, b)
}

// Power returns base raised to exponent with float64 semantics,
// including fractional and negative exponents, and records the
// operation.
func (s *Service) Power(base, exponent float64) (float64, error) {
	return s.record(calc.OperationPower, math.Pow(base, exponent), base, exponent)
}

// Sqrt returns the non-negative square root of x and records the
// operation. It fails with calc.ErrNegativeSquareRoot when x is
// negative; nothing is recorded on failure.
func (s *Service) Sqrt(x float64) (float64, error) {
	if x < 0.0 {
		return 0, calc.ErrNegativeSquareRoot
	}
	return s.record(calc.OperationSqrt, math.Sqrt(x), x)
}

// Apply resolves an operation by name and invokes it with the given
// operands. Unknown names fail with calc.ErrInvalidOperation; the six
// named methods never produce that error themselves.
func (s *Service) Apply(operation string, operands ...float64) (float64, error) {
	op := calc.Operation(operation)
	if !op.IsValid() {
		return 0, fmt.Errorf("%w: %s", calc.ErrInvalidOperation, operation)
	}
	if len(operands) != op.Arity() {
		return 0, fmt.Errorf("operation %q expects %d operands, got %d", op, op.Arity(), len(operands))
	}

	switch op {
	case calc.OperationAdd:
		return s.Add(operands[0], operands[1])
	case calc.OperationSubtract:
		return s.Subtract(operands[0], operands[1])
	case calc.OperationMultiply:
		return s.Multiply(operands[0], operands[1])
	case calc.OperationDivide:
		return s.Divide(operands[0], operands[1])
	case calc.OperationPower:
		return s.Power(operands[0], operands[1])
	default:
		return s.Sqrt(operands[0])
	}
}

// History returns a chronological snapshot of all recorded operations.
func (s *Service) History() ([]calc.CalculationResult, error) {
	return s.history.List()
}

// ClearHistory discards all recorded operations and returns the number
// of entries discarded.
func (s *Service) ClearHistory() (int, error) {
	cleared, err := s.history.Count()
	if err != nil {
		return 0, err
	}
	if err := s.history.Clear(); err != nil {
		return 0, err
	}

	s.publishHistoryCleared(cleared)
	return cleared, nil
}

// HistoryCount returns the number of recorded operations.
func (s *Service) HistoryCount() (int, error) {
	return s.history.Count()
}

// record appends the history record for a completed operation and
// returns the result.
func (s *Service) record(op calc.Operation, result float64, operands ...float64) (float64, error) {
	rec := calc.NewResult(op, operands, result)
	if err := s.history.Append(rec); err != nil {
		return 0, fmt.Errorf("failed to record %s operation: %w", op, err)
	}

	s.publishOperationRecorded(rec)
	return result, nil
}

// publishOperationRecorded emits the OperationRecorded event.
// Publishing is best-effort and never affects the operation result.
func (s *Service) publishOperationRecorded(rec calc.CalculationResult) {
	if s.eventBus == nil {
		return
	}

	event := events.OperationRecordedEvent{
		RecordID:  rec.ID,
		Operation: string(rec.Operation),
		Operands:  rec.Operands,
		Result:    rec.Result,
		Timestamp: rec.Timestamp,
	}
	if err := events.OperationRecordedV1.Publish(s.eventBus, event, nil); err != nil {
		s.logger.Warn("Failed to publish OperationRecorded event",
			"recordID", rec.ID,
			"operation", rec.Operation,
			"error", err)
	}
}

// publishHistoryCleared emits the HistoryCleared event. Publishing is
// best-effort and never affects the clear itself.
func (s *Service) publishHistoryCleared(cleared int) {
	if s.eventBus == nil {
		return
	}

	event := events.HistoryClearedEvent{
		Cleared:   cleared,
		ClearedAt: time.Now(),
	}
	if err := events.HistoryClearedV1.Publish(s.eventBus, event, nil); err != nil {
		s.logger.Warn("Failed to publish HistoryCleared event", "error", err)
	}
}
