package calculator

import (
	"context"

	"github.com/example/calculator-demo/domain/calc"
	"github.com/go-monolith/mono"
)

// handleAdd handles the calculator.add service request.
func (m *Module) handleAdd(_ context.Context, req BinaryRequest, _ *mono.Msg) (OperationResponse, error) {
	result, err := m.service.Add(req.A, req.B)
	if err != nil {
		return OperationResponse{}, err
	}
	return OperationResponse{Operation: string(calc.OperationAdd), Result: result}, nil
}

// handleSubtract handles the calculator.subtract service request.
func (m *Module) handleSubtract(_ context.Context, req BinaryRequest, _ *mono.Msg) (OperationResponse, error) {
	result, err := m.service.Subtract(req.A, req.B)
	if err != nil {
		return OperationResponse{}, err
	}
	return OperationResponse{Operation: string(calc.OperationSubtract), Result: result}, nil
}

// handleMultiply handles the calculator.multiply service request.
func (m *Module) handleMultiply(_ context.Context, req BinaryRequest, _ *mono.Msg) (OperationResponse, error) {
	result, err := m.service.Multiply(req.A, req.B)
	if err != nil {
		return OperationResponse{}, err
	}
	return OperationResponse{Operation: string(calc.OperationMultiply), Result: result}, nil
}

// handleDivide handles the calculator.divide service request. Division
// by zero is returned to the caller as-is.
func (m *Module) handleDivide(_ context.Context, req BinaryRequest, _ *mono.Msg) (OperationResponse, error) {
	result, err := m.service.Divide(req.A, req.B)
	if err != nil {
		return OperationResponse{}, err
	}
	return OperationResponse{Operation: string(calc.OperationDivide), Result: result}, nil
}

// handlePower handles the calculator.power service request.
func (m *Module) handlePower(_ context.Context, req BinaryRequest, _ *mono.Msg) (OperationResponse, error) {
	result, err := m.service.Power(req.A, req.B)
	if err != nil {
		return OperationResponse{}, err
	}
	return OperationResponse{Operation: string(calc.OperationPower), Result: result}, nil
}

// handleSqrt handles the calculator.sqrt service request. Negative
// operands are returned to the caller as-is.
func (m *Module) handleSqrt(_ context.Context, req UnaryRequest, _ *mono.Msg) (OperationResponse, error) {
	result, err := m.service.Sqrt(req.X)
	if err != nil {
		return OperationResponse{}, err
	}
	return OperationResponse{Operation: string(calc.OperationSqrt), Result: result}, nil
}

// handleCalculate handles the calculator.calculate service request,
// resolving the operation by name.
func (m *Module) handleCalculate(_ context.Context, req CalculateRequest, _ *mono.Msg) (OperationResponse, error) {
	result, err := m.service.Apply(req.Operation, req.Operands...)
	if err != nil {
		return OperationResponse{}, err
	}
	return OperationResponse{Operation: req.Operation, Result: result}, nil
}

// handleHistory handles the calculator.history service request.
func (m *Module) handleHistory(_ context.Context, _ HistoryRequest, _ *mono.Msg) (HistoryResponse, error) {
	results, err := m.service.History()
	if err != nil {
		return HistoryResponse{}, err
	}

	response := HistoryResponse{
		Entries: make([]HistoryEntry, 0, len(results)),
		Total:   len(results),
	}
	for _, result := range results {
		response.Entries = append(response.Entries, toHistoryEntry(result))
	}
	return response, nil
}

// handleClearHistory handles the calculator.clear-history service request.
func (m *Module) handleClearHistory(_ context.Context, _ ClearHistoryRequest, _ *mono.Msg) (ClearHistoryResponse, error) {
	cleared, err := m.service.ClearHistory()
	if err != nil {
		return ClearHistoryResponse{}, err
	}
	return ClearHistoryResponse{Cleared: cleared}, nil
}

// toHistoryEntry converts a domain record to its wire form.
func toHistoryEntry(result calc.CalculationResult) HistoryEntry {
	return HistoryEntry{
		ID:        result.ID,
		Operation: string(result.Operation),
		Operands:  result.Operands,
		Result:    result.Result,
		Timestamp: result.Timestamp,
	}
}
