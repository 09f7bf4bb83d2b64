// Package calc provides the domain types for arithmetic operations and
// their recorded history.
package calc

import (
	"time"

	"github.com/google/uuid"
)

// Operation identifies an arithmetic operation by name.
type Operation string

const (
	// OperationAdd adds two operands.
	OperationAdd Operation = "add"
	// OperationSubtract subtracts the second operand from the first.
	OperationSubtract Operation = "subtract"
	// OperationMultiply multiplies two operands.
	OperationMultiply Operation = "multiply"
	// OperationDivide divides the first operand by the second.
	OperationDivide Operation = "divide"
	// OperationPower raises the first operand to the second.
	OperationPower Operation = "power"
	// OperationSqrt takes the square root of a single operand.
	OperationSqrt Operation = "sqrt"
)

// IsValid reports whether the operation is one of the known operations.
func (o Operation) IsValid() bool {
	switch o {
	case OperationAdd, OperationSubtract, OperationMultiply,
		OperationDivide, OperationPower, OperationSqrt:
		return true
	default:
		return false
	}
}

// Arity returns the number of operands the operation consumes.
func (o Operation) Arity() int {
	switch o {
	case OperationSqrt:
		return 1
	default:
		return 2
	}
}

// CalculationResult is an immutable record of one completed operation.
type CalculationResult struct {
	ID        string    `json:"id"`
	Operation Operation `json:"operation"`
	Operands  []float64 `json:"operands"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// NewResult builds the record for a completed operation. The operand
// slice is copied so later mutation by the caller cannot reach the
// record, and the timestamp is stamped at creation.
func NewResult(op Operation, operands []float64, result float64) CalculationResult {
	ops := make([]float64, len(operands))
	copy(ops, operands)

	return CalculationResult{
		ID:        uuid.New().String(),
		Operation: op,
		Operands:  ops,
		Result:    result,
		Timestamp: time.Now(),
	}
}
