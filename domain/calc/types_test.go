package calc

import (
	"testing"
	"time"
)

func TestOperationIsValid(t *testing.T) {
	tests := []struct {
		name      string
		operation Operation
		want      bool
	}{
		{
			name:      "add",
			operation: OperationAdd,
			want:      true,
		},
		{
			name:      "subtract",
			operation: OperationSubtract,
			want:      true,
		},
		{
			name:      "multiply",
			operation: OperationMultiply,
			want:      true,
		},
		{
			name:      "divide",
			operation: OperationDivide,
			want:      true,
		},
		{
			name:      "power",
			operation: OperationPower,
			want:      true,
		},
		{
			name:      "sqrt",
			operation: OperationSqrt,
			want:      true,
		},
		{
			name:      "unknown name",
			operation: Operation("modulo"),
			want:      false,
		},
		{
			name:      "empty name",
			operation: Operation(""),
			want:      false,
		},
		{
			name:      "case sensitive",
			operation: Operation("Add"),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.operation.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.operation, got, tt.want)
			}
		})
	}
}

func TestOperationArity(t *testing.T) {
	tests := []struct {
		name      string
		operation Operation
		want      int
	}{
		{
			name:      "sqrt is unary",
			operation: OperationSqrt,
			want:      1,
		},
		{
			name:      "add is binary",
			operation: OperationAdd,
			want:      2,
		},
		{
			name:      "divide is binary",
			operation: OperationDivide,
			want:      2,
		},
		{
			name:      "power is binary",
			operation: OperationPower,
			want:      2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.operation.Arity(); got != tt.want {
				t.Errorf("Arity(%q) = %d, want %d", tt.operation, got, tt.want)
			}
		})
	}
}

func TestNewResult(t *testing.T) {
	before := time.Now()
	result := NewResult(OperationAdd, []float64{2, 3}, 5)
	after := time.Now()

	if result.ID == "" {
		t.Error("NewResult() produced an empty ID")
	}
	if result.Operation != OperationAdd {
		t.Errorf("Operation = %q, want %q", result.Operation, OperationAdd)
	}
	if len(result.Operands) != 2 || result.Operands[0] != 2 || result.Operands[1] != 3 {
		t.Errorf("Operands = %v, want [2 3]", result.Operands)
	}
	if result.Result != 5 {
		t.Errorf("Result = %v, want 5", result.Result)
	}
	if result.Timestamp.Before(before) || result.Timestamp.After(after) {
		t.Errorf("Timestamp = %v, want between %v and %v", result.Timestamp, before, after)
	}
}

func TestNewResultCopiesOperands(t *testing.T) {
	operands := []float64{10, 2}
	result := NewResult(OperationDivide, operands, 5)

	operands[0] = 99
	if result.Operands[0] != 10 {
		t.Errorf("Operands[0] = %v after caller mutation, want 10", result.Operands[0])
	}
}

func TestNewResultUniqueIDs(t *testing.T) {
	first := NewResult(OperationAdd, []float64{1, 1}, 2)
	second := NewResult(OperationAdd, []float64{1, 1}, 2)

	if first.ID == second.ID {
		t.Errorf("two records share ID %q", first.ID)
	}
}
