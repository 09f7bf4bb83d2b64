package calculator

import "time"

// BinaryRequest carries the two operands of add, subtract, multiply,
// divide and power.
type BinaryRequest struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// UnaryRequest carries the single operand of sqrt.
type UnaryRequest struct {
	X float64 `json:"x"`
}

// CalculateRequest invokes an operation by name.
type CalculateRequest struct {
	Operation string    `json:"operation"`
	Operands  []float64 `json:"operands"`
}

// OperationResponse carries the numeric result of an operation.
type OperationResponse struct {
	Operation string  `json:"operation"`
	Result    float64 `json:"result"`
}

// HistoryRequest asks for the recorded history.
type HistoryRequest struct{}

// HistoryEntry is the wire form of one recorded operation.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Operation string    `json:"operation"`
	Operands  []float64 `json:"operands"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse lists the recorded history in chronological order.
type HistoryResponse struct {
	Entries []HistoryEntry `json:"entries"`
	Total   int            `json:"total"`
}

// ClearHistoryRequest asks for the history to be discarded.
type ClearHistoryRequest struct{}

// ClearHistoryResponse reports how many entries were discarded.
type ClearHistoryResponse struct {
	Cleared int `json:"cleared"`
}
