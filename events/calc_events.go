package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// OperationRecordedEvent is emitted after a successful operation is
// appended to the calculation history.
type OperationRecordedEvent struct {
	RecordID  string    `json:"record_id"`
	Operation string    `json:"operation"`
	Operands  []float64 `json:"operands"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// OperationRecordedV1 is the typed event definition for recorded operations.
// Subject: events.calculator.v1.operation-recorded
var OperationRecordedV1 = helper.EventDefinition[OperationRecordedEvent](
	"calculator", "OperationRecorded", "v1",
)

// HistoryClearedEvent is emitted when the calculation history is cleared.
type HistoryClearedEvent struct {
	Cleared   int       `json:"cleared"`
	ClearedAt time.Time `json:"cleared_at"`
}

// HistoryClearedV1 is the typed event definition for history clears.
// Subject: events.calculator.v1.history-cleared
var HistoryClearedV1 = helper.EventDefinition[HistoryClearedEvent](
	"calculator", "HistoryCleared", "v1",
)
