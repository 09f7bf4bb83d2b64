package calculator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/calculator-demo/domain/calc"
	"gorm.io/gorm"
)

// HistoryRecord is the database row form of a recorded operation. Seq
// preserves insertion order for chronological reads. Result and
// Operands are formatted text: REAL columns and JSON cannot carry NaN
// or the infinities, and power produces both.
type HistoryRecord struct {
	Seq       uint      `gorm:"primarykey;autoIncrement" json:"seq"`
	ID        string    `gorm:"size:36;uniqueIndex;not null" json:"id"`
	Operation string    `gorm:"size:16;not null" json:"operation"`
	Operands  string    `gorm:"size:256;not null" json:"operands"`
	Result    string    `gorm:"size:32;not null" json:"result"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

// TableName returns the table name for HistoryRecord model.
func (HistoryRecord) TableName() string {
	return "calculation_history"
}

// HistoryRepository stores the calculation history in a SQL database.
type HistoryRepository struct {
	db *gorm.DB
}

var _ calc.HistoryStore = (*HistoryRepository)(nil)

// NewHistoryRepository creates a new history repository.
func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append stores a record at the end of the history.
func (r *HistoryRepository) Append(result calc.CalculationResult) error {
	record := toHistoryRecord(result)
	if err := r.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to append history record: %w", err)
	}
	return nil
}

// List returns all records in chronological order.
func (r *HistoryRepository) List() ([]calc.CalculationResult, error) {
	var records []HistoryRecord
	if err := r.db.Order("seq").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	results := make([]calc.CalculationResult, 0, len(records))
	for _, record := range records {
		result, err := toCalculationResult(record)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Clear discards all records.
func (r *HistoryRepository) Clear() error {
	session := r.db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := session.Delete(&HistoryRecord{}).Error; err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Count returns the number of stored records.
func (r *HistoryRepository) Count() (int, error) {
	var count int64
	if err := r.db.Model(&HistoryRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return int(count), nil
}

// toHistoryRecord converts a domain record into its row form.
func toHistoryRecord(result calc.CalculationResult) HistoryRecord {
	return HistoryRecord{
		ID:        result.ID,
		Operation: string(result.Operation),
		Operands:  encodeOperands(result.Operands),
		Result:    formatFloat(result.Result),
		Timestamp: result.Timestamp,
	}
}

// toCalculationResult converts a row back into its domain form.
func toCalculationResult(record HistoryRecord) (calc.CalculationResult, error) {
	operands, err := decodeOperands(record.Operands)
	if err != nil {
		return calc.CalculationResult{}, err
	}
	result, err := strconv.ParseFloat(record.Result, 64)
	if err != nil {
		return calc.CalculationResult{}, fmt.Errorf("failed to decode result %q: %w", record.Result, err)
	}

	return calc.CalculationResult{
		ID:        record.ID,
		Operation: calc.Operation(record.Operation),
		Operands:  operands,
		Result:    result,
		Timestamp: record.Timestamp,
	}, nil
}

// formatFloat renders f so ParseFloat recovers it exactly, including
// NaN and the infinities.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// encodeOperands joins operands into a comma-separated text column.
func encodeOperands(operands []float64) string {
	parts := make([]string, len(operands))
	for i, operand := range operands {
		parts[i] = formatFloat(operand)
	}
	return strings.Join(parts, ",")
}

// decodeOperands parses a text column written by encodeOperands.
func decodeOperands(encoded string) ([]float64, error) {
	if encoded == "" {
		return nil, nil
	}

	parts := strings.Split(encoded, ",")
	operands := make([]float64, len(parts))
	for i, part := range parts {
		operand, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode operand %q: %w", part, err)
		}
		operands[i] = operand
	}
	return operands, nil
}
