package calc

import "sync"

// HistoryStore is the storage contract for recorded operations. Entries
// are kept in insertion order; only completed operations are stored.
type HistoryStore interface {
	// Append stores a record at the end of the history.
	Append(result CalculationResult) error
	// List returns all records in chronological order.
	List() ([]CalculationResult, error)
	// Clear discards all records.
	Clear() error
	// Count returns the number of stored records.
	Count() (int, error)
}

// MemoryHistory is an in-memory HistoryStore backed by a slice.
type MemoryHistory struct {
	mu      sync.RWMutex
	results []CalculationResult
}

var _ HistoryStore = (*MemoryHistory)(nil)

// NewMemoryHistory creates an empty in-memory history.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{
		results: make([]CalculationResult, 0),
	}
}

// Append stores a record at the end of the history.
func (h *MemoryHistory) Append(result CalculationResult) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.results = append(h.results, result)
	return nil
}

// List returns a copy of all records in chronological order.
func (h *MemoryHistory) List() ([]CalculationResult, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	results := make([]CalculationResult, len(h.results))
	copy(results, h.results)
	return results, nil
}

// Clear discards all records.
func (h *MemoryHistory) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.results = h.results[:0]
	return nil
}

// Count returns the number of stored records.
func (h *MemoryHistory) Count() (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.results), nil
}
