package stats

import (
	"sync"
	"time"
)

// Activity is one tracked entry for a recorded calculator operation.
type Activity struct {
	RecordID  string    `json:"record_id"`
	Operation string    `json:"operation"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// DefaultMaxActivities is the default cap on the recent-activity log.
const DefaultMaxActivities = 50

// Store provides thread-safe aggregation of calculator usage: per
// operation counters plus a bounded recent-activity log.
type Store struct {
	mu             sync.RWMutex
	operationCount map[string]int64
	totalOps       int64
	clears         int64
	lastActivity   time.Time
	recent         []Activity
	maxActivities  int
}

// NewStore creates a stats store with the default recent-log cap.
func NewStore() *Store {
	return NewStoreWithLimit(DefaultMaxActivities)
}

// NewStoreWithLimit creates a stats store with a custom recent-log cap.
func NewStoreWithLimit(maxActivities int) *Store {
	if maxActivities <= 0 {
		maxActivities = DefaultMaxActivities
	}
	return &Store{
		operationCount: make(map[string]int64),
		recent:         make([]Activity, 0),
		maxActivities:  maxActivities,
	}
}

// RecordOperation tracks one completed calculator operation.
func (s *Store) RecordOperation(activity Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.operationCount[activity.Operation]++
	s.totalOps++
	s.lastActivity = activity.Timestamp

	// Append with size limit, trimming the oldest entries.
	s.recent = append(s.recent, activity)
	if len(s.recent) > s.maxActivities {
		excess := len(s.recent) - s.maxActivities
		s.recent = s.recent[excess:]
	}
}

// RecordClear tracks one history clear.
func (s *Store) RecordClear(clearedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clears++
	s.lastActivity = clearedAt
}

// OperationCount returns how many operations with the given name have
// been tracked.
func (s *Store) OperationCount(operation string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.operationCount[operation]
}

// TotalOperations returns the total number of tracked operations.
func (s *Store) TotalOperations() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.totalOps
}

// RecentActivities returns up to limit of the most recent entries,
// oldest first. A negative limit yields no entries.
func (s *Store) RecentActivities(limit int) []Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit < 0 {
		limit = 0
	}
	if len(s.recent) == 0 {
		return nil
	}

	start := 0
	if len(s.recent) > limit {
		start = len(s.recent) - limit
	}

	result := make([]Activity, len(s.recent)-start)
	copy(result, s.recent[start:])
	return result
}

// Summary returns an overall usage summary.
func (s *Store) Summary() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byOperation := make(map[string]int64, len(s.operationCount))
	for operation, count := range s.operationCount {
		byOperation[operation] = count
	}

	return map[string]any{
		"total_operations": s.totalOps,
		"by_operation":     byOperation,
		"history_clears":   s.clears,
		"last_activity":    s.lastActivity,
	}
}
