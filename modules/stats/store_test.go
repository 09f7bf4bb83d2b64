package stats

import (
	"testing"
	"time"
)

func TestStore_RecordOperation(t *testing.T) {
	store := NewStore()

	store.RecordOperation(Activity{
		RecordID:  "rec-1",
		Operation: "add",
		Result:    5,
		Timestamp: time.Now(),
	})

	if got := store.OperationCount("add"); got != 1 {
		t.Errorf("Expected OperationCount(add) = 1, got %d", got)
	}
	if got := store.TotalOperations(); got != 1 {
		t.Errorf("Expected TotalOperations() = 1, got %d", got)
	}
}

func TestStore_RecordMultipleOperations(t *testing.T) {
	store := NewStore()

	operations := []string{"add", "add", "divide", "sqrt", "add"}
	for i, op := range operations {
		store.RecordOperation(Activity{
			RecordID:  "rec",
			Operation: op,
			Result:    float64(i),
			Timestamp: time.Now(),
		})
	}

	if got := store.OperationCount("add"); got != 3 {
		t.Errorf("Expected OperationCount(add) = 3, got %d", got)
	}
	if got := store.OperationCount("divide"); got != 1 {
		t.Errorf("Expected OperationCount(divide) = 1, got %d", got)
	}
	if got := store.OperationCount("power"); got != 0 {
		t.Errorf("Expected OperationCount(power) = 0, got %d", got)
	}
	if got := store.TotalOperations(); got != 5 {
		t.Errorf("Expected TotalOperations() = 5, got %d", got)
	}
}

func TestStore_RecentActivitiesTrimAtCap(t *testing.T) {
	store := NewStoreWithLimit(3)

	for i := 0; i < 5; i++ {
		store.RecordOperation(Activity{
			RecordID:  "rec",
			Operation: "add",
			Result:    float64(i),
			Timestamp: time.Now(),
		})
	}

	recent := store.RecentActivities(10)
	if len(recent) != 3 {
		t.Fatalf("Expected 3 recent activities, got %d", len(recent))
	}

	// Oldest entries are trimmed, so results 2, 3, 4 remain.
	for i, activity := range recent {
		want := float64(i + 2)
		if activity.Result != want {
			t.Errorf("Expected recent[%d].Result = %v, got %v", i, want, activity.Result)
		}
	}
}

func TestStore_RecentActivitiesLimit(t *testing.T) {
	store := NewStore()

	for i := 0; i < 4; i++ {
		store.RecordOperation(Activity{
			Operation: "multiply",
			Result:    float64(i),
			Timestamp: time.Now(),
		})
	}

	recent := store.RecentActivities(2)
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent activities, got %d", len(recent))
	}
	if recent[0].Result != 2 || recent[1].Result != 3 {
		t.Errorf("Expected the two newest entries, got %v and %v", recent[0].Result, recent[1].Result)
	}
}

func TestStore_RecentActivitiesEmpty(t *testing.T) {
	store := NewStore()

	if recent := store.RecentActivities(10); recent != nil {
		t.Errorf("Expected nil for empty store, got %v", recent)
	}
}

func TestStore_RecentActivitiesNegativeLimit(t *testing.T) {
	store := NewStore()
	store.RecordOperation(Activity{Operation: "add", Result: 5, Timestamp: time.Now()})

	if recent := store.RecentActivities(-1); len(recent) != 0 {
		t.Errorf("Expected no activities for negative limit, got %v", recent)
	}
}

func TestStore_Summary(t *testing.T) {
	store := NewStore()

	clearedAt := time.Now()
	store.RecordOperation(Activity{Operation: "add", Result: 5, Timestamp: time.Now()})
	store.RecordOperation(Activity{Operation: "sqrt", Result: 4, Timestamp: time.Now()})
	store.RecordClear(clearedAt)

	summary := store.Summary()

	if got := summary["total_operations"].(int64); got != 2 {
		t.Errorf("Expected total_operations = 2, got %d", got)
	}
	if got := summary["history_clears"].(int64); got != 1 {
		t.Errorf("Expected history_clears = 1, got %d", got)
	}

	byOperation := summary["by_operation"].(map[string]int64)
	if byOperation["add"] != 1 || byOperation["sqrt"] != 1 {
		t.Errorf("Expected by_operation counts of 1, got %v", byOperation)
	}
	if got := summary["last_activity"].(time.Time); !got.Equal(clearedAt) {
		t.Errorf("Expected last_activity = %v, got %v", clearedAt, got)
	}
}

func TestStore_SummaryCopiesCounters(t *testing.T) {
	store := NewStore()
	store.RecordOperation(Activity{Operation: "add", Result: 2, Timestamp: time.Now()})

	summary := store.Summary()
	byOperation := summary["by_operation"].(map[string]int64)
	byOperation["add"] = 99

	if got := store.OperationCount("add"); got != 1 {
		t.Errorf("Expected OperationCount(add) = 1 after mutating summary copy, got %d", got)
	}
}
