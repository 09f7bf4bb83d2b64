package stats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/calculator-demo/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// Module consumes calculator events and serves usage statistics. It is
// a pure observer; the calculator does not depend on it.
type Module struct {
	store  *Store
	logger types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.EventConsumerModule   = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
)

// NewModule creates a new stats module.
func NewModule(logger types.Logger) *Module {
	return &Module{
		store:  NewStore(),
		logger: logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "stats"
}

// RegisterEventConsumers registers handlers for the calculator events.
func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.OperationRecordedV1, m.handleOperationRecorded, m); err != nil {
		return fmt.Errorf("failed to register OperationRecorded consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.HistoryClearedV1, m.handleHistoryCleared, m); err != nil {
		return fmt.Errorf("failed to register HistoryCleared consumer: %w", err)
	}

	m.logger.Info("Registered event consumers",
		"events", []string{"OperationRecorded.v1", "HistoryCleared.v1"})
	return nil
}

// handleOperationRecorded processes OperationRecorded events.
func (m *Module) handleOperationRecorded(_ context.Context, event events.OperationRecordedEvent, _ *mono.Msg) error {
	m.store.RecordOperation(Activity{
		RecordID:  event.RecordID,
		Operation: event.Operation,
		Result:    event.Result,
		Timestamp: event.Timestamp,
	})

	m.logger.Debug("Tracked operation",
		"operation", event.Operation,
		"result", event.Result)
	return nil
}

// handleHistoryCleared processes HistoryCleared events.
func (m *Module) handleHistoryCleared(_ context.Context, event events.HistoryClearedEvent, _ *mono.Msg) error {
	m.store.RecordClear(event.ClearedAt)

	m.logger.Info("Tracked history clear", "entries", event.Cleared)
	return nil
}

// RegisterServices registers this module's services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := container.RegisterRequestReplyService("get-summary", m.handleGetSummary); err != nil {
		return fmt.Errorf("failed to register get-summary service: %w", err)
	}
	if err := container.RegisterRequestReplyService("get-recent", m.handleGetRecent); err != nil {
		return fmt.Errorf("failed to register get-recent service: %w", err)
	}

	m.logger.Info("Registered services",
		"services", []string{"services.stats.get-summary", "services.stats.get-recent"})
	return nil
}

// handleGetSummary handles get-summary service requests.
func (m *Module) handleGetSummary(_ context.Context, _ *mono.Msg) ([]byte, error) {
	return json.Marshal(m.store.Summary())
}

// handleGetRecent handles get-recent service requests.
func (m *Module) handleGetRecent(_ context.Context, msg *mono.Msg) ([]byte, error) {
	var req struct {
		Limit int `json:"limit"`
	}
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	// Default limit
	if req.Limit <= 0 {
		req.Limit = 10
	}

	return json.Marshal(m.store.RecentActivities(req.Limit))
}

// Start initializes the stats module.
func (m *Module) Start(_ context.Context) error {
	m.logger.Info("Stats module started")
	return nil
}

// Stop gracefully shuts down the stats module.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Stats module stopped")
	return nil
}

// Store returns the stats store.
func (m *Module) Store() *Store {
	return m.store
}
