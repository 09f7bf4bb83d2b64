package calculator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/calculator-demo/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Module hosts the calculator service: request-reply endpoints over the
// embedded NATS server, typed events on completed operations, and a
// health check over the backing database.
//
// The history lives in an in-memory SQLite database and never survives
// a process restart.
type Module struct {
	db       *gorm.DB
	service  *Service
	eventBus mono.EventBus
	logger   types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
	_ mono.EventEmitterModule    = (*Module)(nil)
)

// NewModule creates a new calculator module.
func NewModule(logger types.Logger) *Module {
	return &Module{
		logger: logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "calculator"
}

// SetEventBus receives the event bus from the framework before Start.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module publishes.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.OperationRecordedV1.ToBase(),
		events.HistoryClearedV1.ToBase(),
	}
}

// Start opens the in-memory database, runs migrations and builds the
// calculator service.
func (m *Module) Start(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	m.db = db

	if err := m.db.AutoMigrate(&HistoryRecord{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.service = NewService(NewHistoryRepository(m.db), m.eventBus, m.logger)

	m.logger.Info("Calculator module started", "storage", "sqlite :memory:")
	return nil
}

// Stop gracefully closes the database connection.
func (m *Module) Stop(_ context.Context) error {
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	m.logger.Info("Calculator module stopped")
	return nil
}

// Service returns the calculator service for in-process callers.
func (m *Module) Service() *Service {
	return m.service
}

// Health performs a health check over the backing database.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get sql.DB: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	count, err := m.service.HistoryCount()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("history count failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver":        "sqlite",
			"database":      ":memory:",
			"history_count": count,
		},
	}
}

// RegisterServices registers the calculator request-reply services.
// The framework automatically prefixes service names with
// "services.<module>." so "add" becomes "services.calculator.add" in
// the NATS subject.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "add", json.Unmarshal, json.Marshal, m.handleAdd,
	); err != nil {
		return fmt.Errorf("failed to register add service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "subtract", json.Unmarshal, json.Marshal, m.handleSubtract,
	); err != nil {
		return fmt.Errorf("failed to register subtract service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "multiply", json.Unmarshal, json.Marshal, m.handleMultiply,
	); err != nil {
		return fmt.Errorf("failed to register multiply service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "divide", json.Unmarshal, json.Marshal, m.handleDivide,
	); err != nil {
		return fmt.Errorf("failed to register divide service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "power", json.Unmarshal, json.Marshal, m.handlePower,
	); err != nil {
		return fmt.Errorf("failed to register power service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "sqrt", json.Unmarshal, json.Marshal, m.handleSqrt,
	); err != nil {
		return fmt.Errorf("failed to register sqrt service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "calculate", json.Unmarshal, json.Marshal, m.handleCalculate,
	); err != nil {
		return fmt.Errorf("failed to register calculate service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "history", json.Unmarshal, json.Marshal, m.handleHistory,
	); err != nil {
		return fmt.Errorf("failed to register history service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "clear-history", json.Unmarshal, json.Marshal, m.handleClearHistory,
	); err != nil {
		return fmt.Errorf("failed to register clear-history service: %w", err)
	}

	m.logger.Info("Registered services",
		"services", "services.calculator.{add,subtract,multiply,divide,power,sqrt,calculate,history,clear-history}")
	return nil
}
