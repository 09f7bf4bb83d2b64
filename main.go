package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/calculator-demo/domain/calc"
	"github.com/example/calculator-demo/domain/mathutil"
	"github.com/example/calculator-demo/modules/calculator"
	"github.com/example/calculator-demo/modules/stats"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

func main() {
	natsPort := getEnvInt("NATS_PORT", 4222)
	shutdownTimeout := time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second

	log.Println("=== Calculator Demo ===")
	log.Printf("NATS Port: %d", natsPort)
	log.Println("Using embedded NATS server (no external dependencies)")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
		mono.WithNATSPort(natsPort),
	)
	if err != nil {
		log.Fatalf("Failed to create mono application: %v", err)
	}

	// Register modules. Order doesn't matter: they communicate only
	// through events, which the framework wires during registration.
	statsModule := stats.NewModule(app.Logger())
	if err := app.Register(statsModule); err != nil {
		log.Fatalf("Failed to register stats module: %v", err)
	}

	calculatorModule := calculator.NewModule(app.Logger())
	if err := app.Register(calculatorModule); err != nil {
		log.Fatalf("Failed to register calculator module: %v", err)
	}

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	// Wait for subscriptions to be ready
	time.Sleep(100 * time.Millisecond)

	runDemo(calculatorModule.Service())

	// Give the stats module a moment to consume the demo events
	time.Sleep(200 * time.Millisecond)
	log.Printf("Usage summary: %v", statsModule.Store().Summary())

	printStartupInfo(natsPort)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

// runDemo drives a few operations through the calculator, including
// both guarded failures, and prints the resulting history.
func runDemo(svc *calculator.Service) {
	log.Println("")
	log.Println("=== Demo Operations ===")

	if result, err := svc.Add(2, 3); err == nil {
		log.Printf("2 + 3 = %.2f", result)
	}
	if result, err := svc.Subtract(10, 4); err == nil {
		log.Printf("10 - 4 = %.2f", result)
	}
	if result, err := svc.Multiply(6, 7); err == nil {
		log.Printf("6 * 7 = %.2f", result)
	}
	if result, err := svc.Divide(10, 2); err == nil {
		log.Printf("10 / 2 = %.2f", result)
	}

	// Division by zero fails without touching the history.
	if _, err := svc.Divide(1, 0); err != nil {
		log.Printf("1 / 0 failed: %v", err)
	}

	if result, err := svc.Power(2, 10); err == nil {
		log.Printf("2 ^ 10 = %.2f", result)
	}
	if result, err := svc.Sqrt(16); err == nil {
		log.Printf("sqrt(16) = %.2f", result)
	}

	// So does a negative square root.
	if _, err := svc.Sqrt(-1); err != nil {
		log.Printf("sqrt(-1) failed: %v", err)
	}

	// Unknown names are rejected by the dispatch entry point.
	if _, err := svc.Apply("modulo", 10, 3); errors.Is(err, calc.ErrInvalidOperation) {
		log.Printf("modulo rejected: %v", err)
	}

	count, err := svc.HistoryCount()
	if err != nil {
		log.Printf("Failed to count history: %v", err)
		return
	}
	log.Printf("History count: %d", count)

	history, err := svc.History()
	if err != nil {
		log.Printf("Failed to read history: %v", err)
		return
	}
	for i, record := range history {
		log.Printf("  %d. %s%v = %v", i+1, record.Operation, record.Operands, record.Result)
	}

	log.Printf("Extras: factorial(5) = %d, fibonacci(10) = %d, isPrime(17) = %t",
		mathutil.Factorial(5), mathutil.Fibonacci(10), mathutil.IsPrime(17))
}

func printStartupInfo(natsPort int) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("NATS available at nats://localhost:%d", natsPort)
	log.Println("")
	log.Println("Services:")
	log.Println("  services.calculator.add           - Add two operands")
	log.Println("  services.calculator.subtract      - Subtract two operands")
	log.Println("  services.calculator.multiply      - Multiply two operands")
	log.Println("  services.calculator.divide        - Divide two operands")
	log.Println("  services.calculator.power         - Raise base to exponent")
	log.Println("  services.calculator.sqrt          - Square root of one operand")
	log.Println("  services.calculator.calculate     - Invoke an operation by name")
	log.Println("  services.calculator.history       - List recorded operations")
	log.Println("  services.calculator.clear-history - Discard recorded operations")
	log.Println("  services.stats.get-summary        - Usage summary")
	log.Println("  services.stats.get-recent         - Recent tracked operations")
	log.Println("")
	log.Println("Use the nats CLI to interact with services:")
	log.Println("  nats request services.calculator.add '{\"a\":2,\"b\":3}'")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}
