package logger_test

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/philipp01105/sblog/handler/consolehandler"
	"github.com/philipp01105/sblog/logger"
)

// Log to a file with GetLoggerWithPath.
func ExampleGetLoggerWithPath() {
	dir, _ := os.MkdirTemp("", "sblog")
	defer os.RemoveAll(dir)

	log := logger.GetLoggerWithPath("Checkout", filepath.Join(dir, "Logs", "Log.txt"))
	log.SetLevel(logger.Warning)

	_ = log.Log(logger.Info, "not written")
	_ = log.Log(logger.Severe, "payment failed", logger.String("order", "A-17"))
	_ = log.LogError(logger.Warning, "retrying", errors.New("timeout"))
}

// Create a custom Logger with the Builder pattern.
func ExampleNewBuilder() {
	ch := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: os.Stdout,
	})

	log := logger.NewBuilder().
		WithName("api").
		WithHandler(ch).
		WithLevel(logger.Info).
		Build()

	if log.IsLoggable(logger.Fine) {
		_ = log.Fine("expensive trace")
	}
	_ = log.Info("ready", logger.Int("port", 8080))
	_ = log.Close()
}
