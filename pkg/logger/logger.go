package logger

import (
	"log/slog"
	"os"
)

// Log is the process-wide structured logger. It defaults to a JSON handler at
// Info level so packages can log before Init runs (tests included).
var Log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init configures the logger for server use.
func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
