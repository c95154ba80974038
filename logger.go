package dstruct

import (
	"log/slog"
	"os"

	"github.com/xyproto/env/v2"
)

var logLevel = new(slog.LevelVar)

// ConfigureLogging sets up the global default logger with a TextHandler
// and configures the log level based on the DSTRUCT_LOG_LEVEL environment variable.
// It defaults to Info level if not specified. The environment is reloaded on every call.
func ConfigureLogging() {
	env.Load()
	logLevel.Set(parseLevel(env.Str("DSTRUCT_LOG_LEVEL", "INFO")))

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// SetLogLevel sets the logging level for the logger configured by ConfigureLogging.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

func parseLevel(lvl string) slog.Level {
	switch lvl {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}
