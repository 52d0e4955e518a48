package logging

import (
	"log/slog"
	"os"
)

func New(env string) *slog.Logger {
	var handler slog.Handler

	switch env {
	case "prod", "production":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}

// WithStage derives a logger carrying the pipeline stage and the correlation
// id of the unit of work, so every line emitted downstream is attributable.
func WithStage(l *slog.Logger, stage, correlationID string) *slog.Logger {
	return l.With(slog.String("stage", stage), slog.String("correlation_id", correlationID))
}
