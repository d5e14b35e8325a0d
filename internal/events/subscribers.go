package events

import (
	"context"
	"log/slog"
)

// LogHandler writes every notification to logger.
func LogHandler(logger *slog.Logger) Handler {
	return func(ctx context.Context, event Event) error {
		logger.InfoContext(ctx, "notification",
			slog.String("event", string(event.Type)),
			slog.String("id", event.ID),
			slog.String("subject", event.Subject),
			slog.String("actor", event.Actor),
			slog.String("message", event.Message),
		)
		return nil
	}
}
