package events

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module provides the notification dispatcher with logging attached.
var Module = fx.Options(
	fx.Provide(
		NewInMemoryDispatcher,
		func(d *InMemoryDispatcher) Dispatcher { return d },
	),
	fx.Invoke(registerLogging),
)

func registerLogging(d Dispatcher, logger *slog.Logger) {
	d.SubscribeAll(LogHandler(logger))
}
