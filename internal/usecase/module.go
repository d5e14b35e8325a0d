package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/vegdelivery/internal/config"
	"github.com/polkiloo/vegdelivery/internal/events"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	func(cfg *config.Config) ReferenceDate { return ReferenceDate(cfg.ReferenceDate) },
	func(d events.Dispatcher) Notifier { return d },
	NewSessionUseCase,
	NewAdminUseCase,
	NewPackagingUseCase,
	NewDeliveryUseCase,
	NewManagerUseCase,
)
