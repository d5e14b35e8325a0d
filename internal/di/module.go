package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/vegdelivery/internal/adapter/broker"
	"github.com/polkiloo/vegdelivery/internal/app"
	"github.com/polkiloo/vegdelivery/internal/config"
	"github.com/polkiloo/vegdelivery/internal/events"
	"github.com/polkiloo/vegdelivery/internal/logger"
	"github.com/polkiloo/vegdelivery/internal/pkg/auth"
	"github.com/polkiloo/vegdelivery/internal/server/http/handlers"
	"github.com/polkiloo/vegdelivery/internal/server/http/router"
	"github.com/polkiloo/vegdelivery/internal/storage/memory"
	"github.com/polkiloo/vegdelivery/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		memory.Module,
		events.Module,
		broker.Module,
		usecase.Module,
		fx.Provide(func(f *app.BackofficeFacade) handlers.BackofficeFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
