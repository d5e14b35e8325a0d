package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/vegdelivery/internal/adapter/broker"
	"github.com/polkiloo/vegdelivery/internal/config"
	"github.com/polkiloo/vegdelivery/internal/events"
	"github.com/polkiloo/vegdelivery/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewBackofficeFacade,
		newHTTPServer,
		newNotificationRelay,
	),
	fx.Invoke(subscribeRelay, registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type relayParams struct {
	fx.In

	Publisher broker.Publisher
	Config    *config.Config
	Logger    *slog.Logger
}

func newNotificationRelay(p relayParams) *worker.NotificationRelay {
	return worker.NewNotificationRelay(
		p.Publisher,
		p.Config.NotifyWorkers,
		p.Config.NotifyQueueSize,
		p.Logger,
	)
}

func subscribeRelay(d events.Dispatcher, relay *worker.NotificationRelay) {
	d.SubscribeAll(relay.Handler())
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Relay      *worker.NotificationRelay
	Publisher  broker.Publisher
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting vegdelivery", slog.String("addr", p.Server.Addr))
			// the start context ends with OnStart; workers live until OnStop
			p.Relay.Start(context.WithoutCancel(ctx))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			serverErr := p.Server.Shutdown(shutdownCtx)
			p.Relay.Stop()
			if err := p.Publisher.Close(); err != nil {
				p.Logger.Warn("close notification publisher", slog.String("error", err.Error()))
			}

			if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
				return serverErr
			}
			p.Logger.Info("vegdelivery stopped")
			return nil
		},
	})
}
