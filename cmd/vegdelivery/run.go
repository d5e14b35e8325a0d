package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

type lifecycle interface {
	Start(context.Context) error
	Stop(context.Context) error
	Done() <-chan os.Signal
}

func run(ctx context.Context, app lifecycle) {
	if err := serve(ctx, app); err != nil {
		fmt.Fprintf(os.Stderr, "vegdelivery: %v\n", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, app lifecycle) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}

var _ lifecycle = (*fx.App)(nil)
