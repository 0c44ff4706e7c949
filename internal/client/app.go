package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/workers"
)

type App struct {
	ui      UI
	workers *workers.Workers

	logger *logger.Logger
}

func NewApp(ui UI, workers *workers.Workers, logger *logger.Logger) *App {
	return &App{ui: ui, workers: workers, logger: logger}
}

// Run starts the background workers and the UI. It returns when the user
// quits or the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.workers.Run(ctx)

	err := a.ui.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		a.logger.Err(err).Str("func", "*App.run").Msg("ui stopped with error")
	}
	return err
}
