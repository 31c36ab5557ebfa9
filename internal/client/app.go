package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/tui"
	"github.com/MKhiriev/unibrain/internal/workers"
)

var errNoUI = errors.New("client has no ui")

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

// App runs the terminal UI together with the background workers that
// process the jobs the UI enqueues.
type App struct {
	ui      UI
	workers *workers.Workers
	closers []func() error
	logger  *logger.Logger
}

// NewApp builds the client runtime. closers run in order once the UI exits.
func NewApp(ui UI, w *workers.Workers, logger *logger.Logger, closers ...func() error) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{ui: ui, workers: w, closers: closers, logger: logger}, nil
}

// Run blocks until the user quits or the process is interrupted. Quitting
// from the UI is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.RunContext(ctx)
}

func (a *App) RunContext(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer func() {
		for _, closeFn := range a.closers {
			if closeErr := closeFn(); closeErr != nil {
				a.logger.Err(closeErr).Str("func", "*App.RunContext").Msg("error releasing client resources")
				err = errors.Join(err, closeErr)
			}
		}
	}()

	if a.workers != nil {
		if err = a.workers.Run(ctx); err != nil {
			return fmt.Errorf("error starting client workers: %w", err)
		}
	}

	err = a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client stopped by user")
		return nil
	}
	return err
}
