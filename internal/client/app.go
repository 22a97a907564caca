package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sales-admin/internal/config"
	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/service"
	"github.com/MKhiriev/sales-admin/internal/tui"
	"github.com/MKhiriev/sales-admin/internal/workers"
)

// Dashboard is the terminal UI driven by App.
type Dashboard interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       Dashboard
	workers  *workers.Workers
	closer   io.Closer
	logger   *logger.Logger
}

// NewApp wires the background workers around ui. closer is released when
// Run returns and may be nil.
func NewApp(services *service.ClientServices, ui Dashboard, closer io.Closer, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and a dashboard")
	}

	return &App{
		services: services,
		ui:       ui,
		workers: workers.NewWorkers(
			workers.NewSessionExpiryWorker(services.Sessions, cfg.ExpiryCheckInterval, logger),
			workers.NewDraftAutosaveWorker(services.AllDrafts(), cfg.DraftAutosaveInterval, logger),
		),
		closer: closer,
		logger: logger,
	}, nil
}

// Run blocks until the user quits the dashboard or the process receives a
// stop signal.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	defer a.close()

	a.restoreDrafts(ctx)

	a.workers.Run(ctx)
	defer a.workers.Stop()

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("dashboard closed")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("dashboard stopped by signal")
		return nil
	default:
		return fmt.Errorf("dashboard: %w", err)
	}
}

// restoreDrafts reloads the unsaved drafts of a previous run. Failures only
// cost the snapshot.
func (a *App) restoreDrafts(ctx context.Context) {
	for _, drafts := range a.services.AllDrafts() {
		restored, err := drafts.Restore(ctx)
		if err != nil {
			a.logger.Err(err).Str("func", "App.restoreDrafts").Str("kind", drafts.Kind().String()).Msg("failed to restore draft")
			continue
		}
		if restored {
			a.logger.Info().Str("kind", drafts.Kind().String()).Msg("unsaved draft restored")
		}
	}
}

func (a *App) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.close").Msg("failed to close local store")
	}
}
