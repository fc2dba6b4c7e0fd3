package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-xref/internal/adapter"
	"github.com/MKhiriev/go-xref/internal/config"
	"github.com/MKhiriev/go-xref/internal/logger"
	"github.com/MKhiriev/go-xref/internal/service"
	"github.com/MKhiriev/go-xref/internal/store"
	"github.com/MKhiriev/go-xref/internal/tui"
	"github.com/MKhiriev/go-xref/models"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

// NewApp wires storage, transport, services and the terminal UI from cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, cfg.Adapter.RequestTimeout, log)

	ui, err := tui.New(services, tui.Options{
		Mode:           models.Role(cfg.App.Mode),
		Debounce:       cfg.App.Debounce,
		SearchPageSize: cfg.App.SearchPageSize,
	}, buildInfo, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(storages, services, ui, log), nil
}

func newApp(storages *store.ClientStorages, services *service.ClientServices, ui UI, log *logger.Logger) *App {
	return &App{storages: storages, services: services, ui: ui, logger: log}
}

// Run blocks in the UI until the user quits, then closes the local storage.
func (a *App) Run(ctx context.Context) error {
	runErr := a.ui.Run(ctx)
	if runErr != nil {
		a.logger.Err(runErr).Msg("terminal UI stopped with error")
	}

	closeErr := a.storages.Close()
	if closeErr != nil {
		a.logger.Err(closeErr).Msg("failed to close local storage")
	}

	return errors.Join(runErr, closeErr)
}
