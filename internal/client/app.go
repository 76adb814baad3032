package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/claude-switch/internal/config"
	"github.com/MKhiriev/claude-switch/internal/logger"
	"github.com/MKhiriev/claude-switch/internal/service"
	"github.com/MKhiriev/claude-switch/internal/tui"
)

// App owns the process lifecycle: background sync around an interactive TUI
// session.
type App struct {
	services *service.Services
	ui       *tui.TUI
	syncCfg  config.Sync
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, syncCfg config.Sync, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client app: services are required")
	}
	if ui == nil {
		return nil, errors.New("client app: tui is required")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		services: services,
		ui:       ui,
		syncCfg:  syncCfg,
		logger:   log,
	}, nil
}

// Run starts the background sync job when sync is configured, then blocks in
// the TUI until the user exits.
func (a *App) Run() error {
	ctx := context.Background()

	if a.syncCfg.URL != "" {
		a.services.SyncJob.Start(ctx, a.syncCfg.Interval)
		defer a.services.SyncJob.Stop()
		a.logger.Info().
			Dur("interval", a.syncCfg.Interval).
			Msg("background sync job started")
	}

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}
