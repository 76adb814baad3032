package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/claude-switch/internal/logger"
	"github.com/MKhiriev/claude-switch/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the interactive terminal frontend of claude-switch.
type TUI struct {
	services *service.Services
	logger   *logger.Logger
}

func New(services *service.Services, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, logger: log}, nil
}

// Run blocks until the user quits the interface. A quit initiated by the
// user is not an error.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}

	t.logger.Debug().Msg("tui closed")
	return nil
}
