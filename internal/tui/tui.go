package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-2048-server/internal/adapter"
	"github.com/MKhiriev/go-2048-server/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

// TUI is the terminal dashboard for the game server's audit subsystem.
// An operator logs in with admin credentials and can browse the aggregated
// access statistics and the raw audit log.
type TUI struct {
	server adapter.ServerAdapter
}

func New(server adapter.ServerAdapter, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server}, nil
}

// Run drives the whole session: login screen first, then the dashboard.
// Returns ErrUserQuit when the operator leaves on purpose.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.server)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}
