// Package tui implements the terminal screens of the admin client on top of
// Bubble Tea.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/f4f-study-portal/internal/client"
	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/models"
)

const mirrorTickInterval = 2 * time.Second

// backend is shared by every page.
type backend struct {
	ctx   context.Context
	state *client.State
	copy  func(text string) error
}

type TUI struct {
	state     *client.State
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(state *client.State, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{state: state, buildInfo: buildInfo, logger: log}
}

// Run shows the login screen and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	root := newRootModel(newBackend(ctx, t.state), t.state.LoginDefaults(ctx), t.buildInfo)

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Warn().Err(err).Str("func", "*TUI.Run").Msg("program killed")
	}
	return err
}
