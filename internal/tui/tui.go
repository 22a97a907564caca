// Package tui is the terminal dashboard. It renders the session and the
// draft controllers and never keeps its own copy of the authentication
// state.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/service"
	"github.com/MKhiriev/sales-admin/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.BuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// Run shows the dashboard until the user quits or ctx is cancelled.
// ErrUserQuit is returned when the user quit.
func (t *TUI) Run(ctx context.Context) error {
	sessions, unsubscribe := t.services.Sessions.Subscribe()
	defer unsubscribe()

	ctx = t.logger.WithComponent("tui").WithContext(ctx)
	model := newAppModel(ctx, t.services, t.buildInfo, sessions)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.Sessions.OnLoggedIn(func(user models.User) {
		t.logger.Debug().Str("user", user.Email).Msg("redirecting home")
		program.Send(navigateMsg{to: screenHome})
	})
	t.services.Sessions.OnLoggedOut(func() {
		t.logger.Debug().Msg("redirecting to login")
		program.Send(sessionEndedMsg{})
	})
	defer func() {
		t.services.Sessions.OnLoggedIn(nil)
		t.services.Sessions.OnLoggedOut(nil)
	}()

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		t.logger.Err(err).Str("func", "TUI.Run").Msg("dashboard stopped")
		return err
	}

	if result, ok := finalModel.(appModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
