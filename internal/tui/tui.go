package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/memvault/memvault/internal/logger"
	"github.com/memvault/memvault/internal/service"
	"github.com/memvault/memvault/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// SignInFlow collects a backend session from the user. The caller decides
// whether to persist it.
func (t *TUI) SignInFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		"signin": NewSignInModel(ctx),
	}

	root := NewRootModel(pages, "signin")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Session{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.resultSession, nil
}

// MainLoop runs the journal UI for the signed-in user. When the session
// gate reports Locked the loop opens on the PIN challenge.
func (t *TUI) MainLoop(ctx context.Context, userID string) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, userID)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
