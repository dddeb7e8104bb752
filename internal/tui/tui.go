package tui

import (
	"context"
	"errors"

	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by Run when the user closed the program with
// Ctrl+C. It is not a failure.
var ErrUserQuit = errors.New("quit by user")

// TUI is the terminal front end of the client. It owns the page models and
// the Bubble Tea program that runs them.
type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run builds the page set and runs the program until the user quits. When a
// restored session is already authenticated the gallery opens directly,
// skipping the menu.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":    NewMenuModel(),
		"login":   NewLoginModel(ctx, t.services.SessionService),
		"signup":  NewSignUpModel(ctx, t.services.SessionService),
		"gallery": NewGalleryModel(ctx, t.services.AvatarService, t.services.SessionService),
		"publish": NewPublishModel(ctx, t.services.AvatarService, t.services.SessionService),
		"profile": NewProfileModel(ctx, t.services.SessionService),
	}

	startPage := "menu"
	if _, authed := t.services.SessionService.Current(); authed {
		startPage = "gallery"
	}

	root := NewRootModel(pages, startPage)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
