package tui

import (
	"github.com/aivahq/aiva/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of the [RootModel]. An optional
// Payload message is delivered to the target page instead of its Init
// command, which lets one page hand data to another.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult is produced by the async login and signup commands.
type AuthResult struct {
	Session models.Session
	Err     error
}

// SignUpNotice is passed to the gallery page after a successful
// registration so it can greet the new user.
type SignUpNotice struct {
	Name string
}

type listingLoadedMsg struct {
	avatars []models.Avatar
	err     error
}

type publishDoneMsg struct {
	avatar models.Avatar
	err    error
}

type profileRefreshedMsg struct {
	user models.User
	err  error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
