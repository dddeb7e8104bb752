package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/aivahq/aiva/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// ProfileModel shows the account behind the current session and lets the
// user re-fetch it from the server. A rejected token drops the session, so
// the page falls back to the menu in that case.
type ProfileModel struct {
	ctx     context.Context
	session service.ClientSessionService

	refreshing bool
	status     string
	errMsg     string
}

func NewProfileModel(ctx context.Context, session service.ClientSessionService) *ProfileModel {
	return &ProfileModel{ctx: ctx, session: session}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	return nil
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileRefreshedMsg:
		m.refreshing = false
		if msg.err != nil {
			if _, authed := m.session.Current(); !authed {
				// Token was rejected and the session is gone.
				return m, func() tea.Msg {
					return NavigateTo{Page: "menu", Payload: loggedOutMsg{}}
				}
			}
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Profile refreshed"
		return m, nil
	case loggedOutMsg:
		return m, func() tea.Msg { return NavigateTo{Page: "menu", Payload: msg} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return NavigateTo{Page: "gallery"} }
	case "r":
		if m.refreshing {
			return m, nil
		}
		m.status = ""
		m.refreshing = true
		return m, m.cmdRefresh()
	case "l":
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *ProfileModel) View() string {
	session, authed := m.session.Current()
	if !authed {
		return renderPage("PROFILE", "Not logged in", "esc: back")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Name:    %s\n", session.User.Name))
	b.WriteString(fmt.Sprintf("Email:   %s\n", session.User.Email))
	b.WriteString(fmt.Sprintf("Plan:    %s\n", session.User.Plan))
	b.WriteString(fmt.Sprintf("Credits: %d\n", session.User.Credits))
	b.WriteString(fmt.Sprintf("Avatars: %d\n", session.User.AvatarCount))

	if m.refreshing {
		b.WriteString("\nRefreshing...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "r: refresh │ l: log out │ esc: back")
}

func (m *ProfileModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		user, err := session.RefreshProfile(ctx)
		return profileRefreshedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return loggedOutMsg{err: session.Logout(ctx)}
	}
}
