package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aivahq/aiva/internal/service"
	"github.com/aivahq/aiva/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// categoryFilters is the cycle order of the gallery filter. The empty entry
// means "all categories".
var categoryFilters = []models.Category{
	"",
	models.CategoryAnime,
	models.CategoryRealistic,
	models.CategorySciFi,
	models.CategoryFantasy,
}

// GalleryModel is the central screen of the client: the marketplace listing
// with an optional category filter and a per-avatar detail view. The listing
// is available to guests; publishing and the profile page require a session.
type GalleryModel struct {
	ctx       context.Context
	avatarSvc service.ClientAvatarService
	session   service.ClientSessionService
	items     []models.Avatar

	idx       int
	filterIdx int
	loading   bool
	spinner   spinner.Model
	detail    bool
	status    string
	errMsg    string
}

func NewGalleryModel(ctx context.Context, avatars service.ClientAvatarService, session service.ClientSessionService) *GalleryModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &GalleryModel{
		ctx:       ctx,
		avatarSvc: avatars,
		session:   session,
		spinner:   s,
		loading:   true,
	}
}

func (m *GalleryModel) filter() models.Category {
	return categoryFilters[m.filterIdx]
}

func (m *GalleryModel) current() (models.Avatar, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Avatar{}, false
	}
	return m.items[m.idx], true
}

func (m *GalleryModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SignUpNotice:
		m.status = "Welcome, " + msg.Name
		return m, nil
	case publishDoneMsg:
		if msg.err == nil {
			m.status = "Published " + msg.avatar.Name
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
		}
		return m, nil
	case listingLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.avatars
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case loggedOutMsg:
		return m, func() tea.Msg { return NavigateTo{Page: "menu", Payload: msg} }
	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Image URL copied"
		}
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.loading {
			return m, cmd
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.detail {
		switch keyMsg.String() {
		case "esc":
			m.detail = false
		case "c":
			if item, found := m.current(); found {
				return m, cmdCopyImageURL(item)
			}
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		if _, found := m.current(); found {
			m.detail = true
		}
	case "f":
		m.filterIdx = (m.filterIdx + 1) % len(categoryFilters)
		m.idx = 0
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case "n":
		if _, authed := m.session.Current(); !authed {
			m.status = "Log in to publish avatars"
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: "publish"} }
	case "p":
		if _, authed := m.session.Current(); !authed {
			m.status = "Log in to view your profile"
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: "profile"} }
	case "l":
		if _, authed := m.session.Current(); authed {
			return m, m.cmdLogout()
		}
	}

	return m, nil
}

func (m *GalleryModel) View() string {
	if m.detail {
		return m.viewDetail()
	}

	var b strings.Builder

	if session, authed := m.session.Current(); authed {
		b.WriteString(fmt.Sprintf("%s │ %s plan │ %d credits\n\n",
			session.User.Name, session.User.Plan, session.User.Credits))
	} else {
		b.WriteString("Browsing as guest\n\n")
	}

	filterLabel := "All"
	if f := m.filter(); f != "" {
		filterLabel = string(f)
	}
	b.WriteString("Category: " + filterLabel + "\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading...\n")
	} else if len(m.items) == 0 {
		b.WriteString("No avatars found\n")
	} else {
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-24s %-12s %-10s ♥%d ↓%d\n",
				cursor, fitText(item.Name, 24), item.Category, fitText(item.Price, 10), item.Likes, item.Downloads))
		}
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

	return renderPage("AVATAR GALLERY", strings.TrimRight(b.String(), "\n"),
		"enter: open │ f: filter │ r: reload │ n: publish │ p: profile │ l: log out │ esc: menu")
}

func (m *GalleryModel) viewDetail() string {
	item, found := m.current()
	if !found {
		return renderPage("AVATAR", "", "esc: back")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Name:      %s\n", item.Name))
	b.WriteString(fmt.Sprintf("Creator:   %s\n", item.Creator))
	b.WriteString(fmt.Sprintf("Category:  %s\n", item.Category))
	b.WriteString(fmt.Sprintf("Price:     %s\n", item.Price))
	b.WriteString(fmt.Sprintf("Likes:     %d\n", item.Likes))
	b.WriteString(fmt.Sprintf("Downloads: %d\n", item.Downloads))
	if item.Description != "" {
		b.WriteString(fmt.Sprintf("About:     %s\n", item.Description))
	}
	if item.ImageURL != "" {
		b.WriteString(fmt.Sprintf("Image:     %s\n", fitText(item.ImageURL, 60)))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("AVATAR", strings.TrimRight(b.String(), "\n"), "c: copy image URL │ esc: back")
}

func (m *GalleryModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	avatars := m.avatarSvc
	category := m.filter()

	return func() tea.Msg {
		listing, err := avatars.List(ctx, category)
		return listingLoadedMsg{avatars: listing, err: err}
	}
}

func (m *GalleryModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return loggedOutMsg{err: session.Logout(ctx)}
	}
}

func cmdCopyImageURL(item models.Avatar) tea.Cmd {
	return func() tea.Msg {
		text := item.ImageURL
		if text == "" {
			text = item.Name
		}
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
