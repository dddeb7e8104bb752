package tui

import (
	"context"
	"strings"

	"github.com/aivahq/aiva/internal/service"
	"github.com/aivahq/aiva/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PublishModel is the form for publishing a new avatar. The creator field is
// taken from the logged-in user; name is the only required input. Price and
// category left empty fall back to the server defaults ("Free", Anime).
type PublishModel struct {
	ctx       context.Context
	avatarSvc service.ClientAvatarService
	session   service.ClientSessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewPublishModel(ctx context.Context, avatars service.ClientAvatarService, session service.ClientSessionService) *PublishModel {
	fields := make([]textinput.Model, 5)

	fields[0] = textinput.New()
	fields[0].Placeholder = "name"
	fields[0].CharLimit = 100
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "Anime / Realistic / Sci-Fi / Fantasy"
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "Free or e.g. 50 Credits"
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "image URL"
	fields[3].CharLimit = 2048
	fields[3].Width = 40

	fields[4] = textinput.New()
	fields[4].Placeholder = "description"
	fields[4].CharLimit = 500
	fields[4].Width = 40

	return &PublishModel{
		ctx:       ctx,
		avatarSvc: avatars,
		session:   session,
		inputs:    fields,
	}
}

func (m *PublishModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. On a successful publish the form resets and
// the gallery is reopened with the publishDoneMsg payload so it can reload.
func (m *PublishModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(publishDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeNetworkError(result.err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{Page: "gallery", Payload: result}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "gallery"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.inputs[0].Value())
			if name == "" {
				m.errMsg = "Name is required"
				return m, nil
			}

			category := models.Category(strings.TrimSpace(m.inputs[1].Value()))
			if category != "" && !category.Valid() {
				m.errMsg = "Unknown category, use Anime, Realistic, Sci-Fi or Fantasy"
				return m, nil
			}

			session, authed := m.session.Current()
			if !authed {
				m.errMsg = "Log in to publish avatars"
				return m, nil
			}

			avatar := models.Avatar{
				Name:        name,
				Creator:     session.User.Name,
				Category:    category,
				Price:       strings.TrimSpace(m.inputs[2].Value()),
				ImageURL:    strings.TrimSpace(m.inputs[3].Value()),
				Description: strings.TrimSpace(m.inputs[4].Value()),
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdPublish(avatar)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *PublishModel) View() string {
	var b strings.Builder
	b.WriteString("Name        [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Category    [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Price       [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Image URL   [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")
	b.WriteString("Description [")
	b.WriteString(m.inputs[4].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Publishing...]\n")
	} else {
		b.WriteString("\n[Publish]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("PUBLISH AVATAR", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: publish")
}

func (m *PublishModel) cmdPublish(avatar models.Avatar) tea.Cmd {
	ctx := m.ctx
	avatars := m.avatarSvc

	return func() tea.Msg {
		created, err := avatars.Publish(ctx, avatar)
		return publishDoneMsg{avatar: created, err: err}
	}
}

func (m *PublishModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *PublishModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *PublishModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
