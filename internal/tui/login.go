package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestra-hq/vestra/internal/routing"
	"github.com/vestra-hq/vestra/pkg/client"
	"github.com/vestra-hq/vestra/pkg/domain"
)

type loginField int

const (
	loginEmail loginField = iota
	loginPassword
	numLoginFields
)

type loginModel struct {
	deps       Deps
	fields     [numLoginFields]string
	focus      loginField
	submitting bool
	errMsg     string
	width      int
	height     int
}

// loginDoneMsg carries the outcome of the login flow. On success the token
// is already persisted and the controller already holds the identity.
type loginDoneMsg struct {
	id  *domain.Identity
	err error
}

func newLoginModel(deps Deps) loginModel {
	return loginModel{deps: deps}
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.submitting = false
		if msg.err != nil {
			if client.IsAuthExpired(msg.err) {
				m.errMsg = "invalid email or password"
			} else {
				m.errMsg = msg.err.Error()
			}
			return m, nil
		}
		return m, navigate(routing.PathDashboard)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m loginModel) updateKeys(msg tea.KeyMsg) (loginModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.errMsg = ""

	switch msg.String() {
	case "esc":
		return m, navigate(routing.PathHome)
	case "ctrl+s":
		return m.submit()
	case "tab", "down":
		m.focus = (m.focus + 1) % numLoginFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numLoginFields) % numLoginFields
	case "enter":
		if m.focus == loginPassword {
			return m.submit()
		}
		m.focus = (m.focus + 1) % numLoginFields
	default:
		f := &m.fields[m.focus]
		*f = editRune(*f, msg.String())
	}
	return m, nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	email := strings.TrimSpace(m.fields[loginEmail])
	password := m.fields[loginPassword]
	if email == "" || password == "" {
		m.errMsg = "email and password are required"
		return m, nil
	}

	m.submitting = true
	deps := m.deps
	return m, func() tea.Msg {
		token, id, err := deps.API.Login(context.Background(), email, password)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		// Persist first, then flip the controller: the pair must be durable
		// before any view can observe the authenticated state.
		if err := deps.Store.Save(token, *id); err != nil {
			deps.Log.Warn().Err(err).Msg("persisting session failed")
		}
		deps.Session.Login(token, *id)
		return loginDoneMsg{id: id}
	}
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString(" " + goldStyle.Render("Sign in") + "\n\n")

	labels := [numLoginFields]string{"email", "password"}
	for i := loginField(0); i < numLoginFields; i++ {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.fields[i]
		if i == loginPassword {
			value = strings.Repeat("•", len([]rune(value)))
		}
		if i == m.focus {
			value += "█"
		}
		fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(fmt.Sprintf("%-8s", labels[i])), value)
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(" " + dimStyle.Render("signing in..."))
	case m.errMsg != "":
		b.WriteString(" " + errStyle.Render(m.errMsg))
	default:
		b.WriteString(" " + inputPlaceholderStyle.Render("no account? esc, then r to register"))
	}

	return b.String()
}

func (m loginModel) helpKeys() string {
	return helpEntry("tab", "next") + "  " + helpEntry("enter", "sign in") + "  " + helpEntry("esc", "back")
}
