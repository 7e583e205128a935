package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestra-hq/vestra/pkg/domain"
)

type settingsField int

const (
	settingsName settingsField = iota
	settingsEmail
	numSettingsFields
)

// settingsModel shows the profile and edits name/email in place. Fields are
// prefilled from the cached identity when editing starts.
type settingsModel struct {
	deps       Deps
	editing    bool
	fields     [numSettingsFields]string
	focus      settingsField
	submitting bool
	saved      bool
	errMsg     string
	width      int
	height     int
}

type profileSavedMsg struct {
	id  *domain.Identity
	err error
}

func newSettingsModel(deps Deps) settingsModel {
	return settingsModel{deps: deps}
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, authRedirect(msg.err)
		}
		m.editing = false
		m.saved = true
		m.errMsg = ""

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditKeys(msg)
		}
		if msg.String() == "e" {
			return m.startEditing(), nil
		}
	}
	return m, nil
}

func (m settingsModel) startEditing() settingsModel {
	id := m.deps.Session.Identity()
	if id == nil {
		return m
	}
	m.editing = true
	m.saved = false
	m.errMsg = ""
	m.focus = settingsName
	m.fields[settingsName] = id.Name
	m.fields[settingsEmail] = id.Email
	return m
}

func (m settingsModel) updateEditKeys(msg tea.KeyMsg) (settingsModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.errMsg = ""

	switch msg.String() {
	case "esc":
		m.editing = false
	case "ctrl+s", "enter":
		return m.submit()
	case "tab", "down":
		m.focus = (m.focus + 1) % numSettingsFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numSettingsFields) % numSettingsFields
	default:
		f := &m.fields[m.focus]
		*f = editRune(*f, msg.String())
	}
	return m, nil
}

func (m settingsModel) submit() (settingsModel, tea.Cmd) {
	name := strings.TrimSpace(m.fields[settingsName])
	email := strings.TrimSpace(m.fields[settingsEmail])
	if name == "" || email == "" {
		m.errMsg = "name and email are required"
		return m, nil
	}

	patch := domain.IdentityPatch{Name: &name, Email: &email}
	m.submitting = true
	deps := m.deps
	return m, func() tea.Msg {
		id, err := deps.API.UpdateMe(context.Background(), patch)
		if err != nil {
			return profileSavedMsg{err: err}
		}
		// Refresh the cached identity so the chrome and the persisted pair
		// pick up the new profile immediately.
		deps.Session.UpdateIdentity(patch)
		return profileSavedMsg{id: id}
	}
}

func (m settingsModel) View() string {
	var b strings.Builder
	b.WriteString(" " + goldStyle.Render("Settings") + "\n\n")

	id := m.deps.Session.Identity()
	if id == nil {
		b.WriteString(" " + dimStyle.Render("not signed in") + "\n")
		return b.String()
	}

	if m.editing {
		labels := [numSettingsFields]string{"name", "email"}
		for i := settingsField(0); i < numSettingsFields; i++ {
			cursor := " "
			style := metaStyle
			if i == m.focus {
				cursor = ">"
				style = selectedStyle
			}
			value := m.fields[i]
			if i == m.focus {
				value += "█"
			}
			fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(fmt.Sprintf("%-6s", labels[i])), value)
		}
		b.WriteString("\n")
		switch {
		case m.submitting:
			b.WriteString(" " + dimStyle.Render("saving..."))
		case m.errMsg != "":
			b.WriteString(" " + errStyle.Render(m.errMsg))
		}
		return b.String()
	}

	fmt.Fprintf(&b, " %s %s\n", metaStyle.Render("name  "), selectedStyle.Render(id.Name))
	fmt.Fprintf(&b, " %s %s\n", metaStyle.Render("email "), normalStyle.Render(id.Email))
	fmt.Fprintf(&b, " %s %s\n", metaStyle.Render("role  "), RoleStyle(string(id.Role)).Render(string(id.Role)))
	fmt.Fprintf(&b, " %s %s\n", metaStyle.Render("joined"), dimStyle.Render(formatTime(id.CreatedAt)))
	if m.saved {
		b.WriteString("\n " + okStyle.Render("profile updated"))
	}
	return b.String()
}

func (m settingsModel) helpKeys() string {
	if m.editing {
		return helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "cancel")
	}
	return helpEntry("e", "edit profile") + "  " + helpEntry("b", "panel") + "  " + helpEntry("q", "quit")
}
