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

type registerField int

const (
	regName registerField = iota
	regEmail
	regPassword
	regReferral
	numRegisterFields
)

type registerModel struct {
	deps       Deps
	fields     [numRegisterFields]string
	focus      registerField
	submitting bool
	errMsg     string
	width      int
	height     int
}

type registerDoneMsg struct {
	id  *domain.Identity
	err error
}

func newRegisterModel(deps Deps) registerModel {
	return registerModel{deps: deps}
}

func (m registerModel) Init() tea.Cmd {
	return nil
}

func (m registerModel) Update(msg tea.Msg) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case registerDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
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

func (m registerModel) updateKeys(msg tea.KeyMsg) (registerModel, tea.Cmd) {
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
		m.focus = (m.focus + 1) % numRegisterFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numRegisterFields) % numRegisterFields
	case "enter":
		if m.focus == regReferral {
			return m.submit()
		}
		m.focus = (m.focus + 1) % numRegisterFields
	default:
		f := &m.fields[m.focus]
		*f = editRune(*f, msg.String())
	}
	return m, nil
}

func (m registerModel) submit() (registerModel, tea.Cmd) {
	req := client.RegisterRequest{
		Name:     strings.TrimSpace(m.fields[regName]),
		Email:    strings.TrimSpace(m.fields[regEmail]),
		Password: m.fields[regPassword],
		Referral: strings.TrimSpace(m.fields[regReferral]),
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		m.errMsg = "name, email, and password are required"
		return m, nil
	}

	m.submitting = true
	deps := m.deps
	return m, func() tea.Msg {
		token, id, err := deps.API.Register(context.Background(), req)
		if err != nil {
			return registerDoneMsg{err: err}
		}
		if err := deps.Store.Save(token, *id); err != nil {
			deps.Log.Warn().Err(err).Msg("persisting session failed")
		}
		deps.Session.Login(token, *id)
		return registerDoneMsg{id: id}
	}
}

func (m registerModel) View() string {
	var b strings.Builder

	b.WriteString(" " + goldStyle.Render("Create your account") + "\n\n")

	labels := [numRegisterFields]string{"name", "email", "password", "referral"}
	for i := registerField(0); i < numRegisterFields; i++ {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.fields[i]
		if i == regPassword {
			value = strings.Repeat("•", len([]rune(value)))
		}
		if i == m.focus {
			value += "█"
		}
		label := fmt.Sprintf("%-9s", labels[i])
		if i == regReferral {
			fmt.Fprintf(&b, " %s %s: %s %s\n", cursor, style.Render(label), value, inputPlaceholderStyle.Render("(optional)"))
			continue
		}
		fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(label), value)
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(" " + dimStyle.Render("creating account..."))
	case m.errMsg != "":
		b.WriteString(" " + errStyle.Render(m.errMsg))
	}

	return b.String()
}

func (m registerModel) helpKeys() string {
	return helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "create") + "  " + helpEntry("esc", "back")
}
