package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestra-hq/vestra/pkg/domain"
)

// homeModel is the authenticated home: a light overview with the same chrome
// weight as the logged-out landing.
type homeModel struct {
	deps    Deps
	summary *domain.PortfolioSummary
	errMsg  string
	width   int
	height  int
}

type homeLoadedMsg struct {
	summary *domain.PortfolioSummary
	err     error
}

func newHomeModel(deps Deps) homeModel {
	return homeModel{deps: deps}
}

func (m homeModel) Init() tea.Cmd {
	if !m.deps.Session.Authenticated() {
		return nil
	}
	return m.load()
}

func (m homeModel) load() tea.Cmd {
	api := m.deps.API
	return func() tea.Msg {
		summary, err := api.GetPortfolio(context.Background())
		return homeLoadedMsg{summary: summary, err: err}
	}
}

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, authRedirect(msg.err)
		}
		m.summary = msg.summary
		m.errMsg = ""

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m homeModel) View() string {
	var b strings.Builder

	name := ""
	if id := m.deps.Session.Identity(); id != nil {
		name = id.Name
	}
	b.WriteString(" " + normalStyle.Render("Welcome back, ") + selectedStyle.Render(name) + normalStyle.Render(".") + "\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(" " + errStyle.Render("error: "+m.errMsg) + "\n")
	case m.summary == nil:
		b.WriteString(" " + dimStyle.Render("loading overview...") + "\n")
	default:
		s := m.summary
		b.WriteString(" " + metaStyle.Render("balance") + "   " + goldStyle.Render(formatMoney(s.Balance)) + "\n")
		b.WriteString(" " + metaStyle.Render("invested") + "  " + normalStyle.Render(formatMoney(s.Invested)) + "\n")
		b.WriteString(" " + metaStyle.Render("earnings") + "  " + gainStyle.Render(formatMoney(s.TotalEarnings)) + "\n")
	}

	b.WriteString("\n " + dimStyle.Render("press 1 for the full dashboard") + "\n")
	return b.String()
}

func (m homeModel) helpKeys() string {
	return helpEntry("1-6", "sections") + "  " + helpEntry("a", "admin") + "  " + helpEntry("ctrl+l", "logout") + "  " + helpEntry("q", "quit")
}
