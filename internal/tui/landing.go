package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// landingModel is the public landing screen, shown on the root path while
// logged out and on any unrecognized public path.
type landingModel struct {
	width  int
	height int
}

func newLandingModel() landingModel {
	return landingModel{}
}

func (m landingModel) Init() tea.Cmd {
	return nil
}

func (m landingModel) Update(msg tea.Msg) (landingModel, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}
	return m, nil
}

func (m landingModel) View() string {
	var b strings.Builder

	b.WriteString(" " + normalStyle.Render("Grow your capital from the command line.") + "\n\n")
	b.WriteString(" " + dimStyle.Render("Fixed-term plans, live portfolio tracking, referral rewards —") + "\n")
	b.WriteString(" " + dimStyle.Render("all without leaving the terminal.") + "\n\n")
	b.WriteString(" " + accentStyle.Render("l") + " " + normalStyle.Render("sign in") + "    ")
	b.WriteString(accentStyle.Render("r") + " " + normalStyle.Render("create an account") + "\n")

	return b.String()
}

func (m landingModel) helpKeys() string {
	return helpEntry("l", "login") + "  " + helpEntry("r", "register") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
}
