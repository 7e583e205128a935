package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestra-hq/vestra/pkg/domain"
)

// adminInvestmentsModel is the platform-wide investment ledger with status
// controls.
type adminInvestmentsModel struct {
	deps        Deps
	investments []domain.Investment
	cursor      int
	loading     bool
	errMsg      string
	width       int
	height      int
}

type allInvestmentsLoadedMsg struct {
	investments []domain.Investment
	err         error
}

type investmentMutatedMsg struct {
	err error
}

func newAdminInvestmentsModel(deps Deps) adminInvestmentsModel {
	return adminInvestmentsModel{deps: deps}
}

func (m adminInvestmentsModel) Init() tea.Cmd {
	return m.load()
}

func (m adminInvestmentsModel) load() tea.Cmd {
	api := m.deps.API
	return func() tea.Msg {
		invs, err := api.ListAllInvestments(context.Background(), pageSize, 0)
		return allInvestmentsLoadedMsg{investments: invs, err: err}
	}
}

// nextStatus is the forward lifecycle step an admin can apply.
// Terminal states have no forward step.
func nextStatus(s domain.InvestmentStatus) (domain.InvestmentStatus, bool) {
	switch s {
	case domain.InvestmentPending:
		return domain.InvestmentActive, true
	case domain.InvestmentActive:
		return domain.InvestmentCompleted, true
	}
	return "", false
}

func (m adminInvestmentsModel) Update(msg tea.Msg) (adminInvestmentsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case allInvestmentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, authRedirect(msg.err)
		}
		m.investments = msg.investments
		m.errMsg = ""
		if m.cursor >= len(m.investments) {
			m.cursor = 0
		}

	case investmentMutatedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, authRedirect(msg.err)
		}
		m.loading = true
		return m, m.load()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.investments)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "s":
			if m.cursor < len(m.investments) {
				inv := m.investments[m.cursor]
				if next, ok := nextStatus(inv.Status); ok {
					return m, m.setStatus(inv.ID.String(), next)
				}
			}
		case "x":
			if m.cursor < len(m.investments) {
				inv := m.investments[m.cursor]
				if inv.Status == domain.InvestmentPending || inv.Status == domain.InvestmentActive {
					return m, m.setStatus(inv.ID.String(), domain.InvestmentCancelled)
				}
			}
		case "r":
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m adminInvestmentsModel) setStatus(id string, status domain.InvestmentStatus) tea.Cmd {
	api := m.deps.API
	return func() tea.Msg {
		return investmentMutatedMsg{err: api.UpdateInvestmentStatus(context.Background(), id, status)}
	}
}

func (m adminInvestmentsModel) View() string {
	var b strings.Builder
	b.WriteString(" " + goldStyle.Render("Investments") + "\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(" " + errStyle.Render("error: "+m.errMsg) + "\n")
		return b.String()
	case m.loading:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	case len(m.investments) == 0:
		b.WriteString(" " + dimStyle.Render("no investments") + "\n")
		return b.String()
	}

	for i, inv := range m.investments {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		owner := inv.UserName
		if owner == "" {
			owner = inv.UserID.String()[:8]
		}
		fmt.Fprintf(&b, " %s %s  %s %s  %s  %s\n",
			cursor,
			normalStyle.Render(fmt.Sprintf("%-18s", truncStr(owner, 18))),
			dimStyle.Render(fmt.Sprintf("%-10s", truncStr(inv.Plan, 10))),
			selectedStyle.Render(fmt.Sprintf("%12s", formatMoney(inv.Amount))),
			StatusStyle(string(inv.Status)).Render(fmt.Sprintf("%-9s", inv.Status)),
			dimStyle.Render(formatTime(inv.StartedAt)))
	}
	return b.String()
}

func (m adminInvestmentsModel) helpKeys() string {
	return helpEntry("j/k", "nav") + "  " + helpEntry("s", "advance") + "  " + helpEntry("x", "cancel") + "  " + helpEntry("h", "home")
}
