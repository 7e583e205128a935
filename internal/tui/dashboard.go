package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestra-hq/vestra/pkg/domain"
)

// dashboardModel is the portfolio overview: balance cards plus the most
// recent investments, all server-computed.
type dashboardModel struct {
	deps        Deps
	summary     *domain.PortfolioSummary
	investments []domain.Investment
	loading     bool
	errMsg      string
	width       int
	height      int
}

type dashboardLoadedMsg struct {
	summary     *domain.PortfolioSummary
	investments []domain.Investment
	err         error
}

func newDashboardModel(deps Deps) dashboardModel {
	return dashboardModel{deps: deps}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.load()
}

func (m dashboardModel) load() tea.Cmd {
	api := m.deps.API
	return func() tea.Msg {
		summary, err := api.GetPortfolio(context.Background())
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		invs, err := api.ListInvestments(context.Background(), 5, 0)
		return dashboardLoadedMsg{summary: summary, investments: invs, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, authRedirect(msg.err)
		}
		m.summary = msg.summary
		m.investments = msg.investments
		m.errMsg = ""

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder
	b.WriteString(" " + goldStyle.Render("Dashboard") + "\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(" " + errStyle.Render("error: "+m.errMsg) + "\n")
		return b.String()
	case m.summary == nil || m.loading:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}

	s := m.summary
	fmt.Fprintf(&b, " %s %s    %s %s\n",
		metaStyle.Render("balance"), goldStyle.Render(formatMoney(s.Balance)),
		metaStyle.Render("invested"), selectedStyle.Render(formatMoney(s.Invested)))
	fmt.Fprintf(&b, " %s %s    %s %s\n",
		metaStyle.Render("earnings"), gainStyle.Render(formatMoney(s.TotalEarnings)),
		metaStyle.Render("pending"), normalStyle.Render(formatMoney(s.PendingEarnings)))
	fmt.Fprintf(&b, " %s %s    %s %s\n\n",
		metaStyle.Render("points"), accentStyle.Render(fmt.Sprintf("%d", s.RewardPoints)),
		metaStyle.Render("referrals"), normalStyle.Render(fmt.Sprintf("%d", s.ReferralCount)))

	b.WriteString(" " + sectionHeaderStyle.Render("recent investments") + "\n")
	if len(m.investments) == 0 {
		b.WriteString(" " + dimStyle.Render("no investments yet — press 2 to open one") + "\n")
		return b.String()
	}
	for _, inv := range m.investments {
		fmt.Fprintf(&b, " %s  %s  %s  %s\n",
			normalStyle.Render(fmt.Sprintf("%-12s", truncStr(inv.Plan, 12))),
			selectedStyle.Render(fmt.Sprintf("%12s", formatMoney(inv.Amount))),
			StatusStyle(string(inv.Status)).Render(fmt.Sprintf("%-9s", inv.Status)),
			dimStyle.Render(formatTime(inv.StartedAt)))
	}
	return b.String()
}

func (m dashboardModel) helpKeys() string {
	return helpEntry("r", "refresh") + "  " + helpEntry("b", "panel") + "  " + helpEntry("q", "quit")
}
