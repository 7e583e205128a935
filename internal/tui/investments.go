package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestra-hq/vestra/pkg/client"
	"github.com/vestra-hq/vestra/pkg/domain"
)

// investmentPlans are the fixed-term products offered through the client.
// The server validates the plan name; this list only drives the form.
var investmentPlans = []string{"starter", "growth", "premium"}

// investmentsModel lists the investor's plan subscriptions and hosts the
// inline form for opening a new one.
type investmentsModel struct {
	deps        Deps
	investments []domain.Investment
	cursor      int
	loading     bool
	errMsg      string

	creating   bool
	planIdx    int
	amount     string
	submitting bool
	formErr    string

	width  int
	height int
}

type investmentsLoadedMsg struct {
	investments []domain.Investment
	err         error
}

type investmentCreatedMsg struct {
	investment *domain.Investment
	err        error
}

func newInvestmentsModel(deps Deps) investmentsModel {
	return investmentsModel{deps: deps}
}

func (m investmentsModel) Init() tea.Cmd {
	return m.load()
}

func (m investmentsModel) load() tea.Cmd {
	api := m.deps.API
	return func() tea.Msg {
		invs, err := api.ListInvestments(context.Background(), pageSize, 0)
		return investmentsLoadedMsg{investments: invs, err: err}
	}
}

func (m investmentsModel) Update(msg tea.Msg) (investmentsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case investmentsLoadedMsg:
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

	case investmentCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.formErr = msg.err.Error()
			return m, authRedirect(msg.err)
		}
		m.creating = false
		m.amount = ""
		m.formErr = ""
		m.loading = true
		return m, m.load()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.creating {
			return m.updateFormKeys(msg)
		}
		return m.updateListKeys(msg)
	}
	return m, nil
}

func (m investmentsModel) updateListKeys(msg tea.KeyMsg) (investmentsModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.investments)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "n":
		m.creating = true
		m.planIdx = 0
		m.amount = ""
		m.formErr = ""
	case "r":
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m investmentsModel) updateFormKeys(msg tea.KeyMsg) (investmentsModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.formErr = ""

	switch msg.String() {
	case "esc":
		m.creating = false
	case "ctrl+s", "enter":
		return m.submit()
	case "left", "h":
		m.planIdx = (m.planIdx - 1 + len(investmentPlans)) % len(investmentPlans)
	case "right", "l", "tab":
		m.planIdx = (m.planIdx + 1) % len(investmentPlans)
	default:
		m.amount = editRune(m.amount, msg.String())
	}
	return m, nil
}

func (m investmentsModel) submit() (investmentsModel, tea.Cmd) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(m.amount), 64)
	if err != nil || amount <= 0 {
		m.formErr = "enter a positive amount"
		return m, nil
	}

	m.submitting = true
	api := m.deps.API
	req := client.CreateInvestmentRequest{Plan: investmentPlans[m.planIdx], Amount: amount}
	return m, func() tea.Msg {
		inv, err := api.CreateInvestment(context.Background(), req)
		return investmentCreatedMsg{investment: inv, err: err}
	}
}

func (m investmentsModel) View() string {
	var b strings.Builder
	b.WriteString(" " + goldStyle.Render("Portfolio") + "\n\n")

	if m.creating {
		return b.String() + m.formView()
	}

	switch {
	case m.errMsg != "":
		b.WriteString(" " + errStyle.Render("error: "+m.errMsg) + "\n")
		return b.String()
	case m.loading:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	case len(m.investments) == 0:
		b.WriteString(" " + dimStyle.Render("no investments yet — press n to open one") + "\n")
		return b.String()
	}

	for i, inv := range m.investments {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		rate := dimStyle.Render(formatPercent(inv.ReturnRate))
		fmt.Fprintf(&b, " %s %s %s  %s  %s  %s\n",
			cursor,
			normalStyle.Render(fmt.Sprintf("%-12s", truncStr(inv.Plan, 12))),
			selectedStyle.Render(fmt.Sprintf("%12s", formatMoney(inv.Amount))),
			StatusStyle(string(inv.Status)).Render(fmt.Sprintf("%-9s", inv.Status)),
			rate,
			gainStyle.Render(formatMoney(inv.Earnings)))
	}
	return b.String()
}

func (m investmentsModel) formView() string {
	var b strings.Builder
	b.WriteString(" " + selectedStyle.Render("New investment") + "\n\n")

	var plans []string
	for i, p := range investmentPlans {
		if i == m.planIdx {
			plans = append(plans, accentStyle.Render("["+p+"]"))
			continue
		}
		plans = append(plans, dimStyle.Render(" "+p+" "))
	}
	b.WriteString(" " + metaStyle.Render("plan  ") + strings.Join(plans, " ") + "\n")
	b.WriteString(" " + metaStyle.Render("amount") + " $" + m.amount + "█\n\n")

	switch {
	case m.submitting:
		b.WriteString(" " + dimStyle.Render("opening investment..."))
	case m.formErr != "":
		b.WriteString(" " + errStyle.Render(m.formErr))
	default:
		b.WriteString(" " + inputPlaceholderStyle.Render("h/l plan · ctrl+s open · esc cancel"))
	}
	return b.String()
}

func (m investmentsModel) helpKeys() string {
	if m.creating {
		return helpEntry("h/l", "plan") + "  " + helpEntry("ctrl+s", "open") + "  " + helpEntry("esc", "cancel")
	}
	return helpEntry("n", "new") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("r", "refresh")
}
