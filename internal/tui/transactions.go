package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestra-hq/vestra/pkg/domain"
)

// transactionsModel is the account ledger, newest first.
type transactionsModel struct {
	deps         Deps
	transactions []domain.Transaction
	cursor       int
	loading      bool
	errMsg       string
	width        int
	height       int
}

type transactionsLoadedMsg struct {
	transactions []domain.Transaction
	err          error
}

func newTransactionsModel(deps Deps) transactionsModel {
	return transactionsModel{deps: deps}
}

func (m transactionsModel) Init() tea.Cmd {
	return m.load()
}

func (m transactionsModel) load() tea.Cmd {
	api := m.deps.API
	return func() tea.Msg {
		txs, err := api.ListTransactions(context.Background(), pageSize, 0)
		return transactionsLoadedMsg{transactions: txs, err: err}
	}
}

func (m transactionsModel) Update(msg tea.Msg) (transactionsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case transactionsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, authRedirect(msg.err)
		}
		m.transactions = msg.transactions
		m.errMsg = ""
		if m.cursor >= len(m.transactions) {
			m.cursor = 0
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.transactions)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "r":
			m.loading = true
			return m, m.load()
		}
	}
	return m, nil
}

func (m transactionsModel) View() string {
	var b strings.Builder
	b.WriteString(" " + goldStyle.Render("Transactions") + "\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(" " + errStyle.Render("error: "+m.errMsg) + "\n")
		return b.String()
	case m.loading:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	case len(m.transactions) == 0:
		b.WriteString(" " + dimStyle.Render("no transactions yet") + "\n")
		return b.String()
	}

	for i, tx := range m.transactions {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		amount := formatMoney(tx.Amount)
		amountStyle := gainStyle
		if tx.Kind == "withdrawal" {
			amountStyle = lossStyle
			amount = "-" + amount
		}
		fmt.Fprintf(&b, " %s %s %s  %s  %s\n",
			cursor,
			normalStyle.Render(fmt.Sprintf("%-11s", tx.Kind)),
			amountStyle.Render(fmt.Sprintf("%12s", amount)),
			StatusStyle(tx.Status).Render(fmt.Sprintf("%-9s", tx.Status)),
			dimStyle.Render(formatTime(tx.CreatedAt)))
	}
	return b.String()
}

func (m transactionsModel) helpKeys() string {
	return helpEntry("j/k", "nav") + "  " + helpEntry("r", "refresh") + "  " + helpEntry("b", "panel")
}
