package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestra-hq/vestra/pkg/domain"
)

// referralsModel shows the investor's referral code and the accounts that
// signed up with it.
type referralsModel struct {
	deps     Deps
	referral *domain.Referral
	loading  bool
	copied   bool
	errMsg   string
	width    int
	height   int
}

type referralLoadedMsg struct {
	referral *domain.Referral
	err      error
}

func newReferralsModel(deps Deps) referralsModel {
	return referralsModel{deps: deps}
}

func (m referralsModel) Init() tea.Cmd {
	return m.load()
}

func (m referralsModel) load() tea.Cmd {
	api := m.deps.API
	return func() tea.Msg {
		ref, err := api.GetReferral(context.Background())
		return referralLoadedMsg{referral: ref, err: err}
	}
}

func (m referralsModel) Update(msg tea.Msg) (referralsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case referralLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, authRedirect(msg.err)
		}
		m.referral = msg.referral
		m.errMsg = ""

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			if m.referral != nil && m.referral.Code != "" {
				clipboard.WriteAll(m.referral.Code) //nolint:errcheck // best-effort copy
				m.copied = true
			}
		case "r":
			m.loading = true
			m.copied = false
			return m, m.load()
		}
	}
	return m, nil
}

func (m referralsModel) View() string {
	var b strings.Builder
	b.WriteString(" " + goldStyle.Render("Referrals") + "\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(" " + errStyle.Render("error: "+m.errMsg) + "\n")
		return b.String()
	case m.loading || m.referral == nil:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	}

	ref := m.referral
	code := accentStyle.Render(ref.Code)
	if m.copied {
		code += "  " + okStyle.Render("copied!")
	}
	fmt.Fprintf(&b, " %s %s\n", metaStyle.Render("code    "), code)
	fmt.Fprintf(&b, " %s %s\n\n", metaStyle.Render("earnings"), gainStyle.Render(formatMoney(ref.Earnings)))

	b.WriteString(" " + sectionHeaderStyle.Render("referred accounts") + "\n")
	if len(ref.Referred) == 0 {
		b.WriteString(" " + dimStyle.Render("no one has used your code yet") + "\n")
		return b.String()
	}
	for _, ru := range ref.Referred {
		status := okStyle.Render("active")
		if !ru.Active {
			status = dimStyle.Render("inactive")
		}
		fmt.Fprintf(&b, " %s  %s  %s\n",
			normalStyle.Render(fmt.Sprintf("%-20s", truncStr(ru.Name, 20))),
			status,
			dimStyle.Render("joined "+formatTime(ru.JoinedAt)))
	}
	return b.String()
}

func (m referralsModel) helpKeys() string {
	return helpEntry("c", "copy code") + "  " + helpEntry("r", "refresh") + "  " + helpEntry("b", "panel")
}
