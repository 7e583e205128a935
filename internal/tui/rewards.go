package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestra-hq/vestra/pkg/domain"
)

// rewardsModel lists reward point entries with a running total.
type rewardsModel struct {
	deps    Deps
	rewards []domain.Reward
	loading bool
	errMsg  string
	width   int
	height  int
}

type rewardsLoadedMsg struct {
	rewards []domain.Reward
	err     error
}

func newRewardsModel(deps Deps) rewardsModel {
	return rewardsModel{deps: deps}
}

func (m rewardsModel) Init() tea.Cmd {
	return m.load()
}

func (m rewardsModel) load() tea.Cmd {
	api := m.deps.API
	return func() tea.Msg {
		rewards, err := api.ListRewards(context.Background(), pageSize, 0)
		return rewardsLoadedMsg{rewards: rewards, err: err}
	}
}

func (m rewardsModel) Update(msg tea.Msg) (rewardsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case rewardsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, authRedirect(msg.err)
		}
		m.rewards = msg.rewards
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

func (m rewardsModel) View() string {
	var b strings.Builder
	b.WriteString(" " + goldStyle.Render("Rewards") + "\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(" " + errStyle.Render("error: "+m.errMsg) + "\n")
		return b.String()
	case m.loading:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	case len(m.rewards) == 0:
		b.WriteString(" " + dimStyle.Render("no rewards yet — invest or refer to earn points") + "\n")
		return b.String()
	}

	total := 0
	for _, rw := range m.rewards {
		total += rw.Points
	}
	fmt.Fprintf(&b, " %s %s\n\n", metaStyle.Render("total"), accentStyle.Render(fmt.Sprintf("%d pts", total)))

	for _, rw := range m.rewards {
		fmt.Fprintf(&b, " %s  %s  %s\n",
			accentStyle.Render(fmt.Sprintf("%+6d", rw.Points)),
			normalStyle.Render(fmt.Sprintf("%-30s", truncStr(rw.Reason, 30))),
			dimStyle.Render(formatTime(rw.CreatedAt)))
	}
	return b.String()
}

func (m rewardsModel) helpKeys() string {
	return helpEntry("r", "refresh") + "  " + helpEntry("b", "panel") + "  " + helpEntry("q", "quit")
}
