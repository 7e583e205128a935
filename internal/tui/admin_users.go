package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestra-hq/vestra/pkg/domain"
)

// adminUsersModel is the admin roster: every account on the platform with
// activate/deactivate and delete actions.
type adminUsersModel struct {
	deps       Deps
	users      []domain.Identity
	cursor     int
	loading    bool
	confirming bool // delete confirmation pending for the cursored user
	errMsg     string
	width      int
	height     int
}

type usersLoadedMsg struct {
	users []domain.Identity
	err   error
}

type userMutatedMsg struct {
	err error
}

func newAdminUsersModel(deps Deps) adminUsersModel {
	return adminUsersModel{deps: deps}
}

func (m adminUsersModel) Init() tea.Cmd {
	return m.load()
}

func (m adminUsersModel) load() tea.Cmd {
	api := m.deps.API
	return func() tea.Msg {
		users, err := api.ListUsers(context.Background(), pageSize, 0)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m adminUsersModel) Update(msg tea.Msg) (adminUsersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, authRedirect(msg.err)
		}
		m.users = msg.users
		m.errMsg = ""
		if m.cursor >= len(m.users) {
			m.cursor = 0
		}

	case userMutatedMsg:
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
		if m.confirming {
			return m.updateConfirmKeys(msg)
		}
		return m.updateListKeys(msg)
	}
	return m, nil
}

func (m adminUsersModel) updateListKeys(msg tea.KeyMsg) (adminUsersModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.users)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "t":
		if m.cursor < len(m.users) {
			u := m.users[m.cursor]
			api := m.deps.API
			return m, func() tea.Msg {
				return userMutatedMsg{err: api.SetUserActive(context.Background(), u.ID.String(), !u.Active)}
			}
		}
	case "d":
		if m.cursor < len(m.users) {
			m.confirming = true
		}
	case "r":
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m adminUsersModel) updateConfirmKeys(msg tea.KeyMsg) (adminUsersModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.confirming = false
		if m.cursor < len(m.users) {
			id := m.users[m.cursor].ID.String()
			api := m.deps.API
			return m, func() tea.Msg {
				return userMutatedMsg{err: api.DeleteUser(context.Background(), id)}
			}
		}
	case "n", "esc":
		m.confirming = false
	}
	return m, nil
}

func (m adminUsersModel) View() string {
	var b strings.Builder
	b.WriteString(" " + goldStyle.Render("Users") + "\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(" " + errStyle.Render("error: "+m.errMsg) + "\n")
		return b.String()
	case m.loading:
		b.WriteString(" " + dimStyle.Render("loading...") + "\n")
		return b.String()
	case len(m.users) == 0:
		b.WriteString(" " + dimStyle.Render("no users") + "\n")
		return b.String()
	}

	for i, u := range m.users {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		state := okStyle.Render("active  ")
		if !u.Active {
			state = lossStyle.Render("disabled")
		}
		fmt.Fprintf(&b, " %s %s  %s  %s  %s\n",
			cursor,
			normalStyle.Render(fmt.Sprintf("%-20s", truncStr(u.Name, 20))),
			dimStyle.Render(fmt.Sprintf("%-28s", truncStr(u.Email, 28))),
			RoleStyle(string(u.Role)).Render(fmt.Sprintf("%-10s", u.Role)),
			state)
	}

	if m.confirming && m.cursor < len(m.users) {
		fmt.Fprintf(&b, "\n %s %s %s",
			errStyle.Render("delete"),
			selectedStyle.Render(m.users[m.cursor].Name),
			errStyle.Render("? (y/n)"))
	}
	return b.String()
}

func (m adminUsersModel) helpKeys() string {
	if m.confirming {
		return helpEntry("y", "delete") + "  " + helpEntry("n", "cancel")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("t", "toggle active") + "  " + helpEntry("d", "delete") + "  " + helpEntry("h", "home")
}
