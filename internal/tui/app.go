package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/vestra-hq/vestra/internal/browser"
	"github.com/vestra-hq/vestra/internal/layout"
	"github.com/vestra-hq/vestra/internal/routing"
	"github.com/vestra-hq/vestra/internal/session"
	"github.com/vestra-hq/vestra/pkg/client"
)

// cellUnits converts terminal columns to viewport units for the layout
// breakpoints: a 96-column terminal sits exactly at the narrow threshold.
const cellUnits = 8

// Panel widths in terminal columns.
const (
	panelExpandedWidth  = 18
	panelCollapsedWidth = 5
)

// Deps bundles the process-wide collaborators shared by every view model.
type Deps struct {
	API     *client.Client
	Session *session.Controller
	Store   *session.Store
	Log     zerolog.Logger
}

// navigateMsg switches the app to a new path.
type navigateMsg struct {
	path string
}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}

// sessionExpiredMsg is emitted by any view whose load hit an authorization
// failure. The controller has already logged out via the client hook; the
// app only has to converge the chrome to a logged-out view.
type sessionExpiredMsg struct{}

// authRedirect turns an auth-expiry error into the login redirect; nil for
// every other error so views handle those inline.
func authRedirect(err error) tea.Cmd {
	if client.IsAuthExpired(err) {
		return func() tea.Msg { return sessionExpiredMsg{} }
	}
	return nil
}

// sessionReadyMsg fires once the controller finished restoring the session.
type sessionReadyMsg struct{}

// App is the root Bubble Tea model. It owns the current navigation path and
// composes the shell the layout package selects around the active view.
type App struct {
	deps         Deps
	path         string
	panel        layout.Panel
	panelMounted bool
	width        int
	height       int
	frame        int // logo shimmer animation frame
	helpOpen     bool
	helpCursor   int

	login        loginModel
	register     registerModel
	landing      landingModel
	home         homeModel
	dashboard    dashboardModel
	investments  investmentsModel
	transactions transactionsModel
	rewards      rewardsModel
	referrals    referralsModel
	settings     settingsModel
	adminUsers   adminUsersModel
	adminInvs    adminInvestmentsModel
}

// NewApp creates the root model starting at the given path.
func NewApp(deps Deps, startPath string) App {
	return App{
		deps:         deps,
		path:         startPath,
		login:        newLoginModel(deps),
		register:     newRegisterModel(deps),
		landing:      newLandingModel(),
		home:         newHomeModel(deps),
		dashboard:    newDashboardModel(deps),
		investments:  newInvestmentsModel(deps),
		transactions: newTransactionsModel(deps),
		rewards:      newRewardsModel(deps),
		referrals:    newReferralsModel(deps),
		settings:     newSettingsModel(deps),
		adminUsers:   newAdminUsersModel(deps),
		adminInvs:    newAdminInvestmentsModel(deps),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(shimmerTickCmd(), a.restoreSession())
}

// restoreSession runs the controller's initialize off the UI loop.
func (a App) restoreSession() tea.Cmd {
	ctl := a.deps.Session
	return func() tea.Msg {
		ctl.Initialize()
		return sessionReadyMsg{}
	}
}

// navigateTo recomputes the route category for path and hands control to the
// matching view. Unauthenticated navigation into a protected or admin area
// redirects to the login form.
func (a App) navigateTo(path string) (App, tea.Cmd) {
	authed := a.deps.Session.Authenticated()
	switch routing.Classify(path) {
	case routing.CategoryAdmin, routing.CategoryProtected:
		if !authed {
			path = routing.PathLogin
		}
	}

	a.path = path
	a.deps.Log.Debug().Str("path", path).Str("category", routing.Classify(path).String()).Msg("navigate")

	switch path {
	case routing.PathLogin:
		a.login = newLoginModel(a.deps)
		return a, a.login.Init()
	case routing.PathRegister:
		a.register = newRegisterModel(a.deps)
		return a, a.register.Init()
	case routing.PathHome, routing.PathHomeAlias:
		if !authed {
			return a, a.landing.Init()
		}
		return a, a.home.Init()
	case routing.PathDashboard:
		return a, a.dashboard.Init()
	case routing.PathPortfolio:
		return a, a.investments.Init()
	case routing.PathTransactions:
		return a, a.transactions.Init()
	case routing.PathRewards:
		return a, a.rewards.Init()
	case routing.PathReferrals:
		return a, a.referrals.Init()
	case routing.PathSettings:
		a.settings = newSettingsModel(a.deps)
		return a, a.settings.Init()
	case routing.PathAdmin, routing.PathAdminUsers:
		a.path = routing.PathAdminUsers
		return a, a.adminUsers.Init()
	case routing.PathAdminInvestments:
		return a, a.adminInvs.Init()
	default:
		return a, a.landing.Init()
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if !a.panelMounted {
			a.panel = layout.NewPanel(msg.Width * cellUnits)
			a.panelMounted = true
		} else {
			a.panel = a.panel.Resize(msg.Width * cellUnits)
		}
		// Views get the content column, not the full terminal.
		bodyMsg := tea.WindowSizeMsg{
			Width:  msg.Width - panelExpandedWidth - 2,
			Height: msg.Height - chromeLines,
		}
		a.login, _ = a.login.Update(bodyMsg)
		a.register, _ = a.register.Update(bodyMsg)
		a.landing, _ = a.landing.Update(bodyMsg)
		a.home, _ = a.home.Update(bodyMsg)
		a.dashboard, _ = a.dashboard.Update(bodyMsg)
		a.investments, _ = a.investments.Update(bodyMsg)
		a.transactions, _ = a.transactions.Update(bodyMsg)
		a.rewards, _ = a.rewards.Update(bodyMsg)
		a.referrals, _ = a.referrals.Update(bodyMsg)
		a.settings, _ = a.settings.Update(bodyMsg)
		a.adminUsers, _ = a.adminUsers.Update(bodyMsg)
		a.adminInvs, _ = a.adminInvs.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case sessionReadyMsg:
		return a.navigateTo(a.path)

	case navigateMsg:
		return a.navigateTo(msg.path)

	case sessionExpiredMsg:
		return a.navigateTo(routing.PathLogin)

	case tea.KeyMsg:
		// Help overlay captures all keys when open
		if a.helpOpen {
			switch msg.String() {
			case "?", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			case "j", "down":
				if a.helpCursor < len(helpItems)-1 {
					a.helpCursor++
				}
			case "k", "up":
				if a.helpCursor > 0 {
					a.helpCursor--
				}
			case "enter":
				item := helpItems[a.helpCursor]
				if item.url != "" {
					browser.Open(item.url) //nolint:errcheck // best-effort browser open
				}
			}
			return a, nil
		}

		if !a.isEditing() {
			if next, cmd, handled := a.globalKey(msg.String()); handled {
				return next, cmd
			}
		}
	}

	return a.routeMsg(msg)
}

// globalKey handles navigation and chrome keys shared by every screen.
func (a App) globalKey(key string) (App, tea.Cmd, bool) {
	authed := a.deps.Session.Authenticated()

	switch key {
	case "q", "ctrl+c":
		return a, tea.Quit, true
	case "?":
		a.helpOpen = true
		a.helpCursor = 0
		return a, nil, true
	case "b":
		if a.currentShell().HasPanel() {
			a.panel = a.panel.Toggle()
			return a, nil, true
		}
	case "h":
		next, cmd := a.navigateTo(routing.PathHome)
		return next, cmd, true
	}

	if !authed {
		switch key {
		case "l":
			next, cmd := a.navigateTo(routing.PathLogin)
			return next, cmd, true
		case "r":
			next, cmd := a.navigateTo(routing.PathRegister)
			return next, cmd, true
		}
		return a, nil, false
	}

	switch key {
	case "ctrl+l":
		a.deps.Session.Logout()
		next, cmd := a.navigateTo(routing.PathHome)
		return next, cmd, true
	case "a":
		next, cmd := a.navigateTo(routing.PathAdminUsers)
		return next, cmd, true
	}

	// Digits navigate the active panel's entries.
	entries := userNavEntries
	if a.currentShell() == layout.ShellAdmin {
		entries = adminNavEntries
	}
	for _, e := range entries {
		if key == e.key {
			next, cmd := a.navigateTo(e.path)
			return next, cmd, true
		}
	}
	return a, nil, false
}

// routeMsg forwards msg to the view owning the current path.
func (a App) routeMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.path {
	case routing.PathLogin:
		a.login, cmd = a.login.Update(msg)
	case routing.PathRegister:
		a.register, cmd = a.register.Update(msg)
	case routing.PathHome, routing.PathHomeAlias:
		if !a.deps.Session.Authenticated() {
			a.landing, cmd = a.landing.Update(msg)
		} else {
			a.home, cmd = a.home.Update(msg)
		}
	case routing.PathDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case routing.PathPortfolio:
		a.investments, cmd = a.investments.Update(msg)
	case routing.PathTransactions:
		a.transactions, cmd = a.transactions.Update(msg)
	case routing.PathRewards:
		a.rewards, cmd = a.rewards.Update(msg)
	case routing.PathReferrals:
		a.referrals, cmd = a.referrals.Update(msg)
	case routing.PathSettings:
		a.settings, cmd = a.settings.Update(msg)
	case routing.PathAdminUsers:
		a.adminUsers, cmd = a.adminUsers.Update(msg)
	case routing.PathAdminInvestments:
		a.adminInvs, cmd = a.adminInvs.Update(msg)
	default:
		a.landing, cmd = a.landing.Update(msg)
	}
	return a, cmd
}

func (a App) isEditing() bool {
	switch a.path {
	case routing.PathLogin:
		return true
	case routing.PathRegister:
		return true
	case routing.PathSettings:
		return a.settings.editing
	case routing.PathPortfolio:
		return a.investments.creating
	case routing.PathAdminUsers:
		return a.adminUsers.confirming
	}
	return false
}

// currentShell recomputes the shell for the current path on every call; the
// selection is pure and never stored.
func (a App) currentShell() layout.Shell {
	return layout.SelectShell(a.deps.Session.Authenticated(), routing.Classify(a.path))
}

// chromeLines is the line count of header + spacer + help in the
// full-chrome shells.
const chromeLines = 5

func (a App) View() string {
	if a.deps.Session.Loading() {
		return "\n  " + dimStyle.Render("restoring session...")
	}

	body, help := a.currentView()

	if a.helpOpen {
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	}

	shell := a.currentShell()
	if shell.HasPanel() && !a.helpOpen {
		return a.panelLayout(shell, body, help)
	}
	return a.fullChromeLayout(body, help)
}

// fullChromeLayout renders header + content + footer (public and home
// shells; no panel).
func (a App) fullChromeLayout(body, help string) string {
	logo := renderShimmerLogo(a.frame)
	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	identityLine := ""
	if id := a.deps.Session.Identity(); id != nil {
		line := metaStyle.Render(id.Name) + " " + RoleStyle(string(id.Role)).Render("["+string(id.Role)+"]")
		lineWidth := lipgloss.Width(line)
		linePad := (a.width - lineWidth) / 2
		if linePad < 0 {
			linePad = 0
		}
		identityLine = strings.Repeat(" ", linePad) + line
	}
	header += "\n" + identityLine

	body = strings.TrimRight(truncateToHeight(body, a.height-chromeLines), "\n")
	return fmt.Sprintf("%s\n\n%s\n%s", header, body, help)
}

// panelLayout renders the side panel joined with content; no header/footer.
func (a App) panelLayout(shell layout.Shell, body, help string) string {
	panel := a.panelView(shell)
	content := strings.TrimRight(truncateToHeight(body, a.height-2), "\n") + "\n\n" + help
	return lipgloss.JoinHorizontal(lipgloss.Top, panel, content)
}

// navEntry is one selectable destination in the side panel.
type navEntry struct {
	key   string
	label string
	path  string
}

var userNavEntries = []navEntry{
	{"1", "Dashboard", routing.PathDashboard},
	{"2", "Portfolio", routing.PathPortfolio},
	{"3", "Transactions", routing.PathTransactions},
	{"4", "Rewards", routing.PathRewards},
	{"5", "Referrals", routing.PathReferrals},
	{"6", "Settings", routing.PathSettings},
}

var adminNavEntries = []navEntry{
	{"1", "Users", routing.PathAdminUsers},
	{"2", "Investments", routing.PathAdminInvestments},
}

func (a App) panelView(shell layout.Shell) string {
	collapsed := a.panel.Collapsed()
	width := panelExpandedWidth
	if collapsed {
		width = panelCollapsedWidth
	}

	entries := userNavEntries
	title := "VESTRA"
	if shell == layout.ShellAdmin {
		entries = adminNavEntries
		title = "ADMIN"
	}
	if collapsed {
		title = title[:1]
	}

	var b strings.Builder
	b.WriteString(" " + panelTitleStyle.Render(title) + "\n\n")
	for _, e := range entries {
		style := panelEntryStyle
		if e.path == a.path {
			style = panelActiveStyle
		}
		if collapsed {
			b.WriteString(" " + style.Render(e.key) + "\n")
			continue
		}
		b.WriteString(" " + accentStyle.Render(e.key) + " " + style.Render(e.label) + "\n")
	}
	if !collapsed {
		b.WriteString("\n")
		if shell == layout.ShellAdmin {
			b.WriteString(" " + helpEntry("h", "home") + "\n")
		}
		b.WriteString(" " + helpEntry("b", "panel") + "\n")
		b.WriteString(" " + helpEntry("ctrl+l", "logout") + "\n")
	}

	lines := b.String()
	height := a.height - 1
	if height < 1 {
		height = 1
	}
	return panelStyle.Width(width).Height(height).Render(lines)
}

// currentView returns the active view's body and help bar.
func (a App) currentView() (string, string) {
	tabs := " " + helpEntry("1-6", "sections") + "  "
	switch a.path {
	case routing.PathLogin:
		return a.login.View(), " " + a.login.helpKeys()
	case routing.PathRegister:
		return a.register.View(), " " + a.register.helpKeys()
	case routing.PathHome, routing.PathHomeAlias:
		if !a.deps.Session.Authenticated() {
			return a.landing.View(), " " + a.landing.helpKeys()
		}
		return a.home.View(), " " + a.home.helpKeys()
	case routing.PathDashboard:
		return a.dashboard.View(), tabs + a.dashboard.helpKeys()
	case routing.PathPortfolio:
		return a.investments.View(), tabs + a.investments.helpKeys()
	case routing.PathTransactions:
		return a.transactions.View(), tabs + a.transactions.helpKeys()
	case routing.PathRewards:
		return a.rewards.View(), tabs + a.rewards.helpKeys()
	case routing.PathReferrals:
		return a.referrals.View(), tabs + a.referrals.helpKeys()
	case routing.PathSettings:
		return a.settings.View(), tabs + a.settings.helpKeys()
	case routing.PathAdminUsers:
		return a.adminUsers.View(), " " + a.adminUsers.helpKeys()
	case routing.PathAdminInvestments:
		return a.adminInvs.View(), " " + a.adminInvs.helpKeys()
	default:
		return a.landing.View(), " " + a.landing.helpKeys()
	}
}
