package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vestra-hq/vestra/internal/layout"
	"github.com/vestra-hq/vestra/internal/routing"
	"github.com/vestra-hq/vestra/internal/session"
	"github.com/vestra-hq/vestra/pkg/client"
	"github.com/vestra-hq/vestra/pkg/domain"
)

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	log := zerolog.Nop()
	store := session.NewStore(t.TempDir(), log)
	ctl := session.NewController(store, log)
	ctl.Initialize()
	api := client.New("http://127.0.0.1:0", ctl)
	return Deps{API: api, Session: ctl, Store: store, Log: log}
}

func testIdentity(role domain.Role) domain.Identity {
	return domain.Identity{
		ID:        uuid.New(),
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Role:      role,
		Active:    true,
		CreatedAt: time.Now(),
	}
}

func newTestApp(t *testing.T) App {
	t.Helper()
	a := NewApp(newTestDeps(t), routing.PathHome)
	a.width = 130
	a.height = 30
	a.panel = layout.NewPanel(130 * cellUnits)
	a.panelMounted = true
	return a
}

func newAuthedApp(t *testing.T, role domain.Role) App {
	t.Helper()
	a := newTestApp(t)
	a.deps.Session.Login("tok-test", testIdentity(role))
	return a
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigateProtectedWhileLoggedOutRedirectsToLogin(t *testing.T) {
	for _, path := range []string{routing.PathDashboard, routing.PathSettings, routing.PathAdminUsers} {
		t.Run(path, func(t *testing.T) {
			a := newTestApp(t)
			model, _ := a.Update(navigateMsg{path: path})
			a = model.(App)
			if a.path != routing.PathLogin {
				t.Errorf("path = %q, want %q", a.path, routing.PathLogin)
			}
		})
	}
}

func TestNavigateProtectedWhileLoggedIn(t *testing.T) {
	a := newAuthedApp(t, domain.RoleUser)
	model, _ := a.Update(navigateMsg{path: routing.PathDashboard})
	a = model.(App)
	if a.path != routing.PathDashboard {
		t.Errorf("path = %q, want %q", a.path, routing.PathDashboard)
	}
	if got := a.currentShell(); got != layout.ShellUser {
		t.Errorf("shell = %v, want %v", got, layout.ShellUser)
	}
}

// Shell selection keys off the route alone; a non-admin reaching an admin
// path still gets the admin shell and the API decides what they may see.
func TestAdminShellWithoutAdminRole(t *testing.T) {
	a := newAuthedApp(t, domain.RoleUser)
	model, _ := a.Update(navigateMsg{path: routing.PathAdminUsers})
	a = model.(App)
	if a.path != routing.PathAdminUsers {
		t.Fatalf("path = %q, want %q", a.path, routing.PathAdminUsers)
	}
	if got := a.currentShell(); got != layout.ShellAdmin {
		t.Errorf("shell = %v, want %v", got, layout.ShellAdmin)
	}
}

func TestShellPerRoute(t *testing.T) {
	tests := []struct {
		name   string
		authed bool
		path   string
		want   layout.Shell
	}{
		{"logged-out root", false, routing.PathHome, layout.ShellPublic},
		{"logged-out login", false, routing.PathLogin, layout.ShellPublic},
		{"logged-in root", true, routing.PathHome, layout.ShellHome},
		{"logged-in dashboard", true, routing.PathDashboard, layout.ShellUser},
		{"logged-in admin", true, routing.PathAdminInvestments, layout.ShellAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a App
			if tt.authed {
				a = newAuthedApp(t, domain.RoleUser)
			} else {
				a = newTestApp(t)
			}
			a.path = tt.path
			if got := a.currentShell(); got != tt.want {
				t.Errorf("shell for %q = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestResizeToNarrowCollapsesPanelAndStaysCollapsed(t *testing.T) {
	a := newAuthedApp(t, domain.RoleUser)
	a.path = routing.PathDashboard

	model, _ := a.Update(tea.WindowSizeMsg{Width: 130, Height: 30})
	a = model.(App)
	if a.panel.Collapsed() {
		t.Fatal("panel collapsed on a wide terminal")
	}

	model, _ = a.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	a = model.(App)
	if !a.panel.Collapsed() {
		t.Fatal("panel not collapsed after narrow resize")
	}

	// Growing back does not auto-expand.
	model, _ = a.Update(tea.WindowSizeMsg{Width: 130, Height: 30})
	a = model.(App)
	if !a.panel.Collapsed() {
		t.Error("panel auto-expanded after growing back to wide")
	}
}

func TestPanelToggleKey(t *testing.T) {
	a := newAuthedApp(t, domain.RoleUser)
	a.path = routing.PathDashboard
	wasCollapsed := a.panel.Collapsed()

	model, _ := a.Update(key("b"))
	a = model.(App)
	if a.panel.Collapsed() == wasCollapsed {
		t.Error("expected 'b' to toggle panel collapse")
	}
}

func TestPanelToggleIgnoredOnPublicShell(t *testing.T) {
	a := newTestApp(t)
	a.path = routing.PathHome
	wasCollapsed := a.panel.Collapsed()

	model, _ := a.Update(key("b"))
	a = model.(App)
	if a.panel.Collapsed() != wasCollapsed {
		t.Error("'b' toggled the panel on a shell without one")
	}
}

func TestSessionExpiredRedirectsToLogin(t *testing.T) {
	a := newAuthedApp(t, domain.RoleUser)
	a.path = routing.PathDashboard
	// The client hook has already logged the controller out by the time the
	// message reaches the app.
	a.deps.Session.Logout()

	model, _ := a.Update(sessionExpiredMsg{})
	a = model.(App)
	if a.path != routing.PathLogin {
		t.Errorf("path = %q, want %q", a.path, routing.PathLogin)
	}
}

func TestGlobalQuitOnQ(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command on 'q', got nil")
	}
}

func TestLogoutKeyClearsSessionAndGoesHome(t *testing.T) {
	a := newAuthedApp(t, domain.RoleUser)
	a.path = routing.PathDashboard

	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	a = model.(App)
	if a.deps.Session.Authenticated() {
		t.Error("still authenticated after ctrl+l")
	}
	if a.path != routing.PathHome {
		t.Errorf("path = %q, want %q", a.path, routing.PathHome)
	}
	if got := a.currentShell(); got != layout.ShellPublic {
		t.Errorf("shell = %v, want %v", got, layout.ShellPublic)
	}
}

func TestDigitNavigation(t *testing.T) {
	a := newAuthedApp(t, domain.RoleUser)
	a.path = routing.PathDashboard

	model, _ := a.Update(key("3"))
	a = model.(App)
	if a.path != routing.PathTransactions {
		t.Errorf("path = %q, want %q", a.path, routing.PathTransactions)
	}
}

func TestAdminKeyOpensAdminUsers(t *testing.T) {
	a := newAuthedApp(t, domain.RoleAdmin)
	a.path = routing.PathDashboard

	model, _ := a.Update(key("a"))
	a = model.(App)
	if a.path != routing.PathAdminUsers {
		t.Errorf("path = %q, want %q", a.path, routing.PathAdminUsers)
	}
}

func TestLoggedOutShortcuts(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(key("l"))
	a = model.(App)
	if a.path != routing.PathLogin {
		t.Errorf("after 'l': path = %q, want %q", a.path, routing.PathLogin)
	}

	a = newTestApp(t)
	model, _ = a.Update(key("r"))
	a = model.(App)
	if a.path != routing.PathRegister {
		t.Errorf("after 'r': path = %q, want %q", a.path, routing.PathRegister)
	}
}

func TestQTypedIntoLoginFormDoesNotQuit(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(navigateMsg{path: routing.PathLogin})
	a = model.(App)

	model, _ = a.Update(key("q"))
	a = model.(App)
	if a.login.fields[loginEmail] != "q" {
		t.Errorf("login email field = %q, want %q", a.login.fields[loginEmail], "q")
	}
}

func TestHelpOverlayOpenAndClose(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(key("?"))
	a = model.(App)
	if !a.helpOpen {
		t.Fatal("expected helpOpen=true after '?'")
	}
	if !strings.Contains(a.View(), "vestra login") {
		t.Error("expected command list in help overlay")
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = model.(App)
	if a.helpOpen {
		t.Error("expected helpOpen=false after esc")
	}
}

func TestRootViewLoggedOutShowsLanding(t *testing.T) {
	a := newTestApp(t)
	model, _ := a.Update(tea.WindowSizeMsg{Width: 130, Height: 30})
	a = model.(App)

	view := a.View()
	if !strings.Contains(view, "sign in") {
		t.Errorf("expected landing copy in logged-out root view, got:\n%s", view)
	}
}

func TestRootViewLoggedInShowsIdentity(t *testing.T) {
	a := newAuthedApp(t, domain.RoleUser)
	model, _ := a.Update(tea.WindowSizeMsg{Width: 130, Height: 30})
	a = model.(App)

	view := a.View()
	if !strings.Contains(view, "Ada Lovelace") {
		t.Errorf("expected identity name in logged-in root view, got:\n%s", view)
	}
}

func TestPanelViewListsSections(t *testing.T) {
	a := newAuthedApp(t, domain.RoleUser)
	a.path = routing.PathDashboard
	model, _ := a.Update(tea.WindowSizeMsg{Width: 130, Height: 30})
	a = model.(App)

	view := a.View()
	for _, label := range []string{"Dashboard", "Portfolio", "Transactions", "Rewards", "Referrals", "Settings"} {
		if !strings.Contains(view, label) {
			t.Errorf("expected %q in panel view", label)
		}
	}
}

func TestShimmerFrameIncrements(t *testing.T) {
	a := newTestApp(t)
	initial := a.frame

	model, _ := a.Update(shimmerTickMsg{})
	a = model.(App)
	if a.frame != initial+1 {
		t.Errorf("frame = %d, want %d", a.frame, initial+1)
	}
}
