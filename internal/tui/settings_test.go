package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestra-hq/vestra/pkg/domain"
)

func newAuthedSettings(t *testing.T) settingsModel {
	t.Helper()
	deps := newTestDeps(t)
	deps.Session.Login("tok-test", testIdentity(domain.RoleUser))
	return newSettingsModel(deps)
}

func TestSettingsShowsProfile(t *testing.T) {
	m := newAuthedSettings(t)
	view := m.View()
	if !strings.Contains(view, "Ada Lovelace") || !strings.Contains(view, "ada@example.com") {
		t.Errorf("expected profile fields in view, got:\n%s", view)
	}
}

func TestSettingsLoggedOutFallback(t *testing.T) {
	m := newSettingsModel(newTestDeps(t))
	if !strings.Contains(m.View(), "not signed in") {
		t.Error("expected logged-out hint")
	}
}

func TestSettingsEditPrefillsFromIdentity(t *testing.T) {
	m := newAuthedSettings(t)
	m, _ = m.Update(key("e"))
	if !m.editing {
		t.Fatal("expected editing=true after 'e'")
	}
	if m.fields[settingsName] != "Ada Lovelace" {
		t.Errorf("name field = %q", m.fields[settingsName])
	}
	if m.fields[settingsEmail] != "ada@example.com" {
		t.Errorf("email field = %q", m.fields[settingsEmail])
	}
}

func TestSettingsEscCancelsEditing(t *testing.T) {
	m := newAuthedSettings(t)
	m, _ = m.Update(key("e"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.editing {
		t.Error("expected editing=false after esc")
	}
}

func TestSettingsSubmitRequiresFields(t *testing.T) {
	m := newAuthedSettings(t)
	m, _ = m.Update(key("e"))
	m.fields[settingsName] = ""
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Fatal("expected no save command with empty name")
	}
	if m.errMsg == "" {
		t.Error("expected validation error")
	}
}

func TestSettingsSavedUpdatesView(t *testing.T) {
	m := newAuthedSettings(t)
	m, _ = m.Update(key("e"))
	m.submitting = true

	id := testIdentity(domain.RoleUser)
	m, _ = m.Update(profileSavedMsg{id: &id})
	if m.editing {
		t.Error("expected editing closed after save")
	}
	if !strings.Contains(m.View(), "profile updated") {
		t.Error("expected saved confirmation in view")
	}
}
