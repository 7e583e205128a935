package tui

import (
	"strings"
	"testing"
)

func TestStatusStyleKnownStatuses(t *testing.T) {
	for _, status := range []string{"pending", "active", "completed", "cancelled", "failed"} {
		t.Run(status, func(t *testing.T) {
			rendered := StatusStyle(status).Render(status)
			if !strings.Contains(rendered, status) {
				t.Errorf("StatusStyle(%q).Render = %q, want to contain %q", status, rendered, status)
			}
		})
	}
}

func TestStatusStyleUnknownFallback(t *testing.T) {
	rendered := StatusStyle("weird-status").Render("weird-status")
	if !strings.Contains(rendered, "weird-status") {
		t.Errorf("StatusStyle fallback did not render text: %q", rendered)
	}
}

func TestRoleStyleKnownRoles(t *testing.T) {
	for _, role := range []string{"user", "admin", "superadmin"} {
		t.Run(role, func(t *testing.T) {
			rendered := RoleStyle(role).Render(role)
			if !strings.Contains(rendered, role) {
				t.Errorf("RoleStyle(%q).Render = %q, want to contain %q", role, rendered, role)
			}
		})
	}
}

func TestHelpEntryFormat(t *testing.T) {
	result := helpEntry("q", "quit")
	if !strings.Contains(result, "q") || !strings.Contains(result, "quit") {
		t.Errorf("helpEntry missing key or label: %q", result)
	}
}

func TestRenderShimmerLogoContainsLetters(t *testing.T) {
	out := renderShimmerLogo(0)
	for _, letter := range []string{"V", "E", "S", "T", "R", "A"} {
		if !strings.Contains(out, letter) {
			t.Errorf("shimmer logo missing %q: %q", letter, out)
		}
	}
}

func TestHelpViewListsLinks(t *testing.T) {
	out := helpView(0)
	if !strings.Contains(out, "vestra.app") {
		t.Errorf("help view missing web link:\n%s", out)
	}
	if !strings.Contains(out, ">") {
		t.Error("help view missing cursor marker")
	}
}
