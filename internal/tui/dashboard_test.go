package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/vestra-hq/vestra/pkg/client"
	"github.com/vestra-hq/vestra/pkg/domain"
)

func TestDashboardRendersSummary(t *testing.T) {
	m := newDashboardModel(newTestDeps(t))
	m, _ = m.Update(dashboardLoadedMsg{
		summary: &domain.PortfolioSummary{
			Balance:       10500.25,
			Invested:      8000,
			TotalEarnings: 1200.5,
			RewardPoints:  340,
			ReferralCount: 3,
		},
		investments: []domain.Investment{testInvestment("premium", domain.InvestmentActive)},
	})

	view := m.View()
	for _, want := range []string{"$10,500.25", "$8,000.00", "$1,200.50", "340", "premium"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in dashboard view, got:\n%s", want, view)
		}
	}
}

func TestDashboardEmptyInvestmentsHint(t *testing.T) {
	m := newDashboardModel(newTestDeps(t))
	m, _ = m.Update(dashboardLoadedMsg{summary: &domain.PortfolioSummary{}})
	if !strings.Contains(m.View(), "no investments yet") {
		t.Error("expected empty-state hint")
	}
}

func TestDashboardErrorShown(t *testing.T) {
	m := newDashboardModel(newTestDeps(t))
	m, cmd := m.Update(dashboardLoadedMsg{err: errors.New("do request: timeout")})
	if !strings.Contains(m.View(), "timeout") {
		t.Error("expected error in view")
	}
	if cmd != nil {
		t.Error("transport error must not trigger the login redirect")
	}
}

func TestDashboardAuthExpiryRedirects(t *testing.T) {
	m := newDashboardModel(newTestDeps(t))
	_, cmd := m.Update(dashboardLoadedMsg{err: &client.AuthError{Message: "token expired"}})
	if cmd == nil {
		t.Fatal("expected redirect command on auth expiry")
	}
	if _, ok := cmd().(sessionExpiredMsg); !ok {
		t.Error("expected sessionExpiredMsg from redirect command")
	}
}

func TestDashboardRefreshKey(t *testing.T) {
	m := newDashboardModel(newTestDeps(t))
	m, _ = m.Update(dashboardLoadedMsg{summary: &domain.PortfolioSummary{}})
	m, cmd := m.Update(key("r"))
	if cmd == nil {
		t.Fatal("expected reload command on 'r'")
	}
	if !m.loading {
		t.Error("expected loading=true while refreshing")
	}
}
