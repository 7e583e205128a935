package tui

import (
	"strings"
	"testing"

	"github.com/vestra-hq/vestra/pkg/domain"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		from   domain.InvestmentStatus
		want   domain.InvestmentStatus
		wantOK bool
	}{
		{domain.InvestmentPending, domain.InvestmentActive, true},
		{domain.InvestmentActive, domain.InvestmentCompleted, true},
		{domain.InvestmentCompleted, "", false},
		{domain.InvestmentCancelled, "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			got, ok := nextStatus(tt.from)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("nextStatus(%q) = (%q, %v), want (%q, %v)", tt.from, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAdminInvestmentsAdvanceKey(t *testing.T) {
	m := newAdminInvestmentsModel(newTestDeps(t))
	m, _ = m.Update(allInvestmentsLoadedMsg{investments: []domain.Investment{
		testInvestment("growth", domain.InvestmentPending),
	}})

	_, cmd := m.Update(key("s"))
	if cmd == nil {
		t.Fatal("expected status command on 's' for pending investment")
	}
}

func TestAdminInvestmentsAdvanceIgnoredOnTerminalStatus(t *testing.T) {
	m := newAdminInvestmentsModel(newTestDeps(t))
	m, _ = m.Update(allInvestmentsLoadedMsg{investments: []domain.Investment{
		testInvestment("growth", domain.InvestmentCompleted),
	}})

	_, cmd := m.Update(key("s"))
	if cmd != nil {
		t.Error("'s' must be a no-op on a completed investment")
	}
	_, cmd = m.Update(key("x"))
	if cmd != nil {
		t.Error("'x' must be a no-op on a completed investment")
	}
}

func TestAdminInvestmentsCancelKey(t *testing.T) {
	m := newAdminInvestmentsModel(newTestDeps(t))
	m, _ = m.Update(allInvestmentsLoadedMsg{investments: []domain.Investment{
		testInvestment("growth", domain.InvestmentActive),
	}})

	_, cmd := m.Update(key("x"))
	if cmd == nil {
		t.Fatal("expected cancel command on 'x' for active investment")
	}
}

func TestAdminInvestmentsShowsOwner(t *testing.T) {
	m := newAdminInvestmentsModel(newTestDeps(t))
	inv := testInvestment("growth", domain.InvestmentActive)
	inv.UserName = "Grace Hopper"
	m, _ = m.Update(allInvestmentsLoadedMsg{investments: []domain.Investment{inv}})

	if !strings.Contains(m.View(), "Grace Hopper") {
		t.Error("expected owner name in view")
	}
}
