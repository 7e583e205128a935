package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vestra-hq/vestra/pkg/domain"
)

func TestTransactionsRendering(t *testing.T) {
	m := newTransactionsModel(newTestDeps(t))
	m, _ = m.Update(transactionsLoadedMsg{transactions: []domain.Transaction{
		{ID: uuid.New(), Kind: "deposit", Amount: 500, Status: "completed", CreatedAt: time.Now()},
		{ID: uuid.New(), Kind: "withdrawal", Amount: 120.5, Status: "pending", CreatedAt: time.Now()},
	}})

	view := m.View()
	for _, want := range []string{"deposit", "withdrawal", "$500.00", "-$120.50", "pending"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in transactions view, got:\n%s", want, view)
		}
	}
}

func TestTransactionsEmptyState(t *testing.T) {
	m := newTransactionsModel(newTestDeps(t))
	m, _ = m.Update(transactionsLoadedMsg{})
	if !strings.Contains(m.View(), "no transactions yet") {
		t.Error("expected empty-state hint")
	}
}
