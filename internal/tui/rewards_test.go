package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vestra-hq/vestra/pkg/domain"
)

func TestRewardsTotalAndEntries(t *testing.T) {
	m := newRewardsModel(newTestDeps(t))
	m, _ = m.Update(rewardsLoadedMsg{rewards: []domain.Reward{
		{ID: uuid.New(), Points: 100, Reason: "first investment", CreatedAt: time.Now()},
		{ID: uuid.New(), Points: 40, Reason: "referral signup", CreatedAt: time.Now()},
	}})

	view := m.View()
	if !strings.Contains(view, "140 pts") {
		t.Errorf("expected running total in view, got:\n%s", view)
	}
	if !strings.Contains(view, "first investment") || !strings.Contains(view, "referral signup") {
		t.Errorf("expected reward reasons in view, got:\n%s", view)
	}
}

func TestRewardsEmptyState(t *testing.T) {
	m := newRewardsModel(newTestDeps(t))
	m, _ = m.Update(rewardsLoadedMsg{})
	if !strings.Contains(m.View(), "no rewards yet") {
		t.Error("expected empty-state hint")
	}
}
