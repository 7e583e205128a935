package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reward is a points entry granted by the platform. Accrual formulas are
// server-owned.
type Reward struct {
	ID        uuid.UUID `json:"id"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
