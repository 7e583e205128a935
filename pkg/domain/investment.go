package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvestmentStatus is the server-assigned lifecycle state of an investment.
type InvestmentStatus string

const (
	InvestmentPending   InvestmentStatus = "pending"
	InvestmentActive    InvestmentStatus = "active"
	InvestmentCompleted InvestmentStatus = "completed"
	InvestmentCancelled InvestmentStatus = "cancelled"
)

// Investment is a single plan subscription. Return math is server-owned;
// the client only displays what it is given.
type Investment struct {
	ID         uuid.UUID        `json:"id"`
	UserID     uuid.UUID        `json:"user_id"`
	UserName   string           `json:"user_name,omitempty"`
	Plan       string           `json:"plan"`
	Amount     float64          `json:"amount"`
	ReturnRate float64          `json:"return_rate"`
	Earnings   float64          `json:"earnings"`
	Status     InvestmentStatus `json:"status"`
	StartedAt  time.Time        `json:"started_at"`
	EndsAt     *time.Time       `json:"ends_at,omitempty"`
}
