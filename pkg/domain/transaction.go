package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a ledger entry on the investor's account.
type Transaction struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"` // deposit, withdrawal, earning, bonus
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency,omitempty"`
	Status    string    `json:"status"` // pending, completed, failed
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
