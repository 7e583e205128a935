package domain

import "time"

// Referral is the investor's referral code plus the accounts it brought in.
// Payout amounts are computed server-side.
type Referral struct {
	Code     string         `json:"code"`
	Earnings float64        `json:"earnings"`
	Referred []ReferredUser `json:"referred,omitempty"`
}

// ReferredUser is one account signed up through a referral code.
type ReferredUser struct {
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	JoinedAt time.Time `json:"joined_at"`
	Active   bool      `json:"active"`
}
