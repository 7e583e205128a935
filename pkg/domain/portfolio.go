package domain

// PortfolioSummary is the dashboard headline card: balances as the server
// computed them.
type PortfolioSummary struct {
	Balance         float64 `json:"balance"`
	Invested        float64 `json:"invested"`
	TotalEarnings   float64 `json:"total_earnings"`
	PendingEarnings float64 `json:"pending_earnings"`
	RewardPoints    int     `json:"reward_points"`
	ReferralCount   int     `json:"referral_count"`
}
