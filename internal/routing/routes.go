// Package routing classifies navigation paths into the categories the layout
// composer selects shells from.
package routing

import "strings"

// Category is the classification of a navigation path.
type Category int

const (
	// CategoryPublic covers login, register, marketing pages, and anything
	// unrecognized.
	CategoryPublic Category = iota
	// CategoryHome is the root path or its canonical alias.
	CategoryHome
	// CategoryAdmin is the administrative area.
	CategoryAdmin
	// CategoryProtected is any other authenticated-only area.
	CategoryProtected
)

func (c Category) String() string {
	switch c {
	case CategoryHome:
		return "home"
	case CategoryAdmin:
		return "admin"
	case CategoryProtected:
		return "protected"
	default:
		return "public"
	}
}

// Canonical paths used by the TUI's navigation.
const (
	PathHome             = "/"
	PathHomeAlias        = "/home"
	PathLogin            = "/login"
	PathRegister         = "/register"
	PathDashboard        = "/dashboard"
	PathPortfolio        = "/portfolio"
	PathTransactions     = "/transactions"
	PathCrypto           = "/crypto"
	PathExchange         = "/exchange"
	PathSettings         = "/settings"
	PathRewards          = "/rewards"
	PathReferrals        = "/referrals"
	PathAdmin            = "/admin"
	PathAdminUsers       = "/admin/users"
	PathAdminInvestments = "/admin/investments"
)

// protectedPrefixes are the authenticated-only areas outside /admin.
var protectedPrefixes = []string{
	PathDashboard,
	PathPortfolio,
	PathTransactions,
	PathCrypto,
	PathExchange,
	PathSettings,
	PathRewards,
	PathReferrals,
}

// Classify maps a path to exactly one category. Pure and deterministic:
// recomputed on every navigation, never stored.
func Classify(path string) Category {
	if path == PathHome || path == PathHomeAlias {
		return CategoryHome
	}
	if hasPrefix(path, PathAdmin) {
		return CategoryAdmin
	}
	for _, p := range protectedPrefixes {
		if hasPrefix(path, p) {
			return CategoryProtected
		}
	}
	return CategoryPublic
}

// hasPrefix matches a route prefix on path-segment boundaries, so /adminx is
// not /admin.
func hasPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
