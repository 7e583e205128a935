package layout

import "github.com/vestra-hq/vestra/internal/routing"

// Shell is the set of chrome elements composed around screen content.
type Shell int

const (
	// ShellPublic is header + content + footer, no panel.
	ShellPublic Shell = iota
	// ShellHome is the authenticated home: same chrome weight as public.
	ShellHome
	// ShellUser is panel + content, no header/footer.
	ShellUser
	// ShellAdmin is panel + content with the administrative navigation.
	ShellAdmin
)

func (s Shell) String() string {
	switch s {
	case ShellHome:
		return "home"
	case ShellUser:
		return "user"
	case ShellAdmin:
		return "admin"
	default:
		return "public"
	}
}

// HasPanel reports whether the shell mounts the navigation side panel.
func (s Shell) HasPanel() bool {
	return s == ShellUser || s == ShellAdmin
}

// SelectShell maps (authenticated, route category) to a shell. Pure and
// exhaustive over the category enumeration crossed with the flag; recomputed
// on every navigation. Role never enters the decision — role-based denial is
// a server concern.
func SelectShell(authenticated bool, category routing.Category) Shell {
	if !authenticated {
		return ShellPublic
	}
	switch category {
	case routing.CategoryHome:
		return ShellHome
	case routing.CategoryAdmin:
		return ShellAdmin
	case routing.CategoryProtected:
		return ShellUser
	default:
		// Authenticated visit to a public page (e.g. marketing) keeps the
		// public chrome.
		return ShellPublic
	}
}
