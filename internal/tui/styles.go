package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shimmer animation for the VESTRA wordmark.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "V E S T R A" as a flowing wave of gold light.
// Deep bronze (#3a2e14) -> bright gold (#facc15). No hue drift.
func renderShimmerLogo(frame int) string {
	const text = "VESTRA"
	n := len(text)

	var out string

	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		// Flowing phase — one smooth wave advancing through the text
		phase := t*0.1 - x*3.0

		// Gentle speed modulation
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		// Slow breathing tide
		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Continuous RGB interpolation: deep bronze -> bright gold
		// Deep:   (58, 46, 20)   #3a2e14
		// Bright: (250, 204, 21) #facc15
		r := clampByte(58 + b*(250-58))
		g := clampByte(46 + b*(204-46))
		bl := clampByte(20 + b*(21-20))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		// Letter spacing — two spaces between each letter
		if i < n-1 {
			out += "  "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base styles — vestra neutral palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Accent / action styles
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#facc15"))

	goldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844")).
			Bold(true)

	gainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34d474"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#34d474"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#facc15")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	// Panel chrome
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color("#1e1e2a"))

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844")).
			Bold(true)

	panelActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#facc15")).
				Bold(true)

	panelEntryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	// Investment status colors
	statusColors = map[string]lipgloss.Color{
		"pending":   lipgloss.Color("#d4a844"),
		"active":    lipgloss.Color("#34d474"),
		"completed": lipgloss.Color("#60a0e0"),
		"cancelled": lipgloss.Color("#e06060"),
		"failed":    lipgloss.Color("#e06060"),
	}

	// Role colors for the admin users table
	roleColors = map[string]lipgloss.Color{
		"user":       lipgloss.Color("#8890a0"),
		"admin":      lipgloss.Color("#facc15"),
		"superadmin": lipgloss.Color("#c084e0"),
	}

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878"))
)

// StatusStyle returns a colored style for an investment/transaction status.
func StatusStyle(status string) lipgloss.Style {
	if c, ok := statusColors[status]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#606878"))
}

// RoleStyle returns a bold style colored for the given role.
func RoleStyle(role string) lipgloss.Style {
	if c, ok := roleColors[role]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0")).Bold(true)
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpItem is a selectable link in the help overlay.
type helpItem struct {
	label string
	desc  string
	url   string
}

var helpItems = []helpItem{
	{"Web App", "vestra.app", "https://vestra.app"},
	{"Support", "vestra.app/support", "https://vestra.app/support"},
	{"Terms of Service", "vestra.app/terms", "https://vestra.app/terms"},
	{"Privacy Policy", "vestra.app/privacy", "https://vestra.app/privacy"},
}

// helpView renders the interactive help overlay with a cursor.
func helpView(cursor int) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#facc15")).
		Bold(true).
		Render("V E S T R A")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("Your portfolio, in the terminal.")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#facc15"))
	linkDescStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	commands := []struct{ cmd, desc string }{
		{"vestra", "Open the client"},
		{"vestra login", "Sign in to your account"},
		{"vestra logout", "Clear your session"},
		{"vestra --version", "Show version"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n  %s\n\n", title, tagline)

	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}

	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Links (enter to open)"))
	for i, item := range helpItems {
		label := cmdStyle.Render(fmt.Sprintf("%-20s", item.label))
		prefix := "    "
		if i == cursor {
			label = cursorStyle.Render(fmt.Sprintf("%-20s", item.label))
			prefix = "  > "
		}
		fmt.Fprintf(&b, "%s%s  %s\n", prefix, label, linkDescStyle.Render(item.desc))
	}
	return b.String()
}
