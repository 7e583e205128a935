package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func printHelp() {
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
	commands := []struct{ cmd, desc string }{
		{"vestra", "Open the client (interactive TUI)"},
		{"vestra login", "Sign in to your account"},
		{"vestra logout", "Clear your session"},
		{"vestra terms", "Terms of Service"},
		{"vestra privacy", "Privacy Policy"},
		{"vestra support", "Get help"},
		{"vestra --version", "Show version"},
		{"vestra help", "You are here"},
	}

	fmt.Printf("\n  %s\n\n  %s\n\n  Commands:\n", title, tagline)
	for _, c := range commands {
		fmt.Printf("    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}
	url := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("https://vestra.app")
	fmt.Printf("\n  %s\n\n", url)
}
