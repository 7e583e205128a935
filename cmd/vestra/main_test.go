package main

import "testing"

func TestSubcommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", []string{"vestra"}, ""},
		{"version word", []string{"vestra", "version"}, "version"},
		{"version long flag", []string{"vestra", "--version"}, "version"},
		{"version short flag", []string{"vestra", "-v"}, "version"},
		{"help long flag", []string{"vestra", "--help"}, "help"},
		{"help short flag", []string{"vestra", "-h"}, "help"},
		{"login", []string{"vestra", "login"}, "login"},
		{"logout", []string{"vestra", "logout"}, "logout"},
		{"unknown passes through", []string{"vestra", "frobnicate"}, "frobnicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := subcommand(tt.args); got != tt.want {
				t.Errorf("subcommand(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
