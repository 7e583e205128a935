package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vestra-hq/vestra/internal/browser"
	"github.com/vestra-hq/vestra/internal/config"
	"github.com/vestra-hq/vestra/internal/logging"
	"github.com/vestra-hq/vestra/internal/routing"
	"github.com/vestra-hq/vestra/internal/session"
	"github.com/vestra-hq/vestra/internal/tui"
	"github.com/vestra-hq/vestra/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// subcommand normalizes the first CLI argument: flag spellings map to their
// word form, no argument means the default TUI launch.
func subcommand(args []string) string {
	if len(args) < 2 {
		return ""
	}
	switch args[1] {
	case "--version", "-v":
		return "version"
	case "--help", "-h":
		return "help"
	}
	return args[1]
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch cmd := subcommand(os.Args); cmd {
	case "version":
		fmt.Println("vestra " + version)
		return nil
	case "help":
		printHelp()
		return nil
	case "terms", "privacy", "support":
		return openLegal(cmd)
	case "login":
		return launch(cfg, routing.PathLogin)
	case "logout":
		return runLogout(cfg)
	case "":
		return launch(cfg, routing.PathHome)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		printHelp()
		return nil
	}
}

// launch wires the client stack and runs the TUI starting at startPath.
func launch(cfg config.Config, startPath string) error {
	log, logF := logging.Open(cfg.StateDir, cfg.LogLevel)
	if logF != nil {
		defer logF.Close() //nolint:errcheck // best-effort close at shutdown
	}
	log.Info().Str("version", version).Str("api", cfg.APIURL).Msg("starting")

	store := session.NewStore(cfg.StateDir, log)
	controller := session.NewController(store, log)

	// The controller is the token source, so a logout immediately stops the
	// client from attaching the stale credential. VESTRA_TOKEN, when set,
	// pins the token for this run instead.
	var tokens client.TokenSource = controller
	if cfg.Token != "" {
		tokens = client.StaticToken(cfg.Token)
	}
	api := client.New(cfg.APIURL, tokens)
	api.OnAuthExpired(controller.Logout)

	app := tui.NewApp(tui.Deps{
		API:     api,
		Session: controller,
		Store:   store,
		Log:     log,
	}, startPath)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func runLogout(cfg config.Config) error {
	log, logF := logging.Open(cfg.StateDir, cfg.LogLevel)
	if logF != nil {
		defer logF.Close() //nolint:errcheck // best-effort close at shutdown
	}
	store := session.NewStore(cfg.StateDir, log)
	token, id := store.Load()
	if token == "" || id == nil {
		fmt.Println("Already logged out.")
		return nil
	}
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Printf("Logged out %s.\n", id.Email)
	return nil
}

func openLegal(page string) error {
	url := "https://vestra.app/" + page
	if err := browser.Open(url); err != nil {
		fmt.Println(url)
	}
	return nil
}
