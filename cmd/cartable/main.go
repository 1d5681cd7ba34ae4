// Command cartable is a terminal viewer for a school agenda feed.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crettaz/cartable/internal/application/usecase"
	"github.com/crettaz/cartable/internal/infrastructure/config"
	"github.com/crettaz/cartable/internal/infrastructure/feed"
	"github.com/crettaz/cartable/internal/presentation/tui"
)

var version = "dev"

type cli struct {
	Config  string           `help:"Path to the configuration file." type:"path"`
	Feed    string           `help:"Agenda feed URL. Overrides the configured one."`
	Debug   bool             `help:"Write debug logs to cartable.log."`
	Version kong.VersionFlag `help:"Print the version and exit."`
}

func main() {
	var args cli
	kong.Parse(&args,
		kong.Name("cartable"),
		kong.Description("Agenda scolaire dans le terminal."),
		kong.Vars{"version": version},
	)

	if err := run(args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args cli) error {
	if args.Debug {
		f, err := tea.LogToFile("cartable.log", "debug")
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
	}

	store, err := config.Load(args.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg := store.Settings
	if args.Feed != "" {
		cfg.FeedURL = args.Feed
	}

	client := feed.Client{Timeout: 10 * time.Second}
	agendaSvc := usecase.NewAgendaService(client, time.Now)

	program := tea.NewProgram(tui.NewModel(cfg, agendaSvc), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
