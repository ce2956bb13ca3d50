package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"edet/internal/adapters/tui"
	"edet/internal/bootstrap"
	"edet/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	// Logs would corrupt the alt screen
	logger := logging.Discard()
	if path := os.Getenv("EDET_TUI_LOG"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			defer f.Close()
			logger.SetOutput(f)
		}
	}

	app, err := bootstrap.Open(context.Background(), *configFlag, bootstrap.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	p := tea.NewProgram(tui.NewApp(app.Facade), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
