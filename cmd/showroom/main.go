package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"elite-motors/cmd/showroom/ui"
	"elite-motors/global"
	"elite-motors/initialize"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "showroom:", err)
		os.Exit(1)
	}

	if app.Watcher != nil {
		app.Watcher.Start()
		defer app.Watcher.Close()
		go func() {
			for ev := range app.Watcher.Events {
				global.Logger.Warn().
					Str("path", ev.Path).
					Time("at", ev.Timestamp).
					Msg("store changed by another process, last write wins")
			}
		}()
	}

	p := tea.NewProgram(ui.NewRootModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		global.Logger.Error().Err(err).Msg("ui terminated")
		os.Exit(1)
	}
}
