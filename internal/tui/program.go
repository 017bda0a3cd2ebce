package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives the interactive loop until quit. When watchPath is
// non-empty the file is watched and the header hot-reloaded on change.
func Run(m Model, watchPath string, logger *slog.Logger) error {
	p := tea.NewProgram(m, tea.WithAltScreen())

	if watchPath != "" {
		w, err := WatchFile(watchPath, func(msg any) { p.Send(msg) }, logger)
		if err != nil {
			logger.Warn("file watching unavailable", "path", watchPath, "err", err)
		} else {
			defer w.Close()
		}
	}

	_, err := p.Run()
	return err
}
