// Package tui - Workspace Entry Point
//
// Wires the loaded application model into the bubbletea program: the
// workspace screen plus its modal dialogs, coordinated by models.AppModel.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"progman/internal/core"
	"progman/internal/tui/models"
)

// Run loads the configuration and starts the workspace TUI. It returns
// after the user quits; the final save already happened on the quit path.
func Run(cfg core.Config, logger *core.Logger) error {
	// Error-only logging while the alt screen is up, so log lines don't
	// bleed into the rendered frames.
	if !cfg.Debug {
		logger.SetLevel(zerolog.ErrorLevel)
	}

	path := cfg.ConfigPath
	if path == "" {
		var err error
		path, err = core.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	model := core.Load(path, logger)
	app := models.NewAppModel(cfg, logger, model)

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
