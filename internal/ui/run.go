package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mossvale/wavebound/internal/store"
	"github.com/mossvale/wavebound/internal/text"
	"github.com/mossvale/wavebound/internal/util"
)

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, db *store.DB, narrator text.Narrator, cfg util.Config, version string) error {
	m := initialModel(ctx, db, narrator, cfg, version)
	program := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
