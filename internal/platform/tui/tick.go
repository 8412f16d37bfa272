// Package tui runs the game in a terminal with Bubble Tea, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy/internal/config"
)

// TickMsg is one beat of the host clock.
type TickMsg time.Time

// tickCmd schedules the next host tick. Exactly one tick is in flight while
// the game runs; the chain ends when the game does.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// configReloadMsg carries a config file that changed on disk.
type configReloadMsg struct {
	path string
	cfg  config.FlappyConfig
	err  error
}

// watchCmd waits for the next change reported by w.
func watchCmd(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path := <-w.Events:
			cfg, err := config.LoadFile(path)
			return configReloadMsg{path: path, cfg: cfg, err: err}
		case err := <-w.Errors:
			return configReloadMsg{path: w.Path(), err: err}
		}
	}
}
