package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// KeyMap holds the game's key bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Jump    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(cfg config.Keys) KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(teaKeys(cfg.Jump)...),
			key.WithHelp(helpLabel(cfg.Jump), "flap"),
		),
		Restart: key.NewBinding(
			key.WithKeys(teaKeys(cfg.Restart)...),
			key.WithHelp(helpLabel(cfg.Restart), "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MapKey translates a key message to a game action.
// Quit is checked first so it cannot be rebound away.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// teaKeys converts config key names to the strings tea.KeyMsg reports.
// Bubble Tea names the space bar " ".
func teaKeys(names []string) []string {
	keys := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "space" {
			n = " "
		}
		keys = append(keys, n)
	}
	return keys
}

func helpLabel(names []string) string {
	return strings.Join(names, "/")
}
