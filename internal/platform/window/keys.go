package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy/internal/core"
)

// keyNames maps config key names to ebiten keys. Names follow the
// terminal host's conventions so one config drives both.
var keyNames = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"enter":     ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"backspace": ebiten.KeyBackspace,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
}

// resolveKeys converts config key names to ebiten keys.
func resolveKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, n := range names {
		k, ok := keyNames[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return nil, fmt.Errorf("window: unsupported key %q", n)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// newBinding resolves config key names. Jump repeats while held; restart
// fires once per press.
func newBinding(jump, restart []string) ([]core.KeyBinding[ebiten.Key], error) {
	j, err := resolveKeys(jump)
	if err != nil {
		return nil, err
	}
	r, err := resolveKeys(restart)
	if err != nil {
		return nil, err
	}
	return []core.KeyBinding[ebiten.Key]{
		{Action: core.ActionJump, Keys: j, Held: true},
		{Action: core.ActionRestart, Keys: r},
	}, nil
}
