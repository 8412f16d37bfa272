// Package window runs the game in a desktop window with Ebiten.
package window

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
	"github.com/vovakirdan/flappy/internal/storage"
)

const title = "Flappy Bird"

// Options configures a window game.
type Options struct {
	Config  config.FlappyConfig
	Sprites *assets.Set
	Seed    int64         // Zero picks a time-based seed
	Store   storage.Saver // Nil disables score saving
	Logger  *log.Logger
	Watcher *config.Watcher // Nil disables hot reload
}

// Game implements ebiten.Game. Ebiten calls Update once per tick at the
// configured TPS, which makes it the only clock the controller sees.
type Game struct {
	ctrl    *flappy.Controller
	sprites map[flappy.Sprite]*ebiten.Image
	keys    []core.KeyBinding[ebiten.Key]
	faces   *faces
	boardW  int
	boardH  int
	tps     int
	logger  *log.Logger
	watcher *config.Watcher
}

// New prepares a game. Sprites are uploaded to the GPU here.
func New(opts Options) (*Game, error) {
	if opts.Sprites == nil {
		return nil, errors.New("window: no sprites")
	}
	keys, err := newBinding(opts.Config.Keys.Jump, opts.Config.Keys.Restart)
	if err != nil {
		return nil, err
	}
	f, err := newFaces()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctrl := flappy.NewController(opts.Config, rand.New(rand.NewSource(seed)))
	ctrl.OnGameOver(storage.Recorder(opts.Store, storage.Run{Host: storage.HostWindow, Seed: seed}, logger))

	return &Game{
		ctrl: ctrl,
		sprites: map[flappy.Sprite]*ebiten.Image{
			flappy.SpriteBackground: toEbiten(opts.Sprites.Background),
			flappy.SpriteBird:       toEbiten(opts.Sprites.Bird),
			flappy.SpriteTopPipe:    toEbiten(opts.Sprites.TopPipe),
			flappy.SpriteBottomPipe: toEbiten(opts.Sprites.BottomPipe),
		},
		keys:    keys,
		faces:   f,
		boardW:  opts.Config.Board.Width,
		boardH:  opts.Config.Board.Height,
		tps:     opts.Config.Timing.TickRate,
		logger:  logger,
		watcher: opts.Watcher,
	}, nil
}

func toEbiten(img image.Image) *ebiten.Image {
	return ebiten.NewImageFromImage(img)
}

// Update polls input and advances the game by one tick.
func (g *Game) Update() error {
	g.pollConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.ctrl.HandleFrame(core.PollKeys(g.keys, ebiten.IsKeyPressed, inpututil.IsKeyJustPressed))
	g.ctrl.Step()
	return nil
}

// pollConfig applies config changes without blocking the tick.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case path := <-g.watcher.Events:
		cfg, err := config.LoadFile(path)
		if err != nil {
			g.logger.Warn("config reload failed", "path", path, "error", err)
			return
		}
		keys, err := newBinding(cfg.Keys.Jump, cfg.Keys.Restart)
		if err != nil {
			g.logger.Warn("config reload failed", "path", path, "error", err)
			return
		}
		if cfg.Board != (config.Board{Width: g.boardW, Height: g.boardH}) {
			g.logger.Warn("board size changes need a new process", "width", cfg.Board.Width, "height", cfg.Board.Height)
			return
		}
		if cfg.Timing.TickRate != g.tps {
			g.logger.Warn("tick rate changes need a new process", "tick_rate", cfg.Timing.TickRate)
			cfg.Timing.TickRate = g.tps
		}
		g.keys = keys
		g.ctrl.Reconfigure(cfg)
		g.logger.Info("config reloaded, applies on restart", "path", path)
	case err := <-g.watcher.Errors:
		g.logger.Warn("config watch error", "error", err)
	default:
	}
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.ctrl.Frame()
	for _, op := range frame.Sprites {
		if img, ok := g.sprites[op.Sprite]; ok {
			drawStretched(screen, img, op.Rect)
		}
	}
	for _, t := range frame.Texts {
		g.drawText(screen, t)
	}
}

// drawStretched scales img to cover r.
func drawStretched(dst, img *ebiten.Image, r core.Rect) {
	b := img.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	opts.GeoM.Translate(float64(r.X), float64(r.Y))
	dst.DrawImage(img, opts)
}

func (g *Game) drawText(dst *ebiten.Image, t flappy.TextOp) {
	face, clr := g.faces.style(t.Style)

	op := &text.DrawOptions{}
	// Text ops are placed by baseline; text/v2 places the top of the line.
	op.GeoM.Translate(float64(t.X), float64(t.Y)-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	if t.Centered {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, t.Text, face, op)
}

// Layout keeps the logical screen at board size; Ebiten scales the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.boardW, g.boardH
}

// Run opens the window and plays until it is closed or Escape is pressed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.boardW, g.boardH)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.tps)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
