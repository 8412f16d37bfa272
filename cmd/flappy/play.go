package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/platform/tui"
	"github.com/vovakirdan/flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play in the terminal. The board keeps its proportions and is
centered in the terminal window.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("flappy")
	if err != nil {
		return err
	}

	cfg, watcher, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if watcher != nil {
		defer watcher.Close()
	}

	store := openScores(logger)
	if store != nil {
		defer store.Close()
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed

	return tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Store:   saver(store),
		Host:    storage.HostTUI,
		Logger:  logger,
		Watcher: watcher,
	})
}
