package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window (default)",
	Long: `Open a 360x640 window and play.

Sprites are embedded in the binary. A file at a configured asset path on
disk replaces the embedded image.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
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

	sprites, err := assets.LoadSet(cfg.Assets)
	if err != nil {
		return err
	}
	logger.Debug("sprites loaded", "bird", cfg.Assets.Bird, "background", cfg.Assets.Background)

	store := openScores(logger)
	if store != nil {
		defer store.Close()
	}

	return window.Run(window.Options{
		Config:  cfg,
		Sprites: sprites,
		Seed:    flagSeed,
		Store:   saver(store),
		Logger:  logger,
		Watcher: watcher,
	})
}
