// flappy is a Flappy Bird clone that plays in a window, a terminal or over SSH.
//
// Usage:
//
//	flappy                   - Play in a window (same as "flappy window")
//	flappy play              - Play in the terminal
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show high scores
//
// Global flags:
//
//	--config <path>     - Game config YAML (hot-reloaded)
//	--db <path>         - Scores database (default: ~/.flappy/scores.db)
//	--seed <value>      - RNG seed for reproducible pipes
//	--log-level <lvl>   - debug, info, warn or error
//	--no-scores         - Do not record scores
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
	flagNoScores bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in a window, a terminal or over SSH",
	Long: `Guide the bird through the gaps between the pipes. The bird falls
constantly; flap to rise. Touching a pipe or falling off the bottom ends
the game. Your score is the number of ticks you survived.

Controls:
  Space/Up   - Flap
  R          - Restart (after game over)
  Esc        - Quit (window)
  Q/Ctrl+C   - Quit (terminal)

Examples:
  flappy
  flappy play --seed 42
  flappy serve --ssh :2222
  flappy scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoScores, "no-scores", false, "Do not record scores")

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger. Logs go to stderr so they never
// mix with a terminal game drawn on stdout.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads the game config and starts watching it when it came
// from a file. The watcher is nil for the embedded defaults.
func loadConfig(logger *log.Logger) (config.FlappyConfig, *config.Watcher, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	logger.Info("config loaded", "source", source)

	if source == config.SourceEmbedded {
		return cfg, nil, nil
	}
	w, err := config.NewWatcher(source)
	if err != nil {
		logger.Warn("config hot reload disabled", "error", err)
		return cfg, nil, nil
	}
	return cfg, w, nil
}

// openScores opens the score store unless disabled. A store that cannot be
// opened is a warning: the game is playable without it.
func openScores(logger *log.Logger) *storage.Store {
	if flagNoScores {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

// saver converts a possibly nil store into a storage.Saver that compares
// equal to nil when there is no store.
func saver(store *storage.Store) storage.Saver {
	if store == nil {
		return nil
	}
	return store
}
