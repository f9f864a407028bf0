// oceanrun is a flappy-style terminal game: guide a dolphin through the
// gaps of a scrolling coral reef.
//
// Usage:
//
//	oceanrun play     - Play in this terminal
//	oceanrun serve    - Start SSH server for remote play
//	oceanrun web      - Serve the offline web bundle
//	oceanrun best     - Show (or reset) the best score
//	oceanrun tuning   - Print the effective tuning as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.oceanrun/oceanrun.db)
//	--config <path>       - Custom tuning YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ocean-run/internal/config"
	"github.com/vovakirdan/ocean-run/internal/highscore"
	"github.com/vovakirdan/ocean-run/internal/logging"
	"github.com/vovakirdan/ocean-run/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oceanrun",
	Short: "Ocean Run - swim through the reef in your terminal",
	Long: `Ocean Run is a flappy-style game for the terminal. The dolphin sinks
under gravity; each flap sends it upward. Swim through the gaps in the
coral and avoid the seabed. Every gap passed scores a point and the reef
speeds up as the score grows.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the offline web bundle
  best     - Show the best score
  tuning   - Print the effective tuning

Examples:
  oceanrun play
  oceanrun play --difficulty hard
  oceanrun serve --ssh :2222
  oceanrun tuning --difficulty fixed > my-tuning.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.oceanrun/oceanrun.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(tuningCmd)
}

// loadTuning resolves the tuning file, applies the difficulty preset and
// validates the result. A run never starts on an invalid tuning.
func loadTuning() (config.Tuning, error) {
	t, err := config.Load(flagConfig)
	if err != nil {
		return t, err
	}
	if err := config.ApplyPreset(&t, config.DifficultyPreset(flagDifficulty)); err != nil {
		return t, err
	}
	return t, t.Validate()
}

// stderrLogger builds the logger for commands that do not own the terminal.
func stderrLogger(prefix string) *log.Logger {
	logger, err := logging.New(os.Stderr, logging.Options{Prefix: prefix, Level: flagLogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// openKeeper opens the database and loads the best score. If the database
// cannot be opened the keeper works in memory only. The returned cleanup
// flushes pending writes and closes the database.
func openKeeper(t config.Tuning, logger *log.Logger) (*highscore.Keeper, *storage.Store, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, best score will not be saved", "error", err)
		store = nil
	}

	var kv highscore.KV
	if store != nil {
		kv = store
	}
	keeper := highscore.New(kv, t.Storage.BestScoreKey, logger)
	keeper.Load(context.Background())

	return keeper, store, func() {
		keeper.Close()
		if store != nil {
			store.Close()
		}
	}
}
