package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ocean-run/internal/core"
	"github.com/vovakirdan/ocean-run/internal/games/flappy"
	"github.com/vovakirdan/ocean-run/internal/logging"
	"github.com/vovakirdan/ocean-run/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W/Click  - Swim up (the first one starts the run)
  R/Enter           - Restart (after game over)
  Ctrl+S            - Save a screenshot to ~/.oceanrun/screenshots
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression: constant speed and gap

Logs go to ~/.oceanrun/oceanrun.log since the terminal belongs to the game.

Examples:
  oceanrun play
  oceanrun play --difficulty easy
  oceanrun play --seed 42
  oceanrun play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.oceanrun/oceanrun.log)")
}

func runPlay(_ *cobra.Command, _ []string) {
	tuning, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer := playLogger()
	defer closer.Close()

	keeper, _, cleanup := openKeeper(tuning, logger)

	game, err := flappy.New(tuning, keeper)
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting", "best", keeper.Best(), "difficulty", flagDifficulty, "fps", flagFPS)
	runErr := tui.Run(game, cfg, logger)

	// Flush the best score before potential exit
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Printf("Best score: %d\n", keeper.Best())
}

// playLogger opens the log file. If it cannot be opened, logging is
// discarded rather than drawn over the game.
func playLogger() (*log.Logger, io.Closer) {
	path := flagLogFile
	if path == "" {
		p, err := logging.DefaultFilePath()
		if err != nil {
			return log.New(io.Discard), io.NopCloser(nil)
		}
		path = p
	}

	logger, closer, err := logging.NewFile(path, logging.Options{Prefix: "oceanrun", Level: flagLogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}
	return logger, closer
}
