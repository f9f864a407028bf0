package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ocean-run/internal/highscore"
	"github.com/vovakirdan/ocean-run/internal/storage"
)

var flagResetBest bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best score",
	Long: `Print the best score stored in the database.

Examples:
  oceanrun best
  oceanrun best --reset
  oceanrun best --db ./oceanrun.db`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagResetBest, "reset", false, "Forget the stored best score")
}

func runBest(_ *cobra.Command, _ []string) {
	tuning, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	key := tuning.Storage.BestScoreKey

	if flagResetBest {
		if err := store.Delete(ctx, key); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Best score reset.")
		return
	}

	best, err := highscore.Read(ctx, store, key)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("  Ocean Run")
	fmt.Println("  =========")
	fmt.Printf("  Best score: %d\n", best)
	fmt.Println()
}
