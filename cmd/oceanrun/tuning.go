package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ocean-run/internal/config"
)

var tuningCmd = &cobra.Command{
	Use:   "tuning",
	Short: "Print the effective tuning as YAML",
	Long: `Resolve the tuning the same way play does (--config, then
~/.oceanrun/configs/oceanrun.yaml, then ./configs/oceanrun.yaml, then the
built-in defaults), apply --difficulty, validate, and print the result.

The output is a complete tuning file and can be edited and passed back
with --config.

Examples:
  oceanrun tuning
  oceanrun tuning --difficulty hard
  oceanrun tuning --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runTuning,
}

func runTuning(_ *cobra.Command, _ []string) {
	tuning, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(tuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck // stdout

	diff := config.NewDifficulty(tuning)
	fmt.Fprintf(os.Stderr, "# ground at %.0f, gap %.0f at score 0, top speed x%.2f\n",
		tuning.GroundY(), diff.GapForScore(0), diff.MaxMultiplier())
}
