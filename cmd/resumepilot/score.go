package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pilot/internal/observability"
	"github.com/jonathan/resume-pilot/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a profile against a job model",
	Long:  "Computes per-entry relevance scores and the overall match percentage without running the rest of the pipeline. Useful for inspecting how well a profile fits before committing to a full run.",
	RunE:  runScore,
}

var (
	scoreProfilePath string
	scoreJobPath     string
	scoreOutputPath  string
	scoreJSON        bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreProfilePath, "profile", "", "Path to resume profile JSON")
	scoreCmd.Flags().StringVar(&scoreJobPath, "job", "", "Path to job requirement model JSON")
	scoreCmd.Flags().StringVarP(&scoreOutputPath, "out", "o", "", "Path to write the relevance map JSON (default stdout)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Emit JSON instead of the formatted table")
	_ = scoreCmd.MarkFlagRequired("profile")
	_ = scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	profile, job, err := loadInputs(scoreProfilePath, scoreJobPath)
	if err != nil {
		return err
	}

	rel := scoring.BuildRelevanceMap(profile, job)

	if scoreJSON || scoreOutputPath != "" {
		return writeJSON(scoreOutputPath, rel)
	}

	observability.NewPrinter(os.Stdout).PrintRelevanceMap(rel)
	return nil
}
