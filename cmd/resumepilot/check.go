package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pilot/internal/compliance"
	"github.com/jonathan/resume-pilot/internal/db"
	"github.com/jonathan/resume-pilot/internal/observability"
	"github.com/jonathan/resume-pilot/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit a generated resume for ATS compliance",
	Long:  "Runs the full compliance rule catalogue against a generated resume, read from a JSON file or loaded from a stored run, and reports issues, warnings, and the compliance score.",
	RunE:  runCheck,
}

var (
	checkResumePath string
	checkRunID      string
	checkJSON       bool
	checkStrict     bool
)

func init() {
	checkCmd.Flags().StringVar(&checkResumePath, "resume", "", "Path to a generated resume JSON file")
	checkCmd.Flags().StringVar(&checkRunID, "run", "", "Load the resume from this stored run ID (requires DATABASE_URL)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Emit JSON instead of the formatted report")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit non-zero when the report has any errors")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	data, err := loadResumeData()
	if err != nil {
		return err
	}

	var resume types.GeneratedResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	report := compliance.Check(&resume)

	if checkJSON {
		if err := writeJSON("", report); err != nil {
			return err
		}
	} else {
		observability.NewPrinter(os.Stdout).PrintComplianceReport(report)
	}

	if checkStrict && !report.Passed {
		return fmt.Errorf("compliance check failed with %d error(s)", len(report.Violations))
	}
	return nil
}

func loadResumeData() ([]byte, error) {
	switch {
	case checkResumePath != "" && checkRunID != "":
		return nil, fmt.Errorf("--resume and --run are mutually exclusive")
	case checkResumePath != "":
		data, err := os.ReadFile(checkResumePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume: %w", err)
		}
		return data, nil
	case checkRunID != "":
		return loadResumeFromRun(checkRunID)
	default:
		return nil, fmt.Errorf("either --resume or --run is required")
	}
}

func loadResumeFromRun(rawID string) ([]byte, error) {
	runID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("invalid run ID %q: %w", rawID, err)
	}
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("--run requires DATABASE_URL to be set")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	data, err := database.GetArtifact(ctx, runID, db.StepGeneratedResume)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("run %s has no stored resume", runID)
	}
	return data, nil
}
