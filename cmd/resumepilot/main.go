// Package main implements the resumepilot CLI for job-tailored resume planning.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumepilot",
	Short: "Tailor a structured resume to a job description",
	Long:  "resumepilot scores a structured resume profile against a job requirement model, packs the best entries into a fixed line budget, audits the result for ATS hazards, and reports keyword coverage.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
