package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-pilot/internal/config"
	"github.com/jonathan/resume-pilot/internal/llm"
	"github.com/jonathan/resume-pilot/internal/observability"
	"github.com/jonathan/resume-pilot/internal/parsing"
	"github.com/jonathan/resume-pilot/internal/pipeline"
	"github.com/jonathan/resume-pilot/internal/render"
	"github.com/jonathan/resume-pilot/internal/rewriting"
	"github.com/jonathan/resume-pilot/internal/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full tailoring pipeline",
	Long:  "Scores the profile against the job, allocates the line budget, rewrites included bullets via the configured collaborator, checks ATS compliance, and writes the generated resume as JSON (plus an optional text preview).",
	RunE:  runRun,
}

var (
	runConfigPath  string
	runProfilePath string
	runJobPath     string
	runOutputPath  string
	runPreviewPath string
	runPageCount   int
	runMaxBullets  int
	runMaxProjects int
	runSummaryTier string
	runSkipSummary bool
	runSkipSkills  bool
	runSkipEdu     bool
	runSkipCerts   bool
	runVerbose     bool
)

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "Path to JSON config file")
	runCmd.Flags().StringVar(&runProfilePath, "profile", "", "Path to resume profile JSON")
	runCmd.Flags().StringVar(&runJobPath, "job", "", "Path to job requirement model JSON")
	runCmd.Flags().StringVarP(&runOutputPath, "out", "o", "", "Path to write the generated resume JSON (default stdout)")
	runCmd.Flags().StringVar(&runPreviewPath, "preview", "", "Path to also write a plain-text preview")
	runCmd.Flags().IntVar(&runPageCount, "pages", 0, "Page count (1 or 2)")
	runCmd.Flags().IntVar(&runMaxBullets, "max-bullets", 0, "Maximum bullets per experience")
	runCmd.Flags().IntVar(&runMaxProjects, "max-projects", 0, "Maximum projects")
	runCmd.Flags().StringVar(&runSummaryTier, "summary-tier", "", "Summary length tier (short|medium|long)")
	runCmd.Flags().BoolVar(&runSkipSummary, "no-summary", false, "Skip the summary section")
	runCmd.Flags().BoolVar(&runSkipSkills, "no-skills", false, "Skip the skills section")
	runCmd.Flags().BoolVar(&runSkipEdu, "no-education", false, "Skip the education section")
	runCmd.Flags().BoolVar(&runSkipCerts, "no-certifications", false, "Skip the certifications section")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress")

	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergeConfig()
	if err != nil {
		return err
	}
	if cfg.ProfilePath == "" || cfg.JobPath == "" {
		return fmt.Errorf("both --profile and --job are required")
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	profile, job, err := loadInputs(cfg.ProfilePath, cfg.JobPath)
	if err != nil {
		return err
	}

	var rw rewriting.Rewriter = rewriting.HeuristicRewriter{}
	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create rewrite client: %w", err)
		}
		defer func() { _ = client.Close() }()
		rw = rewriting.NewGeminiRewriter(client)
	} else {
		logger.Info("no API key configured, keeping original bullet text")
	}

	result, err := pipeline.Run(ctx, pipeline.Options{
		Profile:     profile,
		Job:         job,
		Layout:      layoutConfig(cfg),
		Rewriter:    rw,
		Logger:      logger,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRelevanceMap(result.Relevance)
		printer.PrintLayoutPlan(&result.Resume.Layout)
		printer.PrintComplianceReport(&result.Resume.Compliance)
		printer.PrintMatchReport(&result.Resume.Match)
	}

	if err := writeJSON(runOutputPath, result.Resume); err != nil {
		return err
	}

	if runPreviewPath != "" {
		preview, err := render.Render(result.Resume, render.DefaultSectionOrder, render.FormatText)
		if err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
		if err := os.WriteFile(runPreviewPath, []byte(preview), 0644); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
	}

	return nil
}

// mergeConfig loads the optional config file and overlays CLI flags on top.
func mergeConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if runConfigPath != "" {
		loaded, err := config.Load(runConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if runProfilePath != "" {
		cfg.ProfilePath = runProfilePath
	}
	if runJobPath != "" {
		cfg.JobPath = runJobPath
	}
	if runPageCount != 0 {
		cfg.PageCount = runPageCount
	}
	if runMaxBullets != 0 {
		cfg.MaxBullets = runMaxBullets
	}
	if runMaxProjects != 0 {
		cfg.MaxProjects = runMaxProjects
	}
	if runSummaryTier != "" {
		cfg.SummaryTier = runSummaryTier
	}
	if runSkipSummary {
		cfg.SkipSummary = true
	}
	if runSkipSkills {
		cfg.SkipSkills = true
	}
	if runSkipEdu {
		cfg.SkipEducation = true
	}
	if runSkipCerts {
		cfg.SkipCerts = true
	}
	if runVerbose {
		cfg.Verbose = true
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func layoutConfig(cfg *config.Config) types.LayoutConfig {
	return types.LayoutConfig{
		PageCount:               cfg.PageCount,
		IncludeSummary:          !cfg.SkipSummary,
		SummaryTier:             types.SummaryTier(cfg.SummaryTier),
		IncludeSkills:           !cfg.SkipSkills,
		IncludeEducation:        !cfg.SkipEducation,
		IncludeCertifications:   !cfg.SkipCerts,
		MaxBulletsPerExperience: cfg.MaxBullets,
		MaxProjects:             cfg.MaxProjects,
	}
}

func loadInputs(profilePath, jobPath string) (*types.ResumeProfile, *types.JobRequirementModel, error) {
	profileData, err := os.ReadFile(profilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read profile: %w", err)
	}
	profile, err := parsing.ParseResumeProfile(profileData)
	if err != nil {
		return nil, nil, err
	}

	jobData, err := os.ReadFile(jobPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read job model: %w", err)
	}
	job, err := parsing.ParseJobRequirementModel(jobData)
	if err != nil {
		return nil, nil, err
	}
	return profile, job, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
