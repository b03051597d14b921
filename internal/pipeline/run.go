// Package pipeline orchestrates the full tailoring sequence: scoring, layout
// allocation, bullet rewriting, compliance checking, and match reporting.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-pilot/internal/compliance"
	"github.com/jonathan/resume-pilot/internal/db"
	"github.com/jonathan/resume-pilot/internal/layout"
	"github.com/jonathan/resume-pilot/internal/match"
	"github.com/jonathan/resume-pilot/internal/rewriting"
	"github.com/jonathan/resume-pilot/internal/scoring"
	"github.com/jonathan/resume-pilot/internal/types"
)

// Progress step names.
const (
	StepScoring    = "scoring"
	StepLayout     = "layout"
	StepRewriting  = "rewriting"
	StepCompliance = "compliance"
	StepMatch      = "match"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called as pipeline steps complete
type ProgressCallback func(event ProgressEvent)

// Options holds everything a pipeline run needs. The rewrite collaborator is
// injected; when nil, the deterministic heuristic implementation is used.
type Options struct {
	Profile     *types.ResumeProfile
	Job         *types.JobRequirementModel
	Layout      types.LayoutConfig
	Rewriter    rewriting.Rewriter
	Logger      *zap.Logger
	DatabaseURL string
	OnProgress  ProgressCallback
}

// Result bundles the run outputs.
type Result struct {
	Resume    *types.GeneratedResume
	Relevance *types.RelevanceMap
	RunID     uuid.UUID
}

// Run executes the tailoring pipeline. The four core computations are pure
// and synchronous; the only concurrency is the rewrite fan-out, and the only
// fallible external edges are the rewrite collaborator (which degrades to the
// original text) and the optional database (which degrades to no persistence).
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Profile == nil || opts.Job == nil {
		return nil, fmt.Errorf("pipeline requires both a profile and a job model")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rw := opts.Rewriter
	if rw == nil {
		rw = rewriting.HeuristicRewriter{}
	}

	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			logger.Warn("database unavailable, continuing without persistence", zap.Error(err))
		} else {
			defer database.Close()
			if err := database.Migrate(ctx); err != nil {
				logger.Warn("database migration failed, continuing without persistence", zap.Error(err))
				database = nil
			}
		}
		if database != nil {
			runID, err = database.CreateRun(ctx, string(opts.Job.RoleType), string(opts.Job.Seniority))
			if err != nil {
				logger.Warn("failed to create run record", zap.Error(err))
				database = nil
			}
		}
	}

	rel := scoring.BuildRelevanceMap(opts.Profile, opts.Job)
	logger.Info("scored profile",
		zap.Int("overall_match", rel.OverallMatch),
		zap.Int("experiences", len(rel.Experiences)),
		zap.Int("projects", len(rel.Projects)))
	emit(opts.OnProgress, StepScoring, fmt.Sprintf("Scored %d experiences and %d projects", len(rel.Experiences), len(rel.Projects)), rel)
	saveArtifact(ctx, database, runID, db.StepRelevanceMap, rel, logger)

	plan := layout.Allocate(opts.Profile, opts.Layout, rel)
	logger.Info("allocated layout",
		zap.Int("total_lines", plan.TotalLines),
		zap.Int("line_budget", plan.LineBudget),
		zap.String("compression", string(plan.CompressionLevel)))
	emit(opts.OnProgress, StepLayout, fmt.Sprintf("Allocated %d of %d lines", plan.TotalLines, plan.LineBudget), plan)
	saveArtifact(ctx, database, runID, db.StepLayoutPlan, plan, logger)

	selectedExperiences, selectedProjects := rewriteIncluded(ctx, rw, opts.Profile, opts.Job, plan, rel, logger)
	emit(opts.OnProgress, StepRewriting, fmt.Sprintf("Rewrote bullets for %d experiences and %d projects", len(selectedExperiences), len(selectedProjects)), nil)

	summary := ""
	if opts.Layout.IncludeSummary {
		var err error
		summary, err = rw.Summarize(ctx, opts.Profile, opts.Job, opts.Layout.SummaryTier)
		if err != nil {
			logger.Warn("summary generation failed, using heuristic fallback", zap.Error(err))
			summary, _ = rewriting.HeuristicRewriter{}.Summarize(ctx, opts.Profile, opts.Job, opts.Layout.SummaryTier)
		}
	}

	resume := &types.GeneratedResume{
		Contact:     opts.Profile.Contact,
		Summary:     summary,
		Experiences: selectedExperiences,
		Projects:    selectedProjects,
		Layout:      *plan,
	}
	if plan.Section(types.SectionEducation) != nil {
		resume.Education = opts.Profile.Education
	}
	if plan.Section(types.SectionSkills) != nil {
		resume.SkillCategories = opts.Profile.SkillCategories
	}
	if plan.Section(types.SectionCertifications) != nil {
		resume.Certifications = opts.Profile.Certifications
	}

	report := compliance.Check(resume)
	resume.Compliance = *report
	logger.Info("checked compliance",
		zap.Bool("passed", report.Passed),
		zap.Int("score", report.Score),
		zap.Int("violations", len(report.Violations)),
		zap.Int("warnings", len(report.Warnings)))
	emit(opts.OnProgress, StepCompliance, fmt.Sprintf("Compliance score %d", report.Score), report)
	saveArtifact(ctx, database, runID, db.StepComplianceReport, report, logger)

	matchReport := match.BuildReport(resume, opts.Job, rel)
	resume.Match = *matchReport
	logger.Info("built match report",
		zap.Int("coverage", matchReport.CoverageScore),
		zap.Int("missing_skills", len(matchReport.MissingSkills)))
	emit(opts.OnProgress, StepMatch, fmt.Sprintf("Keyword coverage %d%%", matchReport.CoverageScore), matchReport)
	saveArtifact(ctx, database, runID, db.StepMatchReport, matchReport, logger)

	saveArtifact(ctx, database, runID, db.StepGeneratedResume, resume, logger)
	if database != nil {
		if err := database.CompleteRun(ctx, runID, db.StatusCompleted, rel.OverallMatch, report.Score); err != nil {
			logger.Warn("failed to complete run record", zap.Error(err))
		}
	}

	return &Result{Resume: resume, Relevance: rel, RunID: runID}, nil
}

// rewriteIncluded materializes the plan's chosen entries, fans out one
// rewrite request per included bullet, and reassembles the results in entry
// order. Failed rewrites keep the original bullet text.
func rewriteIncluded(
	ctx context.Context,
	rw rewriting.Rewriter,
	profile *types.ResumeProfile,
	job *types.JobRequirementModel,
	plan *types.LayoutPlan,
	rel *types.RelevanceMap,
	logger *zap.Logger,
) ([]types.SelectedExperience, []types.SelectedProject) {
	experienceByID := make(map[string]*types.Experience, len(profile.Experiences))
	for i := range profile.Experiences {
		experienceByID[profile.Experiences[i].ID] = &profile.Experiences[i]
	}
	projectByID := make(map[string]*types.Project, len(profile.Projects))
	for i := range profile.Projects {
		projectByID[profile.Projects[i].ID] = &profile.Projects[i]
	}

	// Flatten all included bullets into one batch so every rewrite request
	// runs concurrently with its siblings.
	type bulletRef struct {
		entryID string
		project bool
	}
	bullets := make([]string, 0)
	refs := make([]bulletRef, 0)

	var experienceItems, projectItems []types.LayoutItem
	if section := plan.Section(types.SectionExperience); section != nil {
		experienceItems = section.Items
	}
	if section := plan.Section(types.SectionProjects); section != nil {
		projectItems = section.Items
	}

	for _, item := range experienceItems {
		exp := experienceByID[item.EntryID]
		if exp == nil {
			continue
		}
		for i := 0; i < item.BulletCount && i < len(exp.Bullets); i++ {
			bullets = append(bullets, exp.Bullets[i])
			refs = append(refs, bulletRef{entryID: item.EntryID})
		}
	}
	for _, item := range projectItems {
		proj := projectByID[item.EntryID]
		if proj == nil {
			continue
		}
		for i := 0; i < item.BulletCount && i < len(proj.Bullets); i++ {
			bullets = append(bullets, proj.Bullets[i])
			refs = append(refs, bulletRef{entryID: item.EntryID, project: true})
		}
	}

	rewritten := rewriting.RewriteBatch(ctx, rw, bullets, job, logger)

	byEntry := make(map[string][]types.RewrittenBullet)
	for i, ref := range refs {
		byEntry[ref.entryID] = append(byEntry[ref.entryID], rewritten[i])
	}

	experiences := make([]types.SelectedExperience, 0, len(experienceItems))
	for _, item := range experienceItems {
		exp := experienceByID[item.EntryID]
		if exp == nil {
			continue
		}
		experiences = append(experiences, types.SelectedExperience{
			Experience: *exp,
			Bullets:    byEntry[item.EntryID],
			Relevance:  rel.ExperienceScore(item.EntryID),
		})
	}
	projects := make([]types.SelectedProject, 0, len(projectItems))
	for _, item := range projectItems {
		proj := projectByID[item.EntryID]
		if proj == nil {
			continue
		}
		projects = append(projects, types.SelectedProject{
			Project:   *proj,
			Bullets:   byEntry[item.EntryID],
			Relevance: rel.ProjectScore(item.EntryID),
		})
	}
	return experiences, projects
}

func emit(cb ProgressCallback, step, message string, content any) {
	if cb != nil {
		cb(ProgressEvent{Step: step, Message: message, Content: content})
	}
}

func saveArtifact(ctx context.Context, database *db.DB, runID uuid.UUID, step string, content any, logger *zap.Logger) {
	if database == nil || runID == uuid.Nil {
		return
	}
	if err := database.SaveArtifact(ctx, runID, step, content); err != nil {
		logger.Warn("failed to save artifact", zap.String("step", step), zap.Error(err))
	}
}
