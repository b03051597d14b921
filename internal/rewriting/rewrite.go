package rewriting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-pilot/internal/llm"
	"github.com/jonathan/resume-pilot/internal/types"
)

// maxInFlight bounds the number of concurrent collaborator calls.
const maxInFlight = 8

// Rewriter is the boundary contract with the external rewrite collaborator.
// Implementations must always return a non-empty bullet text; the fan-out in
// RewriteBatch additionally guarantees the fallback-to-original behavior when
// an implementation errors.
type Rewriter interface {
	// RewriteBullet rewrites one bullet toward the job's keyword model.
	RewriteBullet(ctx context.Context, bullet string, job *types.JobRequirementModel) (types.RewrittenBullet, error)
	// Summarize produces a professional summary sized to the tier.
	Summarize(ctx context.Context, profile *types.ResumeProfile, job *types.JobRequirementModel, tier types.SummaryTier) (string, error)
}

// RewriteBatch fans out one rewrite request per bullet and awaits the full
// set. Calls run concurrently; a slow or failing call never blocks or aborts
// its siblings. A failed call degrades to the original bullet text annotated
// by the local heuristics.
func RewriteBatch(ctx context.Context, rw Rewriter, bullets []string, job *types.JobRequirementModel, logger *zap.Logger) []types.RewrittenBullet {
	if logger == nil {
		logger = zap.NewNop()
	}
	results := make([]types.RewrittenBullet, len(bullets))

	g := &errgroup.Group{}
	g.SetLimit(maxInFlight)
	for i, bullet := range bullets {
		i, bullet := i, bullet
		g.Go(func() error {
			rewritten, err := rw.RewriteBullet(ctx, bullet, job)
			if err != nil || strings.TrimSpace(rewritten.Text) == "" {
				if err != nil {
					logger.Warn("bullet rewrite failed, keeping original",
						zap.Int("index", i), zap.Error(err))
				}
				rewritten = annotate(bullet, bullet, job)
			}
			results[i] = rewritten
			return nil
		})
	}
	// Worker funcs always return nil; Wait only synchronizes.
	_ = g.Wait()

	return results
}

// GeminiRewriter talks to the Gemini-backed collaborator through an injected
// client handle.
type GeminiRewriter struct {
	client llm.Client
}

// NewGeminiRewriter wraps an LLM client in the Rewriter contract.
func NewGeminiRewriter(client llm.Client) *GeminiRewriter {
	return &GeminiRewriter{client: client}
}

type bulletResponse struct {
	Text string `json:"text"`
}

// RewriteBullet asks the collaborator for a single rewritten bullet.
func (r *GeminiRewriter) RewriteBullet(ctx context.Context, bullet string, job *types.JobRequirementModel) (types.RewrittenBullet, error) {
	prompt := buildBulletPrompt(bullet, job)

	raw, err := r.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return types.RewrittenBullet{}, &APICallError{Message: "bullet rewrite call failed", Cause: err}
	}

	var resp bulletResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return types.RewrittenBullet{}, &APICallError{Message: "bullet rewrite returned malformed JSON", Cause: err}
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return types.RewrittenBullet{}, &APICallError{Message: "bullet rewrite returned empty text"}
	}

	return annotate(bullet, text, job), nil
}

// Summarize asks the collaborator for a professional summary.
func (r *GeminiRewriter) Summarize(ctx context.Context, profile *types.ResumeProfile, job *types.JobRequirementModel, tier types.SummaryTier) (string, error) {
	prompt := buildSummaryPrompt(profile, job, tier)

	text, err := r.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", &APICallError{Message: "summary call failed", Cause: err}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &APICallError{Message: "summary call returned empty text"}
	}
	return text, nil
}

func buildBulletPrompt(bullet string, job *types.JobRequirementModel) string {
	var sb strings.Builder
	sb.WriteString("Rewrite this resume bullet to better match the target job.\n")
	sb.WriteString("Keep every factual claim; never invent numbers or technologies.\n")
	sb.WriteString("Start with a strong action verb and keep quantified metrics.\n\n")
	fmt.Fprintf(&sb, "Target role: %s %s (%s)\n", job.Seniority, job.RoleType, job.Domain)
	fmt.Fprintf(&sb, "Priority keywords: %s\n", strings.Join(job.PrimaryKeywords, ", "))
	fmt.Fprintf(&sb, "Secondary keywords: %s\n\n", strings.Join(job.SecondaryKeywords, ", "))
	fmt.Fprintf(&sb, "Bullet:\n%s\n\n", bullet)
	sb.WriteString(`Return JSON: {"text": "<rewritten bullet>"}`)
	return sb.String()
}

func buildSummaryPrompt(profile *types.ResumeProfile, job *types.JobRequirementModel, tier types.SummaryTier) string {
	sentences := map[types.SummaryTier]string{
		types.SummaryShort:  "one sentence",
		types.SummaryMedium: "two sentences",
		types.SummaryLong:   "three sentences",
	}
	length, ok := sentences[tier]
	if !ok {
		length = "two sentences"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a %s professional summary for a resume targeting a %s %s role in %s.\n",
		length, job.Seniority, job.RoleType, job.Domain)
	fmt.Fprintf(&sb, "Candidate: %s\n", profile.Contact.Name)
	fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(profile.FlattenedSkills(), ", "))
	sb.WriteString("Do not invent experience. Return the summary text only.")
	return sb.String()
}

// HeuristicRewriter is the deterministic offline implementation of the
// Rewriter contract. It keeps every bullet unchanged and builds the summary
// from a fixed template. It backs tests and no-API-key runs.
type HeuristicRewriter struct{}

// RewriteBullet returns the original bullet annotated by the local heuristics.
func (HeuristicRewriter) RewriteBullet(_ context.Context, bullet string, job *types.JobRequirementModel) (types.RewrittenBullet, error) {
	return annotate(bullet, bullet, job), nil
}

// Summarize builds a templated summary from the profile's top skills.
func (HeuristicRewriter) Summarize(_ context.Context, profile *types.ResumeProfile, job *types.JobRequirementModel, _ types.SummaryTier) (string, error) {
	skills := profile.FlattenedSkills()
	if len(skills) > 3 {
		skills = skills[:3]
	}
	if len(skills) == 0 {
		return fmt.Sprintf("%s %s candidate.", job.Seniority, job.RoleType), nil
	}
	return fmt.Sprintf("%s %s with experience in %s.",
		job.Seniority, job.RoleType, strings.Join(skills, ", ")), nil
}
