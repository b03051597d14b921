// Package llm provides the dependency-injected client abstraction for the
// external text-generation collaborator.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: short summaries, single-sentence output
	TierLite ModelTier = "lite"
	// TierStandard is for moderate tasks: bullet rewriting with structured output
	TierStandard ModelTier = "standard"
	// TierAdvanced is for nuanced work: voice matching, long-form summaries
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model configuration for the rewrite collaborator
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier, falling back to standard
// and then lite when the tier has no explicit mapping
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
