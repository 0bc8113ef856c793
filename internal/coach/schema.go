package coach

import "github.com/abhisek/aether/internal/llm"

// BriefSchema defines the JSON schema for career brief generation.
var BriefSchema = &llm.Schema{
	Name:        "career-brief",
	Description: "A short career coaching brief derived from a leadership assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One line headline naming the recommended direction (5-12 words)",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "3-4 sentence overview of the person's leadership profile",
			},
			"next_steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    5,
				"description": "Concrete actions for the next 90 days",
			},
			"focus_topics": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"maxItems":    5,
				"description": "Topics worth studying, taken from the recommended topics where possible",
			},
		},
		"required":             []any{"headline", "summary", "next_steps", "focus_topics"},
		"additionalProperties": false,
	},
}
