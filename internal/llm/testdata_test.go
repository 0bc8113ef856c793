package llm

const briefJSON = `{"headline":"Lead the data strategy","summary":"You favour evidence.","next_steps":["Ship a metrics review"],"focus_topics":["AI Ethics"]}`

func briefSchema() *Schema {
	return &Schema{
		Name:        "test-brief",
		Description: "A career brief",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"headline":     map[string]any{"type": "string"},
				"summary":      map[string]any{"type": "string"},
				"next_steps":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"focus_topics": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required": []string{"headline", "summary", "next_steps", "focus_topics"},
		},
	}
}
