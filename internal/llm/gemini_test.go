package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(briefSchema().Definition)

	if s.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(s.Properties))
	}
	if s.Properties["headline"].Type != "STRING" {
		t.Fatalf("expected STRING for headline, got %s", s.Properties["headline"].Type)
	}
	steps := s.Properties["next_steps"]
	if steps.Type != "ARRAY" || steps.Items == nil || steps.Items.Type != "STRING" {
		t.Fatalf("next_steps = %+v", steps)
	}
	if len(s.Required) != 4 {
		t.Fatalf("expected 4 required fields from []string, got %d", len(s.Required))
	}
}

func TestGeminiSchema_DecodedJSON(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"level": map[string]any{"type": "string", "enum": []any{"low", "high"}},
			"other": map[string]any{"type": "null"},
		},
		"required": []any{"level"},
	})
	if len(s.Properties["level"].Enum) != 2 {
		t.Fatalf("enum = %v", s.Properties["level"].Enum)
	}
	if s.Properties["other"].Type != "STRING" {
		t.Fatalf("unknown types should fall back to STRING, got %s", s.Properties["other"].Type)
	}
	if len(s.Required) != 1 {
		t.Fatalf("required = %v", s.Required)
	}
}
