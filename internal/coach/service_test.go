package coach

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/aether/internal/careerquiz"
	"github.com/abhisek/aether/internal/llm"
)

func validBriefJSON() json.RawMessage {
	return json.RawMessage(`{
		"headline": "Lead innovation through transformational change",
		"summary": "You inspire people with a clear vision. Learning drives your choices.",
		"next_steps": ["Sponsor one experiment", "Find a mentor in product strategy"],
		"focus_topics": ["Design Thinking", "Innovation Management"]
	}`)
}

func testResult(t *testing.T) careerquiz.Result {
	t.Helper()
	answers, err := careerquiz.ParseChoiceList("A,A,A,A,A,A,A,A,A,A")
	require.NoError(t, err)
	r := careerquiz.Score(answers)
	require.NotEqual(t, careerquiz.PathNone, r.CareerPath)
	return r
}

func waitConsume(t *testing.T, svc *Service) (*Brief, error) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if b, err, ok := svc.Consume(); ok {
			return b, err
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("brief was not produced in time")
	return nil, nil
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBriefJSON()})
	svc := NewService(mock, DefaultConfig(), nil)
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	result := testResult(t)
	brief, err := svc.Generate(t.Context(), Input{AttemptID: "a-1", Result: result})
	require.NoError(t, err)

	assert.Equal(t, "a-1", brief.AttemptID)
	assert.Equal(t, "Lead innovation through transformational change", brief.Headline)
	assert.Len(t, brief.NextSteps, 2)
	assert.Equal(t, []string{"Design Thinking", "Innovation Management"}, brief.FocusTopics)
	assert.Equal(t, "mock", brief.Model)
	assert.Equal(t, 2026, brief.GeneratedAt.Year())

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, BriefSchema, req.Schema)
	assert.Equal(t, DefaultConfig().MaxTokens, req.MaxTokens)
	require.Len(t, req.Messages, 1)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, string(result.CareerPath))
	for _, topic := range result.RecommendedTopics {
		assert.Contains(t, msg, topic)
	}
}

func TestGenerate_EmptyResult(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Generate(t.Context(), Input{Result: careerquiz.Score(careerquiz.Answers{})})
	assert.ErrorIs(t, err, ErrEmptyResult)
	assert.Zero(t, mock.CallCount())
}

func TestGenerate_SchemaViolation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"headline": "x"}`),
	})
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Generate(t.Context(), Input{Result: testResult(t)})
	var invalid *llm.ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid), "got %v", err)
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Generate(t.Context(), Input{Result: testResult(t)})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "brief generation:"))
	var rl *llm.ErrRateLimit
	assert.True(t, errors.As(err, &rl))
}

func TestRequestConsume(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBriefJSON()})
	svc := NewService(mock, DefaultConfig(), nil)

	_, _, ok := svc.Consume()
	assert.False(t, ok, "nothing requested yet")

	svc.Request(t.Context(), Input{AttemptID: "a-2", Result: testResult(t)})
	brief, err := waitConsume(t, svc)
	require.NoError(t, err)
	require.NotNil(t, brief)
	assert.Equal(t, "a-2", brief.AttemptID)

	_, _, ok = svc.Consume()
	assert.False(t, ok, "outcome is cleared after consumption")
}

func TestRequestConsume_Error(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig(), nil)

	svc.Request(t.Context(), Input{Result: testResult(t)})
	brief, err := waitConsume(t, svc)
	assert.Nil(t, brief)
	var unavailable *llm.ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavailable), "got %v", err)
}
