package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

var retryBriefJSON = json.RawMessage(`{"headline":"Lead the data org"}`)

func okBrief() MockResponse { return MockResponse{Content: retryBriefJSON} }

func fail(err error) MockResponse { return MockResponse{Err: err} }

func unavailable() MockResponse {
	return fail(&ErrProviderUnavailable{Err: errors.New("503")})
}

func invalid() MockResponse {
	return fail(&ErrInvalidResponse{Content: json.RawMessage(`{"headline":`), Err: errors.New("truncated")})
}

func TestRetry_Script(t *testing.T) {
	tests := []struct {
		name      string
		attempts  int
		script    []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{"first try", 3, []MockResponse{okBrief()}, 1, false},
		{"outage then success", 3, []MockResponse{unavailable(), okBrief()}, 2, false},
		{"outage exhausts attempts", 3, []MockResponse{unavailable(), unavailable(), unavailable(), okBrief()}, 3, true},
		{"rate limit honours retry-after", 3, []MockResponse{
			fail(&ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}),
			okBrief(),
		}, 2, false},
		{"invalid response retried once", 5, []MockResponse{invalid(), invalid(), okBrief()}, 2, true},
		{"invalid then success", 3, []MockResponse{invalid(), okBrief()}, 2, false},
		{"truncated output not retried", 3, []MockResponse{
			fail(&ErrMaxTokensExceeded{Content: retryBriefJSON}),
			okBrief(),
		}, 1, true},
		{"zero attempts still calls once", 0, []MockResponse{unavailable(), okBrief()}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.script...)
			resp, err := WithRetry(mock, fastRetry(tt.attempts)).Generate(WithPurpose(context.Background(), "career-brief"), Request{})

			assert.Equal(t, tt.wantCalls, mock.CallCount())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, string(retryBriefJSON), string(resp.Content))
		})
	}
}

func TestRetry_KeepsMaxTokensType(t *testing.T) {
	mock := NewMockProvider(fail(&ErrMaxTokensExceeded{}))
	_, err := WithRetry(mock, fastRetry(3)).Generate(context.Background(), Request{})

	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTok)
}

func TestRetry_StopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(unavailable(), okBrief())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, fastRetry(3)).Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, mock.CallCount())
}

func TestRetry_BackoffBounded(t *testing.T) {
	r := WithRetry(NewMockProvider(), RetryConfig{
		MaxAttempts: 5,
		InitialWait: 10 * time.Millisecond,
		MaxWait:     40 * time.Millisecond,
		Multiplier:  3,
	})
	transient := errors.New("reset by peer")
	for attempt := range 5 {
		wait := r.backoff(attempt, transient)
		assert.LessOrEqual(t, wait, 48*time.Millisecond, "attempt %d", attempt)
		assert.Positive(t, wait, "attempt %d", attempt)
	}

	rl := &ErrRateLimit{RetryAfter: 2 * time.Second}
	assert.Equal(t, 2*time.Second, r.backoff(0, rl))
}

func TestRetry_ModelID(t *testing.T) {
	assert.Equal(t, "mock", WithRetry(NewMockProvider(), fastRetry(1)).ModelID())
}
