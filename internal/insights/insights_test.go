package insights

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/aether/internal/careerquiz"
	"github.com/abhisek/aether/internal/coach"
	"github.com/abhisek/aether/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	svc := NewService(s.SnapshotRepo())
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, s
}

func savedAttempt(t *testing.T, s *store.Store, choices string) *store.Attempt {
	t.Helper()
	answers, err := careerquiz.ParseChoiceList(choices)
	require.NoError(t, err)
	a := &store.Attempt{
		Answers: answers,
		Config:  careerquiz.DefaultConfig(),
		Result:  careerquiz.Score(answers),
	}
	require.NoError(t, s.AttemptRepo().Save(context.Background(), a))
	return a
}

func TestCurrent_Fresh(t *testing.T) {
	svc, _ := newTestService(t)

	data, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data.Insights)
	assert.Nil(t, data.Coaching)
	assert.Equal(t, store.SnapshotVersion, data.Version)
}

func TestApply(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	a := savedAttempt(t, s, "A,A,A,A,A,A,A,A,A,A")

	applied, err := svc.Apply(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, a.AttemptID, applied.AttemptID)
	assert.Equal(t, string(a.Result.CareerPath), applied.CareerPath)
	assert.Equal(t, 2026, applied.AppliedAt.Year())

	data, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, data.Insights)
	assert.Equal(t, a.Result, data.Insights.Result)
}

func TestApply_NothingToApply(t *testing.T) {
	svc, s := newTestService(t)

	_, err := svc.Apply(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrNothingToApply))

	empty := savedAttempt(t, s, "")
	_, err = svc.Apply(context.Background(), empty)
	assert.ErrorIs(t, err, ErrNothingToApply)
}

func TestSaveBrief_KeptForSameAttempt(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	a := savedAttempt(t, s, "B,B,B,B,B,B,B,B,B,B")

	_, err := svc.Apply(ctx, a)
	require.NoError(t, err)
	require.NoError(t, svc.SaveBrief(ctx, &coach.Brief{
		AttemptID: a.AttemptID,
		Headline:  "Grow people first",
		NextSteps: []string{"Run weekly one-on-ones"},
		Model:     "mock",
	}))

	data, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, data.Insights)
	require.NotNil(t, data.Coaching)
	assert.Equal(t, "Grow people first", data.Coaching.Headline)

	// Re-applying the same attempt keeps its brief.
	_, err = svc.Apply(ctx, a)
	require.NoError(t, err)
	data, err = svc.Current(ctx)
	require.NoError(t, err)
	assert.NotNil(t, data.Coaching)
}

func TestApply_DropsBriefOfOtherAttempt(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	first := savedAttempt(t, s, "A,A,A,A,A,A,A,A,A,A")
	second := savedAttempt(t, s, "C,C,C,C,C,C,C,C,C,C")

	_, err := svc.Apply(ctx, first)
	require.NoError(t, err)
	require.NoError(t, svc.SaveBrief(ctx, &coach.Brief{AttemptID: first.AttemptID, Headline: "old"}))

	_, err = svc.Apply(ctx, second)
	require.NoError(t, err)

	data, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.AttemptID, data.Insights.AttemptID)
	assert.Nil(t, data.Coaching)
}

func TestWrite_Prunes(t *testing.T) {
	svc, s := newTestService(t)
	ctx := context.Background()
	a := savedAttempt(t, s, "D,D,D,D,D,D,D,D,D,D")

	for i := 0; i < KeepSnapshots+5; i++ {
		_, err := svc.Apply(ctx, a)
		require.NoError(t, err)
	}

	var n int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&n))
	assert.Equal(t, KeepSnapshots, n)
}
