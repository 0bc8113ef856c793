// Package insights applies quiz results to the user's profile. The profile
// is the latest store snapshot; every change writes a new one.
package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/aether/internal/careerquiz"
	"github.com/abhisek/aether/internal/coach"
	"github.com/abhisek/aether/internal/store"
)

// KeepSnapshots is how many profile snapshots survive a write.
const KeepSnapshots = 20

// ErrNothingToApply is returned for an attempt without a career path.
var ErrNothingToApply = errors.New("insights: attempt has no answered questions")

// Service reads and writes the insights part of the profile.
type Service struct {
	snaps store.SnapshotRepo
	now   func() time.Time
}

func NewService(snaps store.SnapshotRepo) *Service {
	return &Service{snaps: snaps, now: time.Now}
}

// Current returns the latest profile data. A fresh profile has neither
// insights nor coaching.
func (s *Service) Current(ctx context.Context) (store.SnapshotData, error) {
	snap, err := s.snaps.Latest(ctx)
	if err != nil {
		return store.SnapshotData{}, fmt.Errorf("load profile: %w", err)
	}
	if snap == nil {
		return store.SnapshotData{Version: store.SnapshotVersion}, nil
	}
	return snap.Data, nil
}

// Apply makes the attempt's result the profile's insights. A coaching brief
// for a different attempt no longer applies and is dropped.
func (s *Service) Apply(ctx context.Context, a *store.Attempt) (*store.InsightsSnapshot, error) {
	if a == nil || a.Result.CareerPath == careerquiz.PathNone {
		return nil, ErrNothingToApply
	}

	data, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	applied := &store.InsightsSnapshot{
		AttemptID:  a.AttemptID,
		CareerPath: string(a.Result.CareerPath),
		Result:     a.Result,
		AppliedAt:  s.now().UTC(),
	}
	data.Insights = applied
	if data.Coaching != nil && data.Coaching.AttemptID != a.AttemptID {
		data.Coaching = nil
	}

	if err := s.write(ctx, data); err != nil {
		return nil, err
	}
	return applied, nil
}

// SaveBrief stores a coaching brief next to the insights.
func (s *Service) SaveBrief(ctx context.Context, b *coach.Brief) error {
	if b == nil {
		return nil
	}
	data, err := s.Current(ctx)
	if err != nil {
		return err
	}
	data.Coaching = &store.CoachingSnapshot{
		AttemptID:   b.AttemptID,
		Headline:    b.Headline,
		Summary:     b.Summary,
		NextSteps:   b.NextSteps,
		FocusTopics: b.FocusTopics,
		Model:       b.Model,
		GeneratedAt: b.GeneratedAt,
	}
	return s.write(ctx, data)
}

func (s *Service) write(ctx context.Context, data store.SnapshotData) error {
	data.Version = store.SnapshotVersion
	if err := s.snaps.Save(ctx, &store.Snapshot{Data: data}); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if err := s.snaps.Prune(ctx, KeepSnapshots); err != nil {
		return fmt.Errorf("prune profile snapshots: %w", err)
	}
	return nil
}
