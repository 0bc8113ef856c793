package quiz

import (
	"time"

	"github.com/abhisek/aether/internal/coach"
	"github.com/abhisek/aether/internal/store"
)

// attemptSavedMsg is sent once a finished quiz has been persisted.
type attemptSavedMsg struct {
	Attempt *store.Attempt
	Err     error
}

// insightsAppliedMsg reports the outcome of applying insights.
type insightsAppliedMsg struct {
	Applied *store.InsightsSnapshot
	Err     error
}

// coachPollMsg asks the results screen to check the coach service.
type coachPollMsg time.Time

// briefSavedMsg reports the outcome of storing a brief in the profile.
type briefSavedMsg struct {
	Brief *coach.Brief
	Err   error
}
