package store

import (
	"context"
	"time"

	"github.com/abhisek/aether/internal/careerquiz"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Attempt is one completed run of the career quiz.
type Attempt struct {
	ID        int
	AttemptID string
	Sequence  int64
	Timestamp time.Time
	Answers   careerquiz.Answers
	Config    careerquiz.Config
	Result    careerquiz.Result
}

// AttemptRepo stores quiz attempts. Lookups that find nothing return
// (nil, nil).
type AttemptRepo interface {
	// Save assigns the sequence, a timestamp when zero and a fresh
	// AttemptID when empty, then stores a.
	Save(ctx context.Context, a *Attempt) error
	Latest(ctx context.Context) (*Attempt, error)
	Get(ctx context.Context, attemptID string) (*Attempt, error)
	// List returns attempts newest first.
	List(ctx context.Context, opts QueryOpts) ([]Attempt, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM call.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageByPurpose aggregates calls for one purpose.
type LLMUsageByPurpose struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs float64
}

// LLMUsageByModel aggregates calls for one model.
type LLMUsageByModel struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
	// QueryLLMEventsFor is QueryLLMEvents restricted to one purpose.
	QueryLLMEventsFor(ctx context.Context, purpose string, opts QueryOpts) ([]LLMRequestEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageByPurpose, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsageByModel, error)
}

// InsightsSnapshot is the quiz result applied to the user's profile.
type InsightsSnapshot struct {
	AttemptID  string            `json:"attempt_id"`
	CareerPath string            `json:"career_path"`
	Result     careerquiz.Result `json:"result"`
	AppliedAt  time.Time         `json:"applied_at"`
}

// CoachingSnapshot is an LLM career brief generated for an attempt.
type CoachingSnapshot struct {
	AttemptID   string    `json:"attempt_id"`
	Headline    string    `json:"headline"`
	Summary     string    `json:"summary"`
	NextSteps   []string  `json:"next_steps"`
	FocusTopics []string  `json:"focus_topics"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generated_at"`
}

// SnapshotData captures the profile state at a point in time.
type SnapshotData struct {
	Version  int               `json:"version"`
	Insights *InsightsSnapshot `json:"insights,omitempty"`
	Coaching *CoachingSnapshot `json:"coaching,omitempty"`
}

// SnapshotVersion is written into every new snapshot.
const SnapshotVersion = 1

// Snapshot represents a point-in-time capture of profile state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages profile snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
