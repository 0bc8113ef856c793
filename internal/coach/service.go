package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/aether/internal/careerquiz"
	"github.com/abhisek/aether/internal/llm"
)

// ErrEmptyResult is returned for a quiz with no answered questions.
var ErrEmptyResult = errors.New("coach: result has no career path")

// Service generates career briefs, synchronously or in the background.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
	now      func() time.Time

	mu      sync.Mutex
	gen     int
	pending *Brief
	err     error
	ready   bool
}

// NewService creates a brief generation service. A nil logger is replaced
// with a no-op one.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, log: log, now: time.Now}
}

type briefOutput struct {
	Headline    string   `json:"headline"`
	Summary     string   `json:"summary"`
	NextSteps   []string `json:"next_steps"`
	FocusTopics []string `json:"focus_topics"`
}

// Generate asks the provider for a brief and blocks until it arrives.
func (s *Service) Generate(ctx context.Context, input Input) (*Brief, error) {
	if input.Result.CareerPath == careerquiz.PathNone {
		return nil, ErrEmptyResult
	}

	ctx = llm.WithPurpose(ctx, Purpose)
	req := llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserMessage(buildUserMessage(input.Result)),
		Schema:      BriefSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("brief generation: %w", err)
	}

	var out briefOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse brief response: %w", err)
	}

	model := resp.Model
	if model == "" {
		model = s.provider.ModelID()
	}
	return &Brief{
		AttemptID:   input.AttemptID,
		Headline:    out.Headline,
		Summary:     out.Summary,
		NextSteps:   nonNil(out.NextSteps),
		FocusTopics: nonNil(out.FocusTopics),
		Model:       model,
		GeneratedAt: s.now().UTC(),
	}, nil
}

// Request starts generation in the background. Only the latest request is
// kept: the outcome of an older one that finishes later is dropped.
func (s *Service) Request(ctx context.Context, input Input) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.pending, s.err, s.ready = nil, nil, false
	s.mu.Unlock()

	go func() {
		brief, err := s.Generate(ctx, input)
		if err != nil {
			s.log.Warn("career brief failed",
				zap.String("attempt_id", input.AttemptID),
				zap.Error(err))
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.pending = brief
		s.err = err
		s.ready = true
	}()
}

// Consume returns the outcome of the last Request once it is done. The
// third value is false while generation is still running. A consumed
// outcome is cleared.
func (s *Service) Consume() (*Brief, error, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, nil, false
	}
	brief, err := s.pending, s.err
	s.pending, s.err, s.ready = nil, nil, false
	return brief, err, true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
