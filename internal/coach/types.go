package coach

import (
	"time"

	"github.com/abhisek/aether/internal/careerquiz"
)

// Purpose tags every LLM call made by this package.
const Purpose = "career-brief"

// Input is what a brief is generated from.
type Input struct {
	AttemptID string
	Result    careerquiz.Result
}

// Brief is a short coaching narrative layered on top of a scored quiz.
type Brief struct {
	AttemptID   string
	Headline    string
	Summary     string
	NextSteps   []string
	FocusTopics []string
	Model       string
	GeneratedAt time.Time
}
