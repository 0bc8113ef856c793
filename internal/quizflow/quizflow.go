// Package quizflow models the career quiz session as an immutable State
// threaded through Reduce.
package quizflow

import "github.com/abhisek/aether/internal/careerquiz"

// Phase is the coarse state of a quiz session.
type Phase int

const (
	Answering Phase = iota
	ShowingResults
)

func (p Phase) String() string {
	switch p {
	case Answering:
		return "answering"
	case ShowingResults:
		return "results"
	default:
		return "unknown"
	}
}

// State is a snapshot of the quiz session. It is a plain value; Reduce
// returns a new State and never mutates its input.
type State struct {
	Phase   Phase
	Index   int
	Answers careerquiz.Answers
}

// Initial returns the state of a fresh quiz: answering question 0.
func Initial() State {
	return State{Phase: Answering}
}

// Action is a user intent applied by Reduce.
type Action interface {
	isAction()
}

// Select records a choice for the current question.
type Select struct {
	Choice careerquiz.Choice
}

// Next advances to the following question, or to the results after the last.
type Next struct{}

// Previous returns to the preceding question.
type Previous struct{}

// Retake clears every answer and restarts at question 0.
type Retake struct{}

func (Select) isAction()   {}
func (Next) isAction()     {}
func (Previous) isAction() {}
func (Retake) isAction()   {}

// Reduce applies a to s. Actions that do not apply in the current phase
// return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Select:
		if s.Phase != Answering {
			return s
		}
		s.Answers[s.Index] = a.Choice
		return s

	case Next:
		if !s.CanAdvance() {
			return s
		}
		if s.Index == careerquiz.NumQuestions-1 {
			s.Phase = ShowingResults
			return s
		}
		s.Index++
		return s

	case Previous:
		if s.Phase != Answering || s.Index == 0 {
			return s
		}
		s.Index--
		return s

	case Retake:
		return Initial()
	}
	return s
}

// CanAdvance reports whether Next would change the state. The current
// question must be answered first.
func (s State) CanAdvance() bool {
	return s.Phase == Answering && s.Answers[s.Index].Answered()
}

// CanGoBack reports whether Previous would change the state.
func (s State) CanGoBack() bool {
	return s.Phase == Answering && s.Index > 0
}

// IsLast reports whether the current question is the final one.
func (s State) IsLast() bool {
	return s.Index == careerquiz.NumQuestions-1
}

// Current returns the question being answered.
func (s State) Current() careerquiz.Question {
	q, _ := careerquiz.QuestionAt(s.Index)
	return q
}

// CurrentChoice returns the answer recorded for the current question.
func (s State) CurrentChoice() careerquiz.Choice {
	return s.Answers[s.Index]
}

// Progress returns the 1-based question number and the completed fraction.
func (s State) Progress() (int, float64) {
	n := s.Index + 1
	return n, float64(n) / float64(careerquiz.NumQuestions)
}

// Result scores the recorded answers with e (the default engine when nil).
func (s State) Result(e *careerquiz.Engine) careerquiz.Result {
	if e == nil {
		return careerquiz.Score(s.Answers)
	}
	return e.Score(s.Answers)
}
