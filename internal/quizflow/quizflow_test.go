package quizflow

import (
	"testing"

	"github.com/abhisek/aether/internal/careerquiz"
)

func answerAll(s State, c careerquiz.Choice) State {
	for s.Phase == Answering {
		s = Reduce(s, Select{Choice: c})
		s = Reduce(s, Next{})
	}
	return s
}

func TestInitial(t *testing.T) {
	s := Initial()
	if s.Phase != Answering || s.Index != 0 {
		t.Fatalf("initial = %+v, want answering at 0", s)
	}
	if !s.Answers.Empty() {
		t.Fatal("initial answers should be empty")
	}
}

func TestReduce_SelectKeepsPosition(t *testing.T) {
	s := Reduce(Initial(), Select{Choice: careerquiz.OptionB})
	if s.Index != 0 || s.Phase != Answering {
		t.Fatalf("select moved the state: %+v", s)
	}
	if s.CurrentChoice() != careerquiz.OptionB {
		t.Fatalf("choice = %s, want B", s.CurrentChoice())
	}

	s = Reduce(s, Select{Choice: careerquiz.OptionD})
	if s.CurrentChoice() != careerquiz.OptionD {
		t.Fatalf("reselect = %s, want D", s.CurrentChoice())
	}
}

func TestReduce_NextRequiresAnswer(t *testing.T) {
	s := Reduce(Initial(), Next{})
	if s.Index != 0 {
		t.Fatalf("next without answer advanced to %d", s.Index)
	}

	s = Reduce(s, Select{Choice: careerquiz.OptionA})
	s = Reduce(s, Next{})
	if s.Index != 1 {
		t.Fatalf("index = %d, want 1", s.Index)
	}
}

func TestReduce_NextAtLastShowsResults(t *testing.T) {
	s := answerAll(Initial(), careerquiz.OptionA)
	if s.Phase != ShowingResults {
		t.Fatalf("phase = %s, want results", s.Phase)
	}
	if s.Index != careerquiz.NumQuestions-1 {
		t.Fatalf("index = %d, want last", s.Index)
	}
	if s.Answers.Answered() != careerquiz.NumQuestions {
		t.Fatalf("answered = %d", s.Answers.Answered())
	}

	again := Reduce(s, Next{})
	if again != s {
		t.Fatal("next in results should be a no-op")
	}
	if Reduce(s, Select{Choice: careerquiz.OptionB}) != s {
		t.Fatal("select in results should be a no-op")
	}
	if Reduce(s, Previous{}) != s {
		t.Fatal("previous in results should be a no-op")
	}
}

func TestReduce_PreviousBlockedAtStart(t *testing.T) {
	s := Reduce(Initial(), Previous{})
	if s.Index != 0 {
		t.Fatalf("index = %d, want 0", s.Index)
	}

	s = Reduce(Reduce(s, Select{Choice: careerquiz.OptionC}), Next{})
	s = Reduce(s, Previous{})
	if s.Index != 0 {
		t.Fatalf("index = %d, want 0", s.Index)
	}
	if s.CurrentChoice() != careerquiz.OptionC {
		t.Fatal("previous lost the recorded answer")
	}
}

func TestReduce_Retake(t *testing.T) {
	s := answerAll(Initial(), careerquiz.OptionB)
	s = Reduce(s, Retake{})
	if s != Initial() {
		t.Fatalf("retake = %+v, want initial", s)
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := Initial()
	_ = Reduce(before, Select{Choice: careerquiz.OptionA})
	if !before.Answers.Empty() {
		t.Fatal("Reduce mutated its input")
	}
}

func TestState_Progress(t *testing.T) {
	s := Initial()
	n, frac := s.Progress()
	if n != 1 || frac != 0.1 {
		t.Fatalf("progress = %d, %v", n, frac)
	}
	if s.CanGoBack() || s.CanAdvance() || s.IsLast() {
		t.Fatal("unexpected capabilities at start")
	}
	if s.Current().Index != 0 {
		t.Fatal("current question should be 0")
	}
}

func TestState_Result(t *testing.T) {
	s := answerAll(Initial(), careerquiz.OptionA)
	got := s.Result(nil)
	if got.CareerPath != careerquiz.DataAIStrategy {
		t.Fatalf("career path = %q", got.CareerPath)
	}

	legacy := careerquiz.NewEngine(careerquiz.Config{TieBreak: careerquiz.LastWins, Normalization: careerquiz.AbsorbIntoFirst})
	if s.Result(legacy).DevelopmentAreas[0] != "Contextual Adaptability" {
		t.Fatalf("legacy engine not used: %v", s.Result(legacy).DevelopmentAreas)
	}
}
