package careerquiz

import (
	"fmt"
	"strings"
)

// Choice is the tagged answer recorded for one question.
type Choice int8

const (
	// NoChoice marks an unanswered question.
	NoChoice Choice = iota
	OptionA
	OptionB
	OptionC
	OptionD

	// Unrecognized marks a question answered with text that matches none of
	// its options. It counts as answered but scores nothing.
	Unrecognized Choice = -1
)

// OptionAt returns the Choice for the zero-based option position i, or
// NoChoice when i is out of range.
func OptionAt(i int) Choice {
	if i < 0 || i > 3 {
		return NoChoice
	}
	return Choice(i + 1)
}

// ParseChoice accepts a letter (A-D, any case) or a 1-based digit.
func ParseChoice(s string) (Choice, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	switch s {
	case "":
		return NoChoice, nil
	case "A", "1":
		return OptionA, nil
	case "B", "2":
		return OptionB, nil
	case "C", "3":
		return OptionC, nil
	case "D", "4":
		return OptionD, nil
	}
	return NoChoice, fmt.Errorf("invalid choice %q: want A-D or 1-4", s)
}

// Index returns the zero-based option position for a picked option.
func (c Choice) Index() (int, bool) {
	if c < OptionA || c > OptionD {
		return -1, false
	}
	return int(c) - 1, true
}

// Answered reports whether the slot holds any answer, recognized or not.
func (c Choice) Answered() bool {
	return c != NoChoice
}

func (c Choice) String() string {
	switch c {
	case NoChoice:
		return "-"
	case Unrecognized:
		return "?"
	}
	if i, ok := c.Index(); ok {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("Choice(%d)", int8(c))
}

// Answers holds one Choice per question, indexed by question position.
type Answers [NumQuestions]Choice

// Empty reports whether no question has been answered at all.
func (a Answers) Empty() bool {
	for _, c := range a {
		if c != NoChoice {
			return false
		}
	}
	return true
}

// Answered returns the number of answered slots.
func (a Answers) Answered() int {
	n := 0
	for _, c := range a {
		if c.Answered() {
			n++
		}
	}
	return n
}

// Tag returns the category picked for question i.
func (a Answers) Tag(i int) (Category, bool) {
	if i < 0 || i >= NumQuestions {
		return "", false
	}
	idx, ok := a[i].Index()
	if !ok {
		return "", false
	}
	return questions[i].Options[idx].Tag, true
}

// Picked reports whether the answer for dimension d carries category c.
func (a Answers) Picked(d Dimension, c Category) bool {
	tag, ok := a.Tag(int(d))
	return ok && tag == c
}

// Text returns the literal option text chosen for question i, or "".
func (a Answers) Text(i int) string {
	if i < 0 || i >= NumQuestions {
		return ""
	}
	idx, ok := a[i].Index()
	if !ok {
		return ""
	}
	return questions[i].Options[idx].Text
}

// ParseAnswer classifies free text for question i. Empty text is unanswered.
// Otherwise the first option whose fragment the text contains wins, in
// option order; text matching nothing is Unrecognized.
func ParseAnswer(i int, text string) Choice {
	if i < 0 || i >= NumQuestions || text == "" {
		return NoChoice
	}
	for idx, opt := range questions[i].Options {
		if strings.Contains(text, opt.Fragment) {
			return OptionAt(idx)
		}
	}
	return Unrecognized
}

// ParseAnswers classifies up to NumQuestions answer strings. Missing slots
// are unanswered and extra strings are ignored.
func ParseAnswers(texts []string) Answers {
	var a Answers
	for i := 0; i < NumQuestions && i < len(texts); i++ {
		a[i] = ParseAnswer(i, texts[i])
	}
	return a
}

// String encodes the answers as one character per question, using the
// Choice letters: "AB-?..." with "-" for unanswered and "?" for
// unrecognized. DecodeAnswers reverses it.
func (a Answers) String() string {
	var b strings.Builder
	b.Grow(NumQuestions)
	for _, c := range a {
		b.WriteString(c.String())
	}
	return b.String()
}

// DecodeAnswers parses the encoding produced by Answers.String.
func DecodeAnswers(s string) (Answers, error) {
	var a Answers
	if len(s) != NumQuestions {
		return a, fmt.Errorf("decode answers %q: want %d characters, got %d", s, NumQuestions, len(s))
	}
	for i := 0; i < NumQuestions; i++ {
		switch ch := s[i : i+1]; ch {
		case "-":
			a[i] = NoChoice
		case "?":
			a[i] = Unrecognized
		default:
			c, err := ParseChoice(ch)
			if err != nil {
				return a, fmt.Errorf("decode answers: question %d: %w", i+1, err)
			}
			a[i] = c
		}
	}
	return a, nil
}

// ParseChoiceList parses a comma separated list of choices such as
// "A,B,,D". Empty entries are unanswered; at most NumQuestions are read.
func ParseChoiceList(s string) (Answers, error) {
	var a Answers
	if strings.TrimSpace(s) == "" {
		return a, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) > NumQuestions {
		return a, fmt.Errorf("got %d choices, want at most %d", len(parts), NumQuestions)
	}
	for i, p := range parts {
		c, err := ParseChoice(p)
		if err != nil {
			return a, fmt.Errorf("question %d: %w", i+1, err)
		}
		a[i] = c
	}
	return a, nil
}
