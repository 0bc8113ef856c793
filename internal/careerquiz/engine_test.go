package careerquiz

import (
	"encoding/json"
	"slices"
	"testing"
)

// answersOf builds an Answers value from question index to option letter.
func answersOf(picks map[int]Choice) Answers {
	var a Answers
	for i, c := range picks {
		a[i] = c
	}
	return a
}

func allFirst() Answers {
	var a Answers
	for i := range a {
		a[i] = OptionA
	}
	return a
}

func TestScore_EmptyAnswers(t *testing.T) {
	r := Score(Answers{})

	if r.CareerPath != PathNone {
		t.Errorf("career path = %q, want empty", r.CareerPath)
	}
	if r.LeadershipStyle != (LeadershipMix{}) {
		t.Errorf("leadership = %+v, want all zero", r.LeadershipStyle)
	}
	if r.CareerPriorities != (PriorityCounts{}) {
		t.Errorf("priorities = %+v, want all zero", r.CareerPriorities)
	}
	if r.RecommendedTopics == nil || len(r.RecommendedTopics) != 0 {
		t.Errorf("topics = %#v, want empty non-nil", r.RecommendedTopics)
	}
	if r.DevelopmentAreas == nil || len(r.DevelopmentAreas) != 0 {
		t.Errorf("development areas = %#v, want empty non-nil", r.DevelopmentAreas)
	}
	if r.Strengths == nil || len(r.Strengths) != 0 {
		t.Errorf("strengths = %#v, want empty non-nil", r.Strengths)
	}

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"leadershipStyle":{"transformational":0,"servant":0,"situational":0,"directive":0},` +
		`"careerPriorities":{"intellectual":0,"cultural":0,"financial":0,"authority":0},` +
		`"careerPath":"","recommendedTopics":[],"developmentAreas":[],"strengths":[]}`
	if string(b) != want {
		t.Errorf("json =\n%s\nwant\n%s", b, want)
	}
}

func TestScore_AnsweredButUnmatched(t *testing.T) {
	var a Answers
	for i := range a {
		a[i] = Unrecognized
	}
	r := Score(a)

	if r.CareerPath != StrategicLeadership {
		t.Errorf("career path = %q, want %q", r.CareerPath, StrategicLeadership)
	}
	if want := (LeadershipMix{Transformational: 100}); r.LeadershipStyle != want {
		t.Errorf("leadership = %+v, want %+v", r.LeadershipStyle, want)
	}
	wantTopics := []string{
		"Disruptive Innovation Strategies",
		"Leading Through Organizational Transformation",
		"AI Ethics and Governance",
		"Machine Learning Implementation Strategy",
		"Continuous Learning Ecosystems",
		"Knowledge Management Strategy",
	}
	if !slices.Equal(r.RecommendedTopics, wantTopics) {
		t.Errorf("topics = %v, want %v", r.RecommendedTopics, wantTopics)
	}
	// "Agile Methodologies" also qualifies but is dropped by the cap of four.
	wantAreas := []string{
		"Innovation Mindset",
		"Continuous Learning",
		"Critical Problem Analysis",
		"Thought Leadership",
	}
	if !slices.Equal(r.DevelopmentAreas, wantAreas) {
		t.Errorf("development areas = %v, want %v", r.DevelopmentAreas, wantAreas)
	}
	if len(r.Strengths) != 0 {
		t.Errorf("strengths = %v, want none", r.Strengths)
	}
}

func TestScore_AllFirstOptions(t *testing.T) {
	r := Score(allFirst())

	if r.CareerPath != DataAIStrategy {
		t.Errorf("career path = %q, want %q", r.CareerPath, DataAIStrategy)
	}
	if want := (LeadershipMix{Transformational: 80, Directive: 20}); r.LeadershipStyle != want {
		t.Errorf("leadership = %+v, want %+v", r.LeadershipStyle, want)
	}
	if want := (PriorityCounts{Intellectual: 3, Financial: 1}); r.CareerPriorities != want {
		t.Errorf("priorities = %+v, want %+v", r.CareerPriorities, want)
	}
	wantTopics := []string{
		"Disruptive Innovation Strategies",
		"Leading Through Organizational Transformation",
		"AI Ethics and Governance",
		"Machine Learning Implementation Strategy",
		"Continuous Learning Ecosystems",
		"Knowledge Management Strategy",
	}
	if !slices.Equal(r.RecommendedTopics, wantTopics) {
		t.Errorf("topics = %v, want %v", r.RecommendedTopics, wantTopics)
	}
	wantAreas := []string{"Empathetic Leadership", "Organizational Awareness", "Thought Leadership", "Agile Methodologies"}
	if !slices.Equal(r.DevelopmentAreas, wantAreas) {
		t.Errorf("development areas = %v, want %v", r.DevelopmentAreas, wantAreas)
	}
	wantStrengths := []string{"Change Leadership", "Process Optimization", "Innovation Catalyst", "Business Acumen"}
	if !slices.Equal(r.Strengths, wantStrengths) {
		t.Errorf("strengths = %v, want %v", r.Strengths, wantStrengths)
	}
}

func TestScore_AllFirstOptionsWithInnovationMetric(t *testing.T) {
	a := allFirst()
	a[5] = OptionC // "Innovation implementation and market differentiation"

	if got := Score(a).CareerPath; got != InnovationLeadership {
		t.Errorf("career path = %q, want %q", got, InnovationLeadership)
	}
}

func TestScore_CareerPaths(t *testing.T) {
	tests := []struct {
		name  string
		picks map[int]Choice
		want  CareerPath
	}{
		{"innovation", map[int]Choice{0: OptionA, 5: OptionC}, InnovationLeadership},
		{"people and culture", map[int]Choice{0: OptionB, 5: OptionB}, PeopleCultureLeadership},
		{"operational excellence", map[int]Choice{0: OptionD, 5: OptionA}, OperationalExcellence},
		{"strategic finance", map[int]Choice{7: OptionA, 1: OptionC}, StrategicFinance},
		{"data via ai", map[int]Choice{6: OptionA}, DataAIStrategy},
		{"data via analytics", map[int]Choice{6: OptionB}, DataAIStrategy},
		{"change and communications", map[int]Choice{4: OptionC, 8: OptionB}, ChangeCommsLeadership},
		{"agile", map[int]Choice{2: OptionC, 9: OptionC}, AgileTransformation},
		{"fallback", map[int]Choice{0: OptionC}, StrategicLeadership},
		// Innovation beats data when both match.
		{"rule order", map[int]Choice{0: OptionA, 5: OptionC, 6: OptionA}, InnovationLeadership},
		// Reinforcement alone never crosses the threshold.
		{"bonus below threshold", map[int]Choice{4: OptionA, 5: OptionC}, StrategicLeadership},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(answersOf(tt.picks)).CareerPath
			if got != tt.want {
				t.Errorf("career path = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnalyze_Reinforcements(t *testing.T) {
	tests := []struct {
		name  string
		picks map[int]Choice
		dim   Dimension
		cat   Category
		want  int
	}{
		{"catalyst adds transformational", map[int]Choice{4: OptionA}, LeadershipStyle, Transformational, 1},
		{"team development adds servant", map[int]Choice{5: OptionB}, LeadershipStyle, Servant, 1},
		{"agile adds situational", map[int]Choice{2: OptionC}, LeadershipStyle, Situational, 1},
		{"roi adds directive", map[int]Choice{7: OptionA}, LeadershipStyle, Directive, 1},
		{"self-directed adds intellectual", map[int]Choice{3: OptionB}, CareerPriorities, Intellectual, 1},
		{"internal networking adds cultural", map[int]Choice{8: OptionC}, CareerPriorities, Cultural, 1},
		{"business metrics add financial", map[int]Choice{5: OptionA}, CareerPriorities, Financial, 1},
		{"directive adds authority", map[int]Choice{0: OptionD}, CareerPriorities, Authority, 1},
		{"primary plus bonus", map[int]Choice{0: OptionA, 4: OptionA}, LeadershipStyle, Transformational, 4},
		{"no bonus for other options", map[int]Choice{4: OptionB}, LeadershipStyle, Transformational, 0},
	}

	e := NewEngine(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := e.Analyze(answersOf(tt.picks)).Counters
			if got := c.Get(tt.dim, tt.cat); got != tt.want {
				t.Errorf("%s.%s = %d, want %d", tt.dim.Key(), tt.cat, got, tt.want)
			}
		})
	}
}

func TestAnalyze_TieBreak(t *testing.T) {
	// Catalyst and team development give transformational and servant one
	// point each.
	a := answersOf(map[int]Choice{4: OptionA, 5: OptionB})

	first := NewEngine(Config{TieBreak: FirstWins, Normalization: AbsorbIntoFirst}).Analyze(a)
	if first.DominantLeadership != Transformational {
		t.Errorf("first-wins dominant = %q, want %q", first.DominantLeadership, Transformational)
	}
	if first.WeakestLeadership != Situational {
		t.Errorf("first-wins weakest = %q, want %q", first.WeakestLeadership, Situational)
	}
	if first.DominantTech != AI {
		t.Errorf("first-wins tech = %q, want %q", first.DominantTech, AI)
	}

	last := NewEngine(Config{TieBreak: LastWins, Normalization: AbsorbIntoFirst}).Analyze(a)
	if last.DominantLeadership != Servant {
		t.Errorf("last-wins dominant = %q, want %q", last.DominantLeadership, Servant)
	}
	if last.WeakestLeadership != Directive {
		t.Errorf("last-wins weakest = %q, want %q", last.WeakestLeadership, Directive)
	}
	if last.DominantTech != Security {
		t.Errorf("last-wins tech = %q, want %q", last.DominantTech, Security)
	}

	if first.Result.RecommendedTopics[0] != "Disruptive Innovation Strategies" {
		t.Errorf("first-wins topic = %q", first.Result.RecommendedTopics[0])
	}
	if last.Result.RecommendedTopics[0] != "Coaching for High Performance" {
		t.Errorf("last-wins topic = %q", last.Result.RecommendedTopics[0])
	}
}

func TestAnalyze_LastWinsAllFirst(t *testing.T) {
	r := NewEngine(Config{TieBreak: LastWins, Normalization: AbsorbIntoFirst}).Score(allFirst())
	want := []string{"Contextual Adaptability", "Executive Presence", "Thought Leadership", "Agile Methodologies"}
	if !slices.Equal(r.DevelopmentAreas, want) {
		t.Errorf("development areas = %v, want %v", r.DevelopmentAreas, want)
	}
}

func TestScore_Idempotent(t *testing.T) {
	a := answersOf(map[int]Choice{0: OptionB, 2: OptionC, 5: OptionB, 7: OptionA, 9: OptionD})
	first, err := json.Marshal(Score(a))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, _ := json.Marshal(Score(a))
		if string(again) != string(first) {
			t.Fatalf("run %d differs:\n%s\n%s", i, again, first)
		}
	}
}

// leadershipQuestions are the questions that move leadershipStyle counters.
var leadershipQuestions = []int{0, 2, 4, 5, 7}

func TestScore_PercentagesAlwaysSumTo100(t *testing.T) {
	choices := []Choice{NoChoice, OptionA, OptionB, OptionC, OptionD}
	for _, mode := range []Normalization{AbsorbIntoFirst, LargestRemainder} {
		e := NewEngine(Config{TieBreak: FirstWins, Normalization: mode})
		var walk func(depth int, a Answers)
		walk = func(depth int, a Answers) {
			if depth == len(leadershipQuestions) {
				if a.Empty() {
					return
				}
				r := e.Score(a)
				if sum := r.LeadershipStyle.Sum(); sum != 100 {
					t.Fatalf("%s: %v sums to %d (%+v)", mode, a, sum, r.LeadershipStyle)
				}
				if len(r.RecommendedTopics) > maxTopics || len(r.DevelopmentAreas) > maxDevelopmentAreas || len(r.Strengths) > maxStrengths {
					t.Fatalf("%s: list caps exceeded for %v: %+v", mode, a, r)
				}
				return
			}
			for _, c := range choices {
				a[leadershipQuestions[depth]] = c
				walk(depth+1, a)
			}
		}
		walk(0, Answers{})
	}
}

func TestScore_RoundingAbsorbedByTransformational(t *testing.T) {
	// servant 3+1, situational 1, directive 1: 67+17+17 rounds to 101.
	a := answersOf(map[int]Choice{0: OptionB, 2: OptionC, 5: OptionB, 7: OptionA})

	absorb := NewEngine(DefaultConfig()).Score(a).LeadershipStyle
	if want := (LeadershipMix{Transformational: -1, Servant: 67, Situational: 17, Directive: 17}); absorb != want {
		t.Errorf("absorb = %+v, want %+v", absorb, want)
	}

	lr := NewEngine(Config{TieBreak: FirstWins, Normalization: LargestRemainder}).Score(a).LeadershipStyle
	if want := (LeadershipMix{Servant: 67, Situational: 17, Directive: 16}); lr != want {
		t.Errorf("largest remainder = %+v, want %+v", lr, want)
	}
}

func TestScore_StrengthsTruncated(t *testing.T) {
	// Transformational, structured, catalyst, business and reflective all
	// exceed the gate; only the first four survive.
	a := answersOf(map[int]Choice{0: OptionA, 2: OptionA, 4: OptionA, 5: OptionA, 9: OptionD})
	want := []string{"Change Leadership", "Process Optimization", "Innovation Catalyst", "Business Acumen"}
	if got := Score(a).Strengths; !slices.Equal(got, want) {
		t.Errorf("strengths = %v, want %v", got, want)
	}
}

func TestNewEngine_UnknownPolicyFallsBack(t *testing.T) {
	e := NewEngine(Config{TieBreak: "sideways", Normalization: "magic"})
	if e.Config() != DefaultConfig() {
		t.Errorf("config = %+v, want defaults", e.Config())
	}
}
