package careerquiz

// CareerPath is the recommended career direction.
type CareerPath string

const (
	// PathNone is returned when no question was answered.
	PathNone CareerPath = ""

	InnovationLeadership    CareerPath = "Innovation Leadership"
	PeopleCultureLeadership CareerPath = "People & Culture Leadership"
	OperationalExcellence   CareerPath = "Operational Excellence"
	StrategicFinance        CareerPath = "Strategic Finance"
	DataAIStrategy          CareerPath = "Data & AI Strategy"
	ChangeCommsLeadership   CareerPath = "Change & Communications Leadership"
	AgileTransformation     CareerPath = "Agile Transformation"
	StrategicLeadership     CareerPath = "Strategic Leadership"
)

// CareerPaths lists every label in rule order, the catch-all last.
func CareerPaths() []CareerPath {
	return []CareerPath{
		InnovationLeadership,
		PeopleCultureLeadership,
		OperationalExcellence,
		StrategicFinance,
		DataAIStrategy,
		ChangeCommsLeadership,
		AgileTransformation,
		StrategicLeadership,
	}
}

// LeadershipMix is the leadership style distribution in whole percent.
type LeadershipMix struct {
	Transformational int `json:"transformational"`
	Servant          int `json:"servant"`
	Situational      int `json:"situational"`
	Directive        int `json:"directive"`
}

// Values returns the percentages in canonical category order.
func (m LeadershipMix) Values() [4]int {
	return [4]int{m.Transformational, m.Servant, m.Situational, m.Directive}
}

// Sum is 100 for any answered quiz and 0 for an empty one.
func (m LeadershipMix) Sum() int {
	v := m.Values()
	return v[0] + v[1] + v[2] + v[3]
}

func leadershipMixFrom(v [4]int) LeadershipMix {
	return LeadershipMix{Transformational: v[0], Servant: v[1], Situational: v[2], Directive: v[3]}
}

// PriorityCounts holds the raw career priority counters.
type PriorityCounts struct {
	Intellectual int `json:"intellectual"`
	Cultural     int `json:"cultural"`
	Financial    int `json:"financial"`
	Authority    int `json:"authority"`
}

// Values returns the counts in canonical category order.
func (p PriorityCounts) Values() [4]int {
	return [4]int{p.Intellectual, p.Cultural, p.Financial, p.Authority}
}

func priorityCountsFrom(t Tally) PriorityCounts {
	return PriorityCounts{Intellectual: t[0], Cultural: t[1], Financial: t[2], Authority: t[3]}
}

// Result is the scored outcome of a quiz.
type Result struct {
	LeadershipStyle   LeadershipMix  `json:"leadershipStyle"`
	CareerPriorities  PriorityCounts `json:"careerPriorities"`
	CareerPath        CareerPath     `json:"careerPath"`
	RecommendedTopics []string       `json:"recommendedTopics"`
	DevelopmentAreas  []string       `json:"developmentAreas"`
	Strengths         []string       `json:"strengths"`
}

func emptyResult() Result {
	return Result{
		RecommendedTopics: []string{},
		DevelopmentAreas:  []string{},
		Strengths:         []string{},
	}
}
