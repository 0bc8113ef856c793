package careerquiz

const (
	primaryWeight       = 3
	reinforcementWeight = 1

	// Path and strength gates require a count strictly above this value.
	strongThreshold = 2
	// Development gates fire on a count strictly below this value.
	weakThreshold = 2

	maxTopics           = 6
	maxDevelopmentAreas = 4
	maxStrengths        = 4
)

// tag addresses one category counter.
type tag struct {
	dim Dimension
	cat Category
}

func (t tag) count(c Counters) int {
	return c.Get(t.dim, t.cat)
}

// reinforcement adds a bonus to a counter of another dimension when a given
// option was picked.
type reinforcement struct {
	when tag
	then tag
}

var reinforcements = []reinforcement{
	{when: tag{ChangeRole, Catalyst}, then: tag{LeadershipStyle, Transformational}},
	{when: tag{SuccessMetrics, People}, then: tag{LeadershipStyle, Servant}},
	{when: tag{CollaborationStyle, Agile}, then: tag{LeadershipStyle, Situational}},
	{when: tag{PrioritizationApproach, ROI}, then: tag{LeadershipStyle, Directive}},

	{when: tag{DevelopmentPreference, SelfDirected}, then: tag{CareerPriorities, Intellectual}},
	{when: tag{NetworkingStyle, Internal}, then: tag{CareerPriorities, Cultural}},
	{when: tag{SuccessMetrics, Business}, then: tag{CareerPriorities, Financial}},
	{when: tag{LeadershipStyle, Directive}, then: tag{CareerPriorities, Authority}},
}

type pathRule struct {
	path  CareerPath
	match func(Counters) bool
}

func both(a, b tag) func(Counters) bool {
	return func(c Counters) bool {
		return a.count(c) > strongThreshold && b.count(c) > strongThreshold
	}
}

func either(a, b tag) func(Counters) bool {
	return func(c Counters) bool {
		return a.count(c) > strongThreshold || b.count(c) > strongThreshold
	}
}

// pathRules are evaluated in order; the first match decides.
var pathRules = []pathRule{
	{InnovationLeadership, both(tag{LeadershipStyle, Transformational}, tag{SuccessMetrics, Innovation})},
	{PeopleCultureLeadership, both(tag{LeadershipStyle, Servant}, tag{SuccessMetrics, People})},
	{OperationalExcellence, both(tag{LeadershipStyle, Directive}, tag{SuccessMetrics, Business})},
	{StrategicFinance, both(tag{PrioritizationApproach, ROI}, tag{CareerPriorities, Financial})},
	{DataAIStrategy, either(tag{TechFocus, AI}, tag{TechFocus, Data})},
	{ChangeCommsLeadership, both(tag{ChangeRole, Communicator}, tag{NetworkingStyle, Thought})},
	{AgileTransformation, both(tag{CollaborationStyle, Agile}, tag{ResilienceStrategy, Experimental})},
}

func classifyPath(c Counters) CareerPath {
	for _, r := range pathRules {
		if r.match(c) {
			return r.path
		}
	}
	return StrategicLeadership
}

var leadershipTopics = map[Category][]string{
	Transformational: {"Disruptive Innovation Strategies", "Leading Through Organizational Transformation"},
	Servant:          {"Coaching for High Performance", "Building Psychological Safety in Teams"},
	Situational:      {"Adaptive Leadership in Complex Environments", "Contextual Decision-Making Frameworks"},
	Directive:        {"Strategic Planning and Execution", "Performance Management Systems"},
}

var techTopics = map[Category][]string{
	AI:          {"AI Ethics and Governance", "Machine Learning Implementation Strategy"},
	Data:        {"Data-Driven Decision Making", "Advanced Analytics for Business Leaders"},
	TechDigital: {"Digital Transformation Roadmapping", "Legacy System Modernization"},
	Security:    {"Cybersecurity Risk Management", "Privacy-by-Design Principles"},
}

var priorityTopics = map[Category][]string{
	Intellectual: {"Continuous Learning Ecosystems", "Knowledge Management Strategy"},
	Cultural:     {"Organizational Culture Design", "Work-Life Integration Models"},
	Financial:    {"Executive Compensation Strategies", "Financial Acumen for Leaders"},
	Authority:    {"Executive Presence Development", "Strategic Influence and Persuasion"},
}

var leadershipGaps = map[Category]string{
	Transformational: "Innovation Mindset",
	Servant:          "Empathetic Leadership",
	Situational:      "Contextual Adaptability",
	Directive:        "Structured Decision Making",
}

var priorityGaps = map[Category]string{
	Intellectual: "Continuous Learning",
	Cultural:     "Organizational Awareness",
	Financial:    "Financial Acumen",
	Authority:    "Executive Presence",
}

// gate emits label when the counter passes its threshold.
type gate struct {
	at    tag
	label string
}

var developmentGates = []gate{
	{tag{ResilienceStrategy, Analytical}, "Critical Problem Analysis"},
	{tag{NetworkingStyle, Thought}, "Thought Leadership"},
	{tag{CollaborationStyle, Agile}, "Agile Methodologies"},
}

var strengthGates = []gate{
	{tag{LeadershipStyle, Transformational}, "Change Leadership"},
	{tag{LeadershipStyle, Servant}, "Team Development"},
	{tag{LeadershipStyle, Situational}, "Adaptability"},
	{tag{LeadershipStyle, Directive}, "Strategic Direction"},

	{tag{CollaborationStyle, Structured}, "Process Optimization"},
	{tag{CollaborationStyle, Relational}, "Relationship Building"},
	{tag{CollaborationStyle, Agile}, "Agile Implementation"},
	{tag{CollaborationStyle, Expertise}, "Subject Matter Expertise"},

	{tag{ChangeRole, Catalyst}, "Innovation Catalyst"},
	{tag{SuccessMetrics, Business}, "Business Acumen"},
	{tag{ResilienceStrategy, Reflective}, "Reflective Practice"},
	{tag{NetworkingStyle, NetworkDigital}, "Digital Engagement"},
}

func truncate(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
