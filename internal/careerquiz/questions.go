package careerquiz

// Option is one of the four fixed answers to a question.
type Option struct {
	// Text is the literal option string shown to the user.
	Text string
	// Fragment is the keyword looked for when classifying free text.
	Fragment string
	// Tag is the category of the question's dimension this option scores.
	Tag Category
}

// Question is a single quiz question.
type Question struct {
	Index     int
	Text      string
	Dimension Dimension
	Options   [4]Option
}

// NumQuestions is the fixed length of the quiz.
const NumQuestions = NumDimensions

var questions = [NumQuestions]Question{
	{
		Index:     0,
		Text:      "Which strategic leadership approach do you most frequently employ in complex organizational challenges?",
		Dimension: LeadershipStyle,
		Options: [4]Option{
			{"Transformational (inspiring innovation and change)", "Transformational", Transformational},
			{"Servant (prioritizing team needs and development)", "Servant", Servant},
			{"Situational (adapting style to specific contexts)", "Situational", Situational},
			{"Directive (providing clear structure and guidance)", "Directive", Directive},
		},
	},
	{
		Index:     1,
		Text:      "When evaluating potential career advancement opportunities, which factor carries the most weight in your decision-making process?",
		Dimension: CareerPriorities,
		Options: [4]Option{
			{"Intellectual challenge and skill development", "Intellectual", Intellectual},
			{"Organizational culture and work-life integration", "Organizational culture", Cultural},
			{"Compensation package and financial incentives", "Compensation", Financial},
			{"Leadership potential and decision-making authority", "Leadership potential", Authority},
		},
	},
	{
		Index:     2,
		Text:      "How do you typically approach cross-functional collaboration in high-stakes projects?",
		Dimension: CollaborationStyle,
		Options: [4]Option{
			{"Establish clear governance and decision frameworks first", "Establish clear governance", Structured},
			{"Focus on relationship-building before tactical execution", "relationship-building", Relational},
			{"Implement agile methodologies with regular feedback loops", "agile methodologies", Agile},
			{"Leverage subject matter expertise with defined handoffs", "subject matter expertise", Expertise},
		},
	},
	{
		Index:     3,
		Text:      "Which professional development methodology has yielded the most significant growth in your career trajectory?",
		Dimension: DevelopmentPreference,
		Options: [4]Option{
			{"Structured mentorship and executive coaching", "mentorship", Mentorship},
			{"Self-directed learning and specialized certifications", "Self-directed", SelfDirected},
			{"Experiential learning through stretch assignments", "Experiential", Experiential},
			{"Peer learning networks and communities of practice", "Peer learning", Peer},
		},
	},
	{
		Index:     4,
		Text:      "When navigating organizational change, which approach best characterizes your contribution?",
		Dimension: ChangeRole,
		Options: [4]Option{
			{"Change catalyst - driving innovation and new initiatives", "Change catalyst", Catalyst},
			{"Change stabilizer - ensuring operational continuity", "Change stabilizer", Stabilizer},
			{"Change communicator - facilitating understanding and buy-in", "Change communicator", Communicator},
			{"Change analyst - evaluating impacts and optimizing processes", "Change analyst", Analyst},
		},
	},
	{
		Index:     5,
		Text:      "How do you primarily measure your professional success and impact?",
		Dimension: SuccessMetrics,
		Options: [4]Option{
			{"Quantifiable business outcomes and financial metrics", "Quantifiable business", Business},
			{"Team development and organizational capability building", "Team development", People},
			{"Innovation implementation and market differentiation", "Innovation implementation", Innovation},
			{"Stakeholder satisfaction and relationship strength", "Stakeholder satisfaction", MetricStakeholder},
		},
	},
	{
		Index:     6,
		Text:      "Which technological competency do you believe will be most critical to develop in your field over the next 5 years?",
		Dimension: TechFocus,
		Options: [4]Option{
			{"AI/ML implementation and ethical governance", "AI/ML", AI},
			{"Data analytics and insight generation", "Data analytics", Data},
			{"Digital transformation and legacy system integration", "Digital transformation", TechDigital},
			{"Cybersecurity and privacy protection frameworks", "Cybersecurity", Security},
		},
	},
	{
		Index:     7,
		Text:      "In resource-constrained environments, how do you typically prioritize competing strategic initiatives?",
		Dimension: PrioritizationApproach,
		Options: [4]Option{
			{"ROI-based analysis with quantitative scoring models", "ROI-based", ROI},
			{"Alignment with core organizational mission and values", "Alignment with core", Mission},
			{"Stakeholder influence mapping and coalition building", "Stakeholder influence", ApproachStakeholder},
			{"Capability-based assessment of execution feasibility", "Capability-based", Capability},
		},
	},
	{
		Index:     8,
		Text:      "Which approach to professional networking has proven most valuable in your career development?",
		Dimension: NetworkingStyle,
		Options: [4]Option{
			{"Industry-specific communities and formal associations", "Industry-specific", Industry},
			{"Cross-industry thought leadership and knowledge exchange", "Cross-industry", Thought},
			{"Strategic internal relationship building and sponsorship", "Strategic internal", Internal},
			{"Digital platform engagement and content creation", "Digital platform", NetworkDigital},
		},
	},
	{
		Index:     9,
		Text:      "When faced with significant professional setbacks, which resilience strategy do you most rely upon?",
		Dimension: ResilienceStrategy,
		Options: [4]Option{
			{"Analytical problem deconstruction and root cause analysis", "Analytical problem", Analytical},
			{"Seeking diverse perspectives and collaborative solutions", "Seeking diverse perspectives", Collaborative},
			{"Rapid prototyping of alternative approaches", "Rapid prototyping", Experimental},
			{"Reflective practice and mindfulness techniques", "Reflective practice", Reflective},
		},
	},
}

// Questions returns the ten quiz questions in their fixed order.
func Questions() []Question {
	out := make([]Question, NumQuestions)
	copy(out, questions[:])
	return out
}

// QuestionAt returns the question at index i.
func QuestionAt(i int) (Question, bool) {
	if i < 0 || i >= NumQuestions {
		return Question{}, false
	}
	return questions[i], true
}

// OptionTexts returns the literal option strings in display order.
func (q Question) OptionTexts() []string {
	out := make([]string, len(q.Options))
	for i, o := range q.Options {
		out[i] = o.Text
	}
	return out
}
