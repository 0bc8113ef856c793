package careerquiz

// Analysis exposes the intermediate values behind a Result.
type Analysis struct {
	Counters Counters `json:"counters"`

	DominantLeadership Category `json:"dominantLeadership"`
	WeakestLeadership  Category `json:"weakestLeadership"`
	DominantPriority   Category `json:"dominantPriority"`
	WeakestPriority    Category `json:"weakestPriority"`
	DominantTech       Category `json:"dominantTech"`

	Result Result `json:"result"`
}

// Engine scores answer sets. It holds no state besides its configuration and
// is safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine. Unknown policy values fall back to the
// defaults; call cfg.Validate first to reject them instead.
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.TieBreak != FirstWins && cfg.TieBreak != LastWins {
		cfg.TieBreak = def.TieBreak
	}
	if cfg.Normalization != AbsorbIntoFirst && cfg.Normalization != LargestRemainder {
		cfg.Normalization = def.Normalization
	}
	return &Engine{cfg: cfg}
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

var defaultEngine = NewEngine(DefaultConfig())

// Score scores answers with the default configuration.
func Score(a Answers) Result {
	return defaultEngine.Score(a)
}

// Score computes the Result for a. It never fails.
func (e *Engine) Score(a Answers) Result {
	return e.Analyze(a).Result
}

// Analyze computes the Result for a along with the counters and dominant
// categories it was derived from.
func (e *Engine) Analyze(a Answers) Analysis {
	if a.Empty() {
		return Analysis{Result: emptyResult()}
	}

	c := tally(a)

	an := Analysis{
		Counters:           c,
		DominantLeadership: e.dominant(LeadershipStyle, c),
		WeakestLeadership:  e.weakest(LeadershipStyle, c),
		DominantPriority:   e.dominant(CareerPriorities, c),
		WeakestPriority:    e.weakest(CareerPriorities, c),
		DominantTech:       e.dominant(TechFocus, c),
	}

	topics := make([]string, 0, maxTopics)
	topics = append(topics, leadershipTopics[an.DominantLeadership]...)
	topics = append(topics, techTopics[an.DominantTech]...)
	topics = append(topics, priorityTopics[an.DominantPriority]...)

	areas := []string{
		leadershipGaps[an.WeakestLeadership],
		priorityGaps[an.WeakestPriority],
	}
	for _, g := range developmentGates {
		if g.at.count(c) < weakThreshold {
			areas = append(areas, g.label)
		}
	}

	strengths := []string{}
	for _, g := range strengthGates {
		if g.at.count(c) > strongThreshold {
			strengths = append(strengths, g.label)
		}
	}

	an.Result = Result{
		LeadershipStyle:   leadershipMixFrom(percentages(c.Tally(LeadershipStyle), e.cfg.Normalization)),
		CareerPriorities:  priorityCountsFrom(c.Tally(CareerPriorities)),
		CareerPath:        classifyPath(c),
		RecommendedTopics: truncate(topics, maxTopics),
		DevelopmentAreas:  truncate(areas, maxDevelopmentAreas),
		Strengths:         truncate(strengths, maxStrengths),
	}
	return an
}

// tally applies primary scoring and the cross-question reinforcements.
func tally(a Answers) Counters {
	var c Counters
	for i, q := range questions {
		if cat, ok := a.Tag(i); ok {
			c.Add(q.Dimension, cat, primaryWeight)
		}
	}
	for _, r := range reinforcements {
		if a.Picked(r.when.dim, r.when.cat) {
			c.Add(r.then.dim, r.then.cat, reinforcementWeight)
		}
	}
	return c
}

func (e *Engine) dominant(d Dimension, c Counters) Category {
	return d.Categories()[e.pick(c.Tally(d), func(a, b int) bool { return a > b })]
}

func (e *Engine) weakest(d Dimension, c Counters) Category {
	return d.Categories()[e.pick(c.Tally(d), func(a, b int) bool { return a < b })]
}

// pick scans t in canonical order. A later entry replaces the current best
// when better reports true, or on equality under LastWins.
func (e *Engine) pick(t Tally, better func(candidate, best int) bool) int {
	best := 0
	for i := 1; i < len(t); i++ {
		if better(t[i], t[best]) || (e.cfg.TieBreak == LastWins && t[i] == t[best]) {
			best = i
		}
	}
	return best
}
