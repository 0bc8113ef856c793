package careerquiz

// Dimension is one of the ten independent four-category counters tracked per
// quiz. Dimensions are numbered in question order: question i scores
// dimension i.
type Dimension int

const (
	LeadershipStyle Dimension = iota
	CareerPriorities
	CollaborationStyle
	DevelopmentPreference
	ChangeRole
	SuccessMetrics
	TechFocus
	PrioritizationApproach
	NetworkingStyle
	ResilienceStrategy

	numDimensions
)

// NumDimensions is the number of dimensions (and questions).
const NumDimensions = int(numDimensions)

// Category is one of the four fixed labels within a dimension. Keys are only
// unique within their dimension ("stakeholder" and "digital" appear twice).
type Category string

// Leadership style.
const (
	Transformational Category = "transformational"
	Servant          Category = "servant"
	Situational      Category = "situational"
	Directive        Category = "directive"
)

// Career priorities.
const (
	Intellectual Category = "intellectual"
	Cultural     Category = "cultural"
	Financial    Category = "financial"
	Authority    Category = "authority"
)

// Collaboration style.
const (
	Structured Category = "structured"
	Relational Category = "relational"
	Agile      Category = "agile"
	Expertise  Category = "expertise"
)

// Development preference.
const (
	Mentorship   Category = "mentorship"
	SelfDirected Category = "selfDirected"
	Experiential Category = "experiential"
	Peer         Category = "peer"
)

// Change role.
const (
	Catalyst     Category = "catalyst"
	Stabilizer   Category = "stabilizer"
	Communicator Category = "communicator"
	Analyst      Category = "analyst"
)

// Success metrics.
const (
	Business          Category = "business"
	People            Category = "people"
	Innovation        Category = "innovation"
	MetricStakeholder Category = "stakeholder"
)

// Tech focus.
const (
	AI          Category = "ai"
	Data        Category = "data"
	TechDigital Category = "digital"
	Security    Category = "security"
)

// Prioritization approach.
const (
	ROI                 Category = "roi"
	Mission             Category = "mission"
	ApproachStakeholder Category = "stakeholder"
	Capability          Category = "capability"
)

// Networking style.
const (
	Industry       Category = "industry"
	Thought        Category = "thought"
	Internal       Category = "internal"
	NetworkDigital Category = "digital"
)

// Resilience strategy.
const (
	Analytical    Category = "analytical"
	Collaborative Category = "collaborative"
	Experimental  Category = "experimental"
	Reflective    Category = "reflective"
)

type dimensionInfo struct {
	key        string
	name       string
	categories [4]Category
}

var dimensions = [numDimensions]dimensionInfo{
	LeadershipStyle:        {"leadershipStyle", "Leadership Style", [4]Category{Transformational, Servant, Situational, Directive}},
	CareerPriorities:       {"careerPriorities", "Career Priorities", [4]Category{Intellectual, Cultural, Financial, Authority}},
	CollaborationStyle:     {"collaborationStyle", "Collaboration Style", [4]Category{Structured, Relational, Agile, Expertise}},
	DevelopmentPreference:  {"developmentPreference", "Development Preference", [4]Category{Mentorship, SelfDirected, Experiential, Peer}},
	ChangeRole:             {"changeRole", "Change Role", [4]Category{Catalyst, Stabilizer, Communicator, Analyst}},
	SuccessMetrics:         {"successMetrics", "Success Metrics", [4]Category{Business, People, Innovation, MetricStakeholder}},
	TechFocus:              {"techFocus", "Tech Focus", [4]Category{AI, Data, TechDigital, Security}},
	PrioritizationApproach: {"prioritizationApproach", "Prioritization Approach", [4]Category{ROI, Mission, ApproachStakeholder, Capability}},
	NetworkingStyle:        {"networkingStyle", "Networking Style", [4]Category{Industry, Thought, Internal, NetworkDigital}},
	ResilienceStrategy:     {"resilienceStrategy", "Resilience Strategy", [4]Category{Analytical, Collaborative, Experimental, Reflective}},
}

// Valid reports whether d names one of the ten dimensions.
func (d Dimension) Valid() bool {
	return d >= 0 && d < numDimensions
}

// Key returns the camelCase key used in JSON output, e.g. "leadershipStyle".
func (d Dimension) Key() string {
	if !d.Valid() {
		return ""
	}
	return dimensions[d].key
}

// String returns the display name.
func (d Dimension) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return dimensions[d].name
}

// Categories returns the dimension's four categories in canonical order.
func (d Dimension) Categories() [4]Category {
	if !d.Valid() {
		return [4]Category{}
	}
	return dimensions[d].categories
}

// index returns the position of c within d, or -1.
func (d Dimension) index(c Category) int {
	if !d.Valid() {
		return -1
	}
	for i, k := range dimensions[d].categories {
		if k == c {
			return i
		}
	}
	return -1
}

// AllDimensions returns every dimension in question order.
func AllDimensions() []Dimension {
	out := make([]Dimension, NumDimensions)
	for i := range out {
		out[i] = Dimension(i)
	}
	return out
}
