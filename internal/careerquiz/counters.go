package careerquiz

import "encoding/json"

// Tally holds the four category counts of one dimension in canonical order.
type Tally [4]int

// Total is the sum of all four counts.
func (t Tally) Total() int {
	return t[0] + t[1] + t[2] + t[3]
}

// Counters holds one Tally per dimension.
type Counters [NumDimensions]Tally

// Add increases the count of category c in dimension d by n. Unknown
// dimension/category pairs are ignored.
func (c *Counters) Add(d Dimension, cat Category, n int) {
	i := d.index(cat)
	if i < 0 {
		return
	}
	c[d][i] += n
}

// Get returns the count of category cat in dimension d.
func (c Counters) Get(d Dimension, cat Category) int {
	i := d.index(cat)
	if i < 0 {
		return 0
	}
	return c[d][i]
}

// Tally returns the counts for dimension d.
func (c Counters) Tally(d Dimension) Tally {
	if !d.Valid() {
		return Tally{}
	}
	return c[d]
}

// MarshalJSON renders the counters keyed by dimension and category name.
func (c Counters) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[Category]int, NumDimensions)
	for _, d := range AllDimensions() {
		cats := d.Categories()
		m := make(map[Category]int, len(cats))
		for i, cat := range cats {
			m[cat] = c[d][i]
		}
		out[d.Key()] = m
	}
	return json.Marshal(out)
}
