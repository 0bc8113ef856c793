package careerquiz

import (
	"fmt"
	"strings"
)

// TieBreak selects which category wins when several share the extreme count.
type TieBreak string

const (
	// FirstWins keeps the earliest category in canonical order. Later
	// categories only take over on strict inequality.
	FirstWins TieBreak = "first"
	// LastWins lets a later category take over on equality, matching a
	// left-to-right reduce that compares with a strict operator.
	LastWins TieBreak = "last"
)

// Normalization selects how rounding error in the leadership percentages is
// resolved so that they sum to exactly 100.
type Normalization string

const (
	// AbsorbIntoFirst adds (or subtracts) the whole rounding error to the
	// transformational bucket.
	AbsorbIntoFirst Normalization = "absorb"
	// LargestRemainder apportions the 100 points by the Hamilton method.
	LargestRemainder Normalization = "largest-remainder"
)

// Config tunes the scoring engine.
type Config struct {
	TieBreak      TieBreak
	Normalization Normalization
}

// DefaultConfig returns the canonical configuration.
func DefaultConfig() Config {
	return Config{
		TieBreak:      FirstWins,
		Normalization: AbsorbIntoFirst,
	}
}

// Validate rejects unknown policy values.
func (c Config) Validate() error {
	switch c.TieBreak {
	case FirstWins, LastWins:
	default:
		return fmt.Errorf("unknown tie-break policy %q", c.TieBreak)
	}
	switch c.Normalization {
	case AbsorbIntoFirst, LargestRemainder:
	default:
		return fmt.Errorf("unknown normalization %q", c.Normalization)
	}
	return nil
}

// ParseTieBreak parses a tie-break name as given on the command line.
func ParseTieBreak(s string) (TieBreak, error) {
	switch TieBreak(strings.ToLower(strings.TrimSpace(s))) {
	case "", FirstWins:
		return FirstWins, nil
	case LastWins:
		return LastWins, nil
	}
	return "", fmt.Errorf("unknown tie-break policy %q (want first or last)", s)
}

// ParseNormalization parses a normalization name as given on the command line.
func ParseNormalization(s string) (Normalization, error) {
	switch Normalization(strings.ToLower(strings.TrimSpace(s))) {
	case "", AbsorbIntoFirst:
		return AbsorbIntoFirst, nil
	case LargestRemainder:
		return LargestRemainder, nil
	}
	return "", fmt.Errorf("unknown normalization %q (want absorb or largest-remainder)", s)
}
