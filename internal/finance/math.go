package finance

import (
	"math"
	"strings"
)

// Total sums the amounts of lines.
func Total(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Amount
	}
	return sum
}

// SavingsRate is the share of income left after expenses, as a whole
// percentage. It is 0 when there is no income.
func SavingsRate(income, expenses float64) int {
	if income == 0 {
		return 0
	}
	return int(math.Floor((income-expenses)/income*100 + 0.5))
}

// Percentage returns amount as a share of total, rounded to one decimal.
func Percentage(amount, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(amount/total*1000) / 10
}

func addLine(lines []Line, category string, amount float64) ([]Line, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}
	if indexOf(lines, category) >= 0 {
		return nil, ErrDuplicateCategory
	}
	out := append(cloneLines(lines), Line{Category: category, Amount: amount})
	reweigh(out)
	return out, nil
}

func deleteLine(lines []Line, category string) ([]Line, error) {
	i := indexOf(lines, category)
	if i < 0 {
		return nil, ErrNotFound
	}
	out := append(cloneLines(lines[:i]), lines[i+1:]...)
	reweigh(out)
	return out, nil
}

func reweigh(lines []Line) {
	total := Total(lines)
	for i := range lines {
		lines[i].Percentage = Percentage(lines[i].Amount, total)
	}
}

func indexOf(lines []Line, category string) int {
	for i, l := range lines {
		if strings.EqualFold(l.Category, category) {
			return i
		}
	}
	return -1
}

func cloneLines(lines []Line) []Line {
	if lines == nil {
		return []Line{}
	}
	return append([]Line(nil), lines...)
}
