package finance

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatMoney renders a dollar amount with thousands separators and at most
// two decimals, e.g. "$12,000" or "-$95.67".
func FormatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + humanize.CommafWithDigits(math.Round(v*100)/100, 2)
}

// FormatPercent renders a one decimal share, e.g. "73.1%".
func FormatPercent(p float64) string {
	return humanize.FtoaWithDigits(p, 1) + "%"
}
