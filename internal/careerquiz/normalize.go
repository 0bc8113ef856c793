package careerquiz

import (
	"math"
	"sort"
)

// percentages converts raw counts to whole percentages summing to 100.
// A zero total is floored to 1, which yields all zeros before correction.
func percentages(t Tally, mode Normalization) [4]int {
	total := t.Total()
	if mode == LargestRemainder && total > 0 {
		return largestRemainder(t, total)
	}
	if total == 0 {
		total = 1
	}

	var out [4]int
	sum := 0
	for i, v := range t {
		out[i] = roundHalfUp(float64(v) / float64(total) * 100)
		sum += out[i]
	}
	// The first bucket absorbs the rounding error in either direction.
	out[0] += 100 - sum
	return out
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// largestRemainder gives every category the floor of its exact share, then
// hands the leftover points to the largest remainders. Equal remainders go
// to the earlier category.
func largestRemainder(t Tally, total int) [4]int {
	var out [4]int
	rem := make([]int, 0, len(t))
	assigned := 0
	for i, v := range t {
		out[i] = v * 100 / total
		assigned += out[i]
		rem = append(rem, i)
	}
	sort.SliceStable(rem, func(a, b int) bool {
		return t[rem[a]]*100%total > t[rem[b]]*100%total
	})
	for k := 0; k < 100-assigned; k++ {
		out[rem[k%len(rem)]]++
	}
	return out
}
