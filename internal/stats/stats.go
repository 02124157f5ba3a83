// Package stats computes the summary metrics reported for a set of marks.
// Every function treats an empty set as having all metrics equal to 0.
package stats

import (
	"sort"

	moremath "github.com/aclements/go-moremath/stats"

	"github.com/gradebook-cli/gradebook/internal/marks"
)

// Average returns the arithmetic mean of the marks.
func Average(scores *marks.Scores) float64 {
	xs := scores.Values()
	if len(xs) == 0 {
		return 0
	}
	return moremath.Mean(xs)
}

// Median returns the middle mark, or the mean of the two middle marks when
// the count is even.
func Median(scores *marks.Scores) float64 {
	xs := scores.Values()
	n := len(xs)
	if n == 0 {
		return 0
	}
	sort.Float64s(xs)

	mid := n / 2
	if n%2 == 1 {
		return xs[mid]
	}
	return (xs[mid-1] + xs[mid]) / 2
}

// Max returns the highest mark.
func Max(scores *marks.Scores) float64 {
	_, hi := bounds(scores)
	return hi
}

// Min returns the lowest mark.
func Min(scores *marks.Scores) float64 {
	lo, _ := bounds(scores)
	return lo
}

func bounds(scores *marks.Scores) (float64, float64) {
	xs := scores.Values()
	if len(xs) == 0 {
		return 0, 0
	}
	return moremath.Bounds(xs)
}
