// Package grading turns marks into letter grades and tallies them into a
// distribution and a pass/fail split.
package grading

import (
	"fmt"
	"strings"

	"github.com/gradebook-cli/gradebook/internal/marks"
)

// Grade is a letter category derived from a mark.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Letters lists every grade from best to worst.
var Letters = []Grade{GradeA, GradeB, GradeC, GradeD, GradeF}

// Lower bounds for each passing letter; anything below ThresholdD is an F.
const (
	ThresholdA = 90.0
	ThresholdB = 80.0
	ThresholdC = 70.0
	ThresholdD = 60.0

	// PassMark is the lowest mark counted as a pass.
	PassMark = 40.0
)

// ForScore returns the letter grade for a single mark.
func ForScore(score float64) Grade {
	switch {
	case score >= ThresholdA:
		return GradeA
	case score >= ThresholdB:
		return GradeB
	case score >= ThresholdC:
		return GradeC
	case score >= ThresholdD:
		return GradeD
	default:
		return GradeF
	}
}

// Grades maps each student to a letter, in the same order as the marks it
// was derived from.
type Grades struct {
	names  []string
	values map[string]Grade
}

// Get returns the grade for name.
func (g *Grades) Get(name string) (Grade, bool) {
	if g == nil {
		return "", false
	}
	v, ok := g.values[name]
	return v, ok
}

// Len returns the number of graded students.
func (g *Grades) Len() int {
	if g == nil {
		return 0
	}
	return len(g.names)
}

// Names returns the graded names in order.
func (g *Grades) Names() []string {
	if g == nil {
		return nil
	}
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Assign grades every student in scores.
func Assign(scores *marks.Scores) *Grades {
	g := &Grades{values: make(map[string]Grade, scores.Len())}
	scores.Each(func(name string, score float64) {
		g.names = append(g.names, name)
		g.values[name] = ForScore(score)
	})
	return g
}

// Distribution counts students per letter. Letters nobody received are
// absent rather than zero.
type Distribution map[Grade]int

// Total returns the number of students counted.
func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

// String renders the counts in A to F order, e.g. "{A: 2, C: 1}".
func (d Distribution) String() string {
	parts := make([]string, 0, len(d))
	for _, letter := range Letters {
		if n, ok := d[letter]; ok {
			parts = append(parts, fmt.Sprintf("%s: %d", letter, n))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// CountDistribution tallies the grades.
func CountDistribution(grades *Grades) Distribution {
	dist := make(Distribution)
	if grades == nil {
		return dist
	}
	for _, name := range grades.names {
		dist[grades.values[name]]++
	}
	return dist
}

// PassFail splits names into those at or above PassMark and those below,
// each in mapping order.
func PassFail(scores *marks.Scores) (passed, failed []string) {
	passed = []string{}
	failed = []string{}
	scores.Each(func(name string, score float64) {
		if score >= PassMark {
			passed = append(passed, name)
		} else {
			failed = append(failed, name)
		}
	})
	return passed, failed
}
