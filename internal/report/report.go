// Package report renders graded marks as a results table and a block of
// summary metrics.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gradebook-cli/gradebook/internal/grading"
	"github.com/gradebook-cli/gradebook/internal/marks"
	"github.com/gradebook-cli/gradebook/internal/stats"
)

const ruleWidth = 40

// Row is one student's line in the results table.
type Row struct {
	Name  string        `json:"name" yaml:"name"`
	Marks float64       `json:"marks" yaml:"marks"`
	Grade grading.Grade `json:"grade" yaml:"grade"`
}

// Summary holds the metrics printed under the results table.
type Summary struct {
	Students     int                  `json:"students" yaml:"students"`
	Average      float64              `json:"average" yaml:"average"`
	Median       float64              `json:"median" yaml:"median"`
	Highest      float64              `json:"highest" yaml:"highest"`
	Lowest       float64              `json:"lowest" yaml:"lowest"`
	Passed       []string             `json:"passed" yaml:"passed"`
	Failed       []string             `json:"failed" yaml:"failed"`
	Distribution grading.Distribution `json:"distribution" yaml:"distribution"`
}

// Report is the full structured result of one analysis.
type Report struct {
	Rows    []Row   `json:"rows" yaml:"rows"`
	Summary Summary `json:"summary" yaml:"summary"`
}

// Rows pairs every mark with its grade in mapping order.
func Rows(scores *marks.Scores, grades *grading.Grades) []Row {
	rows := make([]Row, 0, scores.Len())
	scores.Each(func(name string, score float64) {
		grade, _ := grades.Get(name)
		rows = append(rows, Row{Name: name, Marks: score, Grade: grade})
	})
	return rows
}

// Summarize computes the metrics for scores and their grades.
func Summarize(scores *marks.Scores, grades *grading.Grades) Summary {
	passed, failed := grading.PassFail(scores)
	return Summary{
		Students:     scores.Len(),
		Average:      stats.Average(scores),
		Median:       stats.Median(scores),
		Highest:      stats.Max(scores),
		Lowest:       stats.Min(scores),
		Passed:       passed,
		Failed:       failed,
		Distribution: grading.CountDistribution(grades),
	}
}

// Build assembles the table rows and summary together.
func Build(scores *marks.Scores, grades *grading.Grades) Report {
	return Report{
		Rows:    Rows(scores, grades),
		Summary: Summarize(scores, grades),
	}
}

// DisplayResults prints the fixed-width name/marks/grade table.
func DisplayResults(w io.Writer, scores *marks.Scores, grades *grading.Grades) {
	rule := strings.Repeat("-", ruleWidth)

	fmt.Fprintf(w, "\nFinal Result Table\n")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-20s%-8s%-6s\n", "Name", "Marks", "Grade")
	fmt.Fprintln(w, rule)
	for _, row := range Rows(scores, grades) {
		fmt.Fprintf(w, "%-20s%-8.2f%-6s\n", row.Name, row.Marks, row.Grade)
	}
	fmt.Fprintln(w, rule)
}

// PrintSummary prints the metrics block.
func PrintSummary(w io.Writer, s Summary) {
	fmt.Fprintf(w, "\nSummary Metrics:\n")
	fmt.Fprintf(w, "Average: %.2f\n", s.Average)
	fmt.Fprintf(w, "Median: %.2f\n", s.Median)
	fmt.Fprintf(w, "Highest Score: %.2f\n", s.Highest)
	fmt.Fprintf(w, "Lowest Score: %.2f\n", s.Lowest)
	fmt.Fprintf(w, "Passed: %d, Failed: %d\n", len(s.Passed), len(s.Failed))
	fmt.Fprintf(w, "Grade Distribution: %s\n", s.Distribution)
}

// SummaryAndMetrics summarizes scores and prints the result.
func SummaryAndMetrics(w io.Writer, scores *marks.Scores, grades *grading.Grades) {
	PrintSummary(w, Summarize(scores, grades))
}
