// Package importer reads marks from delimited text files or Excel workbooks
// and writes graded reports back out in the same formats.
package importer

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/gradebook-cli/gradebook/internal/grading"
	"github.com/gradebook-cli/gradebook/internal/marks"
)

// ErrNotFound is returned when the input file does not exist.
var ErrNotFound = errors.New("file not found")

// ReportHeader is the first row of every exported report.
var ReportHeader = []string{"Name", "Marks", "Grade"}

// Format identifies a file layout.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFor picks the file layout from the path's extension. Anything that
// is not an Excel workbook is treated as comma-delimited text.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// SkippedRow describes an input row that could not be used.
type SkippedRow struct {
	Line   int      `json:"line" yaml:"line"`
	Fields []string `json:"fields" yaml:"fields"`
	Reason string   `json:"reason" yaml:"reason"`
}

func (r SkippedRow) String() string {
	return fmt.Sprintf("Skipping invalid row %d: %q (%s)", r.Line, r.Fields, r.Reason)
}

// Result is the outcome of reading an input file.
type Result struct {
	Scores  *marks.Scores
	Skipped []SkippedRow
}

// ReadScores loads name/score rows from path. The first row is a header and
// is discarded. Empty lines are ignored, and rows without a numeric score are
// reported in Result.Skipped while reading continues.
func ReadScores(path string) (Result, error) {
	var (
		res Result
		err error
	)

	switch FormatFor(path) {
	case FormatXLSX:
		res, err = readWorkbook(path)
	default:
		res, err = readDelimited(path)
	}

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Scores: marks.New()}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Result{Scores: marks.New()}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	log.Debug().
		Str("file", path).
		Int("students", res.Scores.Len()).
		Int("skipped", len(res.Skipped)).
		Msg("Loaded marks")

	return res, nil
}

// rowCollector applies the shared row rules to each data row.
type rowCollector struct {
	res Result
}

func newRowCollector() *rowCollector {
	return &rowCollector{res: Result{Scores: marks.New()}}
}

func (c *rowCollector) add(line int, row []string) {
	if isBlank(row) {
		return
	}

	name := strings.TrimSpace(row[0])
	if len(row) < 2 {
		c.skip(line, row, "missing score")
		return
	}

	score, err := marks.ParseScore(row[1])
	if err != nil {
		c.skip(line, row, err.Error())
		return
	}

	c.res.Scores.Set(name, score)
}

func (c *rowCollector) skip(line int, row []string, reason string) {
	fields := make([]string, len(row))
	copy(fields, row)
	c.res.Skipped = append(c.res.Skipped, SkippedRow{Line: line, Fields: fields, Reason: reason})

	log.Debug().
		Int("line", line).
		Strs("fields", fields).
		Str("reason", reason).
		Msg("Skipped row")
}

// isBlank reports whether row is an empty line. A row made only of
// delimiters still has fields and is reported as invalid instead.
func isBlank(row []string) bool {
	return len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "")
}

// ExportReport writes the header and one row per student to path, marks
// formatted to two decimals.
func ExportReport(path string, scores *marks.Scores, grades *grading.Grades) error {
	var err error
	switch FormatFor(path) {
	case FormatXLSX:
		err = writeWorkbook(path, scores, grades)
	default:
		err = writeDelimited(path, scores, grades)
	}
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", path, err)
	}

	log.Debug().
		Str("file", path).
		Int("students", scores.Len()).
		Msg("Exported report")

	return nil
}

func reportRows(scores *marks.Scores, grades *grading.Grades) [][]string {
	rows := make([][]string, 0, scores.Len())
	scores.Each(func(name string, score float64) {
		grade, _ := grades.Get(name)
		rows = append(rows, []string{name, fmt.Sprintf("%.2f", score), string(grade)})
	})
	return rows
}
