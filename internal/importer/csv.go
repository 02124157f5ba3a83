package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/gradebook-cli/gradebook/internal/grading"
	"github.com/gradebook-cli/gradebook/internal/marks"
)

func readDelimited(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	return parseDelimited(f)
}

func parseDelimited(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	collector := newRowCollector()

	// Header
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return collector.res, nil
		}
		var parseErr *csv.ParseError
		if !errors.As(err, &parseErr) {
			return Result{}, err
		}
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				collector.skip(parseErr.StartLine, row, parseErr.Err.Error())
				continue
			}
			return Result{}, err
		}
		line, _ := reader.FieldPos(0)
		collector.add(line, row)
	}

	return collector.res, nil
}

func writeDelimited(path string, scores *marks.Scores, grades *grading.Grades) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(ReportHeader); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(reportRows(scores, grades)); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
