package importer

import (
	"errors"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/gradebook-cli/gradebook/internal/grading"
	"github.com/gradebook-cli/gradebook/internal/marks"
)

const reportSheet = "Grades"

// twoDecimals is excelize's built-in "0.00" number format.
const twoDecimals = 2

func readWorkbook(path string) (Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Str("file", path).Msg("Error closing workbook")
		}
	}()

	// Marks are read from the first sheet
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return Result{}, errors.New("workbook does not contain any sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return Result{}, err
	}

	collector := newRowCollector()
	for i, row := range rows {
		if i == 0 {
			continue
		}
		collector.add(i+1, row)
	}

	return collector.res, nil
}

func writeWorkbook(path string, scores *marks.Scores, grades *grading.Grades) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), reportSheet); err != nil {
		return err
	}

	header := make([]interface{}, len(ReportHeader))
	for i, h := range ReportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return err
	}

	row := 2
	var setErr error
	scores.Each(func(name string, score float64) {
		if setErr != nil {
			return
		}
		grade, _ := grades.Get(name)
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			setErr = err
			return
		}
		values := []interface{}{name, math.Round(score*100) / 100, string(grade)}
		setErr = f.SetSheetRow(reportSheet, cell, &values)
		row++
	})
	if setErr != nil {
		return setErr
	}

	if scores.Len() > 0 {
		style, err := f.NewStyle(&excelize.Style{NumFmt: twoDecimals})
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(2, row-1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(reportSheet, "B2", last, style); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
