package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/spigell/resume-screener/internal/screening"
)

// Workbook sheet names.
const (
	SheetSummary        = "Summary"
	SheetDetailed       = "Detailed Breakdown"
	SheetStatistics     = "Statistics"
	SheetJobDescription = "Job Description"
)

var summaryColumns = []string{"Resume Name", "Overall Score", "Keywords Matched", "Total Keywords in JD", "Keyword Match Score"}

// WriteXLSX writes a workbook with the ranking, the detailed breakdown, the
// summary statistics and the job description on separate sheets.
func WriteXLSX(w io.Writer, results *screening.Results, summary screening.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	for _, sheet := range []string{SheetDetailed, SheetStatistics, SheetJobDescription} {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	if err := writeSummarySheet(f, results); err != nil {
		return fmt.Errorf("%s sheet: %w", SheetSummary, err)
	}
	if err := writeDetailedSheet(f, results); err != nil {
		return fmt.Errorf("%s sheet: %w", SheetDetailed, err)
	}
	if err := writeStatisticsSheet(f, summary); err != nil {
		return fmt.Errorf("%s sheet: %w", SheetStatistics, err)
	}
	if err := writeJobDescriptionSheet(f, results.Reference); err != nil {
		return fmt.Errorf("%s sheet: %w", SheetJobDescription, err)
	}

	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func header(columns []string) []interface{} {
	values := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		values = append(values, column)
	}
	return values
}

func writeSummarySheet(f *excelize.File, results *screening.Results) error {
	if err := setRow(f, SheetSummary, 1, header(summaryColumns)); err != nil {
		return err
	}

	for i, record := range results.Records {
		values := []interface{}{
			record.CandidateID,
			record.Overall,
			record.KeywordsMatched,
			record.KeywordsTotal,
			record.KeywordMatch,
		}
		if err := setRow(f, SheetSummary, i+2, values); err != nil {
			return err
		}
	}

	return f.SetColWidth(SheetSummary, "A", "A", 40)
}

func writeDetailedSheet(f *excelize.File, results *screening.Results) error {
	if err := setRow(f, SheetDetailed, 1, header(Columns)); err != nil {
		return err
	}

	for i, record := range results.Records {
		row, err := Row(record)
		if err != nil {
			return err
		}

		values := make([]interface{}, 0, len(Columns))
		for _, column := range Columns {
			if keywords, ok := row[column].([]string); ok {
				values = append(values, formatCell(keywords))
				continue
			}
			values = append(values, row[column])
		}
		if err := setRow(f, SheetDetailed, i+2, values); err != nil {
			return err
		}
	}

	return nil
}

func writeStatisticsSheet(f *excelize.File, summary screening.Summary) error {
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Resumes", summary.Count},
		{"Average Score", summary.Mean},
		{"Highest Score", summary.Max},
		{"Lowest Score", summary.Min},
		{"Resumes " + string(screening.BandStrong), summary.Strong},
		{"Resumes " + string(screening.BandModerate), summary.Moderate},
		{"Resumes " + string(screening.BandWeak), summary.Weak},
	}

	for i, values := range rows {
		if err := setRow(f, SheetStatistics, i+1, values); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetStatistics, "A", "A", 24)
}

func writeJobDescriptionSheet(f *excelize.File, reference string) error {
	if err := setRow(f, SheetJobDescription, 1, []interface{}{"Job Description"}); err != nil {
		return err
	}
	if err := f.SetCellStr(SheetJobDescription, "A2", reference); err != nil {
		return err
	}
	return f.SetColWidth(SheetJobDescription, "A", "A", 100)
}
