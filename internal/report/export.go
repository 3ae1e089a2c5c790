package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/resume-screener/internal/scoring"
	"github.com/spigell/resume-screener/internal/screening"
	"github.com/spigell/resume-screener/internal/utils"
)

// Columns of the detailed breakdown, in output order. The names match the
// mapstructure tags of scoring.Record.
var Columns = []string{
	"Resume Name",
	"Overall Score",
	"Keyword Match Score",
	"Keywords Matched",
	"Total Keywords in JD",
	"Education Score",
	"Experience Score",
	"Technical Skills Score",
	"Matched Keywords",
	"Resume Length (chars)",
}

// Outputs are the optional export destinations of a run. Empty paths are skipped.
type Outputs struct {
	JSON string `mapstructure:"json" validate:"omitempty,endswith=.json"`
	CSV  string `mapstructure:"csv" validate:"omitempty,endswith=.csv"`
	XLSX string `mapstructure:"xlsx" validate:"omitempty,endswith=.xlsx"`
	PDF  string `mapstructure:"pdf" validate:"omitempty,endswith=.pdf"`
}

type document struct {
	RunID          string            `json:"run_id"`
	JobDescription string            `json:"job_description"`
	Summary        screening.Summary `json:"summary"`
	Results        []scoring.Record  `json:"results"`
}

// WriteJSON writes the results, their summary and the job description as one JSON document.
func WriteJSON(w io.Writer, results *screening.Results, summary screening.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document{
		RunID:          results.RunID,
		JobDescription: results.Reference,
		Summary:        summary,
		Results:        results.Records,
	})
}

// Row turns a record into a column map keyed by Columns.
func Row(record scoring.Record) (map[string]interface{}, error) {
	row := map[string]interface{}{}
	if err := mapstructure.Decode(record, &row); err != nil {
		return nil, fmt.Errorf("decoding record %s: %w", record.CandidateID, err)
	}
	return row, nil
}

// WriteCSV writes the detailed breakdown, one candidate per line in rank order.
func WriteCSV(w io.Writer, results *screening.Results) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}

	for _, record := range results.Records {
		row, err := Row(record)
		if err != nil {
			return err
		}

		line := make([]string, 0, len(Columns))
		for _, column := range Columns {
			line = append(line, formatCell(row[column]))
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCell(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case []string:
		return utils.JoinOrNone(value, ", ")
	default:
		return fmt.Sprint(value)
	}
}

// WriteFiles writes every configured export and returns the paths written.
func WriteFiles(out Outputs, results *screening.Results, summary screening.Summary) ([]string, error) {
	writers := []struct {
		path  string
		write func(io.Writer) error
	}{
		{out.JSON, func(w io.Writer) error { return WriteJSON(w, results, summary) }},
		{out.CSV, func(w io.Writer) error { return WriteCSV(w, results) }},
		{out.XLSX, func(w io.Writer) error { return WriteXLSX(w, results, summary) }},
		{out.PDF, func(w io.Writer) error { return WritePDF(w, results, summary) }},
	}

	var written []string
	for _, writer := range writers {
		if writer.path == "" {
			continue
		}
		if err := writeFile(writer.path, writer.write); err != nil {
			return written, fmt.Errorf("writing %s: %w", writer.path, err)
		}
		written = append(written, writer.path)
	}
	return written, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
