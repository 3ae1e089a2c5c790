package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/spigell/resume-screener/internal/scoring"
	"github.com/spigell/resume-screener/internal/screening"
	"github.com/spigell/resume-screener/internal/utils"
)

const (
	pdfTopCandidates  = 10
	pdfNameLength     = 40
	pdfKeywordsLength = 200

	pdfRowHeight = 7.0
)

type pdfColor struct{ r, g, b int }

var (
	pdfTitleColor  = pdfColor{0x1f, 0x77, 0xb4}
	pdfHeaderColor = pdfColor{0x34, 0x49, 0x5e}
	pdfBodyColor   = pdfColor{0xee, 0xee, 0xee}
)

type pdfReport struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

// WritePDF writes a printable report: summary statistics, the top ten
// candidates and a score breakdown for every candidate.
func WritePDF(w io.Writer, results *screening.Results, summary screening.Summary) error {
	doc := fpdf.New("P", "mm", "Letter", "")
	doc.SetMargins(15, 13, 15)
	doc.SetAutoPageBreak(true, 13)
	doc.SetTitle("Resume Screening Report", true)

	r := &pdfReport{
		doc: doc,
		// Core fonts are cp1252.
		tr: doc.UnicodeTranslatorFromDescriptor(""),
	}

	doc.AddPage()
	r.title(time.Now())
	r.summary(summary)
	r.top(results.Top(pdfTopCandidates))

	doc.AddPage()
	r.heading("Detailed Candidate Analysis")
	for _, record := range results.Records {
		r.details(record)
	}

	if err := doc.Error(); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return doc.Output(w)
}

func (r *pdfReport) title(generated time.Time) {
	r.doc.SetFont("Helvetica", "B", 24)
	r.doc.SetTextColor(pdfTitleColor.r, pdfTitleColor.g, pdfTitleColor.b)
	r.doc.CellFormat(0, 14, "Resume Screening Report", "", 1, "C", false, 0, "")

	r.doc.SetFont("Helvetica", "", 10)
	r.doc.SetTextColor(0, 0, 0)
	r.doc.CellFormat(0, 8, "Generated on: "+generated.Format("January 02, 2006 at 03:04 PM"), "", 1, "L", false, 0, "")
	r.doc.Ln(4)
}

func (r *pdfReport) heading(text string) {
	r.doc.SetFont("Helvetica", "B", 14)
	r.doc.SetTextColor(0x2c, 0x3e, 0x50)
	r.doc.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
	r.doc.SetTextColor(0, 0, 0)
}

func (r *pdfReport) table(widths []float64, header []string, rows [][]string, headerColor pdfColor, align string) {
	r.doc.SetFont("Helvetica", "B", 10)
	r.doc.SetFillColor(headerColor.r, headerColor.g, headerColor.b)
	r.doc.SetTextColor(255, 255, 255)
	for i, cell := range header {
		r.doc.CellFormat(widths[i], pdfRowHeight, cell, "1", 0, align, true, 0, "")
	}
	r.doc.Ln(-1)

	r.doc.SetFont("Helvetica", "", 10)
	r.doc.SetFillColor(pdfBodyColor.r, pdfBodyColor.g, pdfBodyColor.b)
	r.doc.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, cell := range row {
			r.doc.CellFormat(widths[i], pdfRowHeight, r.tr(cell), "1", 0, align, true, 0, "")
		}
		r.doc.Ln(-1)
	}
	r.doc.Ln(6)
}

func (r *pdfReport) summary(s screening.Summary) {
	r.heading("Summary Statistics")
	r.table([]float64{90, 50}, []string{"Metric", "Value"}, [][]string{
		{"Total Resumes Analyzed", fmt.Sprint(s.Count)},
		{"Average Score", fmt.Sprintf("%.2f", s.Mean)},
		{"Highest Score", fmt.Sprintf("%.2f", s.Max)},
		{"Lowest Score", fmt.Sprintf("%.2f", s.Min)},
		{"Resumes Scored " + string(screening.BandStrong), fmt.Sprint(s.Strong)},
		{"Resumes Scored " + string(screening.BandModerate), fmt.Sprint(s.Moderate)},
		{"Resumes Scored " + string(screening.BandWeak), fmt.Sprint(s.Weak)},
	}, pdfTitleColor, "L")
}

func (r *pdfReport) top(records []scoring.Record) {
	rows := make([][]string, 0, len(records))
	for i, record := range records {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			truncateRunes(record.CandidateID, pdfNameLength),
			fmt.Sprintf("%.2f", record.Overall),
			fmt.Sprint(record.KeywordsMatched),
			fmt.Sprintf("%.2f", record.KeywordMatch),
		})
	}

	r.heading(fmt.Sprintf("Top %d Candidates", pdfTopCandidates))
	r.table([]float64{13, 85, 22, 25, 22}, []string{"Rank", "Resume Name", "Score", "Keywords", "Match %"}, rows, pdfTitleColor, "C")
}

func (r *pdfReport) details(record scoring.Record) {
	r.doc.SetFont("Helvetica", "B", 12)
	r.doc.CellFormat(0, 8, r.tr(record.CandidateID), "", 1, "L", false, 0, "")

	r.table([]float64{65, 50}, []string{"Metric", "Score/Value"}, [][]string{
		{"Overall Score", fmt.Sprintf("%.2f/100", record.Overall)},
		{"Keyword Match Score", fmt.Sprintf("%.2f%%", record.KeywordMatch)},
		{"Keywords Matched", fmt.Sprintf("%d/%d", record.KeywordsMatched, record.KeywordsTotal)},
		{"Education Score", fmt.Sprintf("%d/%d", record.Education, scoring.MaxEducation)},
		{"Experience Score", fmt.Sprintf("%d/%d", record.Experience, scoring.MaxExperience)},
		{"Technical Skills Score", fmt.Sprintf("%d/%d", record.Technical, scoring.MaxTechnical)},
	}, pdfHeaderColor, "L")

	if len(record.MatchedKeywords) == 0 {
		return
	}

	keywords := utils.TruncateForLog(strings.Join(record.MatchedKeywords, ", "), pdfKeywordsLength)
	r.doc.SetFont("Helvetica", "", 10)
	r.doc.MultiCell(0, 5, r.tr("Keywords: "+keywords), "", "L", false)
	r.doc.Ln(4)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
