// Package report renders screening results for people: console tables, and
// JSON, CSV and XLSX files. Nothing here changes a score.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/spigell/resume-screener/internal/scoring"
	"github.com/spigell/resume-screener/internal/screening"
	"github.com/spigell/resume-screener/internal/utils"
)

// Console writes human readable reports to out.
type Console struct {
	out io.Writer
	p   *message.Printer
}

func NewConsole(out io.Writer) *Console {
	return &Console{
		out: out,
		p:   message.NewPrinter(language.English),
	}
}

// TextStats returns the number of characters and whitespace separated words in text.
func TextStats(text string) (chars, words int) {
	return utf8.RuneCountInString(text), len(strings.Fields(text))
}

func (c *Console) JobDescription(text string) {
	chars, words := TextStats(text)
	c.p.Fprintf(c.out, "Job description: %d characters, %d words\n", chars, words)
}

// Keywords prints the keywords extracted from a job description.
func (c *Console) Keywords(keywords scoring.KeywordSet) {
	c.p.Fprintf(c.out, "Keywords (%d):\n", keywords.Len())
	for _, keyword := range keywords.Items() {
		fmt.Fprintf(c.out, "  %s\n", keyword)
	}
}

func (c *Console) Summary(s screening.Summary) error {
	fmt.Fprintln(c.out, "Screening summary")

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	c.p.Fprintf(w, "  Total resumes:\t%d\n", s.Count)
	c.p.Fprintf(w, "  Average score:\t%.2f\n", s.Mean)
	c.p.Fprintf(w, "  Highest score:\t%.2f\n", s.Max)
	c.p.Fprintf(w, "  Lowest score:\t%.2f\n", s.Min)
	c.p.Fprintf(w, "  %s:\t%d\n", screening.BandStrong, s.Strong)
	c.p.Fprintf(w, "  %s:\t%d\n", screening.BandModerate, s.Moderate)
	c.p.Fprintf(w, "  %s:\t%d\n", screening.BandWeak, s.Weak)
	return w.Flush()
}

// Table prints the top n ranked candidates. A negative n prints all of them.
func (c *Console) Table(results *screening.Results, n int) error {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tNAME\tSCORE\tKEYWORDS\tMATCH %")
	for i, record := range results.Top(n) {
		c.p.Fprintf(w, "%d\t%s\t%.2f\t%d/%d\t%.2f\n",
			i+1,
			record.CandidateID,
			record.Overall,
			record.KeywordsMatched,
			record.KeywordsTotal,
			record.KeywordMatch,
		)
	}
	return w.Flush()
}

// Details prints the score breakdown of one candidate.
func (c *Console) Details(record scoring.Record) error {
	c.p.Fprintf(c.out, "%s: %.2f (%s)\n", record.CandidateID, record.Overall, screening.BandOf(record.Overall))

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	for _, component := range record.Components() {
		c.p.Fprintf(w, "  %s:\t%.1f%%\n", component.Name, component.Percent)
	}
	c.p.Fprintf(w, "  Keywords matched:\t%d/%d\n", record.KeywordsMatched, record.KeywordsTotal)
	c.p.Fprintf(w, "  Resume length:\t%d characters\n", record.Length)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "  Matched keywords: %s\n", utils.JoinOrNone(record.MatchedKeywords, ", "))
	return nil
}
