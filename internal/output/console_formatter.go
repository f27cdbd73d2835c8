package output

import (
	"bytes"
	"fmt"

	"github.com/npsgo/pension-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Result

	fmt.Fprintln(&buf, "NPS PENSION PROJECTION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Years to Retirement:  %d (%d months)\n", r.YearsToRetirement, r.MonthsToRetirement)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total Corpus at Retirement: %s\n", FormatRupees(r.TotalCorpus))
	fmt.Fprintf(&buf, "  %s\n", FormatWords(r.TotalCorpus.Round(2)))
	fmt.Fprintf(&buf, "Annuity Corpus:             %s\n", FormatRupees(r.AnnuityCorpus))
	fmt.Fprintf(&buf, "Lump Sum Withdrawal:        %s\n", FormatRupees(r.LumpSum))
	fmt.Fprintf(&buf, "Estimated Monthly Pension:  %s (annuity rate %s)\n",
		FormatRupees(r.MonthlyPension), FormatPercentage(report.Input.AnnuityRate))
	return buf.Bytes(), nil
}
