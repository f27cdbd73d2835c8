package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npsgo/pension-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report: summary,
// charts and the yearly accumulation table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	in := report.Input
	r := report.Result

	fmt.Fprintln(&buf, "=================================================================")
	fmt.Fprintln(&buf, "NPS PENSION PROJECTION - DETAILED REPORT")
	fmt.Fprintln(&buf, "=================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "ASSUMPTIONS:")
	fmt.Fprintf(&buf, "- Current age %d, retirement age %d\n", in.CurrentAge, in.RetirementAge)
	fmt.Fprintf(&buf, "- Expected annual return: %s\n", FormatPercentage(in.AnnualReturnRate))
	if in.AnnualIncreaseRate.IsPositive() {
		fmt.Fprintf(&buf, "- Annual contribution increase: %s\n", FormatPercentage(in.AnnualIncreaseRate))
	}
	fmt.Fprintf(&buf, "- Annuity ratio %s at annuity rate %s\n",
		FormatPercentage(in.AnnuityRatio), FormatPercentage(in.AnnuityRate))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	rows := []struct {
		label string
		value string
		words string
	}{
		{"Total Corpus at Retirement", FormatRupees(r.TotalCorpus), FormatWords(r.TotalCorpus.Round(2))},
		{"Annuity Corpus", FormatRupees(r.AnnuityCorpus), FormatWords(r.AnnuityCorpus.Round(2))},
		{"Lump Sum Withdrawal", FormatRupees(r.LumpSum), FormatWords(r.LumpSum.Round(2))},
		{"Estimated Monthly Pension", FormatRupees(r.MonthlyPension), FormatWords(r.MonthlyPension.Round(2))},
		{"Total Invested", FormatRupees(r.TotalInvested), FormatWords(r.TotalInvested.Round(2))},
		{"Growth", FormatRupees(r.Growth), FormatWords(r.Growth.Round(2))},
	}
	for _, row := range rows {
		fmt.Fprintf(&buf, "%-28s %s\n", row.label+":", row.value)
		fmt.Fprintf(&buf, "%-28s (%s)\n", "", row.words)
	}
	fmt.Fprintln(&buf)

	writeBarChart(&buf, report)
	fmt.Fprintln(&buf)
	writeDistribution(&buf, report)

	if len(report.Schedule) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "YEARLY PROJECTION")
		fmt.Fprintln(&buf, "-----------------")
		fmt.Fprintf(&buf, "%-6s %-5s %-16s %s\n", "Year", "Age", "Corpus", "Monthly Contribution")
		for _, y := range report.Schedule {
			fmt.Fprintf(&buf, "%-6d %-5d %-16s %s\n", y.Year, y.Age, FormatCompact(y.Corpus), FormatRupees(y.MonthlyContribution))
		}
	}

	return buf.Bytes(), nil
}
