package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/npsgo/pension-calculator/internal/calculation"
	"github.com/npsgo/pension-calculator/internal/domain"
)

const barWidth = 40

// pensionPVYears is the horizon used for the present-value annotation on
// the distribution chart.
const pensionPVYears = 25

// writeBarChart renders a horizontal bar chart of the invested amount,
// growth, corpus and monthly pension, scaled to the largest value.
func writeBarChart(buf *bytes.Buffer, report *domain.Report) {
	r := report.Result
	bars := []struct {
		label string
		value decimal.Decimal
	}{
		{"Total Invested", r.TotalInvested},
		{"Growth", r.Growth},
		{"Total Corpus", r.TotalCorpus},
		{"Monthly Pension", r.MonthlyPension},
	}

	max := decimal.Zero
	for _, b := range bars {
		if b.value.GreaterThan(max) {
			max = b.value
		}
	}

	fmt.Fprintln(buf, "INVESTMENT GROWTH VS MONTHLY PENSION")
	fmt.Fprintln(buf, "------------------------------------")
	for _, b := range bars {
		n := 0
		if max.IsPositive() && b.value.IsPositive() {
			n = int(b.value.Div(max).Mul(decimal.NewFromInt(barWidth)).IntPart())
			if n == 0 {
				n = 1
			}
		}
		fmt.Fprintf(buf, "%-16s %-*s %s\n", b.label, barWidth, strings.Repeat("█", n), FormatCompact(b.value))
	}
}

// writeDistribution renders the lump-sum / annuity-corpus split with the
// share each takes of the corpus, annotated with the present value of the
// pension stream over a 25-year payout.
func writeDistribution(buf *bytes.Buffer, report *domain.Report) {
	r := report.Result

	fmt.Fprintln(buf, "CORPUS DISTRIBUTION")
	fmt.Fprintln(buf, "-------------------")
	hundred := decimal.NewFromInt(100)
	for _, seg := range []struct {
		label string
		value decimal.Decimal
	}{
		{"Lump Sum", r.LumpSum},
		{"Annuity", r.AnnuityCorpus},
	} {
		share := decimal.Zero
		if r.TotalCorpus.IsPositive() {
			share = seg.value.Div(r.TotalCorpus).Mul(hundred)
		}
		fmt.Fprintf(buf, "%-9s %6s%%  %s\n", seg.label, share.StringFixed(1), FormatCompact(seg.value))
	}

	pv := calculation.PensionPresentValue(r.MonthlyPension, report.Input.AnnualReturnRate, pensionPVYears)
	fmt.Fprintf(buf, "Monthly pension %s ~ %s over %d years in today's terms\n",
		FormatCompact(r.MonthlyPension), FormatCompact(pv), pensionPVYears)
}
