package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/npsgo/pension-calculator/internal/domain"
)

// CSVFormatter exports the summary row followed by the yearly schedule.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	r := report.Result
	if err := w.Write([]string{"TotalCorpus", "AnnuityCorpus", "LumpSum", "MonthlyPension", "TotalInvested", "Growth", "YearsToRetirement", "MonthsToRetirement"}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{
		r.TotalCorpus.StringFixed(2),
		r.AnnuityCorpus.StringFixed(2),
		r.LumpSum.StringFixed(2),
		r.MonthlyPension.StringFixed(2),
		r.TotalInvested.StringFixed(2),
		r.Growth.StringFixed(2),
		strconv.Itoa(r.YearsToRetirement),
		strconv.Itoa(r.MonthsToRetirement),
	}); err != nil {
		return nil, err
	}

	if len(report.Schedule) > 0 {
		if err := w.Write([]string{"Year", "Age", "Corpus", "MonthlyContribution"}); err != nil {
			return nil, err
		}
		for _, y := range report.Schedule {
			row := []string{
				strconv.Itoa(y.Year),
				strconv.Itoa(y.Age),
				y.Corpus.StringFixed(2),
				y.MonthlyContribution.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
