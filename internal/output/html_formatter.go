package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/npsgo/pension-calculator/internal/calculation"
	"github.com/npsgo/pension-calculator/internal/domain"
)

// HTMLFormatter produces a self-contained printable HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"rupees":  FormatRupees,
	"compact": FormatCompact,
	"words":   func(d decimal.Decimal) string { return FormatWords(d.Round(2)) },
	"pct":     FormatPercentage,
}).Parse(htmlTemplateSource))

// htmlReportData adds derived display figures to the report.
type htmlReportData struct {
	*domain.Report
	PensionPV      decimal.Decimal
	PensionPVYears int
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	data := htmlReportData{
		Report: report,
		PensionPV: calculation.PensionPresentValue(
			report.Result.MonthlyPension, report.Input.AnnualReturnRate, pensionPVYears),
		PensionPVYears: pensionPVYears,
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
