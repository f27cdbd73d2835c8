package server

import (
	"github.com/shopspring/decimal"

	"github.com/npsgo/pension-calculator/internal/domain"
)

// ProjectionRequest is the JSON body of a projection call. Optional
// fields fall back to the scheme defaults when omitted. Rates are
// fractions, not percentages.
type ProjectionRequest struct {
	CurrentAge          int      `json:"current_age"`
	RetirementAge       *int     `json:"retirement_age,omitempty"`
	CurrentBalance      float64  `json:"current_balance"`
	MonthlyContribution float64  `json:"monthly_contribution"`
	AnnualReturnRate    *float64 `json:"annual_return_rate,omitempty"`
	AnnualIncreaseRate  *float64 `json:"annual_increase_rate,omitempty"`
	AnnuityRatio        *float64 `json:"annuity_ratio,omitempty"`
	AnnuityRate         *float64 `json:"annuity_rate,omitempty"`
}

// ToInput resolves the request into engine input with defaults applied.
func (r *ProjectionRequest) ToInput() domain.ProjectionInput {
	input := domain.ProjectionInput{
		CurrentAge:          r.CurrentAge,
		RetirementAge:       domain.DefaultRetirementAge,
		CurrentBalance:      decimal.NewFromFloat(r.CurrentBalance),
		MonthlyContribution: decimal.NewFromFloat(r.MonthlyContribution),
		AnnualReturnRate:    domain.DefaultAnnualReturnRate,
		AnnualIncreaseRate:  domain.DefaultAnnualIncreaseRate,
		AnnuityRatio:        domain.DefaultAnnuityRatio,
		AnnuityRate:         domain.DefaultAnnuityRate,
	}
	if r.RetirementAge != nil {
		input.RetirementAge = *r.RetirementAge
	}
	if r.AnnualReturnRate != nil {
		input.AnnualReturnRate = decimal.NewFromFloat(*r.AnnualReturnRate)
	}
	if r.AnnualIncreaseRate != nil {
		input.AnnualIncreaseRate = decimal.NewFromFloat(*r.AnnualIncreaseRate)
	}
	if r.AnnuityRatio != nil {
		input.AnnuityRatio = decimal.NewFromFloat(*r.AnnuityRatio)
	}
	if r.AnnuityRate != nil {
		input.AnnuityRate = decimal.NewFromFloat(*r.AnnuityRate)
	}
	return input
}

// ProjectionResponse carries every monetary field as a fixed two-decimal
// string so embedding clients never lose precision to float decoding.
type ProjectionResponse struct {
	RequestID          string `json:"request_id"`
	TotalCorpus        string `json:"total_corpus"`
	AnnuityCorpus      string `json:"annuity_corpus"`
	LumpSum            string `json:"lump_sum"`
	MonthlyPension     string `json:"monthly_pension"`
	FVContributions    string `json:"fv_contributions"`
	FVCurrent          string `json:"fv_current"`
	TotalInvested      string `json:"total_invested"`
	Growth             string `json:"growth"`
	YearsToRetirement  int    `json:"years_to_retirement"`
	MonthsToRetirement int    `json:"months_to_retirement"`
}

// NewProjectionResponse formats a result for the wire.
func NewProjectionResponse(requestID string, result *domain.ProjectionResult) ProjectionResponse {
	return ProjectionResponse{
		RequestID:          requestID,
		TotalCorpus:        result.TotalCorpus.StringFixed(2),
		AnnuityCorpus:      result.AnnuityCorpus.StringFixed(2),
		LumpSum:            result.LumpSum.StringFixed(2),
		MonthlyPension:     result.MonthlyPension.StringFixed(2),
		FVContributions:    result.FVContributions.StringFixed(2),
		FVCurrent:          result.FVCurrent.StringFixed(2),
		TotalInvested:      result.TotalInvested.StringFixed(2),
		Growth:             result.Growth.StringFixed(2),
		YearsToRetirement:  result.YearsToRetirement,
		MonthsToRetirement: result.MonthsToRetirement,
	}
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
