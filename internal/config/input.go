package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/npsgo/pension-calculator/internal/domain"
)

// InputParser handles parsing of saver profile files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a saver profile from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.SaverProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.SaverProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// ValidateProfile validates the loaded saver profile
func (ip *InputParser) ValidateProfile(profile *domain.SaverProfile) error {
	if profile.Saver.CurrentAge == 0 && profile.Saver.BirthDate == nil {
		return fmt.Errorf("either current_age or birth_date is required")
	}
	if profile.Saver.CurrentAge < 0 {
		return fmt.Errorf("current age cannot be negative")
	}
	if profile.Saver.BirthDate != nil && profile.Saver.BirthDate.After(time.Now()) {
		return fmt.Errorf("birth date cannot be in the future")
	}
	if profile.Saver.RetirementAge < 0 {
		return fmt.Errorf("retirement age cannot be negative")
	}
	if profile.Saver.CurrentBalance.IsNegative() {
		return fmt.Errorf("current balance cannot be negative")
	}
	if profile.Saver.MonthlyContribution.IsNegative() {
		return fmt.Errorf("monthly contribution cannot be negative")
	}

	return ip.validateAssumptions(&profile.Assumptions)
}

// validateAssumptions validates the optional scheme assumptions
func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	one := decimal.NewFromInt(1)

	if a.AnnualReturnRate != nil {
		if a.AnnualReturnRate.IsNegative() {
			return fmt.Errorf("annual return rate cannot be negative")
		}
		if a.AnnualReturnRate.GreaterThan(one) {
			return fmt.Errorf("annual return rate must be a fraction, not a percentage")
		}
	}
	if a.AnnualIncreaseRate != nil {
		if a.AnnualIncreaseRate.IsNegative() {
			return fmt.Errorf("annual increase rate cannot be negative")
		}
		if a.AnnualIncreaseRate.GreaterThan(one) {
			return fmt.Errorf("annual increase rate must be a fraction, not a percentage")
		}
	}
	if a.AnnuityRatio != nil {
		if a.AnnuityRatio.IsNegative() || a.AnnuityRatio.GreaterThan(one) {
			return fmt.Errorf("annuity ratio must be between 0 and 1")
		}
	}
	if a.AnnuityRate != nil {
		if a.AnnuityRate.IsNegative() {
			return fmt.Errorf("annuity rate cannot be negative")
		}
		if a.AnnuityRate.GreaterThan(one) {
			return fmt.Errorf("annuity rate must be a fraction, not a percentage")
		}
	}

	return nil
}
