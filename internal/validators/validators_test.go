package validators

import (
	"math"
	"testing"
	"time"

	"github.com/cloud-ru/pathwise-go/internal/config"
	"github.com/cloud-ru/pathwise-go/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		MaxPrincipal:    1e9,
		MaxContribution: 1e8,
		MaxMonths:       600,
		MaxRate:         200,
		MaxBalanceCap:   1e12,
	}
}

func TestValidators(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name      string
		validator func(*config.Config, interface{}) error
		value     interface{}
		wantError bool
	}{
		{
			name:      "valid principal",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     1000000.0,
			wantError: false,
		},
		{
			name:      "zero principal is allowed",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     0.0,
			wantError: false,
		},
		{
			name:      "invalid principal negative",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     -1000.0,
			wantError: true,
		},
		{
			name:      "invalid principal NaN",
			validator: func(cfg *config.Config, v interface{}) error { return CheckPrincipal(cfg, v.(float64)) },
			value:     math.NaN(),
			wantError: true,
		},
		{
			name:      "valid rate",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     12.0,
			wantError: false,
		},
		{
			name:      "invalid rate negative",
			validator: func(cfg *config.Config, v interface{}) error { return CheckRate(cfg, v.(float64)) },
			value:     -1.0,
			wantError: true,
		},
		{
			name:      "valid terms",
			validator: func(cfg *config.Config, v interface{}) error { return CheckTerms(cfg, v.(int)) },
			value:     360,
			wantError: false,
		},
		{
			name:      "invalid terms too long",
			validator: func(cfg *config.Config, v interface{}) error { return CheckTerms(cfg, v.(int)) },
			value:     601,
			wantError: true,
		},
		{
			name:      "valid balance",
			validator: func(cfg *config.Config, v interface{}) error { return CheckBalance(cfg, v.(float64)) },
			value:     100000.0,
			wantError: false,
		},
		{
			name:      "valid contribution",
			validator: func(cfg *config.Config, v interface{}) error { return CheckContribution(cfg, v.(float64)) },
			value:     10000.0,
			wantError: false,
		},
		{
			name:      "projected value over cap",
			validator: func(cfg *config.Config, v interface{}) error { return CheckProjectedValue(cfg, v.(float64)) },
			value:     2e12,
			wantError: true,
		},
		{
			name:      "projected value infinite",
			validator: func(cfg *config.Config, v interface{}) error { return CheckProjectedValue(cfg, v.(float64)) },
			value:     math.Inf(1),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator(cfg, tt.value)
			if (err != nil) != tt.wantError {
				t.Errorf("validator error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateLoan(t *testing.T) {
	cfg := testConfig()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	valid := models.Loan{Principal: 100000, InterestRate: 3.5, StartDate: start, EndDate: start.AddDate(30, -1, 0)}
	if err := ValidateLoan(cfg, valid); err != nil {
		t.Errorf("expected valid loan, got %v", err)
	}

	tooLong := valid
	tooLong.EndDate = start.AddDate(60, 0, 0)
	if err := ValidateLoan(cfg, tooLong); err == nil {
		t.Error("expected error for 721-term loan")
	}

	negativeRate := valid
	negativeRate.InterestRate = -2
	if err := ValidateLoan(cfg, negativeRate); err == nil {
		t.Error("expected error for negative rate")
	}
}

func TestValidateInvestment(t *testing.T) {
	cfg := testConfig()

	valid := models.Investment{
		StartingBalance:       1000,
		AverageReturnRate:     7,
		CompoundingPeriod:     models.Monthly,
		RecurringContribution: models.Float(100),
		ContributionFrequency: models.FrequencyPtr(models.Quarterly),
	}
	if err := ValidateInvestment(cfg, valid); err != nil {
		t.Errorf("expected valid investment, got %v", err)
	}

	badPeriod := valid
	badPeriod.CompoundingPeriod = "weekly"
	if err := ValidateInvestment(cfg, badPeriod); err == nil {
		t.Error("expected error for unknown compounding period")
	}

	badStepUp := valid
	badStepUp.ContributionStepUpType = models.StepUpTypePtr("double")
	if err := ValidateInvestment(cfg, badStepUp); err == nil {
		t.Error("expected error for unknown step-up type")
	}

	negativeContribution := valid
	negativeContribution.RecurringContribution = models.Float(-5)
	if err := ValidateInvestment(cfg, negativeContribution); err == nil {
		t.Error("expected error for negative contribution")
	}

	negativeRate := valid
	negativeRate.AverageReturnRate = -0.5
	if err := ValidateInvestment(cfg, negativeRate); err == nil {
		t.Error("expected error for negative return rate")
	}

	zeroRate := valid
	zeroRate.AverageReturnRate = 0
	if err := ValidateInvestment(cfg, zeroRate); err != nil {
		t.Errorf("expected zero return rate to be valid, got %v", err)
	}
}
