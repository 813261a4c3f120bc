package validators

import (
	"fmt"

	"github.com/cloud-ru/pathwise-go/internal/calendar"
	"github.com/cloud-ru/pathwise-go/internal/config"
	"github.com/cloud-ru/pathwise-go/internal/models"
	"github.com/cloud-ru/pathwise-go/pkg/utils"
)

// ValidatePositiveNumber проверяет, что число положительное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: value is not a finite number", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: value must be >= %g", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: value is too large (> %g)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: value must be in range [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("Principal", principal, 0.0, cfg.MaxPrincipal)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("InterestRate", rate, 0.0, cfg.MaxRate)
}

// CheckTerms проверяет срок в месяцах
func CheckTerms(cfg *config.Config, terms int) error {
	return ValidateIntRange("terms", terms, 1, cfg.MaxMonths)
}

// CheckBalance проверяет начальный баланс инвестиции
func CheckBalance(cfg *config.Config, amount float64) error {
	return ValidatePositiveNumber("StartingBalance", amount, 0.0, cfg.MaxPrincipal)
}

// CheckContribution проверяет регулярный взнос
func CheckContribution(cfg *config.Config, contribution float64) error {
	return ValidatePositiveNumber("RecurringContribution", contribution, 0.0, cfg.MaxContribution)
}

func CheckFrequency(name string, f models.Frequency) error {
	if !f.Valid() {
		return fmt.Errorf("%s: unknown frequency %q", name, f)
	}
	return nil
}

// CheckProjectedValue защищает от переполнения при длинных горизонтах
func CheckProjectedValue(cfg *config.Config, value float64) error {
	if !utils.IsFinite(value) || value > BalanceCap(cfg) {
		return fmt.Errorf("projected value exceeded the upper bound (check rate, horizon and contributions)")
	}
	return nil
}

// ValidateLoan проверяет числовые поля кредита и длительность
func ValidateLoan(cfg *config.Config, loan models.Loan) error {
	if err := CheckPrincipal(cfg, loan.Principal); err != nil {
		return err
	}
	if err := CheckRate(cfg, loan.InterestRate); err != nil {
		return err
	}
	if !loan.StartDate.IsZero() && !loan.EndDate.IsZero() {
		if err := CheckTerms(cfg, calendar.Terms(loan.StartDate, loan.EndDate)); err != nil {
			return err
		}
	}
	return nil
}

// ValidateInvestment проверяет числовые поля и перечисления инвестиции
func ValidateInvestment(cfg *config.Config, inv models.Investment) error {
	if err := CheckBalance(cfg, inv.StartingBalance); err != nil {
		return err
	}
	if err := ValidatePositiveNumber("AverageReturnRate", inv.AverageReturnRate, 0.0, cfg.MaxRate); err != nil {
		return err
	}
	if err := CheckFrequency("CompoundingPeriod", inv.CompoundingPeriod); err != nil {
		return err
	}
	if inv.RecurringContribution != nil {
		if err := CheckContribution(cfg, *inv.RecurringContribution); err != nil {
			return err
		}
	}
	if inv.ContributionFrequency != nil {
		if err := CheckFrequency("ContributionFrequency", *inv.ContributionFrequency); err != nil {
			return err
		}
	}
	if inv.ContributionStepUpType != nil && !inv.ContributionStepUpType.Valid() {
		return fmt.Errorf("ContributionStepUpType: unknown step-up type %q", *inv.ContributionStepUpType)
	}
	if inv.ContributionStepUpAmount != nil {
		if err := ValidatePositiveNumber("ContributionStepUpAmount", *inv.ContributionStepUpAmount, 0.0, cfg.MaxContribution); err != nil {
			return err
		}
	}
	return nil
}

// BalanceCap возвращает максимальный баланс
func BalanceCap(cfg *config.Config) float64 {
	if cfg == nil {
		return 1e12 // Значение по умолчанию
	}
	return cfg.BalanceCap()
}
