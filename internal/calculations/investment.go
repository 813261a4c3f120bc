package calculations

import (
	"math"
	"time"

	"github.com/cloud-ru/pathwise-go/internal/calendar"
	"github.com/cloud-ru/pathwise-go/internal/models"
	"github.com/cloud-ru/pathwise-go/pkg/utils"
)

// ContributionForYear возвращает взнос с учетом ежегодного повышения.
// Год 1 - базовый взнос; без валидных параметров повышения взнос не меняется.
func ContributionForYear(base float64, year int, stepUpAmount float64, stepUpType models.StepUpType) float64 {
	if stepUpAmount <= 0 || !stepUpType.Valid() || year <= 1 {
		return base
	}

	stepUps := float64(year - 1)
	if stepUpType == models.StepUpFlat {
		return base + stepUpAmount*stepUps
	}
	return base * math.Pow(1.0+stepUpAmount/100.0, stepUps)
}

// ContributionsInPeriod считает число взносов в [start, end)
func ContributionsInPeriod(start, end time.Time, freq models.Frequency) int {
	count := 0
	for d := start; d.Before(end); d = calendar.NextCompoundingDate(d, freq) {
		count++
	}
	return count
}

// ContributionsWithStepUp суммирует взносы в [start, end): по одному на каждый
// шаг периодичности, сумма каждого определяется годом инвестиции на дату взноса.
func ContributionsWithStepUp(start, end, investmentStart time.Time, base float64, freq models.Frequency,
	stepUpAmount float64, stepUpType models.StepUpType) float64 {

	total := 0.0
	for d := start; d.Before(end); d = calendar.NextCompoundingDate(d, freq) {
		year := calendar.InvestmentYear(d, investmentStart)
		total += ContributionForYear(base, year, stepUpAmount, stepUpType)
	}
	return total
}

// GenerateInvestmentGrowth строит график роста от StartDate до end
// (нулевое end - текущий момент). Период 0 - исходный баланс.
// Баланс ведется без округления, в записи попадают значения в копейках.
// Для end <= StartDate возвращает nil.
func GenerateInvestmentGrowth(investment models.Investment, end time.Time) []models.InvestmentGrowthEntry {
	if end.IsZero() {
		end = time.Now()
	}
	start := investment.StartDate
	if start.IsZero() || !end.After(start) {
		return nil
	}

	periodRate := investment.AverageReturnRate / 100.0 / float64(calendar.PeriodsPerYear(investment.CompoundingPeriod))
	base, freq, contributes := investment.Contribution()
	stepUpAmount, stepUpType := investment.StepUp()

	balance := investment.StartingBalance
	growth := []models.InvestmentGrowthEntry{{
		Period:     0,
		TotalValue: utils.Round2(balance),
	}}

	current := start
	for period := 1; current.Before(end); period++ {
		next := calendar.NextCompoundingDate(current, investment.CompoundingPeriod)
		periodEnd := next
		if next.After(end) {
			periodEnd = end
		}

		contribution := 0.0
		if contributes {
			contribution = ContributionsWithStepUp(current, periodEnd, start, base, freq, stepUpAmount, stepUpType)
			balance += contribution
		}

		before := balance
		if !next.After(end) {
			balance *= 1.0 + periodRate
		} else {
			// неполный период: ставка пропорциональна прошедшему времени
			fraction := float64(end.Sub(current)) / float64(next.Sub(current))
			balance *= 1.0 + periodRate*fraction
		}

		growth = append(growth, models.InvestmentGrowthEntry{
			Period:             period,
			ContributionAmount: utils.Round2(contribution),
			InterestEarned:     utils.Round2(balance - before),
			TotalValue:         utils.Round2(balance),
		})

		current = next
	}

	return growth
}

// PitInvestmentCalculation возвращает состояние инвестиции на дату
// (нулевая дата - текущий момент)
func PitInvestmentCalculation(investment models.Investment, date time.Time) PitInvestment {
	if investment.StartDate.IsZero() {
		return PitInvestment{}
	}
	if date.IsZero() {
		date = time.Now()
	}

	currentPeriods := calendar.PeriodsElapsed(investment.StartDate, date, investment.CompoundingPeriod)
	growth := GenerateInvestmentGrowth(investment, date)

	contributions := make([]float64, 0, len(growth)+1)
	contributions = append(contributions, investment.StartingBalance)
	for _, entry := range growth {
		contributions = append(contributions, entry.ContributionAmount)
	}
	totalContributions := utils.Sum(contributions...)

	currentValue := investment.StartingBalance
	if len(growth) > 0 {
		currentValue = growth[len(growth)-1].TotalValue
	}

	totalInterest := currentValue - totalContributions

	var projectedReturn float64
	if totalContributions > 0 {
		projectedReturn = (totalInterest / totalContributions) * 100
	}

	return PitInvestment{
		CurrentPeriods:        currentPeriods,
		TotalContributions:    utils.Round2(totalContributions),
		TotalInterestEarned:   utils.Round2(totalInterest),
		CurrentValue:          utils.Round2(currentValue),
		ProjectedAnnualReturn: utils.Round2(projectedReturn),
		Computable:            true,
	}
}

// DeriveInvestment пересчитывает ProjectedGrowth до момента now.
// Возвращает новую запись, исходная не изменяется.
func DeriveInvestment(investment models.Investment, now time.Time) models.Investment {
	derived := investment
	derived.ProjectedGrowth = GenerateInvestmentGrowth(investment, now)
	return derived
}
