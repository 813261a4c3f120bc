package calculations

import (
	"time"

	"github.com/cloud-ru/pathwise-go/internal/calendar"
	"github.com/cloud-ru/pathwise-go/internal/models"
	"github.com/cloud-ru/pathwise-go/pkg/utils"
)

// MaxVisualizationDate возвращает правую границу графика: самую позднюю дату
// окончания кредитов, а при наличии инвестиций - не раньше now + horizonYears.
// Без кредитов и инвестиций - now.
func MaxVisualizationDate(loans []models.Loan, investments []models.Investment, now time.Time, horizonYears int) time.Time {
	if horizonYears <= 0 {
		horizonYears = DefaultHorizonYears
	}

	latest := now
	if len(loans) > 0 {
		latest = loans[0].EndDate
		for _, loan := range loans[1:] {
			if loan.EndDate.After(latest) {
				latest = loan.EndDate
			}
		}
	}

	if len(investments) > 0 {
		if horizon := now.AddDate(horizonYears, 0, 0); horizon.After(latest) {
			latest = horizon
		}
	}
	return latest
}

// GenerateVisualizationData строит временной ряд стоимости активов и долгов
// с шагом opts.Cadence (по умолчанию - год) от opts.Start до opts.End включительно.
func GenerateVisualizationData(loans []models.Loan, investments []models.Investment, opts VisualizationOptions) []VisualizationDataPoint {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	start := opts.Start
	if start.IsZero() {
		start = now
	}
	end := opts.End
	if end.IsZero() {
		end = MaxVisualizationDate(loans, investments, now, opts.HorizonYears)
	}

	step := 12
	if opts.Cadence == Monthly {
		step = 1
	}

	var points []VisualizationDataPoint
	for i := 0; ; i++ {
		date := calendar.AddMonthsClamped(start, i*step)
		if date.After(end) {
			break
		}
		points = append(points, samplePoint(loans, investments, date))
	}
	return points
}

func samplePoint(loans []models.Loan, investments []models.Investment, date time.Time) VisualizationDataPoint {
	point := VisualizationDataPoint{
		Date:             date,
		LoanValues:       make(map[string]float64, len(loans)),
		InvestmentValues: make(map[string]float64, len(investments)),
	}

	loanValues := make([]float64, 0, len(loans))
	for _, loan := range loans {
		value := LoanValueAt(loan, date)
		point.LoanValues[loan.Id] = value
		loanValues = append(loanValues, value)
	}

	investmentValues := make([]float64, 0, len(investments))
	for _, investment := range investments {
		value := InvestmentValueAt(investment, date)
		point.InvestmentValues[investment.Id] = value
		investmentValues = append(investmentValues, value)
	}

	point.TotalLoanValue = utils.Round2(utils.Sum(loanValues...))
	point.TotalInvestmentValue = utils.Round2(utils.Sum(investmentValues...))
	point.OverallPosition = utils.Round2(point.TotalInvestmentValue - point.TotalLoanValue)
	return point
}

// LoanValueAt возвращает остаток долга на дату: 0 до начала и начиная с даты окончания.
// Использует сохраненный график (индекс - прошедшие месяцы), иначе линейную интерполяцию.
func LoanValueAt(loan models.Loan, date time.Time) float64 {
	if date.Before(loan.StartDate) || !date.Before(loan.EndDate) {
		return 0
	}

	elapsed := calendar.MonthsBetween(loan.StartDate, date)

	if schedule := loan.AmortizationSchedule; len(schedule) > 0 {
		idx := min(elapsed, len(schedule)-1)
		if idx < 0 {
			return loan.Principal
		}
		return schedule[idx].RemainingBalance
	}

	total := calendar.MonthsBetween(loan.StartDate, loan.EndDate)
	if total <= 0 {
		return 0
	}
	ratio := 1.0 - float64(elapsed)/float64(total)
	ratio = max(0.0, min(1.0, ratio))
	return utils.Round2(loan.Principal * ratio)
}

// InvestmentValueAt возвращает стоимость инвестиции на дату: 0 до начала.
// Из сохраненного ProjectedGrowth берутся только завершенные периоды: последняя
// запись может быть неполной (рост до момента расчета), поэтому для нее и для
// более поздних дат рост рассчитывается заново.
func InvestmentValueAt(investment models.Investment, date time.Time) float64 {
	if date.Before(investment.StartDate) {
		return 0
	}

	if growth := investment.ProjectedGrowth; len(growth) > 1 {
		idx := max(0, calendar.PeriodsElapsed(investment.StartDate, date, investment.CompoundingPeriod)-1)
		if idx < len(growth)-1 {
			return growth[idx].TotalValue
		}
	}

	fresh := GenerateInvestmentGrowth(investment, date)
	if len(fresh) == 0 {
		return utils.Round2(investment.StartingBalance)
	}
	return fresh[len(fresh)-1].TotalValue
}
