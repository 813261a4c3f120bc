package calculations

import (
	"math"
	"time"

	"github.com/cloud-ru/pathwise-go/internal/calendar"
	"github.com/cloud-ru/pathwise-go/internal/models"
	"github.com/cloud-ru/pathwise-go/pkg/utils"
)

// MonthlyPayment рассчитывает аннуитетный платеж P·r(1+r)^n / ((1+r)^n - 1),
// округленный до копеек. ok == false для вырожденных входных данных
// (сумма, ставка или срок не положительны), платеж в этом случае 0.
func MonthlyPayment(principal, annualRatePercent float64, terms int) (payment float64, ok bool) {
	if principal <= 0 || annualRatePercent <= 0 || terms <= 0 {
		return 0, false
	}

	r := annualRatePercent / 100.0 / 12.0
	growth := math.Pow(1.0+r, float64(terms))
	return utils.Round2(principal * r * growth / (growth - 1.0)), true
}

// LoanTerms возвращает полный срок кредита в месяцах
func LoanTerms(loan models.Loan) int {
	if loan.StartDate.IsZero() || loan.EndDate.IsZero() {
		return 0
	}
	return calendar.Terms(loan.StartDate, loan.EndDate)
}

// GenerateAmortizationSchedule строит график погашения.
// termLimit > 0 ограничивает число сроков; иначе строится полный график.
// Без рассчитанного MonthlyPayment возвращает nil.
func GenerateAmortizationSchedule(loan models.Loan, termLimit int) []models.AmortizationScheduleEntry {
	if loan.MonthlyPayment == nil {
		return nil
	}
	totalTerms := LoanTerms(loan)
	if totalTerms == 0 {
		return nil
	}

	payment := *loan.MonthlyPayment
	r := loan.InterestRate / 100.0 / 12.0
	n := totalTerms
	if termLimit > 0 {
		n = min(termLimit, totalTerms)
	}

	schedule := make([]models.AmortizationScheduleEntry, 0, n)
	remaining := loan.Principal

	for term := 1; term <= n; term++ {
		interest := utils.Round2(remaining * r)

		var principalComponent float64
		if term == totalTerms {
			// последний срок гасит остаток целиком, включая накопленную ошибку округления
			principalComponent = remaining
		} else {
			principalComponent = min(utils.Round2(payment-interest), remaining)
		}

		remaining = utils.Round2(remaining - principalComponent)
		if remaining < 0 {
			remaining = 0.0
		}

		schedule = append(schedule, models.AmortizationScheduleEntry{
			Term:             term,
			PrincipalPayment: principalComponent,
			InterestPayment:  interest,
			RemainingBalance: remaining,
		})
	}

	return schedule
}

// PitCalculation возвращает состояние кредита на дату.
// Берет сохраненный график, если он покрывает нужный срок, иначе строит его заново.
func PitCalculation(loan models.Loan, date time.Time) PitLoan {
	totalTerms := LoanTerms(loan)
	if totalTerms == 0 {
		return PitLoan{}
	}

	paidTerms := calendar.TermsAsOf(loan.StartDate, loan.EndDate, date)

	schedule := loan.AmortizationSchedule
	if len(schedule) < paidTerms {
		schedule = GenerateAmortizationSchedule(loan, paidTerms)
	}
	if len(schedule) == 0 {
		return PitLoan{}
	}
	paidTerms = min(paidTerms, len(schedule))

	last := schedule[paidTerms-1]
	interest := make([]float64, 0, paidTerms)
	for _, entry := range schedule[:paidTerms] {
		interest = append(interest, entry.InterestPayment)
	}

	return PitLoan{
		PaidTerms:          last.Term,
		RemainingTerms:     totalTerms - last.Term,
		RemainingPrincipal: last.RemainingBalance,
		PaidPrincipal:      utils.Round2(loan.Principal - last.RemainingBalance),
		PaidInterest:       utils.Round2(utils.Sum(interest...)),
		Computable:         true,
	}
}

// DeriveLoan пересчитывает MonthlyPayment и AmortizationSchedule.
// Возвращает новую запись, исходная не изменяется.
func DeriveLoan(loan models.Loan) models.Loan {
	derived := loan
	derived.MonthlyPayment = nil
	derived.AmortizationSchedule = nil

	if !loan.EndDate.After(loan.StartDate) {
		return derived
	}

	if payment, ok := MonthlyPayment(loan.Principal, loan.InterestRate, LoanTerms(loan)); ok {
		derived.MonthlyPayment = models.Float(payment)
	}
	derived.AmortizationSchedule = GenerateAmortizationSchedule(derived, 0)
	return derived
}

// SummarizeSchedule считает итоги по графику
func SummarizeSchedule(loan models.Loan, schedule []models.AmortizationScheduleEntry) LoanSummary {
	paid := make([]float64, 0, len(schedule)*2)
	interest := make([]float64, 0, len(schedule))
	for _, entry := range schedule {
		paid = append(paid, entry.PrincipalPayment, entry.InterestPayment)
		interest = append(interest, entry.InterestPayment)
	}

	summary := LoanSummary{
		Principal:         utils.Round2(loan.Principal),
		AnnualRatePercent: utils.Round2(loan.InterestRate),
		Terms:             len(schedule),
		TotalPaid:         utils.Round2(utils.Sum(paid...)),
		TotalInterest:     utils.Round2(utils.Sum(interest...)),
	}
	if loan.MonthlyPayment != nil {
		summary.MonthlyPayment = *loan.MonthlyPayment
	}
	return summary
}
