package models

import "time"

// AmortizationScheduleEntry - одна строка графика погашения кредита
type AmortizationScheduleEntry struct {
	Term             int     `json:"Term"`
	PrincipalPayment float64 `json:"PrincipalPayment"`
	InterestPayment  float64 `json:"InterestPayment"`
	RemainingBalance float64 `json:"RemainingBalance"`
}

// Loan - кредит пользователя.
// MonthlyPayment и AmortizationSchedule вычисляются (см. calculations.DeriveLoan);
// nil в MonthlyPayment означает «ещё не рассчитан».
type Loan struct {
	Id                   string                      `json:"Id"`
	Provider             string                      `json:"Provider"`
	Name                 string                      `json:"Name"`
	InterestRate         float64                     `json:"InterestRate"`
	Principal            float64                     `json:"Principal"`
	CurrentAmount        float64                     `json:"CurrentAmount"`
	StartDate            time.Time                   `json:"StartDate"`
	EndDate              time.Time                   `json:"EndDate"`
	MonthlyPayment       *float64                    `json:"MonthlyPayment,omitempty"`
	AmortizationSchedule []AmortizationScheduleEntry `json:"AmortizationSchedule"`
}

// GetId возвращает идентификатор кредита
func (l Loan) GetId() string { return l.Id }
