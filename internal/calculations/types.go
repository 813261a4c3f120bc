package calculations

import "time"

// PitLoan - состояние кредита на заданную дату
type PitLoan struct {
	PaidTerms          int     `json:"PaidTerms"`
	RemainingTerms     int     `json:"RemainingTerms"`
	RemainingPrincipal float64 `json:"RemainingPrincipal"`
	PaidPrincipal      float64 `json:"PaidPrincipal"`
	PaidInterest       float64 `json:"PaidInterest"`
	// Computable == false: входных данных недостаточно, значения нулевые
	Computable bool `json:"Computable"`
}

// PitInvestment - состояние инвестиции на заданную дату
type PitInvestment struct {
	CurrentPeriods        int     `json:"CurrentPeriods"`
	TotalContributions    float64 `json:"TotalContributions"`
	TotalInterestEarned   float64 `json:"TotalInterestEarned"`
	CurrentValue          float64 `json:"CurrentValue"`
	ProjectedAnnualReturn float64 `json:"ProjectedAnnualReturn"`
	Computable            bool    `json:"Computable"`
}

// LoanSummary представляет сводку по графику кредита
type LoanSummary struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Terms             int     `json:"terms"`
	MonthlyPayment    float64 `json:"monthly_payment"`
	TotalPaid         float64 `json:"total_paid"`
	TotalInterest     float64 `json:"total_interest"`
}

// Cadence - шаг выборки для графиков
type Cadence string

const (
	Yearly  Cadence = "yearly"
	Monthly Cadence = "monthly"
)

// DefaultHorizonYears - горизонт графика при наличии инвестиций
const DefaultHorizonYears = 30

// VisualizationOptions задает диапазон и шаг выборки.
// Нулевые значения заменяются значениями по умолчанию.
type VisualizationOptions struct {
	Start        time.Time
	End          time.Time
	Now          time.Time
	HorizonYears int
	Cadence      Cadence
}

// VisualizationDataPoint - одна точка графика. Ключи карт - Id сущностей.
type VisualizationDataPoint struct {
	Date                 time.Time          `json:"date"`
	LoanValues           map[string]float64 `json:"loanValues"`
	InvestmentValues     map[string]float64 `json:"investmentValues"`
	TotalLoanValue       float64            `json:"totalLoanValue"`
	TotalInvestmentValue float64            `json:"totalInvestmentValue"`
	OverallPosition      float64            `json:"overallPosition"`
}
