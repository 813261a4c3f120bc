package models

import "time"

// InvestmentGrowthEntry - состояние инвестиции после одного периода капитализации.
// Period 0 - исходный снимок без процентов и взносов.
type InvestmentGrowthEntry struct {
	Period             int     `json:"Period"`
	ContributionAmount float64 `json:"ContributionAmount"`
	InterestEarned     float64 `json:"InterestEarned"`
	TotalValue         float64 `json:"TotalValue"`
}

// Investment - инвестиция пользователя
type Investment struct {
	Id                       string                  `json:"Id"`
	Provider                 string                  `json:"Provider"`
	Name                     string                  `json:"Name"`
	StartDate                time.Time               `json:"StartDate"`
	StartingBalance          float64                 `json:"StartingBalance"`
	AverageReturnRate        float64                 `json:"AverageReturnRate"`
	CompoundingPeriod        Frequency               `json:"CompoundingPeriod"`
	RecurringContribution    *float64                `json:"RecurringContribution,omitempty"`
	ContributionFrequency    *Frequency              `json:"ContributionFrequency,omitempty"`
	ContributionStepUpAmount *float64                `json:"ContributionStepUpAmount,omitempty"`
	ContributionStepUpType   *StepUpType             `json:"ContributionStepUpType,omitempty"`
	ProjectedGrowth          []InvestmentGrowthEntry `json:"ProjectedGrowth"`
}

// GetId возвращает идентификатор инвестиции
func (i Investment) GetId() string { return i.Id }

// Contribution возвращает регулярный взнос и его периодичность.
// ok == false, если взнос не настроен: сумма отсутствует, не положительна
// или не задана периодичность.
func (i Investment) Contribution() (amount float64, freq Frequency, ok bool) {
	if i.RecurringContribution == nil || *i.RecurringContribution <= 0 || i.ContributionFrequency == nil {
		return 0, "", false
	}
	return *i.RecurringContribution, *i.ContributionFrequency, true
}

// StepUp возвращает параметры ежегодного повышения взноса, если они заданы
func (i Investment) StepUp() (amount float64, kind StepUpType) {
	if i.ContributionStepUpAmount != nil {
		amount = *i.ContributionStepUpAmount
	}
	if i.ContributionStepUpType != nil {
		kind = *i.ContributionStepUpType
	}
	return amount, kind
}
