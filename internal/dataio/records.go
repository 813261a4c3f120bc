package dataio

import (
	"strings"
	"time"

	"github.com/cloud-ru/pathwise-go/internal/models"
)

// ExportVersion - версия формата файла экспорта
const ExportVersion = "1.0"

// isoMillis - ISO-8601 в UTC с точностью до миллисекунд
const isoMillis = "2006-01-02T15:04:05.000Z"

// exportDocument - корневой объект файла экспорта
type exportDocument struct {
	Loans       []loanRecord       `json:"loans"`
	Investments []investmentRecord `json:"investments"`
	ExportDate  string             `json:"exportDate"`
	Version     string             `json:"version"`
}

// loanRecord - кредит в формате файла: даты строками
type loanRecord struct {
	Id                   string                             `json:"Id"`
	Provider             string                             `json:"Provider"`
	Name                 string                             `json:"Name"`
	InterestRate         float64                            `json:"InterestRate"`
	Principal            float64                            `json:"Principal"`
	CurrentAmount        float64                            `json:"CurrentAmount"`
	StartDate            string                             `json:"StartDate"`
	EndDate              string                             `json:"EndDate"`
	MonthlyPayment       *float64                           `json:"MonthlyPayment,omitempty"`
	AmortizationSchedule []models.AmortizationScheduleEntry `json:"AmortizationSchedule"`
}

type investmentRecord struct {
	Id                       string                         `json:"Id"`
	Provider                 string                         `json:"Provider"`
	Name                     string                         `json:"Name"`
	StartDate                string                         `json:"StartDate"`
	StartingBalance          float64                        `json:"StartingBalance"`
	AverageReturnRate        float64                        `json:"AverageReturnRate"`
	CompoundingPeriod        models.Frequency               `json:"CompoundingPeriod"`
	RecurringContribution    *float64                       `json:"RecurringContribution,omitempty"`
	ContributionFrequency    *models.Frequency              `json:"ContributionFrequency,omitempty"`
	ContributionStepUpAmount *float64                       `json:"ContributionStepUpAmount,omitempty"`
	ContributionStepUpType   *models.StepUpType             `json:"ContributionStepUpType,omitempty"`
	ProjectedGrowth          []models.InvestmentGrowthEntry `json:"ProjectedGrowth"`
}

var (
	loanRequiredFields       = []string{"Provider", "Name", "InterestRate", "Principal", "StartDate", "EndDate"}
	investmentRequiredFields = []string{"Provider", "Name", "StartDate", "StartingBalance", "AverageReturnRate", "CompoundingPeriod"}
)

func formatDate(t time.Time) string {
	return t.UTC().Format(isoMillis)
}

// parseDate принимает ISO-8601 с временем (любой точности) или только дату
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func toLoanRecord(l models.Loan) loanRecord {
	schedule := l.AmortizationSchedule
	if schedule == nil {
		schedule = []models.AmortizationScheduleEntry{}
	}
	return loanRecord{
		Id:                   l.Id,
		Provider:             l.Provider,
		Name:                 l.Name,
		InterestRate:         l.InterestRate,
		Principal:            l.Principal,
		CurrentAmount:        l.CurrentAmount,
		StartDate:            formatDate(l.StartDate),
		EndDate:              formatDate(l.EndDate),
		MonthlyPayment:       l.MonthlyPayment,
		AmortizationSchedule: schedule,
	}
}

func toInvestmentRecord(i models.Investment) investmentRecord {
	growth := i.ProjectedGrowth
	if growth == nil {
		growth = []models.InvestmentGrowthEntry{}
	}
	return investmentRecord{
		Id:                       i.Id,
		Provider:                 i.Provider,
		Name:                     i.Name,
		StartDate:                formatDate(i.StartDate),
		StartingBalance:          i.StartingBalance,
		AverageReturnRate:        i.AverageReturnRate,
		CompoundingPeriod:        i.CompoundingPeriod,
		RecurringContribution:    i.RecurringContribution,
		ContributionFrequency:    i.ContributionFrequency,
		ContributionStepUpAmount: i.ContributionStepUpAmount,
		ContributionStepUpType:   i.ContributionStepUpType,
		ProjectedGrowth:          growth,
	}
}
