package dataio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloud-ru/pathwise-go/internal/models"
)

// ImportFromJSON разбирает файл экспорта и проверяет каждую запись.
// Ошибки записей возвращаются как *RecordError; первая найденная ошибка прерывает импорт.
func ImportFromJSON(data []byte) ([]models.Loan, []models.Investment, error) {
	if !json.Valid(data) {
		return nil, nil, ErrInvalidJSON
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, nil, ErrInvalidFormat
	}

	loansRaw, hasLoans := root["loans"]
	investmentsRaw, hasInvestments := root["investments"]
	if !hasLoans || !hasInvestments || isNull(loansRaw) || isNull(investmentsRaw) {
		return nil, nil, ErrInvalidFormat
	}
	if !isArray(loansRaw) || !isArray(investmentsRaw) {
		return nil, nil, ErrNotArrays
	}

	loanObjects, err := splitObjects(loansRaw, "loan")
	if err != nil {
		return nil, nil, err
	}
	investmentObjects, err := splitObjects(investmentsRaw, "investment")
	if err != nil {
		return nil, nil, err
	}

	loans := make([]models.Loan, 0, len(loanObjects))
	seen := make(map[string]struct{}, len(loanObjects))
	for i, obj := range loanObjects {
		if err := checkRecord(obj, "loan", i, loanRequiredFields, seen); err != nil {
			return nil, nil, err
		}
		loan, err := decodeLoan(obj, i)
		if err != nil {
			return nil, nil, err
		}
		loans = append(loans, loan)
	}

	investments := make([]models.Investment, 0, len(investmentObjects))
	seen = make(map[string]struct{}, len(investmentObjects))
	for i, obj := range investmentObjects {
		if err := checkRecord(obj, "investment", i, investmentRequiredFields, seen); err != nil {
			return nil, nil, err
		}
		investment, err := decodeInvestment(obj, i)
		if err != nil {
			return nil, nil, err
		}
		investments = append(investments, investment)
	}

	return loans, investments, nil
}

type rawObject map[string]json.RawMessage

func splitObjects(raw json.RawMessage, kind string) ([]rawObject, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrNotArrays
	}
	objects := make([]rawObject, 0, len(items))
	for i, item := range items {
		var obj rawObject
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			return nil, &RecordError{Kind: kind, Index: i, Err: fmt.Errorf("%w: expected an object", ErrInvalidRecord)}
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// checkRecord проверяет Id (непустой, уникальный) и наличие обязательных полей
func checkRecord(obj rawObject, kind string, index int, required []string, seen map[string]struct{}) error {
	var id string
	if raw, ok := obj["Id"]; ok {
		if err := json.Unmarshal(raw, &id); err != nil {
			return &RecordError{Kind: kind, Index: index, Field: "Id", Err: fmt.Errorf("%w: Id must be a string", ErrInvalidRecord)}
		}
	}
	if strings.TrimSpace(id) == "" {
		return &RecordError{Kind: kind, Index: index, Err: ErrMissingID}
	}
	if _, dup := seen[id]; dup {
		return &RecordError{Kind: kind, Index: index, Field: id, Err: ErrDuplicateID}
	}
	seen[id] = struct{}{}

	for _, field := range required {
		raw, ok := obj[field]
		if !ok || isNull(raw) {
			return &RecordError{Kind: kind, Index: index, Field: field, Err: ErrMissingField}
		}
	}
	return nil
}

func decodeLoan(obj rawObject, index int) (models.Loan, error) {
	var rec loanRecord
	if err := remarshal(obj, &rec); err != nil {
		return models.Loan{}, &RecordError{Kind: "loan", Index: index, Err: fmt.Errorf("%w: %v", ErrInvalidRecord, err)}
	}

	start, okStart := parseDate(rec.StartDate)
	end, okEnd := parseDate(rec.EndDate)
	if !okStart || !okEnd {
		return models.Loan{}, &RecordError{Kind: "loan", Index: index, Err: ErrInvalidDate}
	}

	schedule := rec.AmortizationSchedule
	if schedule == nil {
		schedule = []models.AmortizationScheduleEntry{}
	}

	return models.Loan{
		Id:                   rec.Id,
		Provider:             rec.Provider,
		Name:                 rec.Name,
		InterestRate:         rec.InterestRate,
		Principal:            rec.Principal,
		CurrentAmount:        rec.CurrentAmount,
		StartDate:            start,
		EndDate:              end,
		MonthlyPayment:       rec.MonthlyPayment,
		AmortizationSchedule: schedule,
	}, nil
}

func decodeInvestment(obj rawObject, index int) (models.Investment, error) {
	var rec investmentRecord
	if err := remarshal(obj, &rec); err != nil {
		return models.Investment{}, &RecordError{Kind: "investment", Index: index, Err: fmt.Errorf("%w: %v", ErrInvalidRecord, err)}
	}

	start, ok := parseDate(rec.StartDate)
	if !ok {
		return models.Investment{}, &RecordError{Kind: "investment", Index: index, Err: ErrInvalidDate}
	}

	growth := rec.ProjectedGrowth
	if growth == nil {
		growth = []models.InvestmentGrowthEntry{}
	}

	freq := rec.ContributionFrequency
	if rec.RecurringContribution != nil && freq == nil {
		freq = models.FrequencyPtr(models.Monthly)
	}

	return models.Investment{
		Id:                       rec.Id,
		Provider:                 rec.Provider,
		Name:                     rec.Name,
		StartDate:                start,
		StartingBalance:          rec.StartingBalance,
		AverageReturnRate:        rec.AverageReturnRate,
		CompoundingPeriod:        rec.CompoundingPeriod,
		RecurringContribution:    rec.RecurringContribution,
		ContributionFrequency:    freq,
		ContributionStepUpAmount: rec.ContributionStepUpAmount,
		ContributionStepUpType:   rec.ContributionStepUpType,
		ProjectedGrowth:          growth,
	}, nil
}

func remarshal(obj rawObject, dst any) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
