package dataio

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cloud-ru/pathwise-go/internal/models"
)

func sampleLoan() models.Loan {
	return models.Loan{
		Id:             "loan-1",
		Provider:       "Test Bank",
		Name:           "Test Mortgage",
		InterestRate:   3.5,
		Principal:      100000,
		CurrentAmount:  95000,
		StartDate:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2054, 12, 1, 0, 0, 0, 0, time.UTC),
		MonthlyPayment: models.Float(449.04),
		AmortizationSchedule: []models.AmortizationScheduleEntry{
			{Term: 1, PrincipalPayment: 157.37, InterestPayment: 291.67, RemainingBalance: 99842.63},
		},
	}
}

func sampleInvestment() models.Investment {
	return models.Investment{
		Id:                       "inv-1",
		Provider:                 "Test Fund",
		Name:                     "Index Fund",
		StartDate:                time.Date(2025, 3, 15, 10, 30, 0, 123000000, time.UTC),
		StartingBalance:          10000,
		AverageReturnRate:        7,
		CompoundingPeriod:        models.Monthly,
		RecurringContribution:    models.Float(500),
		ContributionFrequency:    models.FrequencyPtr(models.Quarterly),
		ContributionStepUpAmount: models.Float(5),
		ContributionStepUpType:   models.StepUpTypePtr(models.StepUpPercentage),
		ProjectedGrowth:          []models.InvestmentGrowthEntry{{Period: 0, TotalValue: 10000}},
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	loans := []models.Loan{sampleLoan()}
	investments := []models.Investment{sampleInvestment()}

	data, err := ExportToJSON(loans, investments, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ExportToJSON() error = %v", err)
	}

	gotLoans, gotInvestments, err := ImportFromJSON(data)
	if err != nil {
		t.Fatalf("ImportFromJSON() error = %v", err)
	}

	if len(gotLoans) != 1 || len(gotInvestments) != 1 {
		t.Fatalf("expected 1 loan and 1 investment, got %d and %d", len(gotLoans), len(gotInvestments))
	}

	l := gotLoans[0]
	want := loans[0]
	if l.Id != want.Id || l.Provider != want.Provider || l.Name != want.Name ||
		l.InterestRate != want.InterestRate || l.Principal != want.Principal || l.CurrentAmount != want.CurrentAmount {
		t.Errorf("loan fields not preserved: %+v", l)
	}
	if !l.StartDate.Equal(want.StartDate) || !l.EndDate.Equal(want.EndDate) {
		t.Errorf("loan dates not preserved: %s %s", l.StartDate, l.EndDate)
	}
	if l.MonthlyPayment == nil || *l.MonthlyPayment != 449.04 {
		t.Errorf("monthly payment not preserved: %v", l.MonthlyPayment)
	}
	if len(l.AmortizationSchedule) != 1 || l.AmortizationSchedule[0] != want.AmortizationSchedule[0] {
		t.Errorf("schedule not preserved: %+v", l.AmortizationSchedule)
	}

	inv := gotInvestments[0]
	if !inv.StartDate.Equal(investments[0].StartDate) {
		t.Errorf("investment start date not preserved to the millisecond: %s", inv.StartDate)
	}
	if inv.ContributionFrequency == nil || *inv.ContributionFrequency != models.Quarterly {
		t.Errorf("contribution frequency not preserved: %v", inv.ContributionFrequency)
	}
	if inv.ContributionStepUpType == nil || *inv.ContributionStepUpType != models.StepUpPercentage {
		t.Errorf("step-up type not preserved: %v", inv.ContributionStepUpType)
	}
	if *inv.RecurringContribution != 500 || *inv.ContributionStepUpAmount != 5 {
		t.Errorf("contribution amounts not preserved: %+v", inv)
	}
}

func TestExportToJSON_Format(t *testing.T) {
	loan := sampleLoan()
	loan.MonthlyPayment = nil
	loan.AmortizationSchedule = nil
	inv := sampleInvestment()
	inv.ProjectedGrowth = nil

	data, err := ExportToJSON([]models.Loan{loan}, []models.Investment{inv}, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ExportToJSON() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if doc["version"] != "1.0" {
		t.Errorf("expected version 1.0, got %v", doc["version"])
	}
	if doc["exportDate"] != "2025-06-01T12:00:00.000Z" {
		t.Errorf("unexpected exportDate %v", doc["exportDate"])
	}

	out := string(data)
	if !strings.Contains(out, "\n  \"loans\": [") {
		t.Errorf("expected two-space indentation, got:\n%s", out)
	}
	if !strings.Contains(out, `"StartDate": "2025-03-15T10:30:00.123Z"`) {
		t.Errorf("expected millisecond ISO dates, got:\n%s", out)
	}
	if !strings.Contains(out, `"AmortizationSchedule": []`) || !strings.Contains(out, `"ProjectedGrowth": []`) {
		t.Errorf("expected missing schedules exported as empty arrays, got:\n%s", out)
	}
	if strings.Contains(out, "MonthlyPayment") {
		t.Errorf("expected absent monthly payment to be omitted, got:\n%s", out)
	}
}

func TestImportFromJSON_EmptyArrays(t *testing.T) {
	data, _ := ExportToJSON(nil, nil, time.Now())

	loans, investments, err := ImportFromJSON(data)
	if err != nil {
		t.Fatalf("ImportFromJSON() error = %v", err)
	}
	if len(loans) != 0 || len(investments) != 0 {
		t.Errorf("expected empty result, got %d loans and %d investments", len(loans), len(investments))
	}
}

func TestImportFromJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{"invalid json", "invalid json", ErrInvalidJSON, "unable to parse file"},
		{"empty object", "{}", ErrInvalidFormat, `expected an object with "loans" and "investments" arrays`},
		{"top-level array", "[]", ErrInvalidFormat, "expected an object"},
		{"null loans", `{"loans": null, "investments": []}`, ErrInvalidFormat, "expected an object"},
		{"loans not array", `{"loans": "not array", "investments": []}`, ErrNotArrays, "must be arrays"},
		{
			"loan missing id",
			`{"loans": [{"Provider": "Bank"}], "investments": []}`,
			ErrMissingID, "invalid or missing ID in loan at index 0. All items must have a non-empty ID.",
		},
		{
			"investment blank id",
			`{"loans": [], "investments": [{"Id": "   "}]}`,
			ErrMissingID, "in investment at index 0",
		},
		{
			"loan missing provider",
			`{"loans": [{"Id": "test-1", "Name": "Test", "StartDate": "2025-01-01T00:00:00.000Z", "EndDate": "2026-01-01T00:00:00.000Z"}], "investments": []}`,
			ErrMissingField, "missing required field 'Provider' in loan at index 0",
		},
		{
			"loan missing name",
			`{"loans": [{"Id": "test-1", "Provider": "Bank", "StartDate": "2025-01-01T00:00:00.000Z", "EndDate": "2026-01-01T00:00:00.000Z"}], "investments": []}`,
			ErrMissingField, "missing required field 'Name'",
		},
		{
			"investment missing starting balance",
			`{"loans": [], "investments": [{"Id": "test-1", "Provider": "Fund", "Name": "Test", "StartDate": "2025-01-01T00:00:00.000Z", "AverageReturnRate": 5, "CompoundingPeriod": "annually"}]}`,
			ErrMissingField, "missing required field 'StartingBalance' in investment at index 0",
		},
		{
			"loan invalid date",
			`{"loans": [{"Id": "a", "Provider": "Bank", "Name": "A", "InterestRate": 5, "Principal": 1000, "StartDate": "2025-01-01T00:00:00.000Z", "EndDate": "2026-01-01T00:00:00.000Z"},
			            {"Id": "b", "Provider": "Bank", "Name": "B", "InterestRate": 5, "Principal": 1000, "StartDate": "not-a-date", "EndDate": "2026-01-01"}], "investments": []}`,
			ErrInvalidDate, "invalid date in loan at index 1",
		},
		{
			"duplicate loan id",
			`{"loans": [{"Id": "a", "Provider": "Bank", "Name": "A", "InterestRate": 5, "Principal": 1000, "StartDate": "2025-01-01", "EndDate": "2026-01-01"},
			            {"Id": "a", "Provider": "Bank", "Name": "B", "InterestRate": 5, "Principal": 1000, "StartDate": "2025-01-01", "EndDate": "2026-01-01"}], "investments": []}`,
			ErrDuplicateID, `duplicate ID "a" in loan at index 1`,
		},
		{
			"wrong field type",
			`{"loans": [{"Id": "a", "Provider": "Bank", "Name": "A", "InterestRate": "five", "Principal": 1000, "StartDate": "2025-01-01", "EndDate": "2026-01-01"}], "investments": []}`,
			ErrInvalidRecord, "invalid loan at index 0",
		},
		{
			"numeric id",
			`{"loans": [{"Id": 7, "Provider": "Bank", "Name": "A"}], "investments": []}`,
			ErrInvalidRecord, "invalid loan at index 0: invalid record: Id must be a string",
		},
		{
			"null id",
			`{"loans": [], "investments": [{"Id": null}]}`,
			ErrMissingID, "invalid or missing ID in investment at index 0",
		},
		{
			"record not an object",
			`{"loans": [42], "investments": []}`,
			ErrInvalidRecord, "invalid loan at index 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ImportFromJSON([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected errors.Is(%v), got %v", tt.wantErr, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected message containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestImportFromJSON_RecordError(t *testing.T) {
	input := `{"loans": [], "investments": [{"Id": "x", "Provider": "Fund", "Name": "N", "StartDate": "2025-01-01"}]}`

	_, _, err := ImportFromJSON([]byte(input))

	var recErr *RecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("expected *RecordError, got %T", err)
	}
	if recErr.Kind != "investment" || recErr.Index != 0 || recErr.Field != "StartingBalance" {
		t.Errorf("unexpected record error: %+v", recErr)
	}
}

func TestImportFromJSON_DefaultsContributionFrequency(t *testing.T) {
	input := `{"loans": [], "investments": [{"Id": "x", "Provider": "Fund", "Name": "N", "StartDate": "2025-01-01",
		"StartingBalance": 0, "AverageReturnRate": 5, "CompoundingPeriod": "annually", "RecurringContribution": 100}]}`

	_, investments, err := ImportFromJSON([]byte(input))
	if err != nil {
		t.Fatalf("ImportFromJSON() error = %v", err)
	}

	inv := investments[0]
	if inv.ContributionFrequency == nil || *inv.ContributionFrequency != models.Monthly {
		t.Errorf("expected monthly contribution frequency, got %v", inv.ContributionFrequency)
	}
	if inv.ProjectedGrowth == nil {
		t.Error("expected missing growth to import as an empty slice")
	}
}

func TestMergeData(t *testing.T) {
	existing := []models.Loan{
		{Id: "a", Name: "Loan A"},
		{Id: "b", Name: "Loan B"},
		{Id: "", Name: "Legacy"},
	}
	imported := []models.Loan{
		{Id: "b", Name: "Loan B v2"},
		{Id: "c", Name: "Loan C"},
		{Id: "  ", Name: "Blank"},
	}

	merged, result := MergeData(existing, imported)

	if result.Added != 1 || result.Updated != 1 {
		t.Errorf("expected 1 added and 1 updated, got %+v", result)
	}
	if len(merged) != 4 {
		t.Fatalf("expected 4 items, got %d", len(merged))
	}

	wantNames := []string{"Loan A", "Loan B v2", "Legacy", "Loan C"}
	for i, name := range wantNames {
		if merged[i].Name != name {
			t.Errorf("item %d: expected %q, got %q", i, name, merged[i].Name)
		}
	}

	if existing[1].Name != "Loan B" {
		t.Error("existing slice was mutated")
	}
}

func TestMergeData_Investments(t *testing.T) {
	merged, result := MergeData([]models.Investment{}, []models.Investment{{Id: "x"}, {Id: "y"}})

	if result.Added != 2 || result.Updated != 0 || len(merged) != 2 {
		t.Errorf("unexpected merge: %+v, %d items", result, len(merged))
	}
}

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if len(id) != 36 {
			t.Fatalf("expected UUID string, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
