package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/cloud-ru/pathwise-go/internal/calculations"
	"github.com/cloud-ru/pathwise-go/internal/config"
	"github.com/cloud-ru/pathwise-go/internal/metrics"
	"github.com/cloud-ru/pathwise-go/internal/models"
	"github.com/cloud-ru/pathwise-go/internal/validators"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type monthlyPaymentRequest struct {
	Principal         *float64 `json:"principal"`
	AnnualRatePercent *float64 `json:"annual_rate_percent"`
	Terms             *int     `json:"terms"`
}

type MonthlyPaymentResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	Computable     bool    `json:"computable"`
}

type loanRequest struct {
	Loan      *models.Loan `json:"loan"`
	TermLimit int          `json:"term_limit"`
	Date      string       `json:"date"`
}

type AmortizationResult struct {
	Loan     models.Loan                        `json:"loan"`
	Schedule []models.AmortizationScheduleEntry `json:"schedule"`
	Summary  calculations.LoanSummary           `json:"summary"`
}

// LoanMonthlyPaymentHandler считает аннуитетный платеж по сумме, ставке и сроку
func LoanMonthlyPaymentHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "loan_monthly_payment"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		var req monthlyPaymentRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, paramsFailed(span, toolName, err)
		}
		if req.Principal == nil {
			return nil, paramsFailed(span, toolName, fmt.Errorf("invalid parameter: principal"))
		}
		if req.AnnualRatePercent == nil {
			return nil, paramsFailed(span, toolName, fmt.Errorf("invalid parameter: annual_rate_percent"))
		}
		if req.Terms == nil {
			return nil, paramsFailed(span, toolName, fmt.Errorf("invalid parameter: terms"))
		}

		span.SetAttributes(
			attribute.Float64("principal", *req.Principal),
			attribute.Float64("annual_rate_percent", *req.AnnualRatePercent),
			attribute.Int("terms", *req.Terms),
		)

		if err := validators.CheckPrincipal(cfg, *req.Principal); err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		if err := validators.CheckRate(cfg, *req.AnnualRatePercent); err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		if err := validators.ValidateIntRange("terms", *req.Terms, 0, cfg.MaxMonths); err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		payment, ok := calculations.MonthlyPayment(*req.Principal, *req.AnnualRatePercent, *req.Terms)
		if !ok {
			degenerate(span, "monthly_payment")
		}

		span.SetAttributes(attribute.Float64("monthly_payment", payment))
		succeeded(span, toolName)

		return MonthlyPaymentResult{MonthlyPayment: payment, Computable: ok}, nil
	}
}

// LoanAmortizationHandler пересчитывает платеж и график кредита
func LoanAmortizationHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "loan_amortization"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		var req loanRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, paramsFailed(span, toolName, err)
		}
		if req.Loan == nil {
			return nil, paramsFailed(span, toolName, fmt.Errorf("invalid parameter: loan"))
		}
		loan := *req.Loan

		setLoanAttributes(span, loan)
		span.SetAttributes(attribute.Int("term_limit", req.TermLimit))

		if err := validators.ValidateLoan(cfg, loan); err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		derived := calculations.DeriveLoan(loan)
		schedule := derived.AmortizationSchedule
		if req.TermLimit > 0 {
			schedule = calculations.GenerateAmortizationSchedule(derived, req.TermLimit)
		}
		if len(schedule) == 0 {
			degenerate(span, "amortization_schedule")
		}
		metrics.ScheduleEntries.WithLabelValues("amortization").Observe(float64(len(schedule)))

		summary := calculations.SummarizeSchedule(derived, schedule)
		span.SetAttributes(
			attribute.Int("schedule_entries", len(schedule)),
			attribute.Float64("monthly_payment", summary.MonthlyPayment),
			attribute.Float64("total_interest", summary.TotalInterest),
		)
		succeeded(span, toolName)

		return AmortizationResult{Loan: derived, Schedule: schedule, Summary: summary}, nil
	}
}

// LoanPitHandler возвращает состояние кредита на дату (по умолчанию - сегодня)
func LoanPitHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "loan_pit"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		var req loanRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, paramsFailed(span, toolName, err)
		}
		if req.Loan == nil {
			return nil, paramsFailed(span, toolName, fmt.Errorf("invalid parameter: loan"))
		}
		date, err := parseDateParam("date", req.Date, time.Now())
		if err != nil {
			return nil, paramsFailed(span, toolName, err)
		}
		loan := *req.Loan

		setLoanAttributes(span, loan)
		span.SetAttributes(attribute.String("date", date.Format("2006-01-02")))

		if err := validators.ValidateLoan(cfg, loan); err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		if loan.MonthlyPayment == nil {
			loan = calculations.DeriveLoan(loan)
		}
		pit := calculations.PitCalculation(loan, date)
		if !pit.Computable {
			degenerate(span, "loan_pit")
		}

		span.SetAttributes(
			attribute.Int("paid_terms", pit.PaidTerms),
			attribute.Float64("remaining_principal", pit.RemainingPrincipal),
		)
		succeeded(span, toolName)

		return pit, nil
	}
}

func setLoanAttributes(span trace.Span, loan models.Loan) {
	span.SetAttributes(
		attribute.String("loan_id", loan.Id),
		attribute.Float64("principal", loan.Principal),
		attribute.Float64("interest_rate", loan.InterestRate),
		attribute.String("start_date", loan.StartDate.Format("2006-01-02")),
		attribute.String("end_date", loan.EndDate.Format("2006-01-02")),
	)
}
