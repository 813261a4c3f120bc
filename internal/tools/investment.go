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
	"github.com/cloud-ru/pathwise-go/pkg/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type investmentRequest struct {
	Investment *models.Investment `json:"investment"`
	EndDate    string             `json:"end_date"`
	Date       string             `json:"date"`
}

type GrowthResult struct {
	ProjectedGrowth []models.InvestmentGrowthEntry `json:"projected_growth"`
}

type stepUpRequest struct {
	Base         *float64          `json:"base"`
	Year         *int              `json:"year"`
	StepUpAmount float64           `json:"step_up_amount"`
	StepUpType   models.StepUpType `json:"step_up_type"`
}

type StepUpResult struct {
	Contribution float64 `json:"contribution"`
}

// InvestmentGrowthHandler строит график роста до end_date (по умолчанию - сегодня)
func InvestmentGrowthHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "investment_growth"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		var req investmentRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, paramsFailed(span, toolName, err)
		}
		if req.Investment == nil {
			return nil, paramsFailed(span, toolName, fmt.Errorf("invalid parameter: investment"))
		}
		end, err := parseDateParam("end_date", req.EndDate, time.Now())
		if err != nil {
			return nil, paramsFailed(span, toolName, err)
		}
		inv := *req.Investment

		setInvestmentAttributes(span, inv)
		span.SetAttributes(attribute.String("end_date", end.Format("2006-01-02")))

		if err := validators.ValidateInvestment(cfg, inv); err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		growth := calculations.GenerateInvestmentGrowth(inv, end)
		if len(growth) == 0 {
			degenerate(span, "investment_growth")
		} else if err := validators.CheckProjectedValue(cfg, growth[len(growth)-1].TotalValue); err != nil {
			return nil, calculationFailed(span, toolName, err)
		}
		metrics.ScheduleEntries.WithLabelValues("growth").Observe(float64(len(growth)))

		span.SetAttributes(attribute.Int("growth_entries", len(growth)))
		succeeded(span, toolName)

		if growth == nil {
			growth = []models.InvestmentGrowthEntry{}
		}
		return GrowthResult{ProjectedGrowth: growth}, nil
	}
}

// InvestmentPitHandler возвращает состояние инвестиции на дату (по умолчанию - сегодня)
func InvestmentPitHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "investment_pit"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		var req investmentRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, paramsFailed(span, toolName, err)
		}
		if req.Investment == nil {
			return nil, paramsFailed(span, toolName, fmt.Errorf("invalid parameter: investment"))
		}
		date, err := parseDateParam("date", req.Date, time.Now())
		if err != nil {
			return nil, paramsFailed(span, toolName, err)
		}
		inv := *req.Investment

		setInvestmentAttributes(span, inv)
		span.SetAttributes(attribute.String("date", date.Format("2006-01-02")))

		if err := validators.ValidateInvestment(cfg, inv); err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		pit := calculations.PitInvestmentCalculation(inv, date)
		if !pit.Computable {
			degenerate(span, "investment_pit")
		} else if err := validators.CheckProjectedValue(cfg, pit.CurrentValue); err != nil {
			return nil, calculationFailed(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Int("current_periods", pit.CurrentPeriods),
			attribute.Float64("current_value", pit.CurrentValue),
		)
		succeeded(span, toolName)

		return pit, nil
	}
}

// StepUpContributionHandler возвращает взнос для заданного года инвестиции
func StepUpContributionHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "step_up_contribution"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		var req stepUpRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, paramsFailed(span, toolName, err)
		}
		if req.Base == nil {
			return nil, paramsFailed(span, toolName, fmt.Errorf("invalid parameter: base"))
		}
		if req.Year == nil {
			return nil, paramsFailed(span, toolName, fmt.Errorf("invalid parameter: year"))
		}

		span.SetAttributes(
			attribute.Float64("base", *req.Base),
			attribute.Int("year", *req.Year),
			attribute.Float64("step_up_amount", req.StepUpAmount),
			attribute.String("step_up_type", string(req.StepUpType)),
		)

		if err := validators.CheckContribution(cfg, *req.Base); err != nil {
			return nil, validationFailed(span, toolName, err)
		}
		if err := validators.ValidateIntRange("year", *req.Year, 1, cfg.MaxMonths/12+1); err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		contribution := utils.Round2(calculations.ContributionForYear(*req.Base, *req.Year, req.StepUpAmount, req.StepUpType))
		succeeded(span, toolName)

		return StepUpResult{Contribution: contribution}, nil
	}
}

func setInvestmentAttributes(span trace.Span, inv models.Investment) {
	span.SetAttributes(
		attribute.String("investment_id", inv.Id),
		attribute.Float64("starting_balance", inv.StartingBalance),
		attribute.Float64("average_return_rate", inv.AverageReturnRate),
		attribute.String("compounding_period", string(inv.CompoundingPeriod)),
		attribute.String("start_date", inv.StartDate.Format("2006-01-02")),
	)
}
