package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/cloud-ru/pathwise-go/internal/calculations"
	"github.com/cloud-ru/pathwise-go/internal/calendar"
	"github.com/cloud-ru/pathwise-go/internal/config"
	"github.com/cloud-ru/pathwise-go/internal/models"
	"github.com/cloud-ru/pathwise-go/internal/validators"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type visualizationRequest struct {
	Loans        []models.Loan       `json:"loans"`
	Investments  []models.Investment `json:"investments"`
	StartDate    string              `json:"start_date"`
	EndDate      string              `json:"end_date"`
	Cadence      string              `json:"cadence"`
	HorizonYears int                 `json:"horizon_years"`
}

type VisualizationResult struct {
	EndDate time.Time                             `json:"end_date"`
	Points  []calculations.VisualizationDataPoint `json:"points"`
}

// VisualizationHandler строит временной ряд позиций по кредитам и инвестициям.
// Шаг и горизонт по умолчанию берутся из конфигурации.
func VisualizationHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "visualization"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		var req visualizationRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, paramsFailed(span, toolName, err)
		}

		now := time.Now()
		start, err := parseDateParam("start_date", req.StartDate, now)
		if err != nil {
			return nil, paramsFailed(span, toolName, err)
		}
		end, err := parseDateParam("end_date", req.EndDate, time.Time{})
		if err != nil {
			return nil, paramsFailed(span, toolName, err)
		}

		cadence := calculations.Cadence(req.Cadence)
		if cadence == "" {
			cadence = calculations.Cadence(cfg.VisCadence)
		}
		if cadence != calculations.Yearly && cadence != calculations.Monthly {
			return nil, paramsFailed(span, toolName, fmt.Errorf("invalid parameter: cadence"))
		}
		horizon := req.HorizonYears
		if horizon <= 0 {
			horizon = cfg.VisHorizonYears
		}

		span.SetAttributes(
			attribute.Int("loans", len(req.Loans)),
			attribute.Int("investments", len(req.Investments)),
			attribute.String("cadence", string(cadence)),
			attribute.Int("horizon_years", horizon),
		)

		for i, loan := range req.Loans {
			if err := validators.ValidateLoan(cfg, loan); err != nil {
				return nil, validationFailed(span, toolName, fmt.Errorf("loan at index %d: %w", i, err))
			}
		}
		for i, inv := range req.Investments {
			if err := validators.ValidateInvestment(cfg, inv); err != nil {
				return nil, validationFailed(span, toolName, fmt.Errorf("investment at index %d: %w", i, err))
			}
		}

		if end.IsZero() {
			end = calculations.MaxVisualizationDate(req.Loans, req.Investments, now, horizon)
		}
		if err := validators.ValidateIntRange("samples", expectedSamples(start, end, cadence), 0, cfg.MaxMonths+1); err != nil {
			return nil, validationFailed(span, toolName, err)
		}

		points := calculations.GenerateVisualizationData(req.Loans, req.Investments, calculations.VisualizationOptions{
			Start:        start,
			End:          end,
			Now:          now,
			HorizonYears: horizon,
			Cadence:      cadence,
		})
		for _, p := range points {
			if err := validators.CheckProjectedValue(cfg, p.TotalInvestmentValue); err != nil {
				return nil, calculationFailed(span, toolName, err)
			}
		}

		span.SetAttributes(attribute.Int("points", len(points)))
		succeeded(span, toolName)

		if points == nil {
			points = []calculations.VisualizationDataPoint{}
		}
		return VisualizationResult{EndDate: end, Points: points}, nil
	}
}

// expectedSamples оценивает число точек ряда до его построения
func expectedSamples(start, end time.Time, cadence calculations.Cadence) int {
	if end.Before(start) {
		return 0
	}
	months := calendar.MonthsBetween(start, end)
	if cadence == calculations.Monthly {
		return months + 1
	}
	return months/12 + 1
}
