package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloud-ru/pathwise-go/internal/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ToolHandler представляет обработчик инструмента
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// decodeParams переносит произвольные параметры в типизированный запрос
func decodeParams(params map[string]interface{}, dst any) error {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

// parseDateParam разбирает дату в формате RFC 3339 или YYYY-MM-DD.
// Пустая строка - fallback.
func parseDateParam(name, value string, fallback time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid parameter: %s", name)
}

func paramsFailed(span trace.Span, toolName string, err error) error {
	span.SetAttributes(attribute.String("error", "invalid_params"))
	metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, "params").Inc()
	return err
}

func validationFailed(span trace.Span, toolName string, err error) error {
	span.SetAttributes(attribute.String("error", "validation_error"))
	metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
	return fmt.Errorf("invalid parameters: %w", err)
}

func calculationFailed(span trace.Span, toolName string, err error) error {
	span.SetAttributes(attribute.String("error", "calculation_error"))
	metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, "calculation").Inc()
	return fmt.Errorf("calculation failed: %w", err)
}

func succeeded(span trace.Span, toolName string) {
	span.SetAttributes(attribute.Bool("success", true))
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
}

func degenerate(span trace.Span, operation string) {
	span.SetAttributes(attribute.Bool("degenerate", true))
	metrics.DegenerateResults.WithLabelValues(operation).Inc()
}
