package tools

import (
	"context"

	"github.com/cloud-ru/pathwise-go/internal/cache"
	"github.com/cloud-ru/pathwise-go/internal/models"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CacheLoadResult struct {
	Found       bool                `json:"found"`
	Loans       []models.Loan       `json:"loans"`
	Investments []models.Investment `json:"investments"`
}

type cacheSettingsRequest struct {
	Enabled *bool `json:"enabled"`
}

type CacheStatus struct {
	Enabled bool `json:"enabled"`
	Saved   bool `json:"saved,omitempty"`
}

// CacheSaveHandler сохраняет набор данных, если кэширование включено
func CacheSaveHandler(c *cache.Cache, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "cache_save"

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		var req datasetRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, paramsFailed(span, toolName, err)
		}

		enabled := c.Enabled(ctx)
		span.SetAttributes(
			attribute.Bool("enabled", enabled),
			attribute.Int("loans", len(req.Loans)),
			attribute.Int("investments", len(req.Investments)),
		)
		if enabled {
			c.Save(ctx, req.Loans, req.Investments)
		}
		succeeded(span, toolName)

		return CacheStatus{Enabled: enabled, Saved: enabled}, nil
	}
}

// CacheLoadHandler возвращает сохраненный набор данных
func CacheLoadHandler(c *cache.Cache, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "cache_load"

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		loans, investments, ok := c.Load(ctx)
		span.SetAttributes(attribute.Bool("found", ok))
		succeeded(span, toolName)

		if !ok {
			return CacheLoadResult{Loans: []models.Loan{}, Investments: []models.Investment{}}, nil
		}
		return CacheLoadResult{Found: true, Loans: loans, Investments: investments}, nil
	}
}

func CacheClearHandler(c *cache.Cache, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "cache_clear"

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		c.Clear(ctx)
		succeeded(span, toolName)

		return CacheStatus{Enabled: c.Enabled(ctx)}, nil
	}
}

// CacheSettingsHandler читает или меняет флаг кэширования.
// При выключении сохраненные данные удаляются.
func CacheSettingsHandler(c *cache.Cache, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "cache_settings"

		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		var req cacheSettingsRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, paramsFailed(span, toolName, err)
		}

		if req.Enabled != nil {
			c.SetEnabled(ctx, *req.Enabled)
			if !*req.Enabled {
				c.Clear(ctx)
			}
		}

		enabled := c.Enabled(ctx)
		span.SetAttributes(attribute.Bool("enabled", enabled))
		succeeded(span, toolName)

		return CacheStatus{Enabled: enabled}, nil
	}
}
