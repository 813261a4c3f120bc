package tools

import (
	"sort"

	"github.com/cloud-ru/pathwise-go/internal/cache"
	"github.com/cloud-ru/pathwise-go/internal/config"
	"go.opentelemetry.io/otel/trace"
)

// Registry собирает все инструменты сервиса по имени
type Registry map[string]ToolHandler

func NewRegistry(cfg *config.Config, tracer trace.Tracer, c *cache.Cache) Registry {
	return Registry{
		"loan_monthly_payment": LoanMonthlyPaymentHandler(cfg, tracer),
		"loan_amortization":    LoanAmortizationHandler(cfg, tracer),
		"loan_pit":             LoanPitHandler(cfg, tracer),
		"investment_growth":    InvestmentGrowthHandler(cfg, tracer),
		"investment_pit":       InvestmentPitHandler(cfg, tracer),
		"step_up_contribution": StepUpContributionHandler(cfg, tracer),
		"visualization":        VisualizationHandler(cfg, tracer),
		"import_data":          ImportDataHandler(cfg, tracer),
		"export_data":          ExportDataHandler(cfg, tracer),
		"merge_data":           MergeDataHandler(cfg, tracer),
		"cache_save":           CacheSaveHandler(c, tracer),
		"cache_load":           CacheLoadHandler(c, tracer),
		"cache_clear":          CacheClearHandler(c, tracer),
		"cache_settings":       CacheSettingsHandler(c, tracer),
	}
}

// Names возвращает отсортированный список инструментов
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
