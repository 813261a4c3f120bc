package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов инструментов
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Общее количество вызовов инструментов",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"tool_name", "error_type"},
	)

	// DegenerateResults счетчик расчетов с недостаточными входными данными
	DegenerateResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "degenerate_results_total",
			Help: "Расчеты, вернувшие пустой результат из-за вырожденных входных данных",
		},
		[]string{"operation"},
	)

	// ScheduleEntries распределение длины графиков платежей и роста
	ScheduleEntries = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "schedule_entries",
			Help:    "Количество записей в построенных графиках",
			Buckets: []float64{1, 12, 60, 120, 240, 360, 480, 600},
		},
		[]string{"kind"},
	)
)
