package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloud-ru/pathwise-go/internal/calculations"
	"github.com/cloud-ru/pathwise-go/internal/config"
	"github.com/cloud-ru/pathwise-go/internal/dataio"
	"github.com/cloud-ru/pathwise-go/internal/models"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type importRequest struct {
	Data   *string `json:"data"`
	Derive bool    `json:"derive"`
}

type datasetRequest struct {
	Loans       []models.Loan       `json:"loans"`
	Investments []models.Investment `json:"investments"`
}

type mergeRequest struct {
	ExistingLoans       []models.Loan       `json:"existing_loans"`
	ExistingInvestments []models.Investment `json:"existing_investments"`
	ImportedLoans       []models.Loan       `json:"imported_loans"`
	ImportedInvestments []models.Investment `json:"imported_investments"`
}

type Dataset struct {
	Loans       []models.Loan       `json:"loans"`
	Investments []models.Investment `json:"investments"`
}

type ExportResult struct {
	Data string `json:"data"`
}

type MergeResult struct {
	Loans             []models.Loan       `json:"loans"`
	Investments       []models.Investment `json:"investments"`
	LoansResult       dataio.MergeResult  `json:"loans_result"`
	InvestmentsResult dataio.MergeResult  `json:"investments_result"`
}

// ImportDataHandler проверяет и разбирает файл экспорта.
// derive=true пересчитывает платежи, графики и рост импортированных записей.
func ImportDataHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "import_data"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		var req importRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, paramsFailed(span, toolName, err)
		}
		if req.Data == nil {
			return nil, paramsFailed(span, toolName, fmt.Errorf("invalid parameter: data"))
		}

		span.SetAttributes(
			attribute.Int("bytes", len(*req.Data)),
			attribute.Bool("derive", req.Derive),
		)

		loans, investments, err := dataio.ImportFromJSON([]byte(*req.Data))
		if err != nil {
			var recErr *dataio.RecordError
			if errors.As(err, &recErr) {
				span.SetAttributes(
					attribute.String("record_kind", recErr.Kind),
					attribute.Int("record_index", recErr.Index),
				)
			}
			return nil, validationFailed(span, toolName, err)
		}

		if req.Derive {
			now := time.Now()
			for i := range loans {
				loans[i] = calculations.DeriveLoan(loans[i])
			}
			for i := range investments {
				investments[i] = calculations.DeriveInvestment(investments[i], now)
			}
		}

		span.SetAttributes(
			attribute.Int("loans", len(loans)),
			attribute.Int("investments", len(investments)),
		)
		succeeded(span, toolName)

		return Dataset{Loans: loans, Investments: investments}, nil
	}
}

// ExportDataHandler сериализует набор данных в формат файла экспорта
func ExportDataHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "export_data"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		var req datasetRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, paramsFailed(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Int("loans", len(req.Loans)),
			attribute.Int("investments", len(req.Investments)),
		)

		data, err := dataio.ExportToJSON(req.Loans, req.Investments, time.Now())
		if err != nil {
			return nil, calculationFailed(span, toolName, err)
		}

		span.SetAttributes(attribute.Int("bytes", len(data)))
		succeeded(span, toolName)

		return ExportResult{Data: string(data)}, nil
	}
}

// MergeDataHandler сливает импортированные записи с существующими по Id
func MergeDataHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "merge_data"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		var req mergeRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, paramsFailed(span, toolName, err)
		}

		loans, loansResult := dataio.MergeData(req.ExistingLoans, req.ImportedLoans)
		investments, investmentsResult := dataio.MergeData(req.ExistingInvestments, req.ImportedInvestments)

		span.SetAttributes(
			attribute.Int("loans_added", loansResult.Added),
			attribute.Int("loans_updated", loansResult.Updated),
			attribute.Int("investments_added", investmentsResult.Added),
			attribute.Int("investments_updated", investmentsResult.Updated),
		)
		succeeded(span, toolName)

		return MergeResult{
			Loans:             loans,
			Investments:       investments,
			LoansResult:       loansResult,
			InvestmentsResult: investmentsResult,
		}, nil
	}
}
