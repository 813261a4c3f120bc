package dataio

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloud-ru/pathwise-go/internal/models"
)

// ExportToJSON сериализует набор данных в формат файла экспорта.
// Отсутствующие графики записываются пустыми массивами.
func ExportToJSON(loans []models.Loan, investments []models.Investment, now time.Time) ([]byte, error) {
	doc := exportDocument{
		Loans:       make([]loanRecord, 0, len(loans)),
		Investments: make([]investmentRecord, 0, len(investments)),
		ExportDate:  formatDate(now),
		Version:     ExportVersion,
	}
	for _, l := range loans {
		doc.Loans = append(doc.Loans, toLoanRecord(l))
	}
	for _, i := range investments {
		doc.Investments = append(doc.Investments, toInvestmentRecord(i))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}
