package dataio

import (
	"strings"

	"github.com/google/uuid"
)

// Identifiable - сущность с устойчивым идентификатором
type Identifiable interface {
	GetId() string
}

// MergeResult - статистика слияния
type MergeResult struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
}

// MergeData объединяет импортированные записи с существующими по Id:
// совпадающий Id заменяет запись, новый Id добавляется в конец.
// Импортированные записи с пустым Id пропускаются; существующие сохраняются как есть.
func MergeData[T Identifiable](existing, imported []T) ([]T, MergeResult) {
	merged := make([]T, len(existing), len(existing)+len(imported))
	copy(merged, existing)

	index := make(map[string]int, len(existing))
	for i, item := range existing {
		id := item.GetId()
		if strings.TrimSpace(id) == "" {
			continue
		}
		if _, ok := index[id]; !ok {
			index[id] = i
		}
	}

	var result MergeResult
	for _, item := range imported {
		id := item.GetId()
		if strings.TrimSpace(id) == "" {
			continue
		}
		if i, ok := index[id]; ok {
			merged[i] = item
			result.Updated++
			continue
		}
		index[id] = len(merged)
		merged = append(merged, item)
		result.Added++
	}

	return merged, result
}

// GenerateID возвращает новый идентификатор записи (UUID v4)
func GenerateID() string {
	return uuid.NewString()
}
