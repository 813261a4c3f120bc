package dataio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidJSON   = errors.New("invalid JSON format: unable to parse file")
	ErrInvalidFormat = errors.New(`invalid data format: expected an object with "loans" and "investments" arrays`)
	ErrNotArrays     = errors.New("invalid data format: loans and investments must be arrays")
	ErrMissingID     = errors.New("invalid or missing ID")
	ErrDuplicateID   = errors.New("duplicate ID")
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidRecord = errors.New("invalid record")
)

// RecordError описывает ошибку в конкретной записи файла импорта
type RecordError struct {
	Kind  string // "loan" или "investment"
	Index int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingID):
		return fmt.Sprintf("invalid or missing ID in %s at index %d. All items must have a non-empty ID.", e.Kind, e.Index)
	case errors.Is(e.Err, ErrDuplicateID):
		return fmt.Sprintf("duplicate ID %q in %s at index %d", e.Field, e.Kind, e.Index)
	case errors.Is(e.Err, ErrMissingField):
		return fmt.Sprintf("missing required field '%s' in %s at index %d", e.Field, e.Kind, e.Index)
	case errors.Is(e.Err, ErrInvalidDate):
		return fmt.Sprintf("invalid date in %s at index %d", e.Kind, e.Index)
	default:
		return fmt.Sprintf("invalid %s at index %d: %v", e.Kind, e.Index, e.Err)
	}
}

func (e *RecordError) Unwrap() error { return e.Err }
