package cache

import (
	"context"
	"errors"
	"time"

	"github.com/cloud-ru/pathwise-go/internal/dataio"
	"github.com/cloud-ru/pathwise-go/internal/logger"
	"github.com/cloud-ru/pathwise-go/internal/models"
)

const (
	KeyData    = "pathwise-cached-data"
	KeyEnabled = "pathwise-cache-enabled"
)

// Cache сохраняет набор данных в формате файла экспорта.
// Ошибки хранилища журналируются и не прерывают работу.
type Cache struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Cache {
	return &Cache{store: store, now: time.Now}
}

// Save сериализует и сохраняет кредиты и инвестиции
func (c *Cache) Save(ctx context.Context, loans []models.Loan, investments []models.Investment) {
	data, err := dataio.ExportToJSON(loans, investments, c.now())
	if err != nil {
		logger.Errorf("Error saving to cache: %v", err)
		return
	}
	if err := c.store.Set(ctx, KeyData, string(data)); err != nil {
		logger.Errorf("Error saving to cache: %v", err)
	}
}

// Load возвращает сохраненный набор данных; ok == false, если данных нет
// или они не прошли проверку импорта
func (c *Cache) Load(ctx context.Context) (loans []models.Loan, investments []models.Investment, ok bool) {
	raw, err := c.store.Get(ctx, KeyData)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Errorf("Error loading from cache: %v", err)
		}
		return nil, nil, false
	}
	if raw == "" {
		return nil, nil, false
	}

	loans, investments, err = dataio.ImportFromJSON([]byte(raw))
	if err != nil {
		logger.Errorf("Error loading from cache: %v", err)
		return nil, nil, false
	}
	return loans, investments, true
}

func (c *Cache) Clear(ctx context.Context) {
	if err := c.store.Delete(ctx, KeyData); err != nil {
		logger.Errorf("Error clearing cache: %v", err)
	}
}

func (c *Cache) SetEnabled(ctx context.Context, enabled bool) {
	value := "false"
	if enabled {
		value = "true"
	}
	if err := c.store.Set(ctx, KeyEnabled, value); err != nil {
		logger.Errorf("Error saving cache enabled setting: %v", err)
	}
}

// Enabled читает флаг кэширования; по умолчанию false
func (c *Cache) Enabled(ctx context.Context) bool {
	value, err := c.store.Get(ctx, KeyEnabled)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Errorf("Error loading cache enabled setting: %v", err)
		}
		return false
	}
	return value == "true"
}
