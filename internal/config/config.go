package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервиса
type Config struct {
	Port            int
	MaxPrincipal    float64
	MaxContribution float64
	MaxMonths       int
	MaxRate         float64
	MaxBalanceCap   float64
	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string

	// Кэш набора данных: пустой RedisAddr - кэш в памяти процесса
	RedisAddr    string
	CacheEnabled bool

	// Параметры графика по умолчанию
	VisHorizonYears int
	VisCadence      string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", 8000),
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", 1e9),
		MaxContribution: getEnvFloat("MAX_CONTRIBUTION", 1e8),
		MaxMonths:       getEnvInt("MAX_MONTHS", 600),
		MaxRate:         getEnvFloat("MAX_RATE", 200),
		MaxBalanceCap:   getEnvFloat("MAX_BALANCE_CAP", 1e12),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "pathwise"),
		LogLevel:        strings.ToUpper(getEnvString("LOG_LEVEL", "INFO")),
		RedisAddr:       getEnvString("REDIS_ADDR", ""),
		CacheEnabled:    getEnvBool("CACHE_ENABLED", false),
		VisHorizonYears: getEnvInt("VIS_HORIZON_YEARS", 30),
		VisCadence:      strings.ToLower(getEnvString("VIS_CADENCE", "yearly")),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// BalanceCap возвращает максимальный баланс для защиты от переполнения
func (c *Config) BalanceCap() float64 {
	return c.MaxBalanceCap
}
