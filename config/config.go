package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)

type Config struct {
	Port           string `validate:"required,numeric"`
	LogLevel       string `validate:"oneof=debug info warn warning error"`
	Environment    string `validate:"required"`
	ServiceName    string `validate:"required"`
	Version        string `validate:"required"`
	LogDir         string `validate:"required"`
	LogMaxSizeMB   int    `validate:"gte=0"`
	LogMaxBackups  int    `validate:"gte=0"`
	LogMaxAgeDays  int    `validate:"gte=0"`
	AllowedOrigins []string
	KafkaBrokers   []string
	KafkaTopic     string `validate:"required_with=KafkaBrokers"`
	MetricsEnabled bool
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// NewConfig reads the process environment once. Values from a .env file in
// the working directory are used only where the real environment is unset.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8000"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Environment:    getEnv("NODE_ENV", getEnv("ENVIRONMENT", EnvironmentDevelopment)),
		ServiceName:    getEnv("SERVICE_NAME", "gravity-ai-api"),
		Version:        getEnv("SERVICE_VERSION", "1.0.0"),
		LogDir:         getEnv("LOG_DIR", "logs"),
		LogMaxSizeMB:   getEnvInt("LOG_MAX_SIZE_MB", 0),
		LogMaxBackups:  getEnvInt("LOG_MAX_BACKUPS", 0),
		LogMaxAgeDays:  getEnvInt("LOG_MAX_AGE_DAYS", 0),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS"),
		KafkaBrokers:   getEnvList("LOG_KAFKA_BROKERS"),
		KafkaTopic:     getEnv("LOG_KAFKA_TOPIC", "logs"),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var Module = fx.Options(
	fx.Provide(NewConfig),
)
