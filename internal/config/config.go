package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Environment string `toml:"-" validate:"oneof=development test production"`

	Host string `toml:"host"`
	Port int    `toml:"port" validate:"min=1,max=65535"`

	CorsAllowedOrigins []string `toml:"cors_allowed_origins" validate:"dive,url"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage
	Storage        string `toml:"storage" validate:"oneof=postgres memory"`
	PostgresHost   string `toml:"postgres_host" validate:"required_if=Storage postgres"`
	PostgresPort   string `toml:"postgres_port" validate:"omitempty,numeric"`
	PostgresDBName string `toml:"postgres_db_name" validate:"required_if=Storage postgres"`
	PostgresUser   string `toml:"postgres_user" validate:"required_if=Storage postgres"`
	RunMigrations  bool   `toml:"run_migrations"`

	// redis backs write rate limiting, which is off when host is empty
	RedisHost                   string `toml:"redis_host"`
	RedisPort                   string `toml:"redis_port" validate:"omitempty,numeric"`
	WriteRateLimitAllowedPerMin int    `toml:"write_rate_limit_allowed_per_min" validate:"min=0"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port" validate:"required,numeric"`
}

type Toml struct {
	Development *Config
	Test        *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg, env = t.Development, "development"
	case "test":
		cfg, env = t.Test, "test"
	case "prod", "production":
		cfg, env = t.Production, "production"
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.Environment = env
	return cfg, nil
}

// Load reads the TOML file at path and returns the validated section for env.
func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	reasons := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		reasons = append(reasons, fmt.Sprintf("%s: failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(reasons, "; "))
}
