// Package config загружает конфигурацию сервиса из TOML файла и переменных окружения
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvDBHost     = "DB_HOST"
	EnvDBPassword = "DB_PASSWORD"
	EnvHTTPPort   = "HTTP_PORT"
)

var ErrInvalidConfig = errors.New("invalid config")

// Load читает конфиг из path, подгружает .env (если есть) и применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения по умолчанию, файл перекрывает только заданные в нем поля
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			RunMigrations:   true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "schedule_service",
		},
		Schedule: ScheduleConfig{
			TimeZone:        domain.DefaultBusinessTimeZone,
			OpenHour:        domain.DefaultOpenHour,
			CloseHour:       domain.DefaultCloseHour,
			StepMinutes:     domain.DefaultSlotStepMinutes,
			UpcomingMinutes: int(domain.DefaultUpcomingWindow / time.Minute),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 20,
			Burst:             40,
			CleanupInterval:   60,
			IdleTimeout:       300,
		},
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDBHost); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет диапазоны значений и что часовой пояс рабочих часов существует
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: server.shutdown_timeout must be positive", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database host, user and dbname are required", ErrInvalidConfig)
	}

	hours := c.Schedule.BusinessHours()
	if err := hours.Validate(); err != nil {
		return fmt.Errorf("%w: schedule: %v", ErrInvalidConfig, err)
	}
	if _, err := time.LoadLocation(hours.TimeZone); err != nil {
		return fmt.Errorf("%w: schedule.time_zone %q: %v", ErrInvalidConfig, hours.TimeZone, err)
	}
	if c.Schedule.UpcomingMinutes < 0 {
		return fmt.Errorf("%w: schedule.upcoming_minutes must not be negative", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requests_per_second and burst must be positive", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	return nil
}
