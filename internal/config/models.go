package config

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Schedule  ScheduleConfig  `toml:"schedule"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	RunMigrations   bool   `toml:"run_migrations"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig рабочие часы, в которые можно назначать встречи
type ScheduleConfig struct {
	TimeZone    string `toml:"time_zone"`
	OpenHour    int    `toml:"open_hour"`
	CloseHour   int    `toml:"close_hour"`
	StepMinutes int    `toml:"step_minutes"`
	// UpcomingMinutes окно поиска ближайших встреч по умолчанию
	UpcomingMinutes int `toml:"upcoming_minutes"`
}

// BusinessHours конвертирует настройки в domain модель
func (c ScheduleConfig) BusinessHours() domain.BusinessHours {
	return domain.BusinessHours{
		TimeZone: c.TimeZone,
		Open:     time.Duration(c.OpenHour) * time.Hour,
		Close:    time.Duration(c.CloseHour) * time.Hour,
		Step:     time.Duration(c.StepMinutes) * time.Minute,
	}
}

// RateLimitConfig ограничение частоты запросов с одного IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	CleanupInterval   int     `toml:"cleanup_interval"` // секунды
	IdleTimeout       int     `toml:"idle_timeout"`     // секунды
	// TrustedProxies адреса (IP или CIDR), которым доверяются X-Forwarded-For и X-Real-IP
	TrustedProxies []string `toml:"trusted_proxies"`
}
