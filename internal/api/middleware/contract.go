package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// UserRepository источник пользователей для аутентификации
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// HTTPMetrics учет HTTP-запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
