package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
)

// UserIDHeader заголовок с ID пользователя, от имени которого выполняется запрос
const UserIDHeader = "X-User-ID"

const (
	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный ID пользователя"
	msgUnknownUser   = "пользователь не найден"
)

type sessionKey struct{}

// Auth проверяет заголовок X-User-ID, находит пользователя и кладет domain.Session в контекст
func Auth(users UserRepository, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserIDHeader)
			if raw == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, UserIDHeader)
				handlers.RespondUnauthorized(w, msgMissingUserID)
				return
			}

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				logger.Warn("%s %s - Invalid user ID: %q", r.Method, r.URL.Path, raw)
				handlers.RespondUnauthorized(w, msgInvalidUserID)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, userRepo.ErrUserNotFound) {
					logger.Warn("%s %s - Unknown user: user_id=%d", r.Method, r.URL.Path, userID)
					handlers.RespondUnauthorized(w, msgUnknownUser)
					return
				}
				logger.Error("%s %s - Failed to load user: user_id=%d, error=%v", r.Method, r.URL.Path, userID, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := WithSession(r.Context(), domain.Session{UserID: user.ID, UserName: user.UserName})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSession возвращает контекст с сессией пользователя
func WithSession(ctx context.Context, session domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSession извлекает сессию пользователя из контекста
func GetSession(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(domain.Session)
	return session, ok
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	session, ok := GetSession(ctx)
	if !ok {
		return 0, false
	}
	return session.UserID, true
}
