package middleware

import (
	"context"
	"encoding/json"
	"net/http"
)

// adminIDHeader заголовок с идентификатором администратора.
// Сервис живёт за шлюзом, который аутентифицирует админа и проставляет заголовок
const adminIDHeader = "X-Admin-ID"

type contextKey string

const adminIDKey contextKey = "adminID"

// Auth проверяет наличие X-Admin-ID и кладёт его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID := r.Header.Get(adminIDHeader)
		if adminID == "" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "отсутствует заголовок X-Admin-ID",
			})
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID возвращает идентификатор администратора из контекста
func GetAdminID(ctx context.Context) (string, bool) {
	adminID, ok := ctx.Value(adminIDKey).(string)
	return adminID, ok
}
