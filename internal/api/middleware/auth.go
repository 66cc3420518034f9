package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
)

// OperatorHeader заголовок с идентификатором оператора ресепшена
const OperatorHeader = "X-Operator-ID"

type contextKey string

const operatorIDKey contextKey = "operatorID"

// Auth требует X-Operator-ID на изменяющих маршрутах
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operatorID := strings.TrimSpace(r.Header.Get(OperatorHeader))
		if operatorID == "" {
			handlers.RespondUnauthorized(w, "missing "+OperatorHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), operatorIDKey, operatorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetOperatorID возвращает оператора, установленного Auth
func GetOperatorID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(operatorIDKey).(string)
	return id, ok && id != ""
}

// WithOperatorID кладет оператора в контекст (используется в тестах обработчиков)
func WithOperatorID(ctx context.Context, operatorID string) context.Context {
	return context.WithValue(ctx, operatorIDKey, operatorID)
}
