package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDKey ключ контекста с идентификатором запроса
const RequestIDKey contextKey = "requestID"

const requestIDHeader = "X-Request-ID"

// RequestID проставляет корреляционный идентификатор запроса.
// Если клиент прислал свой X-Request-ID, он сохраняется; иначе генерируется
// новый UUID. Идентификатор возвращается в ответе для сквозной трассировки
// жалоб пользователей по логам.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext извлекает идентификатор запроса из контекста
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}
