package middleware

import (
	"net/http"

	"retroblog/internal/reqctx"

	"github.com/google/uuid"
)

// RequestID проставляет request_id в контекст и в ответ.
// Входящий X-Request-Id уважаем, чтобы не рвать сквозную трассировку.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", rid)
		next.ServeHTTP(w, r.WithContext(reqctx.WithRequestID(r.Context(), rid)))
	})
}
