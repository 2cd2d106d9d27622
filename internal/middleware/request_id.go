package middleware

import (
	"net/http"

	"inkpad/internal/reqctx"

	"github.com/google/uuid"
)

// RequestID проставляет request_id в контекст и в заголовок ответа.
// Если клиент прислал X-Request-ID — используем его.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx := reqctx.WithRequestID(r.Context(), rid)
		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
