package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/axiomforum/axiom-backend/pkg/ctxutil"
)

// RequestID tags each request with an id for log correlation. An
// incoming X-Request-Id is honored so ids survive proxies; otherwise
// one is minted. The id is echoed back in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
