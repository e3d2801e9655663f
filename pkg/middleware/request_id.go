package middleware

import (
	"net/http"

	"github.com/feedrate/feedrate-calculator/pkg/requestid"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestID stores the request id in the context and echoes it in the response.
// The id comes from the X-Request-Id header, then from chi's RequestID middleware,
// and is generated when neither provides one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestid.Header)
		if id == "" {
			id = middleware.GetReqID(r.Context())
		}
		if id == "" {
			id = requestid.Generate()
		}

		w.Header().Set(requestid.Header, id)
		next.ServeHTTP(w, r.WithContext(requestid.ToContext(r.Context(), id)))
	})
}
