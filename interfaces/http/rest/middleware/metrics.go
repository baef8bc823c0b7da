package middleware

import (
	"net/http"
	"strconv"

	"mentcare/pkg/observability"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Metrics records a count and latency datum per request
func Metrics(m *observability.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timer := m.StartTimer("RequestLatency", "Method", r.Method)
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			timer.Stop()
			m.Increment("RequestCount",
				"Method", r.Method,
				"Status", strconv.Itoa(ww.Status()),
			)
		})
	}
}
