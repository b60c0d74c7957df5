package middleware

import (
	"net/http"

	"github.com/hongminglow/dataflow-be/internal/metrics"
)

// Metrics records request counts and latency labelled by the mux pattern that
// serves the request, so path parameters do not explode the label space.
func Metrics(m *metrics.Metrics, mux *http.ServeMux, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, route := mux.Handler(r)
		if route == "" {
			route = "unmatched"
		}
		done := m.HTTPStart(route)
		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)
		done(r.Method, rec.status)
	})
}
