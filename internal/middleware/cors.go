package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultCORSMethods are the methods the API routes use.
var DefaultCORSMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// CORSPolicy lists the browser origins allowed to call the API. An origin of
// "*" admits everyone but never with credentials.
type CORSPolicy struct {
	Origins []string
	Methods []string
	MaxAge  time.Duration
}

// CORS adds Access-Control headers for allowed origins and short-circuits
// OPTIONS requests. The request id header may be sent and read by callers.
func CORS(p CORSPolicy, next http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]bool, len(p.Origins))
	for _, origin := range p.Origins {
		if origin == "*" {
			allowAll = true
			break
		}
		allowed[strings.ToLower(origin)] = true
	}
	methods := p.Methods
	if len(methods) == 0 {
		methods = DefaultCORSMethods
	}
	allowMethods := strings.Join(methods, ",")
	allowHeaders := strings.Join([]string{"Content-Type", "Authorization", RequestIDHeader}, ", ")
	maxAge := strconv.Itoa(int(p.MaxAge.Seconds()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (allowAll || allowed[strings.ToLower(origin)]) {
			h := w.Header()
			h.Add("Vary", "Origin")
			if allowAll {
				h.Set("Access-Control-Allow-Origin", "*")
			} else {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			h.Set("Access-Control-Expose-Headers", RequestIDHeader)
			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Headers", allowHeaders)
				h.Set("Access-Control-Allow-Methods", allowMethods)
				if p.MaxAge > 0 {
					h.Set("Access-Control-Max-Age", maxAge)
				}
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
