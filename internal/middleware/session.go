package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hongminglow/dataflow-be/internal/auth"
	"github.com/hongminglow/dataflow-be/internal/http/respond"
)

type claimsKey struct{}

// RequireSession rejects requests without a valid bearer token unless public
// reports the request as open. Accepted claims are stored in the request
// context.
func RequireSession(tokens *auth.TokenManager, public func(*http.Request) bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if public != nil && public(r) {
			next.ServeHTTP(w, r)
			return
		}
		scheme, raw, ok := strings.Cut(r.Header.Get("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		claims, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// WithClaims returns ctx carrying claims.
func WithClaims(ctx context.Context, claims auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFrom returns the session claims stored by RequireSession.
func ClaimsFrom(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(auth.Claims)
	return claims, ok
}
