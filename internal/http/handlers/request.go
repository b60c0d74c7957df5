package handlers

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hongminglow/dataflow-be/internal/app"
	"github.com/hongminglow/dataflow-be/internal/http/respond"
	"github.com/hongminglow/dataflow-be/internal/middleware"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respond.Reject(w, http.StatusBadRequest, string(validation.ReasonInvalidRequest), "", "invalid JSON payload")
		return false
	}
	return true
}

// fail maps a use case error onto an HTTP response.
func fail(w http.ResponseWriter, log *zap.Logger, err error) {
	if verr, ok := validation.As(err); ok {
		respond.Reject(w, http.StatusUnprocessableEntity, string(verr.Reason), verr.Field, verr.Message)
		return
	}
	switch {
	case errors.Is(err, app.ErrNotFound):
		respond.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, app.ErrAlreadyExists):
		respond.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, app.ErrInvalidCredentials):
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, app.ErrInactiveUser):
		respond.Error(w, http.StatusForbidden, "account is not active")
	default:
		log.Error("request failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}

// actorFrom identifies the caller for activity logging.
func actorFrom(r *http.Request) app.Actor {
	actor := app.Actor{IP: clientIP(r)}
	if claims, ok := middleware.ClaimsFrom(r.Context()); ok {
		actor.UserID = claims.UserID
	}
	return actor
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		ip, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(ip)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// queryInt reads a positive integer query parameter, zero when absent or bad.
func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
