package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hongminglow/dataflow-be/internal/app"
	"github.com/hongminglow/dataflow-be/internal/auth"
	"github.com/hongminglow/dataflow-be/internal/http/respond"
	"github.com/hongminglow/dataflow-be/internal/middleware"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/models/dto"
)

// AuthHandler owns the session endpoints.
type AuthHandler struct {
	app    *app.App
	tokens *auth.TokenManager
	log    *zap.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(a *app.App, tokens *auth.TokenManager, log *zap.Logger) *AuthHandler {
	return &AuthHandler{app: a, tokens: tokens, log: log}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", h.handleLogout)
	mux.HandleFunc("GET /api/auth/me", h.handleMe)
}

// PublicPaths lists the auth routes reachable without a session.
func (h *AuthHandler) PublicPaths() []string {
	return []string{"/api/auth/register", "/api/auth/login"}
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.app.Register(r.Context(), req, clientIP(r))
	if err != nil {
		fail(w, h.log, err)
		return
	}
	h.issue(w, http.StatusCreated, "User created successfully", user)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.app.Login(r.Context(), req, clientIP(r))
	if err != nil {
		fail(w, h.log, err)
		return
	}
	h.issue(w, http.StatusOK, "login successful", user)
}

func (h *AuthHandler) issue(w http.ResponseWriter, status int, message string, user models.User) {
	token, err := h.tokens.Generate(user)
	if err != nil {
		h.log.Error("generate token", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, status, message, dto.LoginResponse{Token: token, User: user})
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Logout(r.Context(), actorFrom(r)); err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.app.CurrentUser(claims.UserID)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "ok", user)
}
