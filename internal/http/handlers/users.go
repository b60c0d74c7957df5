package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hongminglow/dataflow-be/internal/app"
	"github.com/hongminglow/dataflow-be/internal/http/respond"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/models/dto"
)

// UserHandler serves the managed users.
type UserHandler struct {
	app *app.App
	log *zap.Logger
}

func NewUserHandler(a *app.App, log *zap.Logger) *UserHandler {
	return &UserHandler{app: a, log: log}
}

func (h *UserHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users", h.handleList)
	mux.HandleFunc("POST /api/users", h.handleCreate)
	mux.HandleFunc("GET /api/users/{id}", h.handleGet)
	mux.HandleFunc("PATCH /api/users/{id}", h.handleUpdate)
	mux.HandleFunc("POST /api/users/{id}/toggle-status", h.handleToggle)
	mux.HandleFunc("DELETE /api/users/{id}", h.handleDelete)
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := h.app.ListUsers(app.UserFilter{
		Search:  q.Get("search"),
		Status:  models.UserStatus(q.Get("status")),
		Role:    models.Role(q.Get("role")),
		Page:    queryInt(r, "page"),
		PerPage: queryInt(r, "perPage"),
	})
	respond.JSON(w, http.StatusOK, "ok", page)
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.app.GetUser(r.PathValue("id"))
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "ok", user)
}

func (h *UserHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.app.CreateUserFromForm(r.Context(), actorFrom(r), req)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "User created successfully", user)
}

func (h *UserHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.app.UpdateUser(r.Context(), actorFrom(r), r.PathValue("id"), req)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "User updated", user)
}

func (h *UserHandler) handleToggle(w http.ResponseWriter, r *http.Request) {
	user, err := h.app.ToggleUserStatus(r.Context(), actorFrom(r), r.PathValue("id"))
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "User status updated", user)
}

func (h *UserHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.app.DeleteUser(r.Context(), actorFrom(r), r.PathValue("id")); err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "User deleted", nil)
}
