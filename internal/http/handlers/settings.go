package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hongminglow/dataflow-be/internal/app"
	"github.com/hongminglow/dataflow-be/internal/http/respond"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/models/dto"
)

// SettingsHandler serves tenant settings, view state and the dashboard.
type SettingsHandler struct {
	app *app.App
	log *zap.Logger
}

func NewSettingsHandler(a *app.App, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{app: a, log: log}
}

func (h *SettingsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/settings", h.settings)
	mux.HandleFunc("PATCH /api/settings/branding", h.branding)
	mux.HandleFunc("POST /api/settings/modules/{id}/toggle", h.toggleModule)
	mux.HandleFunc("PATCH /api/settings/theme", h.theme)

	mux.HandleFunc("GET /api/ui", h.ui)
	mux.HandleFunc("PUT /api/ui/view", h.setView)
	mux.HandleFunc("POST /api/ui/sidebar/toggle", h.toggleSidebar)

	mux.HandleFunc("GET /api/dashboard", h.dashboard)
}

func (h *SettingsHandler) settings(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", h.app.Settings())
}

func (h *SettingsHandler) branding(w http.ResponseWriter, r *http.Request) {
	var req dto.BrandingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	tenant, err := h.app.UpdateBranding(r.Context(), actorFrom(r), req)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Branding updated", tenant)
}

func (h *SettingsHandler) toggleModule(w http.ResponseWriter, r *http.Request) {
	module, err := h.app.ToggleModule(r.Context(), actorFrom(r), models.ModuleID(r.PathValue("id")))
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Module updated", module)
}

func (h *SettingsHandler) theme(w http.ResponseWriter, r *http.Request) {
	var patch models.ThemePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	theme, err := h.app.PatchTheme(patch)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Theme updated", theme)
}

func (h *SettingsHandler) ui(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", h.app.UI())
}

func (h *SettingsHandler) setView(w http.ResponseWriter, r *http.Request) {
	var req dto.ViewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ui, err := h.app.SetView(req)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "ok", ui)
}

func (h *SettingsHandler) toggleSidebar(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", h.app.ToggleSidebar())
}

func (h *SettingsHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", h.app.Dashboard())
}
