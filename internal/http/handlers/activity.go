package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hongminglow/dataflow-be/internal/app"
	"github.com/hongminglow/dataflow-be/internal/http/respond"
	"github.com/hongminglow/dataflow-be/internal/models"
)

// ActivityHandler serves the activity log and notifications.
type ActivityHandler struct {
	app *app.App
	log *zap.Logger
}

func NewActivityHandler(a *app.App, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{app: a, log: log}
}

func (h *ActivityHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/activity", h.listActivity)
	mux.HandleFunc("GET /api/activity/facets", h.facets)
	mux.HandleFunc("GET /api/notifications", h.listNotifications)
	mux.HandleFunc("POST /api/notifications/read-all", h.markAllRead)
	mux.HandleFunc("POST /api/notifications/{id}/read", h.markRead)
}

func (h *ActivityHandler) listActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	respond.JSON(w, http.StatusOK, "ok", h.app.ListActivity(app.ActivityFilter{
		Search:  q.Get("search"),
		Action:  q.Get("action"),
		Entity:  models.EntityType(q.Get("entity")),
		Page:    queryInt(r, "page"),
		PerPage: queryInt(r, "perPage"),
	}))
}

func (h *ActivityHandler) facets(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", h.app.ActivityFacets())
}

type notificationList struct {
	Items  []models.Notification `json:"items"`
	Unread int                   `json:"unread"`
}

func (h *ActivityHandler) listNotifications(w http.ResponseWriter, r *http.Request) {
	items, unread := h.app.ListNotifications()
	respond.JSON(w, http.StatusOK, "ok", notificationList{Items: items, Unread: unread})
}

func (h *ActivityHandler) markRead(w http.ResponseWriter, r *http.Request) {
	if err := h.app.MarkNotificationRead(r.Context(), r.PathValue("id")); err != nil {
		fail(w, h.log, err)
		return
	}
	h.listNotifications(w, r)
}

func (h *ActivityHandler) markAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.app.MarkAllNotificationsRead(r.Context()); err != nil {
		fail(w, h.log, err)
		return
	}
	h.listNotifications(w, r)
}
