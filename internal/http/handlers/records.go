package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/hongminglow/dataflow-be/internal/app"
	"github.com/hongminglow/dataflow-be/internal/http/respond"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/models/dto"
)

// RecordHandler serves reminders and payments.
type RecordHandler struct {
	app *app.App
	log *zap.Logger
}

func NewRecordHandler(a *app.App, log *zap.Logger) *RecordHandler {
	return &RecordHandler{app: a, log: log}
}

func (h *RecordHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/reminders", h.listReminders)
	mux.HandleFunc("POST /api/reminders", h.createReminder)
	mux.HandleFunc("PUT /api/reminders/{id}", h.updateReminder)
	mux.HandleFunc("POST /api/reminders/{id}/cancel", h.cancelReminder)
	mux.HandleFunc("DELETE /api/reminders/{id}", h.deleteReminder)

	mux.HandleFunc("GET /api/payments", h.listPayments)
	mux.HandleFunc("POST /api/payments", h.createPayment)
	mux.HandleFunc("GET /api/payments/stats", h.paymentStats)
	mux.HandleFunc("PUT /api/payments/{id}/status", h.setPaymentStatus)
}

func (h *RecordHandler) listReminders(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", h.app.ListReminders(r.URL.Query().Get("search")))
}

func (h *RecordHandler) createReminder(w http.ResponseWriter, r *http.Request) {
	var req dto.ReminderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	reminder, err := h.app.CreateReminder(r.Context(), actorFrom(r), req)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "Reminder scheduled", reminder)
}

func (h *RecordHandler) updateReminder(w http.ResponseWriter, r *http.Request) {
	var req dto.ReminderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	reminder, err := h.app.UpdateReminder(r.Context(), actorFrom(r), r.PathValue("id"), req)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Reminder updated", reminder)
}

func (h *RecordHandler) cancelReminder(w http.ResponseWriter, r *http.Request) {
	reminder, err := h.app.CancelReminder(r.Context(), actorFrom(r), r.PathValue("id"))
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Reminder cancelled", reminder)
}

func (h *RecordHandler) deleteReminder(w http.ResponseWriter, r *http.Request) {
	if err := h.app.DeleteReminder(r.Context(), actorFrom(r), r.PathValue("id")); err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Reminder deleted", nil)
}

func (h *RecordHandler) listPayments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	respond.JSON(w, http.StatusOK, "ok", h.app.ListPayments(app.PaymentFilter{
		Search: q.Get("search"),
		Status: models.PaymentStatus(q.Get("status")),
	}))
}

func (h *RecordHandler) createPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	payment, err := h.app.CreatePayment(r.Context(), actorFrom(r), req)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "Payment recorded", payment)
}

func (h *RecordHandler) paymentStats(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", h.app.PaymentStats())
}

func (h *RecordHandler) setPaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	payment, err := h.app.SetPaymentStatus(r.Context(), actorFrom(r), r.PathValue("id"), req)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Payment updated", payment)
}
