package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/hongminglow/dataflow-be/internal/app"
	"github.com/hongminglow/dataflow-be/internal/forms"
	"github.com/hongminglow/dataflow-be/internal/http/respond"
	"github.com/hongminglow/dataflow-be/internal/models/dto"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

// FormHandler serves form definitions, their rendering and the builder.
type FormHandler struct {
	app *app.App
	log *zap.Logger
}

func NewFormHandler(a *app.App, log *zap.Logger) *FormHandler {
	return &FormHandler{app: a, log: log}
}

func (h *FormHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/forms", h.handleList)
	mux.HandleFunc("POST /api/forms", h.handleCreate)
	mux.HandleFunc("GET /api/forms/{id}", h.handleGet)
	mux.HandleFunc("PUT /api/forms/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /api/forms/{id}", h.handleDelete)
	mux.HandleFunc("GET /api/forms/{id}/controls", h.handleControls)
	mux.HandleFunc("POST /api/forms/{id}/validate", h.handleValidate)
	mux.HandleFunc("GET /api/field-types", h.handleFieldTypes)
	mux.HandleFunc("GET /api/form-builder/draft", h.handleNewDraft)
	mux.HandleFunc("POST /api/form-builder/{op}", h.handleBuilder)
}

func (h *FormHandler) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	active, _ := strconv.ParseBool(q.Get("active"))
	respond.JSON(w, http.StatusOK, "ok", h.app.ListForms(app.FormFilter{
		Search:     q.Get("search"),
		Category:   q.Get("category"),
		ActiveOnly: active,
	}))
}

func (h *FormHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	form, err := h.app.GetForm(r.PathValue("id"))
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "ok", form)
}

func (h *FormHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var draft forms.Draft
	if !decodeJSON(w, r, &draft) {
		return
	}
	draft.ID = ""
	form, err := h.app.SaveForm(r.Context(), actorFrom(r), draft)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "Form created", form)
}

func (h *FormHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.app.GetForm(id); err != nil {
		fail(w, h.log, err)
		return
	}
	var draft forms.Draft
	if !decodeJSON(w, r, &draft) {
		return
	}
	draft.ID = id
	form, err := h.app.SaveForm(r.Context(), actorFrom(r), draft)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Form updated", form)
}

func (h *FormHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.app.DeleteForm(r.Context(), actorFrom(r), r.PathValue("id")); err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Form deleted", nil)
}

func (h *FormHandler) handleControls(w http.ResponseWriter, r *http.Request) {
	controls, err := h.app.FormControls(r.PathValue("id"))
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "ok", controls)
}

func (h *FormHandler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmissionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	values, err := h.app.CheckSubmission(r.PathValue("id"), req.Values)
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "submission is valid", values)
}

func (h *FormHandler) handleFieldTypes(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", forms.Catalog())
}

func (h *FormHandler) handleNewDraft(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "ok", forms.NewDraft())
}

// handleBuilder applies one builder edit to the posted draft and returns the
// new draft. Nothing is stored until the draft is saved.
func (h *FormHandler) handleBuilder(w http.ResponseWriter, r *http.Request) {
	var req dto.BuilderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d := req.Draft
	var err error
	switch r.PathValue("op") {
	case "add-field":
		d, err = forms.AddField(d, req.Type)
	case "update-field":
		if req.Field == nil {
			err = validation.ForField(validation.ReasonMissingRequired, "field", "field is required")
			break
		}
		d = forms.UpdateField(d, *req.Field)
	case "duplicate-field":
		if req.Field == nil {
			err = validation.ForField(validation.ReasonMissingRequired, "field", "field is required")
			break
		}
		d = forms.DuplicateField(d, *req.Field)
	case "delete-field":
		d = forms.DeleteField(d, req.FieldID)
	case "add-option":
		d = forms.AddOption(d, req.FieldID)
	case "update-option":
		d, err = forms.UpdateOption(d, req.FieldID, req.Index, req.Text)
	case "delete-option":
		d, err = forms.DeleteOption(d, req.FieldID, req.Index)
	default:
		respond.Error(w, http.StatusNotFound, "unknown builder operation")
		return
	}
	if err != nil {
		fail(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "ok", d)
}
