package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hongminglow/dataflow-be/internal/app"
	"github.com/hongminglow/dataflow-be/internal/bootstrap"
	"github.com/hongminglow/dataflow-be/internal/forms"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/storage/memory"
	"github.com/hongminglow/dataflow-be/internal/store"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

type envelope struct {
	Code   int             `json:"code"`
	Reason string          `json:"reason"`
	Field  string          `json:"field"`
	Data   json.RawMessage `json:"data"`
}

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	ctx := context.Background()
	kv := memory.New()
	_, err := bootstrap.Seed(ctx, kv)
	require.NoError(t, err)
	a, err := app.New(store.New(), kv, app.Options{})
	require.NoError(t, err)
	require.NoError(t, a.Hydrate(ctx))

	mux := http.NewServeMux()
	NewFormHandler(a, zap.NewNop()).Register(mux)
	NewSettingsHandler(a, zap.NewNop()).Register(mux)
	NewActivityHandler(a, zap.NewNop()).Register(mux)
	return mux
}

func call(t *testing.T, mux http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func TestFormBuilderRoundTrip(t *testing.T) {
	mux := newMux(t)

	status, env := call(t, mux, http.MethodGet, "/api/form-builder/draft", nil)
	require.Equal(t, http.StatusOK, status)
	var draft forms.Draft
	require.NoError(t, json.Unmarshal(env.Data, &draft))
	assert.Equal(t, forms.DefaultCategory, draft.Category)

	status, env = call(t, mux, http.MethodPost, "/api/form-builder/add-field", map[string]any{"draft": draft, "type": "select"})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &draft))
	require.Len(t, draft.Fields, 1)
	assert.Equal(t, []string{"Option 1"}, draft.Fields[0].Options)

	fieldID := draft.Fields[0].ID
	status, env = call(t, mux, http.MethodPost, "/api/form-builder/add-option", map[string]any{"draft": draft, "fieldId": fieldID})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &draft))
	assert.Equal(t, []string{"Option 1", "Option 2"}, draft.Fields[0].Options)

	status, env = call(t, mux, http.MethodPost, "/api/form-builder/delete-option", map[string]any{"draft": draft, "fieldId": fieldID, "index": 5})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, string(validation.ReasonOptionIndex), env.Reason)

	status, env = call(t, mux, http.MethodPost, "/api/form-builder/add-field", map[string]any{"draft": draft, "type": "hologram"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, string(validation.ReasonUnknownFieldType), env.Reason)

	status, _ = call(t, mux, http.MethodPost, "/api/form-builder/teleport", map[string]any{"draft": draft})
	assert.Equal(t, http.StatusNotFound, status)

	draft.Name = "Room Survey"
	status, env = call(t, mux, http.MethodPost, "/api/forms", draft)
	require.Equal(t, http.StatusCreated, status)
	var saved models.Form
	require.NoError(t, json.Unmarshal(env.Data, &saved))
	assert.Equal(t, "Room Survey", saved.Name)

	status, _ = call(t, mux, http.MethodPut, "/api/forms/missing", draft)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestFieldTypesAndControls(t *testing.T) {
	mux := newMux(t)

	status, env := call(t, mux, http.MethodGet, "/api/field-types", nil)
	require.Equal(t, http.StatusOK, status)
	var kinds []forms.FieldKind
	require.NoError(t, json.Unmarshal(env.Data, &kinds))
	assert.Len(t, kinds, len(forms.Catalog()))

	status, env = call(t, mux, http.MethodGet, "/api/forms/4/controls", nil)
	require.Equal(t, http.StatusOK, status)
	var controls []forms.Control
	require.NoError(t, json.Unmarshal(env.Data, &controls))
	require.Len(t, controls, 7)
	assert.Equal(t, forms.ShapeRating, controls[2].Shape)

	status, env = call(t, mux, http.MethodPost, "/api/forms/4/validate", map[string]any{"values": map[string]any{"c1": "Ann"}})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "missing_required", env.Reason)
	assert.Equal(t, "c2", env.Field)
}

func TestNotificationEndpoints(t *testing.T) {
	mux := newMux(t)

	status, env := call(t, mux, http.MethodPost, "/api/notifications/1/read", nil)
	require.Equal(t, http.StatusOK, status)
	var list struct {
		Unread int `json:"unread"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 2, list.Unread)

	status, _ = call(t, mux, http.MethodPost, "/api/notifications/99/read", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestActivityListHugePage(t *testing.T) {
	mux := newMux(t)

	status, env := call(t, mux, http.MethodGet, "/api/activity?page=1844674407370955161&perPage=9223372036854775807", nil)
	require.Equal(t, http.StatusOK, status)
	var page struct {
		Items   []json.RawMessage `json:"items"`
		PerPage int               `json:"perPage"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Empty(t, page.Items)
	assert.Equal(t, app.MaxPerPage, page.PerPage)
}

func TestFailMapsErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{validation.New(validation.ReasonQuotaExceeded, "full"), http.StatusUnprocessableEntity},
		{fmt.Errorf("user 9: %w", app.ErrNotFound), http.StatusNotFound},
		{app.ErrAlreadyExists, http.StatusConflict},
		{app.ErrInvalidCredentials, http.StatusUnauthorized},
		{app.ErrInactiveUser, http.StatusForbidden},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		fail(rec, zap.NewNop(), tc.err)
		assert.Equal(t, tc.want, rec.Code, tc.err.Error())
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.1.2.3:5555"
	assert.Equal(t, "10.1.2.3", clientIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(r))
}
