package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, "created", map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, float64(201), body["code"])
	assert.Equal(t, map[string]any{"id": "1"}, body["data"])
	assert.NotContains(t, body, "reason")
}

func TestReject(t *testing.T) {
	rec := httptest.NewRecorder()
	Reject(rec, http.StatusUnprocessableEntity, "missing_required", "f1", "Full Name is required")

	body := decode(t, rec)
	assert.Equal(t, "missing_required", body["reason"])
	assert.Equal(t, "f1", body["field"])
	assert.NotContains(t, body, "data")
}
