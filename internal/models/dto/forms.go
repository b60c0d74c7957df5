package dto

import (
	"github.com/hongminglow/dataflow-be/internal/forms"
	"github.com/hongminglow/dataflow-be/internal/models"
)

// BuilderRequest is one edit applied to a draft held by the client. Which of
// the optional members matter depends on the operation.
type BuilderRequest struct {
	Draft   forms.Draft       `json:"draft"`
	Type    models.FieldType  `json:"type,omitempty"`
	Field   *models.FormField `json:"field,omitempty"`
	FieldID string            `json:"fieldId,omitempty"`
	Index   int               `json:"index"`
	Text    string            `json:"text,omitempty"`
}

// SubmissionRequest carries raw answers keyed by field id.
type SubmissionRequest struct {
	Values map[string]any `json:"values"`
}
