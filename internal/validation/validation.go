// Package validation carries the reason-coded failures reported for rejected
// operator actions.
package validation

import (
	"errors"
	"fmt"
)

// Reason is a stable, machine-readable failure code.
type Reason string

const (
	ReasonMissingRequired  Reason = "missing_required"
	ReasonInvalidNumber    Reason = "invalid_number"
	ReasonInvalidEmail     Reason = "invalid_email"
	ReasonInvalidURL       Reason = "invalid_url"
	ReasonInvalidDate      Reason = "invalid_date"
	ReasonInvalidValue     Reason = "invalid_value"
	ReasonOutOfRange       Reason = "out_of_range"
	ReasonPatternMismatch  Reason = "pattern_mismatch"
	ReasonUnknownOption    Reason = "unknown_option"
	ReasonBlankName        Reason = "blank_name"
	ReasonNoFields         Reason = "no_fields"
	ReasonMissingOptions   Reason = "missing_options"
	ReasonDuplicateFieldID Reason = "duplicate_field_id"
	ReasonUnknownFieldType Reason = "unknown_field_type"
	ReasonOptionIndex      Reason = "option_index"
	ReasonPasswordMismatch Reason = "password_mismatch"
	ReasonWeakPassword     Reason = "weak_password"
	ReasonTermsNotAccepted Reason = "terms_not_accepted"
	ReasonQuotaExceeded    Reason = "quota_exceeded"
	ReasonInvalidRequest   Reason = "invalid_request"
	ReasonInactiveForm     Reason = "inactive_form"
	ReasonUnknownView      Reason = "unknown_view"
)

// Error is a local validation failure. Field is empty when the failure is not
// tied to a single field.
type Error struct {
	Reason  Reason
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Reason, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// New builds an Error not bound to a field.
func New(reason Reason, format string, args ...any) *Error {
	return &Error{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// ForField builds an Error naming the offending field.
func ForField(reason Reason, field, format string, args ...any) *Error {
	return &Error{Reason: reason, Field: field, Message: fmt.Sprintf(format, args...)}
}

// As unwraps err into a validation Error.
func As(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
