package dto

import (
	"time"

	"github.com/hongminglow/dataflow-be/internal/models"
)

// ReminderRequest creates or replaces a reminder.
type ReminderRequest struct {
	Title       string            `json:"title" validate:"required"`
	Message     string            `json:"message" validate:"required"`
	UserID      string            `json:"userId" validate:"required"`
	Type        models.Channel    `json:"type" validate:"omitempty,oneof=email sms in-app whatsapp"`
	ScheduledAt *time.Time        `json:"scheduledAt" validate:"required"`
	Recurrence  models.Recurrence `json:"recurrence" validate:"omitempty,oneof=once daily weekly monthly"`
}

// PaymentRequest records a new payment.
type PaymentRequest struct {
	UserID      string            `json:"userId" validate:"required"`
	Amount      float64           `json:"amount" validate:"gt=0"`
	Currency    string            `json:"currency" validate:"omitempty,len=3,alpha"`
	Description string            `json:"description" validate:"required"`
	Metadata    models.Attributes `json:"metadata,omitempty"`
}

// PaymentStatusRequest moves a payment to a new status.
type PaymentStatusRequest struct {
	Status models.PaymentStatus `json:"status" validate:"required,oneof=pending completed failed refunded"`
}

// BrandingRequest patches tenant branding. Nil fields are left alone.
type BrandingRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Logo           *string `json:"logo,omitempty"`
	Favicon        *string `json:"favicon,omitempty"`
	PrimaryColor   *string `json:"primaryColor,omitempty" validate:"omitempty,hexcolor"`
	SecondaryColor *string `json:"secondaryColor,omitempty" validate:"omitempty,hexcolor"`
	AccentColor    *string `json:"accentColor,omitempty" validate:"omitempty,hexcolor"`
	FontFamily     *string `json:"fontFamily,omitempty"`
	CustomCSS      *string `json:"customCss,omitempty"`
}

// ViewRequest switches the current view.
type ViewRequest struct {
	View models.View `json:"view" validate:"required"`
}
