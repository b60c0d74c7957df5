package models

import "time"

// PaymentStatus is changed manually by operators.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Payment is a bookkeeping record for money owed by a managed user.
type Payment struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	Status      PaymentStatus `json:"status"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"createdAt"`
	PaidAt      *time.Time    `json:"paidAt,omitempty"`
	Metadata    Attributes    `json:"metadata,omitempty"`
}

func (p Payment) Key() string { return p.ID }

// Clone returns a deep copy.
func (p Payment) Clone() Payment {
	p.PaidAt = cloneTime(p.PaidAt)
	p.Metadata = p.Metadata.Clone()
	return p
}
