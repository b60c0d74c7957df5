package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/hongminglow/dataflow-be/internal/ids"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/models/dto"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/store"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

// PaymentFilter narrows ListPayments.
type PaymentFilter struct {
	Search string
	Status models.PaymentStatus
}

// ListPayments matches the search against the description and the payer's name.
func (a *App) ListPayments(f PaymentFilter) []models.Payment {
	st := a.store.State()
	q := normalize(f.Search)
	out := []models.Payment{}
	for _, p := range st.Payments {
		if q != "" && !contains(p.Description, q) {
			u, ok := findByID(st.Users, p.UserID)
			if !ok || !contains(u.Name, q) {
				continue
			}
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CreatePayment records a pending payment.
func (a *App) CreatePayment(ctx context.Context, actor Actor, req dto.PaymentRequest) (models.Payment, error) {
	if err := a.check(req); err != nil {
		return models.Payment{}, err
	}
	var created models.Payment
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		if _, ok := findByID(st.Users, req.UserID); !ok {
			return nil, validation.ForField(validation.ReasonInvalidValue, "userId", "unknown user %q", req.UserID)
		}
		now := a.now()
		p := models.Payment{
			ID:          ids.NewAt("payment", now),
			UserID:      req.UserID,
			Amount:      req.Amount,
			Currency:    strings.ToUpper(req.Currency),
			Status:      models.PaymentPending,
			Description: strings.TrimSpace(req.Description),
			CreatedAt:   now,
			Metadata:    req.Metadata.Clone(),
		}
		if p.Currency == "" {
			p.Currency = "USD"
		}
		created = p
		return []store.Action{
			store.AddPayment{Payment: p},
			a.activity(actor, models.ActionCreated, models.EntityPayment, p.ID, models.Attributes{
				"amount":      models.Number(p.Amount),
				"description": models.String(p.Description),
			}),
		}, nil
	})
	if err != nil {
		return models.Payment{}, err
	}
	return created, a.save(ctx, storage.KeyPayments, storage.KeyActivityLogs)
}

// SetPaymentStatus moves a payment to status. Completing stamps PaidAt.
func (a *App) SetPaymentStatus(ctx context.Context, actor Actor, id string, req dto.PaymentStatusRequest) (models.Payment, error) {
	if err := a.check(req); err != nil {
		return models.Payment{}, err
	}
	var updated models.Payment
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		p, ok := findByID(st.Payments, id)
		if !ok {
			return nil, fmt.Errorf("payment %s: %w", id, ErrNotFound)
		}
		p.Status = req.Status
		actions := []store.Action{}
		if req.Status == models.PaymentCompleted {
			now := a.now()
			p.PaidAt = &now
			payer := p.UserID
			if u, ok := findByID(st.Users, p.UserID); ok {
				payer = u.Name
			}
			actions = append(actions, a.notification(models.NotifySuccess, "Payment Received",
				fmt.Sprintf("Payment of %s received from %s.", formatAmount(p), payer), "/payments/"+p.ID))
		}
		updated = p
		actions = append(actions,
			store.UpdatePayment{Payment: p},
			a.activity(actor, models.ActionUpdated, models.EntityPayment, p.ID, models.Attributes{"status": models.String(string(p.Status))}),
		)
		return actions, nil
	})
	if err != nil {
		return models.Payment{}, err
	}
	return updated, a.save(ctx, storage.KeyPayments, storage.KeyActivityLogs, storage.KeyNotifications)
}

func formatAmount(p models.Payment) string {
	if p.Currency == "USD" {
		return fmt.Sprintf("$%.2f", p.Amount)
	}
	return fmt.Sprintf("%.2f %s", p.Amount, p.Currency)
}

// PaymentStats summarises the payments collection.
type PaymentStats struct {
	Revenue   float64                      `json:"revenue"`
	Total     int                          `json:"total"`
	Pending   int                          `json:"pending"`
	Completed int                          `json:"completed"`
	Failed    int                          `json:"failed"`
	Refunded  int                          `json:"refunded"`
	ByStatus  map[models.PaymentStatus]int `json:"byStatus"`
}

// PaymentStats sums completed revenue and counts payments per status.
func (a *App) PaymentStats() PaymentStats {
	return paymentStats(a.store.Payments().Items)
}

func paymentStats(payments []models.Payment) PaymentStats {
	s := PaymentStats{ByStatus: map[models.PaymentStatus]int{}}
	for _, p := range payments {
		s.Total++
		s.ByStatus[p.Status]++
		switch p.Status {
		case models.PaymentCompleted:
			s.Completed++
			s.Revenue += p.Amount
		case models.PaymentPending:
			s.Pending++
		case models.PaymentFailed:
			s.Failed++
		case models.PaymentRefunded:
			s.Refunded++
		}
	}
	return s
}
