package models

import "time"

// Channel is how a reminder would be delivered. Nothing is actually sent.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelInApp    Channel = "in-app"
	ChannelWhatsApp Channel = "whatsapp"
)

// ReminderStatus tracks reminder bookkeeping.
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderSent      ReminderStatus = "sent"
	ReminderFailed    ReminderStatus = "failed"
	ReminderCancelled ReminderStatus = "cancelled"
)

// Recurrence is how often a reminder repeats.
type Recurrence string

const (
	RecurOnce    Recurrence = "once"
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
)

// Reminder is a scheduled message addressed to a managed user.
type Reminder struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	UserID      string         `json:"userId"`
	Type        Channel        `json:"type"`
	ScheduledAt time.Time      `json:"scheduledAt"`
	SentAt      *time.Time     `json:"sentAt,omitempty"`
	Status      ReminderStatus `json:"status"`
	Recurrence  Recurrence     `json:"recurrence,omitempty"`
}

func (r Reminder) Key() string { return r.ID }

// Clone returns a deep copy.
func (r Reminder) Clone() Reminder {
	r.SentAt = cloneTime(r.SentAt)
	return r
}
