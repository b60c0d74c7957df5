package models

import "time"

// EntityType names what an activity log entry refers to.
type EntityType string

const (
	EntityUser     EntityType = "user"
	EntityForm     EntityType = "form"
	EntityPayment  EntityType = "payment"
	EntityReminder EntityType = "reminder"
	EntitySetting  EntityType = "setting"
)

// Common activity verbs.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
	ActionViewed  = "viewed"
	ActionLogin   = "login"
	ActionLogout  = "logout"
)

// ActivityLog is an append-only audit entry.
type ActivityLog struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Action     string     `json:"action"`
	EntityType EntityType `json:"entityType"`
	EntityID   string     `json:"entityId"`
	Details    Attributes `json:"details,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	IPAddress  string     `json:"ipAddress,omitempty"`
}

func (a ActivityLog) Key() string { return a.ID }

// Clone returns a deep copy.
func (a ActivityLog) Clone() ActivityLog {
	a.Details = a.Details.Clone()
	return a
}
