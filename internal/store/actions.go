package store

import "github.com/hongminglow/dataflow-be/internal/models"

// Action is a named request to transition the state. The set is closed: only
// types declared in this package implement it.
type Action interface {
	Type() string
	action()
}

// Session.
type (
	SetUser          struct{ User *models.User }
	SetAuthenticated struct{ Value bool }
	SetTenant        struct{ Tenant *models.Tenant }
)

// Users.
type (
	SetUsers   struct{ Users []models.User }
	AddUser    struct{ User models.User }
	UpdateUser struct{ User models.User }
	DeleteUser struct{ ID string }
)

// Forms.
type (
	SetForms   struct{ Forms []models.Form }
	AddForm    struct{ Form models.Form }
	UpdateForm struct{ Form models.Form }
	DeleteForm struct{ ID string }
)

// Reminders.
type (
	SetReminders   struct{ Reminders []models.Reminder }
	AddReminder    struct{ Reminder models.Reminder }
	UpdateReminder struct{ Reminder models.Reminder }
	DeleteReminder struct{ ID string }
)

// Payments.
type (
	SetPayments   struct{ Payments []models.Payment }
	AddPayment    struct{ Payment models.Payment }
	UpdatePayment struct{ Payment models.Payment }
	DeletePayment struct{ ID string }
)

// Activity logs. Additions are newest-first.
type (
	SetActivityLogs   struct{ Logs []models.ActivityLog }
	AddActivityLog    struct{ Log models.ActivityLog }
	UpdateActivityLog struct{ Log models.ActivityLog }
	DeleteActivityLog struct{ ID string }
)

// Notifications. Additions are newest-first.
type (
	SetNotifications     struct{ Notifications []models.Notification }
	AddNotification      struct{ Notification models.Notification }
	UpdateNotification   struct{ Notification models.Notification }
	DeleteNotification   struct{ ID string }
	MarkNotificationRead struct{ ID string }
)

// Modules, theme and UI.
type (
	ToggleModule   struct{ ID models.ModuleID }
	SetTheme       struct{ Patch models.ThemePatch }
	ToggleSidebar  struct{}
	SetCurrentView struct{ View models.View }
	SetLoading     struct{ Value bool }
	SetError       struct{ Message *string }
	// ResetState restores the initial tree, session included. It is the logout contract.
	ResetState struct{}
)

func (SetUser) Type() string          { return "SET_USER" }
func (SetAuthenticated) Type() string { return "SET_AUTHENTICATED" }
func (SetTenant) Type() string        { return "SET_TENANT" }

func (SetUsers) Type() string   { return "SET_USERS" }
func (AddUser) Type() string    { return "ADD_USER" }
func (UpdateUser) Type() string { return "UPDATE_USER" }
func (DeleteUser) Type() string { return "DELETE_USER" }

func (SetForms) Type() string   { return "SET_FORMS" }
func (AddForm) Type() string    { return "ADD_FORM" }
func (UpdateForm) Type() string { return "UPDATE_FORM" }
func (DeleteForm) Type() string { return "DELETE_FORM" }

func (SetReminders) Type() string   { return "SET_REMINDERS" }
func (AddReminder) Type() string    { return "ADD_REMINDER" }
func (UpdateReminder) Type() string { return "UPDATE_REMINDER" }
func (DeleteReminder) Type() string { return "DELETE_REMINDER" }

func (SetPayments) Type() string   { return "SET_PAYMENTS" }
func (AddPayment) Type() string    { return "ADD_PAYMENT" }
func (UpdatePayment) Type() string { return "UPDATE_PAYMENT" }
func (DeletePayment) Type() string { return "DELETE_PAYMENT" }

func (SetActivityLogs) Type() string   { return "SET_ACTIVITY_LOGS" }
func (AddActivityLog) Type() string    { return "ADD_ACTIVITY_LOG" }
func (UpdateActivityLog) Type() string { return "UPDATE_ACTIVITY_LOG" }
func (DeleteActivityLog) Type() string { return "DELETE_ACTIVITY_LOG" }

func (SetNotifications) Type() string     { return "SET_NOTIFICATIONS" }
func (AddNotification) Type() string      { return "ADD_NOTIFICATION" }
func (UpdateNotification) Type() string   { return "UPDATE_NOTIFICATION" }
func (DeleteNotification) Type() string   { return "DELETE_NOTIFICATION" }
func (MarkNotificationRead) Type() string { return "MARK_NOTIFICATION_READ" }

func (ToggleModule) Type() string   { return "TOGGLE_MODULE" }
func (SetTheme) Type() string       { return "SET_THEME" }
func (ToggleSidebar) Type() string  { return "TOGGLE_SIDEBAR" }
func (SetCurrentView) Type() string { return "SET_CURRENT_VIEW" }
func (SetLoading) Type() string     { return "SET_LOADING" }
func (SetError) Type() string       { return "SET_ERROR" }
func (ResetState) Type() string     { return "RESET_STATE" }

func (SetUser) action()              {}
func (SetAuthenticated) action()     {}
func (SetTenant) action()            {}
func (SetUsers) action()             {}
func (AddUser) action()              {}
func (UpdateUser) action()           {}
func (DeleteUser) action()           {}
func (SetForms) action()             {}
func (AddForm) action()              {}
func (UpdateForm) action()           {}
func (DeleteForm) action()           {}
func (SetReminders) action()         {}
func (AddReminder) action()          {}
func (UpdateReminder) action()       {}
func (DeleteReminder) action()       {}
func (SetPayments) action()          {}
func (AddPayment) action()           {}
func (UpdatePayment) action()        {}
func (DeletePayment) action()        {}
func (SetActivityLogs) action()      {}
func (AddActivityLog) action()       {}
func (UpdateActivityLog) action()    {}
func (DeleteActivityLog) action()    {}
func (SetNotifications) action()     {}
func (AddNotification) action()      {}
func (UpdateNotification) action()   {}
func (DeleteNotification) action()   {}
func (MarkNotificationRead) action() {}
func (ToggleModule) action()         {}
func (SetTheme) action()             {}
func (ToggleSidebar) action()        {}
func (SetCurrentView) action()       {}
func (SetLoading) action()           {}
func (SetError) action()             {}
func (ResetState) action()           {}
