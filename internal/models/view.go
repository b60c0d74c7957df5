package models

// View is the screen currently shown to the operator.
type View string

const (
	ViewDashboard   View = "dashboard"
	ViewUsers       View = "users"
	ViewForms       View = "forms"
	ViewFormBuilder View = "form-builder"
	ViewReminders   View = "reminders"
	ViewPayments    View = "payments"
	ViewSettings    View = "settings"
	ViewAnalytics   View = "analytics"
	ViewActivity    View = "activity"
)

// Views lists every view in navigation order.
var Views = []View{
	ViewDashboard, ViewUsers, ViewForms, ViewFormBuilder, ViewReminders,
	ViewPayments, ViewSettings, ViewAnalytics, ViewActivity,
}

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	for _, known := range Views {
		if v == known {
			return true
		}
	}
	return false
}

// RequiredModule returns the module gating the view, if any.
func (v View) RequiredModule() (ModuleID, bool) {
	switch v {
	case ViewPayments:
		return ModulePayments, true
	case ViewReminders:
		return ModuleReminders, true
	case ViewAnalytics:
		return ModuleAnalytics, true
	}
	return "", false
}
