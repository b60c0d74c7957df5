package store

import "github.com/hongminglow/dataflow-be/internal/models"

// Reduce derives the next state from prev and a. It performs no I/O and never
// mutates prev; collections that change are rebuilt, the rest are shared.
// Unknown actions return prev unchanged.
func Reduce(prev State, a Action) State {
	next := prev
	switch a := a.(type) {
	case SetUser:
		next.CurrentUser = cloneUserPtr(a.User)
	case SetAuthenticated:
		next.IsAuthenticated = a.Value
	case SetTenant:
		if a.Tenant == nil {
			next.Tenant = nil
		} else {
			t := a.Tenant.Clone()
			next.Tenant = &t
		}

	case SetUsers:
		next.Users = nonNil(cloneAll(a.Users))
	case AddUser:
		next.Users = appendOne(prev.Users, a.User)
	case UpdateUser:
		next.Users = replaceOne(prev.Users, a.User)
	case DeleteUser:
		next.Users = removeOne(prev.Users, a.ID)

	case SetForms:
		next.Forms = nonNil(cloneAll(a.Forms))
	case AddForm:
		next.Forms = appendOne(prev.Forms, a.Form)
	case UpdateForm:
		next.Forms = replaceOne(prev.Forms, a.Form)
	case DeleteForm:
		next.Forms = removeOne(prev.Forms, a.ID)

	case SetReminders:
		next.Reminders = nonNil(cloneAll(a.Reminders))
	case AddReminder:
		next.Reminders = appendOne(prev.Reminders, a.Reminder)
	case UpdateReminder:
		next.Reminders = replaceOne(prev.Reminders, a.Reminder)
	case DeleteReminder:
		next.Reminders = removeOne(prev.Reminders, a.ID)

	case SetPayments:
		next.Payments = nonNil(cloneAll(a.Payments))
	case AddPayment:
		next.Payments = appendOne(prev.Payments, a.Payment)
	case UpdatePayment:
		next.Payments = replaceOne(prev.Payments, a.Payment)
	case DeletePayment:
		next.Payments = removeOne(prev.Payments, a.ID)

	case SetActivityLogs:
		next.ActivityLogs = nonNil(cloneAll(a.Logs))
	case AddActivityLog:
		next.ActivityLogs = prependOne(prev.ActivityLogs, a.Log)
	case UpdateActivityLog:
		next.ActivityLogs = replaceOne(prev.ActivityLogs, a.Log)
	case DeleteActivityLog:
		next.ActivityLogs = removeOne(prev.ActivityLogs, a.ID)

	case SetNotifications:
		next.Notifications = nonNil(cloneAll(a.Notifications))
	case AddNotification:
		next.Notifications = prependOne(prev.Notifications, a.Notification)
	case UpdateNotification:
		next.Notifications = replaceOne(prev.Notifications, a.Notification)
	case DeleteNotification:
		next.Notifications = removeOne(prev.Notifications, a.ID)
	case MarkNotificationRead:
		if n, ok := findOne(prev.Notifications, a.ID); ok && !n.Read {
			n.Read = true
			next.Notifications = replaceOne(prev.Notifications, n)
		}

	case ToggleModule:
		if m, ok := findOne(prev.Modules, string(a.ID)); ok {
			m.IsActive = !m.IsActive
			next.Modules = replaceOne(prev.Modules, m)
		}
	case SetTheme:
		next.Theme = a.Patch.Apply(prev.Theme)
	case ToggleSidebar:
		next.SidebarOpen = !prev.SidebarOpen
	case SetCurrentView:
		next.CurrentView = a.View
	case SetLoading:
		next.IsLoading = a.Value
	case SetError:
		if a.Message == nil {
			next.Error = nil
		} else {
			msg := *a.Message
			next.Error = &msg
		}
	case ResetState:
		return Initial()
	default:
		return prev
	}
	return next
}

func cloneUserPtr(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := u.Clone()
	return &c
}

func nonNil[E any](items []E) []E {
	if items == nil {
		return []E{}
	}
	return items
}
