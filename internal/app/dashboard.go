package app

import (
	"github.com/hongminglow/dataflow-be/internal/models"
)

// Dashboard aggregates the headline numbers shown on the landing view.
type Dashboard struct {
	TotalUsers          int                       `json:"totalUsers"`
	UsersByStatus       map[models.UserStatus]int `json:"usersByStatus"`
	UsersByRole         map[models.Role]int       `json:"usersByRole"`
	TotalForms          int                       `json:"totalForms"`
	ActiveForms         int                       `json:"activeForms"`
	PendingReminders    int                       `json:"pendingReminders"`
	Payments            PaymentStats              `json:"payments"`
	UnreadNotifications int                       `json:"unreadNotifications"`
	Submissions         []FormSubmissions         `json:"submissions"`
	RecentActivity      []models.ActivityLog      `json:"recentActivity"`
}

// FormSubmissions counts users whose custom data was produced by a form.
type FormSubmissions struct {
	FormID   string `json:"formId"`
	FormName string `json:"formName"`
	Count    int    `json:"count"`
}

const recentActivityLimit = 5

// Dashboard computes the summary from one consistent snapshot.
func (a *App) Dashboard() Dashboard {
	st := a.store.State()
	d := Dashboard{
		TotalUsers:    len(st.Users),
		UsersByStatus: map[models.UserStatus]int{},
		UsersByRole:   map[models.Role]int{},
		TotalForms:    len(st.Forms),
		Payments:      paymentStats(st.Payments),
		Submissions:   []FormSubmissions{},
	}
	for _, u := range st.Users {
		d.UsersByStatus[u.Status]++
		d.UsersByRole[u.Role]++
	}
	for _, f := range st.Forms {
		if f.IsActive {
			d.ActiveForms++
		}
		sub := FormSubmissions{FormID: f.ID, FormName: f.Name}
		for _, u := range st.Users {
			if submittedBy(f, u) {
				sub.Count++
			}
		}
		d.Submissions = append(d.Submissions, sub)
	}
	for _, r := range st.Reminders {
		if r.Status == models.ReminderPending {
			d.PendingReminders++
		}
	}
	for _, n := range st.Notifications {
		if !n.Read {
			d.UnreadNotifications++
		}
	}
	d.RecentActivity = st.ActivityLogs[:min(recentActivityLimit, len(st.ActivityLogs))]
	return d
}

// submittedBy reports whether u's custom data is keyed by exactly f's field ids.
func submittedBy(f models.Form, u models.User) bool {
	if len(f.Fields) == 0 || len(u.CustomData) != len(f.Fields) {
		return false
	}
	for _, field := range f.Fields {
		if _, ok := u.CustomData[field.ID]; !ok {
			return false
		}
	}
	return true
}
