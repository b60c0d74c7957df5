// Package store holds the application's single state tree. The tree changes
// only through the closed set of actions in this package.
package store

import (
	"github.com/hongminglow/dataflow-be/internal/models"
)

// State is one immutable snapshot of the application.
type State struct {
	CurrentUser     *models.User          `json:"currentUser"`
	IsAuthenticated bool                  `json:"isAuthenticated"`
	Tenant          *models.Tenant        `json:"tenant"`
	Users           []models.User         `json:"users"`
	Forms           []models.Form         `json:"forms"`
	Reminders       []models.Reminder     `json:"reminders"`
	Payments        []models.Payment      `json:"payments"`
	ActivityLogs    []models.ActivityLog  `json:"activityLogs"`
	Notifications   []models.Notification `json:"notifications"`
	Modules         []models.Module       `json:"modules"`
	Theme           models.ThemeSettings  `json:"theme"`
	SidebarOpen     bool                  `json:"sidebarOpen"`
	CurrentView     models.View           `json:"currentView"`
	IsLoading       bool                  `json:"isLoading"`
	Error           *string               `json:"error"`
}

// DefaultTheme is the theme every fresh state starts with.
func DefaultTheme() models.ThemeSettings {
	return models.ThemeSettings{
		PrimaryColor:    "#6366f1",
		SecondaryColor:  "#8b5cf6",
		AccentColor:     "#ec4899",
		BackgroundColor: "#f8fafc",
		SurfaceColor:    "#ffffff",
		TextColor:       "#1e293b",
		TextMutedColor:  "#64748b",
		BorderColor:     "#e2e8f0",
		SuccessColor:    "#10b981",
		WarningColor:    "#f59e0b",
		ErrorColor:      "#ef4444",
		InfoColor:       "#3b82f6",
		FontFamily:      "Inter",
		BorderRadius:    "md",
		ButtonStyle:     "filled",
	}
}

func defaultModules() []models.Module {
	return []models.Module{
		{ID: models.ModulePayments, Name: "Payments", Description: "Track and manage payments", Icon: "CreditCard", IsPremium: true},
		{ID: models.ModuleReminders, Name: "Reminders", Description: "Automated reminders and notifications", Icon: "Bell", IsPremium: true},
		{ID: models.ModuleAnalytics, Name: "Analytics", Description: "Advanced analytics and reporting", Icon: "BarChart3", IsActive: true},
		{ID: models.ModuleExports, Name: "Data Export", Description: "Export data in multiple formats", Icon: "Download", IsActive: true},
		{ID: models.ModuleAPI, Name: "API Access", Description: "RESTful API for integrations", Icon: "Code", IsPremium: true},
		{ID: models.ModuleBranding, Name: "White Label", Description: "Custom branding and theming", Icon: "Palette", IsPremium: true},
	}
}

// Initial returns a fresh initial state. Every call allocates new collections.
func Initial() State {
	return State{
		Users:         []models.User{},
		Forms:         []models.Form{},
		Reminders:     []models.Reminder{},
		Payments:      []models.Payment{},
		ActivityLogs:  []models.ActivityLog{},
		Notifications: []models.Notification{},
		Modules:       defaultModules(),
		Theme:         DefaultTheme(),
		SidebarOpen:   true,
		CurrentView:   models.ViewDashboard,
	}
}

// Clone returns a deep copy that shares no memory with s.
func (s State) Clone() State {
	out := s
	if s.CurrentUser != nil {
		u := s.CurrentUser.Clone()
		out.CurrentUser = &u
	}
	if s.Tenant != nil {
		t := s.Tenant.Clone()
		out.Tenant = &t
	}
	if s.Error != nil {
		msg := *s.Error
		out.Error = &msg
	}
	out.Users = cloneAll(s.Users)
	out.Forms = cloneAll(s.Forms)
	out.Reminders = cloneAll(s.Reminders)
	out.Payments = cloneAll(s.Payments)
	out.ActivityLogs = cloneAll(s.ActivityLogs)
	out.Notifications = cloneAll(s.Notifications)
	out.Modules = cloneAll(s.Modules)
	return out
}
