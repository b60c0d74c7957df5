package models

import "time"

// Plan is the tenant's subscription tier.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanStarter    Plan = "starter"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// ModuleID names a togglable feature area.
type ModuleID string

const (
	ModulePayments  ModuleID = "payments"
	ModuleReminders ModuleID = "reminders"
	ModuleAnalytics ModuleID = "analytics"
	ModuleExports   ModuleID = "exports"
	ModuleAPI       ModuleID = "api"
	ModuleBranding  ModuleID = "branding"
)

// Module is a feature area gating navigation visibility.
type Module struct {
	ID          ModuleID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	IsActive    bool     `json:"isActive"`
	IsPremium   bool     `json:"isPremium"`
	Price       *float64 `json:"price,omitempty"`
}

func (m Module) Key() string { return string(m.ID) }

// Clone returns a deep copy.
func (m Module) Clone() Module {
	m.Price = cloneFloat(m.Price)
	return m
}

// Tenant is the single organization the instance operates under.
type Tenant struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	Logo           string     `json:"logo,omitempty"`
	Favicon        string     `json:"favicon,omitempty"`
	PrimaryColor   string     `json:"primaryColor,omitempty"`
	SecondaryColor string     `json:"secondaryColor,omitempty"`
	AccentColor    string     `json:"accentColor,omitempty"`
	FontFamily     string     `json:"fontFamily,omitempty"`
	CustomCSS      string     `json:"customCss,omitempty"`
	Plan           Plan       `json:"plan"`
	Modules        []ModuleID `json:"modules"`
	CreatedAt      time.Time  `json:"createdAt"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	MaxUsers       int        `json:"maxUsers"`
	MaxForms       int        `json:"maxForms"`
	MaxResponses   int        `json:"maxResponses"`
}

// Clone returns a deep copy.
func (t Tenant) Clone() Tenant {
	if t.Modules != nil {
		t.Modules = append([]ModuleID(nil), t.Modules...)
	}
	t.ExpiresAt = cloneTime(t.ExpiresAt)
	return t
}

// HasModule reports whether id is in the tenant's enabled module list.
func (t Tenant) HasModule(id ModuleID) bool {
	for _, m := range t.Modules {
		if m == id {
			return true
		}
	}
	return false
}
