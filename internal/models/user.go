package models

import "time"

// User is a managed identity. CustomData holds the answers of the form it was created from.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	Avatar       string     `json:"avatar,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CustomData   Attributes `json:"customData,omitempty"`
	PasswordHash string     `json:"passwordHash,omitempty"`
}

func (u User) Key() string { return u.ID }

// Clone returns a deep copy.
func (u User) Clone() User {
	u.LastLogin = cloneTime(u.LastLogin)
	u.CustomData = u.CustomData.Clone()
	return u
}

// Public strips secrets before the user leaves the process.
func (u User) Public() User {
	out := u.Clone()
	out.PasswordHash = ""
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
