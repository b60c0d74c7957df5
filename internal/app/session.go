package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hongminglow/dataflow-be/internal/auth"
	"github.com/hongminglow/dataflow-be/internal/bootstrap"
	"github.com/hongminglow/dataflow-be/internal/ids"
	"github.com/hongminglow/dataflow-be/internal/models"
	"github.com/hongminglow/dataflow-be/internal/models/dto"
	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/store"
	"github.com/hongminglow/dataflow-be/internal/validation"
)

func avatarFor(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
}

// Login authenticates a stored user by email. The credential is either the
// user's own password or the demo shared secret. The session role is the
// stored user's role.
func (a *App) Login(ctx context.Context, req dto.LoginRequest, ip string) (models.User, error) {
	if err := a.check(req); err != nil {
		return models.User{}, err
	}
	email := strings.TrimSpace(req.Identifier)
	// The hash comparison is slow, so it runs on a snapshot and the commit
	// below checks that the account did not change in between.
	user, found := userByEmail(a.store.State().Users, email)
	if !found || !a.credentialMatches(user, req.Password) {
		a.log.Info("login rejected", zap.String("identifier", email))
		return models.User{}, ErrInvalidCredentials
	}

	var session models.User
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		u, ok := findByID(st.Users, user.ID)
		if !ok || u.PasswordHash != user.PasswordHash || !strings.EqualFold(u.Email, email) {
			return nil, ErrInvalidCredentials
		}
		if u.Status != models.StatusActive {
			return nil, ErrInactiveUser
		}
		now := a.now()
		u.LastLogin = &now
		user, session = u, u.Public()
		actions := moduleSync(st.Modules, st.Tenant)
		return append(actions,
			store.UpdateUser{User: u},
			store.SetUser{User: &session},
			store.SetAuthenticated{Value: true},
			a.activity(Actor{UserID: u.ID, IP: ip}, models.ActionLogin, models.EntityUser, u.ID, nil),
		), nil
	})
	if err != nil {
		return models.User{}, err
	}
	a.log.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return session, a.save(ctx, storage.KeyUsers, storage.KeyActivityLogs)
}

func userByEmail(users []models.User, email string) (models.User, bool) {
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

func (a *App) credentialMatches(u models.User, password string) bool {
	if auth.CheckPassword(u.PasswordHash, password) {
		return true
	}
	return auth.CheckPassword(a.demoHash, password)
}

// Register creates an administrator account and opens a session for it.
func (a *App) Register(ctx context.Context, req dto.RegisterRequest, ip string) (models.User, error) {
	if err := a.check(req); err != nil {
		return models.User{}, err
	}
	if req.Password != req.ConfirmPassword {
		return models.User{}, validation.ForField(validation.ReasonPasswordMismatch, "confirmPassword", "passwords do not match")
	}
	if !req.AgreeTerms {
		return models.User{}, validation.ForField(validation.ReasonTermsNotAccepted, "agreeTerms", "please agree to the terms and conditions")
	}
	if err := auth.CheckStrength(req.Password); err != nil {
		return models.User{}, validation.ForField(validation.ReasonWeakPassword, "password", "%v", err)
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	email := strings.TrimSpace(req.Email)
	var user, session models.User
	err = a.store.Update(func(st store.State) ([]store.Action, error) {
		if _, taken := userByEmail(st.Users, email); taken {
			return nil, fmt.Errorf("user %s: %w", email, ErrAlreadyExists)
		}
		if t := st.Tenant; t != nil && t.MaxUsers > 0 && len(st.Users) >= t.MaxUsers {
			return nil, validation.New(validation.ReasonQuotaExceeded, "user limit of %d reached", t.MaxUsers)
		}
		now := a.now()
		user = models.User{
			ID:           ids.NewAt("user", now),
			Email:        email,
			Name:         strings.TrimSpace(req.Name),
			Role:         models.RoleAdmin,
			Status:       models.StatusActive,
			Avatar:       avatarFor(email),
			CreatedAt:    now,
			LastLogin:    &now,
			PasswordHash: hash,
		}
		session = user.Public()
		actor := Actor{UserID: user.ID, IP: ip}
		actions := moduleSync(st.Modules, st.Tenant)
		return append(actions,
			store.AddUser{User: user},
			store.SetUser{User: &session},
			store.SetAuthenticated{Value: true},
			a.activity(actor, models.ActionCreated, models.EntityUser, user.ID, models.Attributes{"name": models.String(user.Name)}),
			a.notification(models.NotifyInfo, "New User Registered", user.Name+" has successfully registered.", "/users/"+user.ID),
		), nil
	})
	if err != nil {
		return models.User{}, err
	}
	a.log.Info("user registered", zap.String("user_id", user.ID))
	return session, a.save(ctx, storage.KeyUsers, storage.KeyActivityLogs, storage.KeyNotifications)
}

// Logout resets the whole state, session included, and reinstalls the
// persisted collections in the same batch so other sessions keep their data.
func (a *App) Logout(ctx context.Context, actor Actor) error {
	err := a.store.Update(func(st store.State) ([]store.Action, error) {
		actions := []store.Action{store.ResetState{}}
		actions = append(actions, bootstrap.FromState(st).Actions()...)
		actions = append(actions, moduleSync(store.Initial().Modules, st.Tenant)...)
		if actor.UserID != "" {
			actions = append(actions, a.activity(actor, models.ActionLogout, models.EntityUser, actor.UserID, nil))
		}
		return actions, nil
	})
	if err != nil {
		return err
	}
	return a.save(ctx, storage.KeyActivityLogs)
}

// CurrentUser returns the stored user behind a session id.
func (a *App) CurrentUser(id string) (models.User, error) {
	u, ok := a.store.Users().Find(id)
	if !ok {
		return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return u.Public(), nil
}
