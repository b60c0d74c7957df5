package store

import "github.com/hongminglow/dataflow-be/internal/models"

// Selectors are projections of the state at the moment they are taken, bundled
// with the dispatchers for their concern. Take a new one after dispatching.

// AuthView is the session concern.
type AuthView struct {
	User            *models.User
	IsAuthenticated bool
	s               *Store
}

// Auth returns the session projection.
func (s *Store) Auth() AuthView {
	v := AuthView{s: s}
	s.read(func(st *State) {
		v.User = cloneUserPtr(st.CurrentUser)
		v.IsAuthenticated = st.IsAuthenticated
	})
	return v
}

func (v AuthView) SetUser(u *models.User)   { v.s.Dispatch(SetUser{User: u}) }
func (v AuthView) SetAuthenticated(ok bool) { v.s.Dispatch(SetAuthenticated{Value: ok}) }

// Login sets the session user and the authenticated flag in one batch.
func (v AuthView) Login(u models.User) {
	v.s.Dispatch(SetUser{User: &u}, SetAuthenticated{Value: true})
}

// Logout wipes the whole state, not only the session.
func (v AuthView) Logout() { v.s.Dispatch(ResetState{}) }

// ThemeView is the theme concern.
type ThemeView struct {
	Theme models.ThemeSettings
	s     *Store
}

// Theme returns the theme projection.
func (s *Store) Theme() ThemeView {
	v := ThemeView{s: s}
	s.read(func(st *State) { v.Theme = st.Theme })
	return v
}

func (v ThemeView) SetTheme(p models.ThemePatch) { v.s.Dispatch(SetTheme{Patch: p}) }

// Collection is the projection of one entity collection plus its dispatchers.
type Collection[E entity[E]] struct {
	Items  []E
	s      *Store
	set    func([]E) Action
	add    func(E) Action
	update func(E) Action
	remove func(string) Action
}

func (c Collection[E]) Set(items []E)            { c.s.Dispatch(c.set(items)) }
func (c Collection[E]) Add(item E)               { c.s.Dispatch(c.add(item)) }
func (c Collection[E]) Update(item E)            { c.s.Dispatch(c.update(item)) }
func (c Collection[E]) Delete(id string)         { c.s.Dispatch(c.remove(id)) }
func (c Collection[E]) Find(id string) (E, bool) { return findOne(c.Items, id) }

func project[E entity[E]](s *Store, pick func(*State) []E) []E {
	var items []E
	s.read(func(st *State) { items = cloneAll(pick(st)) })
	return items
}

// Users returns the managed-users projection.
func (s *Store) Users() Collection[models.User] {
	return Collection[models.User]{
		Items:  project(s, func(st *State) []models.User { return st.Users }),
		s:      s,
		set:    func(items []models.User) Action { return SetUsers{Users: items} },
		add:    func(u models.User) Action { return AddUser{User: u} },
		update: func(u models.User) Action { return UpdateUser{User: u} },
		remove: func(id string) Action { return DeleteUser{ID: id} },
	}
}

// Forms returns the form definitions projection.
func (s *Store) Forms() Collection[models.Form] {
	return Collection[models.Form]{
		Items:  project(s, func(st *State) []models.Form { return st.Forms }),
		s:      s,
		set:    func(items []models.Form) Action { return SetForms{Forms: items} },
		add:    func(f models.Form) Action { return AddForm{Form: f} },
		update: func(f models.Form) Action { return UpdateForm{Form: f} },
		remove: func(id string) Action { return DeleteForm{ID: id} },
	}
}

// Reminders returns the reminders projection.
func (s *Store) Reminders() Collection[models.Reminder] {
	return Collection[models.Reminder]{
		Items:  project(s, func(st *State) []models.Reminder { return st.Reminders }),
		s:      s,
		set:    func(items []models.Reminder) Action { return SetReminders{Reminders: items} },
		add:    func(r models.Reminder) Action { return AddReminder{Reminder: r} },
		update: func(r models.Reminder) Action { return UpdateReminder{Reminder: r} },
		remove: func(id string) Action { return DeleteReminder{ID: id} },
	}
}

// Payments returns the payments projection.
func (s *Store) Payments() Collection[models.Payment] {
	return Collection[models.Payment]{
		Items:  project(s, func(st *State) []models.Payment { return st.Payments }),
		s:      s,
		set:    func(items []models.Payment) Action { return SetPayments{Payments: items} },
		add:    func(p models.Payment) Action { return AddPayment{Payment: p} },
		update: func(p models.Payment) Action { return UpdatePayment{Payment: p} },
		remove: func(id string) Action { return DeletePayment{ID: id} },
	}
}

// Activity returns the activity log projection, newest first.
func (s *Store) Activity() Collection[models.ActivityLog] {
	return Collection[models.ActivityLog]{
		Items:  project(s, func(st *State) []models.ActivityLog { return st.ActivityLogs }),
		s:      s,
		set:    func(items []models.ActivityLog) Action { return SetActivityLogs{Logs: items} },
		add:    func(l models.ActivityLog) Action { return AddActivityLog{Log: l} },
		update: func(l models.ActivityLog) Action { return UpdateActivityLog{Log: l} },
		remove: func(id string) Action { return DeleteActivityLog{ID: id} },
	}
}

// NotificationsView adds read tracking to the notifications collection.
type NotificationsView struct {
	Collection[models.Notification]
}

// Notifications returns the notifications projection, newest first.
func (s *Store) Notifications() NotificationsView {
	return NotificationsView{Collection[models.Notification]{
		Items:  project(s, func(st *State) []models.Notification { return st.Notifications }),
		s:      s,
		set:    func(items []models.Notification) Action { return SetNotifications{Notifications: items} },
		add:    func(n models.Notification) Action { return AddNotification{Notification: n} },
		update: func(n models.Notification) Action { return UpdateNotification{Notification: n} },
		remove: func(id string) Action { return DeleteNotification{ID: id} },
	}}
}

// Unread counts notifications not yet read.
func (v NotificationsView) Unread() int {
	n := 0
	for _, item := range v.Items {
		if !item.Read {
			n++
		}
	}
	return n
}

func (v NotificationsView) MarkRead(id string) { v.s.Dispatch(MarkNotificationRead{ID: id}) }

// MarkAllRead marks every unread notification as one batch.
func (v NotificationsView) MarkAllRead() {
	var batch []Action
	for _, item := range v.Items {
		if !item.Read {
			batch = append(batch, MarkNotificationRead{ID: item.ID})
		}
	}
	v.s.Dispatch(batch...)
}

// ModulesView is the feature-module concern.
type ModulesView struct {
	Modules []models.Module
	s       *Store
}

// Modules returns the modules projection.
func (s *Store) Modules() ModulesView {
	return ModulesView{
		Modules: project(s, func(st *State) []models.Module { return st.Modules }),
		s:       s,
	}
}

func (v ModulesView) Toggle(id models.ModuleID) { v.s.Dispatch(ToggleModule{ID: id}) }

// Active returns the enabled modules.
func (v ModulesView) Active() []models.Module {
	var out []models.Module
	for _, m := range v.Modules {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out
}

// IsActive reports whether the module is enabled.
func (v ModulesView) IsActive(id models.ModuleID) bool {
	for _, m := range v.Modules {
		if m.ID == id {
			return m.IsActive
		}
	}
	return false
}

// Navigation lists the views visible given the enabled modules.
func (v ModulesView) Navigation() []models.View {
	var out []models.View
	for _, view := range models.Views {
		if mod, gated := view.RequiredModule(); gated && !v.IsActive(mod) {
			continue
		}
		out = append(out, view)
	}
	return out
}

// UIView is the view-state concern.
type UIView struct {
	SidebarOpen bool
	CurrentView models.View
	IsLoading   bool
	Error       *string
	s           *Store
}

// UI returns the UI projection.
func (s *Store) UI() UIView {
	v := UIView{s: s}
	s.read(func(st *State) {
		v.SidebarOpen = st.SidebarOpen
		v.CurrentView = st.CurrentView
		v.IsLoading = st.IsLoading
		if st.Error != nil {
			msg := *st.Error
			v.Error = &msg
		}
	})
	return v
}

func (v UIView) ToggleSidebar()                  { v.s.Dispatch(ToggleSidebar{}) }
func (v UIView) SetCurrentView(view models.View) { v.s.Dispatch(SetCurrentView{View: view}) }
func (v UIView) SetLoading(loading bool)         { v.s.Dispatch(SetLoading{Value: loading}) }
func (v UIView) SetError(msg *string)            { v.s.Dispatch(SetError{Message: msg}) }

// Tenant returns a copy of the tenant, or nil before bootstrap.
func (s *Store) Tenant() *models.Tenant {
	var t *models.Tenant
	s.read(func(st *State) {
		if st.Tenant != nil {
			c := st.Tenant.Clone()
			t = &c
		}
	})
	return t
}
