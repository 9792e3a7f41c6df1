// Package session tracks the single process-wide session: which view
// the application is showing and which user, if any, is
// authenticated. The controller decides transitions; actually
// swapping windows (and releasing the old view's resources) belongs
// to the presentation layer behind the Presenter interface.
package session

import (
	"context"

	"github.com/dmitrijs2005/eduplatform/internal/models"
	"github.com/dmitrijs2005/eduplatform/internal/store"
)

// State is the coarse session state. Authenticated states are split
// by role so the view layer can switch exhaustively.
type State int

const (
	StateLoggedOut State = iota
	StateAuthenticating
	StateAdminSession
	StateTeacherSession
	StateStudentSession
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged-out"
	case StateAuthenticating:
		return "authenticating"
	case StateAdminSession:
		return "admin-session"
	case StateTeacherSession:
		return "teacher-session"
	case StateStudentSession:
		return "student-session"
	}
	return "unknown"
}

// View identifies which screen the presentation layer should display.
// Sub-views inside a dashboard (lesson creation, lesson editing) are
// the view layer's own business and never change the session state.
type View int

const (
	ViewLogin View = iota
	ViewRegistration
	ViewAdminDashboard
	ViewTeacherDashboard
	ViewStudentDashboard
)

// Presenter is the capability to replace the active view. It is owned
// by the presentation layer; the controller only reports the new view
// and the bound user (nil while unauthenticated). Implementations
// must fully detach the previous view's resources before showing the
// next one.
type Presenter interface {
	Show(view View, user *models.User)
}

// Controller is the session state machine. It holds the one shared
// store reference for the lifetime of the process and binds at most
// one user at a time. It is not safe for concurrent use; the
// application runs a single session.
type Controller struct {
	store     *store.Store
	presenter Presenter
	state     State
	user      *models.User
}

// NewController builds a controller in the LoggedOut state.
func NewController(st *store.Store, p Presenter) *Controller {
	return &Controller{store: st, presenter: p, state: StateLoggedOut}
}

// State returns the current session state.
func (c *Controller) State() State {
	return c.state
}

// CurrentUser returns the bound user, or nil while unauthenticated.
func (c *Controller) CurrentUser() *models.User {
	return c.user
}

// Store exposes the shared store for the presentation layer's data
// queries (lesson lists, user lists).
func (c *Controller) Store() *store.Store {
	return c.store
}

// Start moves to Authenticating and shows the login view. Called once
// at application start; calling it again is equivalent to a logout.
func (c *Controller) Start() {
	c.user = nil
	c.state = StateAuthenticating
	c.presenter.Show(ViewLogin, nil)
}

// ShowLogin switches the authenticating sub-view to the login screen.
func (c *Controller) ShowLogin() {
	if c.state != StateAuthenticating {
		return
	}
	c.presenter.Show(ViewLogin, nil)
}

// ShowRegistration switches the authenticating sub-view to the
// registration screen.
func (c *Controller) ShowRegistration() {
	if c.state != StateAuthenticating {
		return
	}
	c.presenter.Show(ViewRegistration, nil)
}

// Login verifies credentials and, on success, binds the user and
// moves to the dashboard matching the user's role. On failure the
// session stays where it was; the caller cannot tell an unknown
// username from a wrong password.
func (c *Controller) Login(ctx context.Context, username, password string) bool {
	if c.state != StateAuthenticating {
		return false
	}

	u := c.store.VerifyUser(ctx, username, password)
	if u == nil {
		return false
	}

	c.user = u
	switch u.Role {
	case models.RoleAdmin:
		c.state = StateAdminSession
		c.presenter.Show(ViewAdminDashboard, u)
	case models.RoleTeacher:
		c.state = StateTeacherSession
		c.presenter.Show(ViewTeacherDashboard, u)
	case models.RoleStudent:
		c.state = StateStudentSession
		c.presenter.Show(ViewStudentDashboard, u)
	}
	return true
}

// Register creates a self-service account. The role is fixed to
// student; on success the session routes back to the login view, it
// does not auto-login.
func (c *Controller) Register(ctx context.Context, username, password string, language models.Language) bool {
	if c.state != StateAuthenticating {
		return false
	}

	if c.store.AddUser(ctx, username, password, models.RoleStudent, language) == nil {
		return false
	}
	c.presenter.Show(ViewLogin, nil)
	return true
}

// Logout detaches the bound user and returns to the login view.
// Stored credentials are never touched.
func (c *Controller) Logout() {
	c.user = nil
	c.state = StateAuthenticating
	c.presenter.Show(ViewLogin, nil)
}

// SetLanguage persists a new language preference for the bound user
// and updates the in-memory snapshot on success.
func (c *Controller) SetLanguage(ctx context.Context, language models.Language) bool {
	if c.user == nil {
		return false
	}
	if !c.store.UpdateUserLanguage(ctx, c.user.ID, language) {
		return false
	}
	c.user.Language = language
	return true
}
