// Package cli is the thin presentation layer: a terminal front-end
// that drives the session controller and store. It owns everything
// the core does not: which view is on screen, prompting, and copying
// selected media files into the managed media directory.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eduplatform/internal/config"
	"github.com/dmitrijs2005/eduplatform/internal/logging"
	"github.com/dmitrijs2005/eduplatform/internal/mediastore"
	"github.com/dmitrijs2005/eduplatform/internal/models"
	"github.com/dmitrijs2005/eduplatform/internal/session"
	"github.com/dmitrijs2005/eduplatform/internal/store"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	store   *store.Store
	media   *mediastore.Store
	session *session.Controller
	reader  *bufio.Reader
}

// NewApp opens the store, optionally seeds demo data, and wires the
// session controller with the app itself as presenter.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	st, err := store.Open(ctx, c.StorageDriver, c.StorageDSN, log)
	if err != nil {
		return nil, err
	}

	if c.SeedDemo {
		if err := st.SeedSampleData(ctx); err != nil {
			log.Warn(ctx, "demo data seeding failed", "error", err)
		}
	}

	a := &App{
		config: c,
		log:    log,
		store:  st,
		media:  mediastore.New(c.MediaDir),
		reader: bufio.NewReader(os.Stdin),
	}
	a.session = session.NewController(st, a)
	return a, nil
}

// Run shows the login view and enters the command loop. It returns
// when the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.session.Start()
	a.Root(ctx)
}

// Show implements session.Presenter. A terminal has no window to tear
// down, so switching views is just printing the new view's banner.
func (a *App) Show(view session.View, user *models.User) {
	switch view {
	case session.ViewLogin:
		fmt.Println("-- Login (type 'login', or 'register' to create an account) --")
	case session.ViewRegistration:
		fmt.Println("-- Registration --")
	case session.ViewAdminDashboard:
		fmt.Printf("-- Admin dashboard (%s) --\n", user.Username)
	case session.ViewTeacherDashboard:
		fmt.Printf("-- Teacher dashboard (%s) --\n", user.Username)
	case session.ViewStudentDashboard:
		fmt.Printf("-- Student dashboard (%s) --\n", user.Username)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.CurrentUser() != nil
}
