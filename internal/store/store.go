// Package store is the persistence facade over the user and lesson
// repositories. It owns the canonical entities, performs constraint
// checks defensively before every write, and converts storage faults
// into the optional/boolean results the rest of the application
// consumes. No store method panics or terminates the process.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/eduplatform/internal/common"
	"github.com/dmitrijs2005/eduplatform/internal/dbx"
	"github.com/dmitrijs2005/eduplatform/internal/logging"
	"github.com/dmitrijs2005/eduplatform/internal/models"
	"github.com/dmitrijs2005/eduplatform/internal/repositories/lessons"
	"github.com/dmitrijs2005/eduplatform/internal/repositories/users"
	"github.com/dmitrijs2005/eduplatform/internal/securex"
	"github.com/dmitrijs2005/eduplatform/internal/store/migrations"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver
	_ "modernc.org/sqlite"             // pure-Go sqlite driver
)

// Supported storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// AdminUsername is the seeded bootstrap account. Exactly one user may
// hold it and the account must never be deleted; the store does not
// special-case it, callers enforce that rule.
const AdminUsername = "admin"

// bootstrapAdminPassword is the fixed first-run password for the
// seeded admin account. Operators are expected to change it after
// installation; the store does not enforce rotation.
const bootstrapAdminPassword = "admin123"

// Store provides durable CRUD for users and lessons. Each mutating
// call either fully completes or fully fails; the only multi-entity
// write, the user-delete cascade, runs in a single transaction. The
// store is built for one active session per process and adds no
// locking of its own beyond what the storage engine provides.
type Store struct {
	db            *sql.DB
	driver        string
	dialect       string
	migrationsDir string
	log           logging.Logger
}

// Open connects to the given storage backend and initializes it:
// schema migrations are applied and the admin account is seeded if
// absent. Safe to call on every startup.
func Open(ctx context.Context, driver, dsn string, log logging.Logger) (*Store, error) {
	var driverName, dialect, dir string
	switch driver {
	case DriverSQLite:
		driverName, dialect, dir = "sqlite", "sqlite3", "sqlite"
	case DriverPostgres:
		driverName, dialect, dir = "pgx", "postgres", "postgres"
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, driver: driver, dialect: dialect, migrationsDir: dir, log: log}

	if err := s.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Initialize ensures the schema exists and the admin account is
// seeded. Idempotent.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.migrate(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if err := s.ensureAdmin(ctx); err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	sub, err := fs.Sub(migrations.FS, s.migrationsDir)
	if err != nil {
		return err
	}
	goose.SetBaseFS(sub)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(s.dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, s.db, ".")
}

func (s *Store) ensureAdmin(ctx context.Context) error {
	repo := s.userRepo(s.db)

	_, err := repo.GetByUsername(ctx, AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	salt, err := securex.GenerateSalt(securex.DefaultSaltSize)
	if err != nil {
		return err
	}
	_, err = repo.Create(ctx, &models.User{
		Username:     AdminUsername,
		PasswordHash: securex.HashPassword(bootstrapAdminPassword, salt),
		Salt:         salt,
		Role:         models.RoleAdmin,
		Language:     models.DefaultLanguage,
	})
	return err
}

// userRepo returns the user repository matching the configured driver,
// bound to db (a *sql.DB or an in-flight transaction).
func (s *Store) userRepo(db dbx.DBTX) users.Repository {
	if s.driver == DriverPostgres {
		return users.NewPostgresRepository(db)
	}
	return users.NewSQLiteRepository(db)
}

func (s *Store) lessonRepo(db dbx.DBTX) lessons.Repository {
	if s.driver == DriverPostgres {
		return lessons.NewPostgresRepository(db)
	}
	return lessons.NewSQLiteRepository(db)
}
