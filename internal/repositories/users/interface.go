// Package users persists user rows. Two implementations exist: sqlite
// for the default single-file database and postgres for a shared one.
// Constraint checking (uniqueness, admin seeding) lives in the store,
// not here; repositories only move rows.
package users

import (
	"context"

	"github.com/dmitrijs2005/eduplatform/internal/models"
)

// Repository is the user row store. Lookups return
// common.ErrNotFound when no row matches.
type Repository interface {
	Create(ctx context.Context, u *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int64, username string, role models.Role, language models.Language) error
	UpdateLanguage(ctx context.Context, id int64, language models.Language) error
	Delete(ctx context.Context, id int64) error
}
