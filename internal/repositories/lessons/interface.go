// Package lessons persists lesson rows for the sqlite and postgres
// backends. Referential integrity against users is checked by the
// store before any write lands here.
package lessons

import (
	"context"
	"time"

	"github.com/dmitrijs2005/eduplatform/internal/models"
)

// Repository is the lesson row store. Create assigns and returns the
// creation timestamp; lists come back newest-first. Lookups return
// common.ErrNotFound when no row matches. DeleteByOwner reports how
// many rows it removed (zero is not an error: a user may own no
// lessons).
type Repository interface {
	Create(ctx context.Context, l *models.Lesson) (int64, time.Time, error)
	GetByID(ctx context.Context, id int64) (*models.Lesson, error)
	GetAll(ctx context.Context) ([]models.Lesson, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]models.Lesson, error)
	Update(ctx context.Context, l *models.Lesson) error
	Delete(ctx context.Context, id int64) error
	DeleteByOwner(ctx context.Context, ownerID int64) (int64, error)
}
