package lessons

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/eduplatform/internal/common"
	"github.com/dmitrijs2005/eduplatform/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// one in-memory sqlite database per connection, so pin the pool to one
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE lessons (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  title_ar TEXT NOT NULL,
  description TEXT NOT NULL,
  description_ar TEXT NOT NULL,
  image_path TEXT NOT NULL,
  video_path TEXT NOT NULL,
  created_by INTEGER NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)

	return db
}

func sampleLesson(title string, owner int64) *models.Lesson {
	return &models.Lesson{
		Title:         title,
		TitleAr:       title + " (ar)",
		Description:   "about " + title,
		DescriptionAr: "(ar) about " + title,
		ImagePath:     "media/images/" + title + ".jpg",
		VideoPath:     "media/videos/" + title + ".mp4",
		CreatedBy:     owner,
	}
}

// seedAt inserts a row with an explicit creation timestamp to control
// ordering in list tests.
func seedAt(t *testing.T, db *sql.DB, title string, owner int64, createdAt string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO lessons
		(title, title_ar, description, description_ar, image_path, video_path, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		title, title+" (ar)", "d", "d (ar)", "", "", owner, createdAt)
	require.NoError(t, err)
}

func TestCreateAndGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)

	id, createdAt, err := r.Create(ctx, sampleLesson("python", 1))
	require.NoError(t, err)
	require.NotZero(t, id)
	assert.False(t, createdAt.Before(before))

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "python", got.Title)
	assert.Equal(t, "python (ar)", got.TitleAr)
	assert.Equal(t, int64(1), got.CreatedBy)
	assert.Equal(t, createdAt, got.CreatedAt)
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetAll_NewestFirst(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seedAt(t, db, "oldest", 1, "2024-01-01 10:00:00")
	seedAt(t, db, "newest", 1, "2024-03-01 10:00:00")
	seedAt(t, db, "middle", 2, "2024-02-01 10:00:00")

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	titles := []string{got[0].Title, got[1].Title, got[2].Title}
	assert.Equal(t, []string{"newest", "middle", "oldest"}, titles)
}

func TestGetAll_SameSecondTieBreaksByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seedAt(t, db, "first-insert", 1, "2024-01-01 10:00:00")
	seedAt(t, db, "second-insert", 1, "2024-01-01 10:00:00")

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second-insert", got[0].Title)
	assert.Equal(t, "first-insert", got[1].Title)
}

func TestGetByOwner(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seedAt(t, db, "mine-old", 1, "2024-01-01 10:00:00")
	seedAt(t, db, "theirs", 2, "2024-01-02 10:00:00")
	seedAt(t, db, "mine-new", 1, "2024-01-03 10:00:00")

	got, err := r.GetByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "mine-new", got[0].Title)
	assert.Equal(t, "mine-old", got[1].Title)
}

func TestUpdate_DoesNotTouchOwnershipOrTimestamp(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, createdAt, err := r.Create(ctx, sampleLesson("python", 1))
	require.NoError(t, err)

	updated := sampleLesson("golang", 99) // owner field must be ignored
	updated.ID = id
	require.NoError(t, r.Update(ctx, updated))

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "golang", got.Title)
	assert.Equal(t, int64(1), got.CreatedBy)
	assert.Equal(t, createdAt, got.CreatedAt)
}

func TestUpdate_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	missing := sampleLesson("ghost", 1)
	missing.ID = 42
	require.ErrorIs(t, r.Update(context.Background(), missing), common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, _, err := r.Create(ctx, sampleLesson("python", 1))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, id))
	_, err = r.GetByID(ctx, id)
	require.ErrorIs(t, err, common.ErrNotFound)

	require.ErrorIs(t, r.Delete(ctx, id), common.ErrNotFound)
}

func TestDeleteByOwner(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seedAt(t, db, "mine-1", 1, "2024-01-01 10:00:00")
	seedAt(t, db, "mine-2", 1, "2024-01-02 10:00:00")
	seedAt(t, db, "theirs", 2, "2024-01-03 10:00:00")

	n, err := r.DeleteByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "theirs", got[0].Title)

	// a user with no lessons is fine
	n, err = r.DeleteByOwner(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, n)
}
