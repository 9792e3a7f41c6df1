package lessons

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eduplatform/internal/common"
	"github.com/dmitrijs2005/eduplatform/internal/dbx"
	"github.com/dmitrijs2005/eduplatform/internal/models"
)

// timeLayout is how creation timestamps are stored in sqlite text
// columns. Second resolution matches CURRENT_TIMESTAMP; id is the
// tie-break for same-second inserts.
const timeLayout = "2006-01-02 15:04:05"

// SQLiteRepository implements Repository over a dbx.DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a lesson and returns its id and assigned creation
// time. The timestamp is written explicitly so both backends store
// the same UTC second-resolution value.
func (r *SQLiteRepository) Create(ctx context.Context, l *models.Lesson) (int64, time.Time, error) {
	createdAt := time.Now().UTC().Truncate(time.Second)

	query := `INSERT INTO lessons
			(title, title_ar, description, description_ar, image_path, video_path, created_by, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		l.Title, l.TitleAr, l.Description, l.DescriptionAr,
		l.ImagePath, l.VideoPath, l.CreatedBy, createdAt.Format(timeLayout))
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to insert lesson: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to get inserted lesson id: %w", err)
	}
	return id, createdAt, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	query := `SELECT id, title, title_ar, description, description_ar, image_path, video_path, created_by, created_at
			FROM lessons WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	l := &models.Lesson{}
	var createdAt string
	err := row.Scan(&l.ID, &l.Title, &l.TitleAr, &l.Description, &l.DescriptionAr,
		&l.ImagePath, &l.VideoPath, &l.CreatedBy, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	if l.CreatedAt, err = parseCreatedAt(createdAt); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Lesson, error) {
	query := `SELECT id, title, title_ar, description, description_ar, image_path, video_path, created_by, created_at
			FROM lessons ORDER BY created_at DESC, id DESC`
	return r.selectLessons(ctx, query)
}

func (r *SQLiteRepository) GetByOwner(ctx context.Context, ownerID int64) ([]models.Lesson, error) {
	query := `SELECT id, title, title_ar, description, description_ar, image_path, video_path, created_by, created_at
			FROM lessons WHERE created_by = ? ORDER BY created_at DESC, id DESC`
	return r.selectLessons(ctx, query, ownerID)
}

// Update overwrites content and media paths by id. Ownership and the
// creation timestamp are immutable and deliberately absent from the
// SET list.
func (r *SQLiteRepository) Update(ctx context.Context, l *models.Lesson) error {
	query := `UPDATE lessons SET
			title = ?, title_ar = ?, description = ?, description_ar = ?,
			image_path = ?, video_path = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		l.Title, l.TitleAr, l.Description, l.DescriptionAr,
		l.ImagePath, l.VideoPath, l.ID)
	if err != nil {
		return fmt.Errorf("failed to update lesson: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lessons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lessons WHERE created_by = ?`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete lessons by owner: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra, nil
}

func (r *SQLiteRepository) selectLessons(ctx context.Context, query string, args ...any) ([]models.Lesson, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select lessons: %w", err)
	}
	defer rows.Close()

	var result []models.Lesson
	for rows.Next() {
		var item models.Lesson
		var createdAt string
		if err := rows.Scan(&item.ID, &item.Title, &item.TitleAr, &item.Description, &item.DescriptionAr,
			&item.ImagePath, &item.VideoPath, &item.CreatedBy, &createdAt); err != nil {
			return nil, err
		}
		if item.CreatedAt, err = parseCreatedAt(createdAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func parseCreatedAt(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse created_at %q: %w", s, err)
	}
	return t, nil
}
