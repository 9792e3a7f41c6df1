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

// PostgresRepository implements Repository over a dbx.DBTX for a
// shared Postgres database.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository returns a PostgresRepository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, l *models.Lesson) (int64, time.Time, error) {
	createdAt := time.Now().UTC().Truncate(time.Second)

	query := `INSERT INTO lessons
			(title, title_ar, description, description_ar, image_path, video_path, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		l.Title, l.TitleAr, l.Description, l.DescriptionAr,
		l.ImagePath, l.VideoPath, l.CreatedBy, createdAt).Scan(&id)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to insert lesson: %w", err)
	}
	return id, createdAt, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	query := `SELECT id, title, title_ar, description, description_ar, image_path, video_path, created_by, created_at
			FROM lessons WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	l := &models.Lesson{}
	err := row.Scan(&l.ID, &l.Title, &l.TitleAr, &l.Description, &l.DescriptionAr,
		&l.ImagePath, &l.VideoPath, &l.CreatedBy, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Lesson, error) {
	query := `SELECT id, title, title_ar, description, description_ar, image_path, video_path, created_by, created_at
			FROM lessons ORDER BY created_at DESC, id DESC`
	return r.selectLessons(ctx, query)
}

func (r *PostgresRepository) GetByOwner(ctx context.Context, ownerID int64) ([]models.Lesson, error) {
	query := `SELECT id, title, title_ar, description, description_ar, image_path, video_path, created_by, created_at
			FROM lessons WHERE created_by = $1 ORDER BY created_at DESC, id DESC`
	return r.selectLessons(ctx, query, ownerID)
}

func (r *PostgresRepository) Update(ctx context.Context, l *models.Lesson) error {
	query := `UPDATE lessons SET
			title = $1, title_ar = $2, description = $3, description_ar = $4,
			image_path = $5, video_path = $6 WHERE id = $7`
	return r.execExpectingRows(ctx, query,
		l.Title, l.TitleAr, l.Description, l.DescriptionAr,
		l.ImagePath, l.VideoPath, l.ID)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	return r.execExpectingRows(ctx, `DELETE FROM lessons WHERE id = $1`, id)
}

func (r *PostgresRepository) DeleteByOwner(ctx context.Context, ownerID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lessons WHERE created_by = $1`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete lessons by owner: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return ra, nil
}

func (r *PostgresRepository) selectLessons(ctx context.Context, query string, args ...any) ([]models.Lesson, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select lessons: %w", err)
	}
	defer rows.Close()

	var result []models.Lesson
	for rows.Next() {
		var item models.Lesson
		if err := rows.Scan(&item.ID, &item.Title, &item.TitleAr, &item.Description, &item.DescriptionAr,
			&item.ImagePath, &item.VideoPath, &item.CreatedBy, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) execExpectingRows(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
