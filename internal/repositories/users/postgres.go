package users

import (
	"context"
	"fmt"

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

func (r *PostgresRepository) Create(ctx context.Context, u *models.User) (int64, error) {
	query := `INSERT INTO users (username, password_hash, salt, role, language)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		u.Username, u.PasswordHash, u.Salt, u.Role.String(), u.Language.String()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, username, password_hash, salt, role, language FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, password_hash, salt, role, language FROM users WHERE username = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, username, password_hash, salt, role, language FROM users ORDER BY username`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var item models.User
		var role, lang string
		if err := rows.Scan(&item.ID, &item.Username, &item.PasswordHash, &item.Salt, &role, &lang); err != nil {
			return nil, err
		}
		if item.Role, err = models.ParseRole(role); err != nil {
			return nil, err
		}
		if item.Language, err = models.ParseLanguage(lang); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, username string, role models.Role, language models.Language) error {
	query := `UPDATE users SET username = $1, role = $2, language = $3 WHERE id = $4`
	return r.execExpectingOneRow(ctx, query, username, role.String(), language.String(), id)
}

func (r *PostgresRepository) UpdateLanguage(ctx context.Context, id int64, language models.Language) error {
	query := `UPDATE users SET language = $1 WHERE id = $2`
	return r.execExpectingOneRow(ctx, query, language.String(), id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`
	return r.execExpectingOneRow(ctx, query, id)
}

func (r *PostgresRepository) execExpectingOneRow(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
