package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/eduplatform/internal/common"
	"github.com/dmitrijs2005/eduplatform/internal/dbx"
	"github.com/dmitrijs2005/eduplatform/internal/models"
)

// SQLiteRepository implements Repository over a dbx.DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, u *models.User) (int64, error) {
	query := `INSERT INTO users (username, password_hash, salt, role, language)
			VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		u.Username, u.PasswordHash, u.Salt, u.Role.String(), u.Language.String())
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted user id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, username, password_hash, salt, role, language FROM users WHERE id = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, password_hash, salt, role, language FROM users WHERE username = ?`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
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

func (r *SQLiteRepository) Update(ctx context.Context, id int64, username string, role models.Role, language models.Language) error {
	query := `UPDATE users SET username = ?, role = ?, language = ? WHERE id = ?`
	return execExpectingOneRow(ctx, r.db, query, username, role.String(), language.String(), id)
}

func (r *SQLiteRepository) UpdateLanguage(ctx context.Context, id int64, language models.Language) error {
	query := `UPDATE users SET language = ? WHERE id = ?`
	return execExpectingOneRow(ctx, r.db, query, language.String(), id)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = ?`
	return execExpectingOneRow(ctx, r.db, query, id)
}

// scanUser maps a single-row query onto a User, translating
// sql.ErrNoRows into common.ErrNotFound.
func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var role, lang string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Salt, &role, &lang); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	var err error
	if u.Role, err = models.ParseRole(role); err != nil {
		return nil, err
	}
	if u.Language, err = models.ParseLanguage(lang); err != nil {
		return nil, err
	}
	return u, nil
}

// execExpectingOneRow runs a mutation that must touch exactly one row;
// zero affected rows means the target id does not exist.
func execExpectingOneRow(ctx context.Context, db dbx.DBTX, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec failed: %w", err)
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
