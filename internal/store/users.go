package store

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/eduplatform/internal/common"
	"github.com/dmitrijs2005/eduplatform/internal/dbx"
	"github.com/dmitrijs2005/eduplatform/internal/models"
	"github.com/dmitrijs2005/eduplatform/internal/securex"
)

// VerifyUser looks up a user by username and checks the password.
// Unknown username and wrong password are indistinguishable to the
// caller; both return nil.
func (s *Store) VerifyUser(ctx context.Context, username, password string) *models.User {
	u, err := s.userRepo(s.db).GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "user lookup failed", "error", err)
		}
		return nil
	}
	if !securex.VerifyPassword(password, u.Salt, u.PasswordHash) {
		return nil
	}
	return u
}

// AddUser creates a user with a freshly generated salt and hash.
// Returns nil when the username is empty or already taken (exact
// match), the role or language is unknown, or storage fails.
func (s *Store) AddUser(ctx context.Context, username, password string, role models.Role, language models.Language) *models.User {
	if username == "" || !role.Valid() || !language.Valid() {
		return nil
	}

	repo := s.userRepo(s.db)

	if _, err := repo.GetByUsername(ctx, username); err == nil {
		s.log.Warn(ctx, "user rejected", "username", username, "error", common.ErrDuplicateUsername)
		return nil
	} else if !errors.Is(err, common.ErrNotFound) {
		s.log.Error(ctx, "duplicate-username check failed", "error", err)
		return nil
	}

	salt, err := securex.GenerateSalt(securex.DefaultSaltSize)
	if err != nil {
		s.log.Error(ctx, "salt generation failed", "error", err)
		return nil
	}

	u := &models.User{
		Username:     username,
		PasswordHash: securex.HashPassword(password, salt),
		Salt:         salt,
		Role:         role,
		Language:     language,
	}
	id, err := repo.Create(ctx, u)
	if err != nil {
		s.log.Error(ctx, "user insert failed", "error", err)
		return nil
	}
	u.ID = id
	return u
}

// UpdateUser changes username, role and language in one write,
// leaving password and salt untouched. Fails without any partial
// change when the new username belongs to a different user.
func (s *Store) UpdateUser(ctx context.Context, id int64, username string, role models.Role, language models.Language) bool {
	if username == "" || !role.Valid() || !language.Valid() {
		return false
	}

	repo := s.userRepo(s.db)

	existing, err := repo.GetByUsername(ctx, username)
	if err == nil && existing.ID != id {
		s.log.Warn(ctx, "user update rejected", "username", username, "error", common.ErrDuplicateUsername)
		return false
	}
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		s.log.Error(ctx, "duplicate-username check failed", "error", err)
		return false
	}

	if err := repo.Update(ctx, id, username, role, language); err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "user update failed", "error", err)
		}
		return false
	}
	return true
}

// UpdateUserLanguage changes only the language preference.
func (s *Store) UpdateUserLanguage(ctx context.Context, id int64, language models.Language) bool {
	if !language.Valid() {
		return false
	}
	if err := s.userRepo(s.db).UpdateLanguage(ctx, id, language); err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "language update failed", "error", err)
		}
		return false
	}
	return true
}

// DeleteUser removes a user and every lesson it authored as one
// atomic unit. The seeded admin account is not special-cased here;
// rejecting its deletion is the caller's contract.
func (s *Store) DeleteUser(ctx context.Context, id int64) bool {
	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.lessonRepo(tx).DeleteByOwner(ctx, id); err != nil {
			return err
		}
		return s.userRepo(tx).Delete(ctx, id)
	})
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "user delete failed", "error", err)
		}
		return false
	}
	return true
}

// GetUsers lists all users ordered by username ascending. Storage
// faults are logged and yield nil.
func (s *Store) GetUsers(ctx context.Context) []models.User {
	result, err := s.userRepo(s.db).GetAll(ctx)
	if err != nil {
		s.log.Error(ctx, "user list failed", "error", err)
		return nil
	}
	return result
}

// GetUser returns the user with the given id, or nil.
func (s *Store) GetUser(ctx context.Context, id int64) *models.User {
	u, err := s.userRepo(s.db).GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "user lookup failed", "error", err)
		}
		return nil
	}
	return u
}

// GetUserByUsername returns the user with the given username, or nil.
func (s *Store) GetUserByUsername(ctx context.Context, username string) *models.User {
	u, err := s.userRepo(s.db).GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "user lookup failed", "error", err)
		}
		return nil
	}
	return u
}
