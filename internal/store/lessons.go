package store

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/eduplatform/internal/common"
	"github.com/dmitrijs2005/eduplatform/internal/models"
)

// AddLesson inserts a lesson, assigning its id and creation
// timestamp. Returns nil when CreatedBy does not reference an
// existing user or storage fails; an orphaned reference is never
// silently accepted.
func (s *Store) AddLesson(ctx context.Context, l models.Lesson) *models.Lesson {
	if _, err := s.userRepo(s.db).GetByID(ctx, l.CreatedBy); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.log.Warn(ctx, "lesson rejected", "created_by", l.CreatedBy, "error", common.ErrUnknownOwner)
		} else {
			s.log.Error(ctx, "lesson owner check failed", "error", err)
		}
		return nil
	}

	id, createdAt, err := s.lessonRepo(s.db).Create(ctx, &l)
	if err != nil {
		s.log.Error(ctx, "lesson insert failed", "error", err)
		return nil
	}
	l.ID = id
	l.CreatedAt = createdAt
	return &l
}

// UpdateLesson overwrites titles, descriptions and media paths by id.
// Ownership is immutable; the CreatedBy field of the argument is
// ignored.
func (s *Store) UpdateLesson(ctx context.Context, l models.Lesson) bool {
	if err := s.lessonRepo(s.db).Update(ctx, &l); err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "lesson update failed", "error", err)
		}
		return false
	}
	return true
}

// DeleteLesson removes a single lesson by id.
func (s *Store) DeleteLesson(ctx context.Context, id int64) bool {
	if err := s.lessonRepo(s.db).Delete(ctx, id); err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "lesson delete failed", "error", err)
		}
		return false
	}
	return true
}

// GetLessons lists lessons newest-first. ownerID narrows the list to
// one author; zero means all lessons.
func (s *Store) GetLessons(ctx context.Context, ownerID int64) []models.Lesson {
	repo := s.lessonRepo(s.db)

	var (
		result []models.Lesson
		err    error
	)
	if ownerID != 0 {
		result, err = repo.GetByOwner(ctx, ownerID)
	} else {
		result, err = repo.GetAll(ctx)
	}
	if err != nil {
		s.log.Error(ctx, "lesson list failed", "error", err)
		return nil
	}
	return result
}

// GetLesson returns the lesson with the given id, or nil.
func (s *Store) GetLesson(ctx context.Context, id int64) *models.Lesson {
	l, err := s.lessonRepo(s.db).GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Error(ctx, "lesson lookup failed", "error", err)
		}
		return nil
	}
	return l
}
