// Package mediastore manages the media directory lesson files are
// copied into. The persistence core only ever stores the path strings
// this package returns; selecting the source file is the view layer's
// job.
package mediastore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/eduplatform/internal/filex"
)

// Kind selects the subdirectory a media file lands in.
type Kind string

const (
	KindImage Kind = "images"
	KindVideo Kind = "videos"
)

// Store copies media files into a managed base directory.
type Store struct {
	baseDir string
}

// New returns a Store rooted at baseDir. Subdirectories are created
// lazily on first save.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save copies the file at src into the managed directory for kind,
// under a fresh unique name that keeps the original extension, and
// returns the stored path.
func (s *Store) Save(src string, kind Kind) (string, error) {
	dir, err := filex.EnsureSubDir(s.baseDir, string(kind))
	if err != nil {
		return "", err
	}

	dst := filepath.Join(dir, uuid.NewString()+filepath.Ext(src))
	if err := filex.CopyFile(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// Remove deletes a managed file. Paths outside the base directory are
// rejected so a stale or hostile path string cannot delete arbitrary
// files. Removing a path that is already gone is not an error.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	base, err := filepath.Abs(s.baseDir)
	if err != nil {
		return err
	}
	if abs != base && !strings.HasPrefix(abs, base+string(filepath.Separator)) {
		return fmt.Errorf("path %s is outside the media directory", path)
	}

	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
