package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// FSStorage implements a read-only Storage over an fs.FS, typically an
// embedded directory.
type FSStorage struct {
	fsys fs.FS
}

// NewFSStorage creates a new FSStorage rooted at fsys.
func NewFSStorage(fsys fs.FS) *FSStorage {
	return &FSStorage{fsys: fsys}
}

func clean(p string) string {
	p = path.Clean(strings.TrimPrefix(p, "/"))
	if p == "" {
		return "."
	}
	return p
}

func (s *FSStorage) Read(_ context.Context, p string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, clean(p))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return data, nil
}

func (s *FSStorage) Write(_ context.Context, p string, _ []byte) error {
	return fmt.Errorf("%s: %w", p, ErrReadOnly)
}

func (s *FSStorage) List(_ context.Context, prefix string) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, clean(prefix))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", prefix, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		paths = append(paths, strings.TrimPrefix(path.Join(prefix, entry.Name()), "/"))
	}
	return paths, nil
}

func (s *FSStorage) Exists(_ context.Context, p string) (bool, error) {
	_, err := fs.Stat(s.fsys, clean(p))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", p, err)
	}
	return true, nil
}
