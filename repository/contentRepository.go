package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

var ErrNotFound = errors.New("not found")

// ContentRepository returns the raw JSON document published under a resource
// name such as "events.json".
type ContentRepository interface {
	Load(ctx context.Context, resource string) ([]byte, error)
}

type FileContentRepository struct {
	fsys fs.FS
}

func NewFileContentRepository(fsys fs.FS) *FileContentRepository {
	return &FileContentRepository{
		fsys: fsys,
	}
}

func (r *FileContentRepository) Load(ctx context.Context, resource string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := path.Clean(strings.TrimPrefix(resource, "/"))
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid resource %q", resource)
	}

	b, err := fs.ReadFile(r.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", resource, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}
