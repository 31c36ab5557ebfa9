package store

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"

	"github.com/MKhiriev/unibrain/models"
)

// localObjectStore keeps objects as files under <dir>/<bucket>/<path>.
type localObjectStore struct {
	dir string
}

// NewLocalObjectStore constructs an [ObjectStore] rooted at dir.
func NewLocalObjectStore(dir string) (ObjectStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve files dir: %w", err)
	}

	return &localObjectStore{dir: abs}, nil
}

func (s *localObjectStore) objectPath(bucket, path string) string {
	return filepath.Join(s.dir, bucket, filepath.FromSlash(filepath.Clean("/"+path)))
}

func (s *localObjectStore) Upload(_ context.Context, bucket, path string, data []byte, _ string) (string, error) {
	target := s.objectPath(bucket, path)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("%w: create bucket dir: %w", ErrStorage, err)
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: write object: %w", ErrStorage, err)
	}

	return s.PublicURL(bucket, path), nil
}

func (s *localObjectStore) List(_ context.Context, bucket string, limit int) ([]models.StoredObject, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, bucket))
	if os.IsNotExist(err) {
		return []models.StoredObject{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read bucket dir: %w", err)
	}

	objects := make([]models.StoredObject, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		objects = append(objects, models.StoredObject{Name: e.Name(), Size: info.Size(), CreatedAt: info.ModTime()})
	}

	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].CreatedAt.After(objects[j].CreatedAt)
	})
	if limit > 0 && len(objects) > limit {
		objects = objects[:limit]
	}

	return objects, nil
}

func (s *localObjectStore) PublicURL(bucket, path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(s.objectPath(bucket, path))}
	return u.String()
}
