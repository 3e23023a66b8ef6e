package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore persists uploaded content and resolves it to a publicly
// reachable URI.
type FileStore interface {
	Save(originalName string, r io.Reader) (string, error)
}

// LocalStore stores uploads on the local filesystem under a directory that is
// served statically at /uploads.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save writes the content under a timestamp-based name, keeping only the
// original extension, and returns the public URI.
func (s *LocalStore) Save(originalName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), strings.ToLower(filepath.Ext(originalName)))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return s.baseURL + "/uploads/" + name, nil
}
