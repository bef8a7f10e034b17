// Package storage persists uploaded files: store bytes, return a path.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UploadStore writes uploaded files to a local directory. Stored files are
// served back under the /uploads URL prefix.
type UploadStore struct {
	dir string
}

// NewUploadStore ensures the backing directory exists.
func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Dir returns the backing directory, for static file serving.
func (s *UploadStore) Dir() string {
	return s.dir
}

// Store persists the bytes under a fresh name, keeping the original
// extension, and returns the server-relative path.
func (s *UploadStore) Store(src io.Reader, originalName string) (string, error) {
	name := "profilePic-" + uuid.NewString() + filepath.Ext(originalName)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return "/uploads/" + name, nil
}
