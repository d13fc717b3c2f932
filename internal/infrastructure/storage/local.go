// Package storage persists uploaded identity documents on the local
// filesystem. Files are written before the ledger mutation that references
// them; a failed write aborts the application attempt.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

type LocalStore struct{ dir string }

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

// Save streams the upload to disk and returns the public path the file is
// served under.
func (s *LocalStore) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("storage: open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("documentImage-%d%s", time.Now().UnixNano(), filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		// best effort removal of the partial file
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return "/uploads/" + name, nil
}
