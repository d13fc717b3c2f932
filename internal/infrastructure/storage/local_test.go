package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadRequest(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	_ = w.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}
	return req.MultipartForm.File[field][0]
}

func TestNewLocalStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	if s.Dir() != dir {
		t.Fatalf("Dir = %q, want %q", s.Dir(), dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("dir not created: %v", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	fh := uploadRequest(t, "documentImage", "aadhaar-card.png", "fake-image-bytes")
	path, err := s.Save(fh)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(path, "/uploads/documentImage-") {
		t.Fatalf("path = %q, want /uploads/documentImage-<nano> prefix", path)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Fatalf("path = %q, want original extension kept", path)
	}

	onDisk := filepath.Join(dir, strings.TrimPrefix(path, "/uploads/"))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "fake-image-bytes" {
		t.Fatalf("content = %q", data)
	}
}

func TestSaveDistinctNames(t *testing.T) {
	s, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	a, err := s.Save(uploadRequest(t, "documentImage", "one.jpg", "a"))
	if err != nil {
		t.Fatalf("Save a: %v", err)
	}
	b, err := s.Save(uploadRequest(t, "documentImage", "two.jpg", "b"))
	if err != nil {
		t.Fatalf("Save b: %v", err)
	}
	if a == b {
		t.Fatalf("two uploads share the same path %q", a)
	}
}
