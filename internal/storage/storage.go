// Package storage keeps uploaded documents and images on an afero filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	apperrors "institute-portal-backend/internal/errors"
)

// Category is the top-level folder of a stored file; it decides which
// extensions are accepted and whether the file is public.
type Category string

const (
	CategoryDocuments Category = "documents"
	CategoryImages    Category = "images"
)

var allowedExtensions = map[Category]map[string]bool{
	CategoryDocuments: {".pdf": true},
	CategoryImages:    {".jpg": true, ".jpeg": true, ".png": true, ".webp": true},
}

// Store is what services need from file storage
type Store interface {
	Save(category Category, originalName string, r io.Reader) (string, error)
	Open(p string) (afero.File, error)
	Delete(p string) error
}

// FileStore stores files under category/yyyy/mm/<uuid><ext>
type FileStore struct {
	fs       afero.Fs
	maxBytes int64
	now      func() time.Time
}

// NewFileStore creates a store over fs accepting files up to maxBytes
func NewFileStore(fs afero.Fs, maxBytes int64) *FileStore {
	return &FileStore{fs: fs, maxBytes: maxBytes, now: time.Now}
}

// NewOSFileStore creates a store rooted at a directory on disk
func NewOSFileStore(root string, maxUploadMB int) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	fs := afero.NewBasePathFs(afero.NewOsFs(), root)
	return NewFileStore(fs, int64(maxUploadMB)<<20), nil
}

// MaxBytes returns the upload size limit
func (s *FileStore) MaxBytes() int64 {
	return s.maxBytes
}

// Save copies r into a new file and returns its relative path
func (s *FileStore) Save(category Category, originalName string, r io.Reader) (string, error) {
	allowed, ok := allowedExtensions[category]
	if !ok {
		return "", fmt.Errorf("unknown storage category %q", category)
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowed[ext] {
		return "", apperrors.ErrUnsupportedFileType
	}

	now := s.now()
	dir := path.Join(string(category), now.Format("2006"), now.Format("01"))
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	rel := path.Join(dir, uuid.NewString()+ext)

	f, err := s.fs.Create(rel)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = s.fs.Remove(rel)
		return "", fmt.Errorf("write file: %w", err)
	}
	if n > s.maxBytes {
		_ = s.fs.Remove(rel)
		return "", apperrors.ErrFileTooLarge
	}

	return rel, nil
}

// Open opens a stored file for reading
func (s *FileStore) Open(p string) (afero.File, error) {
	clean, err := Clean(p)
	if err != nil {
		return nil, err
	}
	f, err := s.fs.Open(clean)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, err
	}
	if info, err := f.Stat(); err == nil && info.IsDir() {
		_ = f.Close()
		return nil, apperrors.ErrFileNotFound
	}
	return f, nil
}

// Delete removes a stored file; a missing file is not an error
func (s *FileStore) Delete(p string) error {
	if p == "" {
		return nil
	}
	clean, err := Clean(p)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(clean); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Clean validates a relative stored path and returns it normalised.
// Absolute paths, parent references and unknown categories are rejected.
func Clean(p string) (string, error) {
	p = strings.TrimPrefix(strings.ReplaceAll(p, "\\", "/"), "/")
	if p == "" {
		return "", apperrors.ErrInvalidPath
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", apperrors.ErrInvalidPath
		}
	}
	clean := path.Clean(p)
	if _, ok := allowedExtensions[CategoryOf(clean)]; !ok {
		return "", apperrors.ErrInvalidPath
	}
	return clean, nil
}

// CategoryOf returns the category folder of a stored path
func CategoryOf(p string) Category {
	p = strings.TrimPrefix(p, "/")
	if i := strings.Index(p, "/"); i > 0 {
		return Category(p[:i])
	}
	return Category(p)
}
