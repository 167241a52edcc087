package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// LocalStorage keeps generated report artifacts (XLSX, PDF) on the local
// filesystem, organized by year/month.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Save writes data under subDir with a unique name, keeping the extension of
// the suggested filename. It returns the relative path.
func (s *LocalStorage) Save(data []byte, filename string, subDir string) (string, error) {
	dir := filepath.Join(s.basePath, subDir, time.Now().Format("2006/01"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	ext := filepath.Ext(filename)
	uniqueName := uuid.NewString() + ext
	filePath := filepath.Join(dir, uniqueName)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	relPath, _ := filepath.Rel(s.basePath, filePath)
	return relPath, nil
}

// Open returns a stored artifact for reading
func (s *LocalStorage) Open(relativePath string) (*os.File, error) {
	fullPath := filepath.Join(s.basePath, relativePath)

	// Refuse paths that escape the storage root
	cleaned, err := filepath.Abs(fullPath)
	if err != nil {
		return nil, err
	}
	base, err := filepath.Abs(s.basePath)
	if err != nil {
		return nil, err
	}
	if len(cleaned) < len(base) || cleaned[:len(base)] != base {
		return nil, fmt.Errorf("invalid path: %s", relativePath)
	}

	return os.Open(fullPath)
}

// Delete removes a stored artifact
func (s *LocalStorage) Delete(relativePath string) error {
	return os.Remove(filepath.Join(s.basePath, relativePath))
}
