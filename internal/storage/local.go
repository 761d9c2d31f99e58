package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorageService stores uploads on the local filesystem. Files are
// served back by the HTTP server under /uploads/.
type LocalStorageService struct {
	baseURL   string // server URL the public file URLs are rooted at
	uploadDir string
}

func NewLocalStorageService(baseURL, uploadDir string) (*LocalStorageService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorageService{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		uploadDir: uploadDir,
	}, nil
}

func (s *LocalStorageService) SaveFile(ctx context.Context, key string, reader io.Reader) (string, error) {
	fullPath := filepath.Join(s.uploadDir, filepath.Base(key))

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.urlFor(key), nil
}

func (s *LocalStorageService) ReadFile(ctx context.Context, key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.uploadDir, filepath.Base(key)))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (s *LocalStorageService) DeleteFile(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.uploadDir, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorageService) ListFiles(ctx context.Context) ([]StoredFile, error) {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload directory: %w", err)
	}

	var files []StoredFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if os.IsNotExist(err) {
				continue // deleted between ReadDir and Info
			}
			return nil, err
		}
		files = append(files, StoredFile{
			Key:       entry.Name(),
			URL:       s.urlFor(entry.Name()),
			UpdatedAt: info.ModTime(),
		})
	}
	return files, nil
}

func (s *LocalStorageService) KeyFromURL(url string) (string, bool) {
	// Accept both absolute URLs and the relative /uploads/... form
	idx := strings.Index(url, "/uploads/")
	if idx < 0 {
		return "", false
	}
	key := url[idx+len("/uploads/"):]
	if key == "" || strings.Contains(key, "/") {
		return "", false
	}
	return key, true
}

func (s *LocalStorageService) urlFor(key string) string {
	return s.baseURL + "/uploads/" + filepath.Base(key)
}
