package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"keeso-backend/internal/storage"

	"github.com/google/uuid"
)

type uploadService struct {
	store        storage.StorageInterface
	maxFileSize  int64
	allowedTypes map[string]bool
}

func NewUploadService(store storage.StorageInterface, maxFileSize int64, allowedTypes []string) UploadService {
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToLower(strings.TrimPrefix(t, "."))] = true
	}
	return &uploadService{
		store:        store,
		maxFileSize:  maxFileSize,
		allowedTypes: allowed,
	}
}

func (s *uploadService) Store(ctx context.Context, filename string, size int64, content io.Reader) (*StoredUpload, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" || !s.allowedTypes[ext] {
		return nil, fmt.Errorf("%w: .%s", ErrUnsupportedFileType, ext)
	}
	if size > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, size)
	}

	// Unique timestamped name; the original filename is never trusted.
	key := fmt.Sprintf("%s_%s.%s",
		time.Now().UTC().Format("20060102_150405"),
		strings.ReplaceAll(uuid.New().String()[:8], "-", ""),
		ext,
	)

	url, err := s.store.SaveFile(ctx, key, io.LimitReader(content, s.maxFileSize))
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	return &StoredUpload{Filename: key, URL: url}, nil
}

func (s *uploadService) Remove(ctx context.Context, url string) error {
	key, ok := s.store.KeyFromURL(url)
	if !ok {
		return nil
	}
	return s.store.DeleteFile(ctx, key)
}
