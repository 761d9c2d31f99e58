package storage

import (
	"context"
	"io"
	"time"
)

// StoredFile describes one file held by a storage backend.
type StoredFile struct {
	Key       string
	URL       string
	UpdatedAt time.Time
}

// StorageInterface abstracts the attachment store. Two backends exist:
// local filesystem (files served by this server under /uploads) and
// Firebase Cloud Storage.
type StorageInterface interface {
	// SaveFile stores the file under key and returns its public URL.
	SaveFile(ctx context.Context, key string, reader io.Reader) (string, error)

	// ReadFile opens a stored file for reading.
	ReadFile(ctx context.Context, key string) (io.ReadCloser, error)

	// DeleteFile removes a file. Deleting a missing file is not an error.
	DeleteFile(ctx context.Context, key string) error

	// ListFiles enumerates all stored files, for the cleanup job.
	ListFiles(ctx context.Context) ([]StoredFile, error)

	// KeyFromURL maps a public URL back to its storage key. The second
	// return is false for URLs this backend did not produce.
	KeyFromURL(url string) (string, bool)
}
