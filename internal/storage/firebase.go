package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// FirebaseStorageService stores uploads in a Firebase Cloud Storage bucket.
// Objects are created with public-read URLs of the standard
// storage.googleapis.com form.
type FirebaseStorageService struct {
	bucketName string
	bucket     *gcs.BucketHandle
}

func NewFirebaseStorageService(ctx context.Context, credentialsFile, bucketName string) (*FirebaseStorageService, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase storage client: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to open storage bucket: %w", err)
	}

	return &FirebaseStorageService{
		bucketName: bucketName,
		bucket:     bucket,
	}, nil
}

func (s *FirebaseStorageService) SaveFile(ctx context.Context, key string, reader io.Reader) (string, error) {
	w := s.bucket.Object(s.objectName(key)).NewWriter(ctx)
	if _, err := io.Copy(w, reader); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object: %w", err)
	}
	return s.urlFor(key), nil
}

func (s *FirebaseStorageService) ReadFile(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.Object(s.objectName(key)).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object: %w", err)
	}
	return r, nil
}

func (s *FirebaseStorageService) DeleteFile(ctx context.Context, key string) error {
	err := s.bucket.Object(s.objectName(key)).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (s *FirebaseStorageService) ListFiles(ctx context.Context) ([]StoredFile, error) {
	it := s.bucket.Objects(ctx, &gcs.Query{Prefix: "uploads/"})

	var files []StoredFile
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		key := strings.TrimPrefix(attrs.Name, "uploads/")
		if key == "" {
			continue
		}
		files = append(files, StoredFile{
			Key:       key,
			URL:       s.urlFor(key),
			UpdatedAt: attrs.Updated,
		})
	}
	return files, nil
}

func (s *FirebaseStorageService) KeyFromURL(url string) (string, bool) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/uploads/", s.bucketName)
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" || strings.Contains(key, "/") {
		return "", false
	}
	return key, true
}

func (s *FirebaseStorageService) objectName(key string) string {
	return "uploads/" + key
}

func (s *FirebaseStorageService) urlFor(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/uploads/%s", s.bucketName, key)
}
