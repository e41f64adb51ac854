package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// FileInfo describes a stored blob.
type FileInfo struct {
	Size       int64
	ModifiedAt time.Time
}

// Storage abstracts the blob location so handlers never know whether
// files live on local disk or in object storage.
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Delete removes a file; deleting a missing file is not an error
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// Stat returns size and modification time of a file
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// URL returns the public URL for the file
	URL(path string) string
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // local storage root
	BaseURL   string // public URL base
	Bucket    string // s3
	Region    string // s3
	AccessKey string // s3
	SecretKey string // s3
	Endpoint  string // s3-compatible providers (Cloudflare R2 etc.)
}

// New creates a storage backend based on configuration.
func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
