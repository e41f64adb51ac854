package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/services/dto"
	"portfolio_backend/internal/storage"
)

// resumeExtensions is the slot whitelist: the resume lives under a fixed
// name, one file at a time, whatever the storage backend.
var resumeExtensions = []string{".pdf", ".doc", ".docx"}

type UploadService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error)
	UploadResume(ctx context.Context, file *multipart.FileHeader) (*dto.ResumeUploadResponse, error)
	ResumeInfo(ctx context.Context) (*dto.ResumeInfo, error)
}

// UploadConfig carries the byte limits, checked before any write.
type UploadConfig struct {
	MaxImageSize  int64
	MaxResumeSize int64
}

type uploadService struct {
	storage storage.Storage
	config  UploadConfig
}

func NewUploadService(store storage.Storage, config UploadConfig) UploadService {
	return &uploadService{
		storage: store,
		config:  config,
	}
}

// UploadImage validates MIME type and size, then stores the file under a
// collision-resistant generated name.
func (s *uploadService) UploadImage(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResponse, error) {
	if err := ValidateImageUpload(file.Filename, file.Header.Get("Content-Type"), file.Size, s.config.MaxImageSize); err != nil {
		return nil, err
	}

	name := generateFilename(filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	if err := s.storage.Save(ctx, name, src, file.Header.Get("Content-Type")); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UploadResponse{
		Message:  "File uploaded successfully",
		FilePath: s.storage.URL(name),
	}, nil
}

// UploadResume stores the document under the fixed resume slot,
// replacing whichever file held the slot before.
func (s *uploadService) UploadResume(ctx context.Context, file *multipart.FileHeader) (*dto.ResumeUploadResponse, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if err := ValidateResumeUpload(ext, file.Size, s.config.MaxResumeSize); err != nil {
		return nil, err
	}

	// Clear the slot first so a stale file with a different extension
	// cannot shadow the new resume.
	for _, e := range resumeExtensions {
		if err := s.storage.Delete(ctx, "resume"+e); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	name := "resume" + ext

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	if err := s.storage.Save(ctx, name, src, file.Header.Get("Content-Type")); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ResumeUploadResponse{
		Message:  "Resume uploaded successfully",
		FilePath: s.storage.URL(name),
		Filename: name,
	}, nil
}

// ResumeInfo reports whether a resume occupies the slot, plus metadata.
func (s *uploadService) ResumeInfo(ctx context.Context) (*dto.ResumeInfo, error) {
	for _, ext := range resumeExtensions {
		name := "resume" + ext

		exists, err := s.storage.Exists(ctx, name)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if !exists {
			continue
		}

		info, err := s.storage.Stat(ctx, name)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		uploadedAt := info.ModifiedAt
		return &dto.ResumeInfo{
			Exists:     true,
			Filename:   name,
			FilePath:   s.storage.URL(name),
			Size:       info.Size,
			UploadedAt: &uploadedAt,
		}, nil
	}

	return &dto.ResumeInfo{Exists: false}, nil
}

// ValidateImageUpload rejects non-image MIME types and oversize files.
func ValidateImageUpload(filename, contentType string, size, maxSize int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return apperrors.NewUploadRejectedError("Only image files are allowed")
	}
	if size > maxSize {
		return apperrors.NewUploadRejectedError(fmt.Sprintf("File exceeds the %d MB limit", maxSize/(1024*1024)))
	}
	return nil
}

// ValidateResumeUpload rejects unsupported extensions and oversize files.
func ValidateResumeUpload(ext string, size, maxSize int64) error {
	allowed := false
	for _, e := range resumeExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return apperrors.NewUploadRejectedError("Only PDF and DOC files are allowed")
	}
	if size > maxSize {
		return apperrors.NewUploadRejectedError(fmt.Sprintf("File exceeds the %d MB limit", maxSize/(1024*1024)))
	}
	return nil
}

// generateFilename builds a collision-resistant name from a timestamp
// and a random suffix, keeping the original extension.
func generateFilename(ext string) string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), hex.EncodeToString(suffix), strings.ToLower(ext))
}
