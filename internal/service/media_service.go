package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"hackfest/internal/config"
	"hackfest/internal/domain"
	"hackfest/internal/port"
)

// MediaService stores uploaded images in object storage and resolves their
// public URLs.
type MediaService interface {
	// Upload stores the file under folder with a randomized, timestamp-prefixed
	// key and returns the object's public URL.
	Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (string, error)
}

type mediaService struct {
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewMediaService creates a new MediaService implementation.
func NewMediaService(storage port.ObjectStorage, cfg *config.S3Config) MediaService {
	return &mediaService{storage: storage, cfg: cfg}
}

func (s *mediaService) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader, folder string) (string, error) {
	if s.storage == nil {
		return "", domain.ErrStoreNotConfigured
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if ext == "" {
		ext = "png"
	}
	if !domain.AllowedImageExtensions[ext] {
		return "", domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if header.Size > maxBytes {
		return "", domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading file header: %w", err)
	}
	contentType := http.DetectContentType(buf[:n])
	if !domain.AllowedImageContentTypes[contentType] {
		return "", domain.ErrUnsupportedFileType
	}

	// Seek back to beginning for upload
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("seeking file: %w", err)
	}

	// The key is randomized, so the upsert on collision never fires in
	// practice; it exists to make retries harmless.
	key := fmt.Sprintf("%s/%d-%s.%s", folder, time.Now().UnixMilli(), uuid.New(), ext)

	log.Printf("mediaService.Upload: storing %s (%s, %d bytes) as %s",
		header.Filename, contentType, header.Size, key)

	err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        file,
		ContentType: contentType,
	})
	if err != nil {
		log.Printf("mediaService.Upload: %v", err)
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	return s.storage.PublicURL(s.cfg.Bucket, key), nil
}
