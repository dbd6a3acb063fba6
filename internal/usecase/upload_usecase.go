package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"
)

var (
	ErrStorageNotConfigured = errors.New("object storage not configured")
	ErrEmptyFile            = errors.New("empty file")
	ErrFileTooLarge         = errors.New("file too large")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
)

// allowedImageTypes are the only uploads the CMS accepts.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// IUploadUseCase stores CMS images.
type IUploadUseCase interface {
	UploadImage(ctx context.Context, file entities.FileUpload) (entities.StoredObject, error)
	SignedUpload(ctx context.Context, folder, fileName, contentType string) (entities.PresignedUpload, error)
}

type UploadUseCase struct {
	storage   interfaces.IObjectStorage
	maxBytes  int64
	signedTTL time.Duration
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

// NewUploadUseCase accepts a nil storage; every call then fails with
// ErrStorageNotConfigured.
func NewUploadUseCase(storage interfaces.IObjectStorage, maxBytes int64, signedTTL time.Duration) *UploadUseCase {
	if signedTTL <= 0 {
		signedTTL = 15 * time.Minute
	}
	return &UploadUseCase{storage: storage, maxBytes: maxBytes, signedTTL: signedTTL}
}

func (u *UploadUseCase) UploadImage(ctx context.Context, file entities.FileUpload) (entities.StoredObject, error) {
	if u.storage == nil {
		return entities.StoredObject{}, ErrStorageNotConfigured
	}
	if err := validateImage(file, u.maxBytes); err != nil {
		return entities.StoredObject{}, err
	}

	obj, err := u.storage.Upload(ctx, entities.UploadFolderImages, file)
	if err != nil {
		log.Printf("[upload][usecase] upload failed file=%q err=%v", file.FileName, err)
		return entities.StoredObject{}, err
	}
	log.Printf("[upload][usecase] uploaded key=%s size=%d", obj.Key, file.Size)
	return obj, nil
}

func (u *UploadUseCase) SignedUpload(ctx context.Context, folder, fileName, contentType string) (entities.PresignedUpload, error) {
	if u.storage == nil {
		return entities.PresignedUpload{}, ErrStorageNotConfigured
	}
	if strings.TrimSpace(fileName) == "" {
		return entities.PresignedUpload{}, ErrEmptyFile
	}
	if !isAllowedImage(contentType) {
		return entities.PresignedUpload{}, ErrUnsupportedFileType
	}
	folder = strings.TrimSpace(folder)
	if folder == "" {
		folder = entities.UploadFolderImages
	}
	return u.storage.PresignUpload(ctx, folder, fileName, u.signedTTL)
}

func validateImage(file entities.FileUpload, maxBytes int64) error {
	if file.Body == nil || file.Size <= 0 {
		return ErrEmptyFile
	}
	if maxBytes > 0 && file.Size > maxBytes {
		return ErrFileTooLarge
	}
	if !isAllowedImage(file.ContentType) {
		return ErrUnsupportedFileType
	}
	return nil
}

func isAllowedImage(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return allowedImageTypes[ct]
}
