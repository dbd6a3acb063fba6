package interfaces

import (
	"context"
	"time"

	"nishad_gateway/internal/domain/entities"
)

// IObjectStorage abstracts the S3-compatible bucket holding CMS images.
type IObjectStorage interface {
	Upload(ctx context.Context, folder string, file entities.FileUpload) (entities.StoredObject, error)
	PresignUpload(ctx context.Context, folder, fileName string, ttl time.Duration) (entities.PresignedUpload, error)
	Delete(ctx context.Context, key string) error
}
