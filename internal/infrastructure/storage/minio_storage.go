// Package storage stores CMS images in an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// PublicURL is the base under which objects are served, e.g. a CDN. When
	// empty it is derived from the endpoint.
	PublicURL string
}

// MinIOStorage implements object storage using MinIO.
type MinIOStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

var _ interfaces.IObjectStorage = (*MinIOStorage)(nil)

func NewMinIOStorage(cfg Config) (*MinIOStorage, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinIOStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicBaseURL(cfg),
	}, nil
}

// EnsureBucketExists creates the bucket if it doesn't exist.
func (s *MinIOStorage) EnsureBucketExists(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	log.Printf("[storage][minio] bucket created bucket=%s", s.bucket)
	return nil
}

// Upload writes file under folder with a collision-free name and returns its public URL.
func (s *MinIOStorage) Upload(ctx context.Context, folder string, file entities.FileUpload) (entities.StoredObject, error) {
	key := ObjectKey(folder, file.FileName)
	_, err := s.client.PutObject(ctx, s.bucket, key, file.Body, file.Size, minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		return entities.StoredObject{}, fmt.Errorf("failed to upload file %s: %w", key, err)
	}
	return entities.StoredObject{Key: key, URL: s.PublicURL(key)}, nil
}

// PresignUpload returns a presigned PUT URL valid for ttl.
func (s *MinIOStorage) PresignUpload(ctx context.Context, folder, fileName string, ttl time.Duration) (entities.PresignedUpload, error) {
	key := ObjectKey(folder, fileName)
	expiresAt := time.Now().Add(ttl)
	u, err := s.client.PresignedPutObject(ctx, s.bucket, key, ttl)
	if err != nil {
		return entities.PresignedUpload{}, fmt.Errorf("failed to generate presigned upload URL: %w", err)
	}
	return entities.PresignedUpload{
		UploadURL: u.String(),
		FileKey:   key,
		PublicURL: s.PublicURL(key),
		ExpiresAt: expiresAt,
	}, nil
}

func (s *MinIOStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (s *MinIOStorage) PublicURL(key string) string {
	return s.publicURL + "/" + key
}

// ObjectKey builds "<folder>/<base>_<8 hex><ext>" so uploads never overwrite
// each other. Folder and file name are reduced to URL-safe characters.
func ObjectKey(folder, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	base := sanitizeSegment(strings.TrimSuffix(path.Base(fileName), path.Ext(fileName)))
	if base == "" {
		base = "file"
	}
	name := fmt.Sprintf("%s_%s%s", base, uuid.New().String()[:8], sanitizeSegment(ext))

	parts := make([]string, 0, 4)
	for _, p := range strings.Split(folder, "/") {
		if p = sanitizeSegment(p); p != "" && p != "." && p != ".." {
			parts = append(parts, p)
		}
	}
	parts = append(parts, name)
	return strings.Join(parts, "/")
}

func sanitizeSegment(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	return b.String()
}

func publicBaseURL(cfg Config) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
}
