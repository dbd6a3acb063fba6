package entities

import (
	"io"
	"time"
)

// Upload folders used by the CMS.
const (
	UploadFolderImages      = "images"
	UploadFolderSubServices = "subservices"
)

// FileUpload is an incoming file, usually a multipart part.
type FileUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// StoredObject is an object written to the bucket.
type StoredObject struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// PresignedUpload lets the browser PUT a file straight to the bucket.
type PresignedUpload struct {
	UploadURL string    `json:"uploadUrl"`
	FileKey   string    `json:"fileKey"`
	PublicURL string    `json:"publicUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}
