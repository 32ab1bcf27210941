package storage

import (
	"context"
	"strings"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage defines the object storage operations the service needs.
// Exercise images are either absolute URLs or object keys in the image bucket.
type FileStorage interface {
	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for viewing an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
}

// IsObjectKey reports whether an image reference has to be signed before it is handed out.
func IsObjectKey(image string) bool {
	if image == "" {
		return false
	}
	lower := strings.ToLower(image)
	return !strings.HasPrefix(lower, "http://") &&
		!strings.HasPrefix(lower, "https://") &&
		!strings.HasPrefix(lower, "data:")
}
