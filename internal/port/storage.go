package port

import (
	"context"
	"io"
)

// UploadInput encapsulates the parameters needed to upload an object.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

// ObjectStorage abstracts cloud object storage operations. Upload uses upsert
// semantics: an existing object at the same key is overwritten.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) error
	Delete(ctx context.Context, bucket, key string) error
	// PublicURL resolves the publicly reachable URL of an uploaded object.
	PublicURL(bucket, key string) string
}
