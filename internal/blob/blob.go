// Package blob abstracts evidence file storage. The S3 client is the
// real backend; Memory mirrors it for degraded mode and tests.
package blob

import (
	"context"
	"io"
)

// Store persists raw evidence bytes under an opaque key and returns a
// locator for later retrieval.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
