// Package blob abstracts the external object store that holds gallery
// image bytes. The metadata registry only ever sees the returned URL.
package blob

import (
	"context"
	"io"
)

type Storage interface {
	// Store uploads the object and returns its durable public URL.
	Store(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	// Delete removes the object behind a URL previously returned by
	// Store. Callers treat failures as advisory.
	Delete(ctx context.Context, url string) error
}
