// Package blob holds uploaded originals and generated thumbnails as named
// byte streams, either on local disk or in object storage.
package blob

import (
	"context"
	"io"
)

// Store is one content area. Save overwrites any existing object of the same
// name; Open returns the object's bytes or an error if it does not exist.
type Store interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
