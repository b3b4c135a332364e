// Package store persists job records behind a swappable backend.
package store

import (
	"context"
	"errors"

	"thumbsvc/internal/job"
)

var (
	// ErrNotFound means no record exists for the id, or it has expired.
	ErrNotFound = errors.New("job not found")
	// ErrUnavailable means the backend could not be reached. Callers must not
	// treat it as ErrNotFound.
	ErrUnavailable = errors.New("job store unavailable")
)

// Store is the registry of job records. Put overwrites any prior record for
// the same id. List returns every non-expired record in unspecified order.
type Store interface {
	Put(ctx context.Context, j job.Job) error
	Get(ctx context.Context, id string) (job.Job, error)
	List(ctx context.Context) ([]job.Job, error)
}
