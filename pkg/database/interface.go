package database

import (
	"context"

	"github.com/voidshard/hopper/pkg/structs"
)

// Database keeps a history of submitted jobs for the dashboard's benefit.
//
// The pipeline only ever writes here; nothing it decides is read back from
// history. Source text is not kept, only the tracking metadata.
type Database interface {
	// InsertJob records a freshly submitted job.
	InsertJob(ctx context.Context, j *structs.Job) error

	// UpdateJob persists the job's current state. The job's ETag must match
	// the stored row (the row rotates to newTag on success); the number of
	// rows updated is returned.
	UpdateJob(ctx context.Context, j *structs.Job, newTag string) (int64, error)

	// Jobs returns history rows matching the given query.
	Jobs(ctx context.Context, q *structs.Query) ([]*structs.Job, error)

	Close() error
}
