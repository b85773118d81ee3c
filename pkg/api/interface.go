package api

import (
	"context"

	"github.com/voidshard/hopper/pkg/structs"
)

// API represents the functions hopper servers should expose.
type API interface {
	// Implemented in hopper/internal/core.Service

	SubmitCompileAndRun(ctx context.Context, req *structs.JobRequest) (*structs.Job, error)
	PollOnce(ctx context.Context, job *structs.Job) (*structs.Job, error)

	Track(job *structs.Job) (<-chan *structs.Job, error)
	CancelTracking(jobID string) error

	Jobs(ctx context.Context, q *structs.Query) ([]*structs.Job, error)
	RemoteJobs(ctx context.Context, owner string) ([]*structs.RemoteJob, error)
	DataSets(ctx context.Context, pattern string) ([]string, error)
	Members(ctx context.Context, dataset string) ([]string, error)

	Healthy(ctx context.Context) error
	Close() error
}

type Server interface {
	ServeForever(api API) error
	Close() error
}
