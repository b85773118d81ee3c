package gateway

import (
	"context"

	"github.com/voidshard/hopper/pkg/structs"
)

// Gateway is the remote system boundary: everything the pipeline needs from
// the other side, and nothing else.
//
// Implementations carry explicit connection settings handed over at
// construction. The pipeline never reads credentials or session state from
// the ambient process.
type Gateway interface {
	// WriteMember uploads content into dataset(member) on the remote system.
	WriteMember(ctx context.Context, dataset, member, content string) error

	// SubmitDocument submits a job-control document, returning the remote
	// system's id for the new job.
	SubmitDocument(ctx context.Context, document string) (string, error)

	// QueryJob reports a job's current phase and any step completion codes.
	QueryJob(ctx context.Context, jobID string) (*structs.JobStatus, error)

	// FetchOutputSegment returns the text of spool output matching the
	// selector, joined in spool order.
	FetchOutputSegment(ctx context.Context, jobID string, sel *structs.SegmentSelector) (string, error)

	// ListJobs lists remote jobs owned by the given user.
	ListJobs(ctx context.Context, owner string) ([]*structs.RemoteJob, error)

	// ListDataSets lists dataset names matching a pattern (ie. "USER01.*").
	ListDataSets(ctx context.Context, pattern string) ([]string, error)

	// ListMembers lists the members of a partitioned dataset.
	ListMembers(ctx context.Context, dataset string) ([]string, error)

	// CheckConnection verifies the remote system is reachable and sane.
	CheckConnection(ctx context.Context) error

	Close() error
}

// New returns a Gateway that drives the remote system via the Zowe CLI.
func New(opts *Options) (Gateway, error) {
	return newZoweCLI(opts)
}
