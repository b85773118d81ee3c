package api

import (
	"context"
	"fmt"

	"github.com/voidshard/hopper/pkg/errors"
	"github.com/voidshard/hopper/pkg/structs"
)

// Wait follows a job until it settles, blocking the caller.
//
// The job's terminal record is returned once tracking delivers it. If the
// context ends first we stop tracking (the remote job is left running) and
// hand back the record as last observed with the context's error. If someone
// else cancels tracking for this job the wait ends with ErrInvalidState.
func Wait(ctx context.Context, api API, job *structs.Job) (*structs.Job, error) {
	ch, err := api.Track(job)
	if err != nil {
		return nil, err
	}

	select {
	case final, ok := <-ch:
		if !ok || final == nil {
			return job, fmt.Errorf("%w tracking for %s was cancelled", errors.ErrInvalidState, job.ID)
		}
		return final, nil
	case <-ctx.Done():
		api.CancelTracking(job.ID)
		return job, ctx.Err()
	}
}
