package core

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/voidshard/hopper/pkg/errors"
	"github.com/voidshard/hopper/pkg/structs"
)

// PollOnce advances a job by at most one observation of the remote system.
//
// Jobs already in a final status are returned untouched without any remote
// call, so polling a finished job is always safe. A transient query failure
// returns the (still live) job alongside the error; callers may simply poll
// again. Once consecutive failures pass MaxQueryRetries the job is closed
// out as ERROR rather than left hanging.
func (c *Service) PollOnce(ctx context.Context, job *structs.Job) (*structs.Job, error) {
	if job == nil || job.ID == "" {
		return nil, fmt.Errorf("%w a submitted job is required", errors.ErrValidation)
	}
	if structs.IsFinalStatus(job.Status) {
		return job, nil
	}

	// the timeout window is measured from submission, and checked before
	// asking the remote system so a dead gateway can't stall it
	now := timeNow()
	if now-job.SubmittedAt >= int64(c.opts.MaxElapsed.Seconds()) {
		job.Status = structs.TIMED_OUT
		job.CompletedAt = now
		c.persist(ctx, job)
		return job, nil
	}

	status, err := c.gw.QueryJob(ctx, job.ID)
	job.PollAttempts++
	job.LastPolledAt = now
	if err != nil {
		job.QueryFailures++
		if job.QueryFailures > c.opts.MaxQueryRetries {
			job.Status = structs.ERROR
			job.CompletedAt = timeNow()
			job.Diagnostics = fmt.Sprintf("gave up after %d failed status queries, last: %v", job.QueryFailures, err)
			c.persist(ctx, job)
			return job, nil
		}
		c.persist(ctx, job)
		return job, err
	}
	job.QueryFailures = 0

	// phases only ever move forward; anything else means we're confused
	// about which job we're watching and shouldn't guess
	if status.Phase.Rank() == 0 || status.Phase.Rank() < job.Phase.Rank() {
		job.Status = structs.FAILED
		job.Outcome = structs.SYSTEM_ERROR
		job.Diagnostics = phaseViolation(job.Phase, status)
		job.CompletedAt = timeNow()
		c.persist(ctx, job)
		return job, nil
	}

	job.Phase = status.Phase
	if len(status.Steps) > 0 {
		job.Steps = status.Steps
	}

	switch status.Phase {
	case structs.PhaseInput, structs.PhaseActive:
		job.Status = structs.ACTIVE
	case structs.PhaseOutput:
		job.Status = structs.OUTPUT_READY
		c.finalize(ctx, job)
	}

	c.persist(ctx, job)
	return job, nil
}

// finalize closes out a job whose output is ready: judge the outcome from
// the step codes, attach diagnostics and settle the final status.
func (c *Service) finalize(ctx context.Context, job *structs.Job) {
	job.Outcome = c.Classify(job)
	job.Diagnostics = c.fetchDiagnostics(ctx, job)
	job.CompletedAt = timeNow()
	if job.Outcome == structs.RUN_SUCCESS {
		job.Status = structs.COMPLETED
	} else {
		job.Status = structs.FAILED
	}
}

// phaseViolation spells out what we saw; the raw report is kept verbatim
// for whoever has to work out what the remote system was thinking.
func phaseViolation(recorded structs.Phase, status *structs.JobStatus) string {
	raw, _ := json.Marshal(status)
	return fmt.Sprintf("remote system reported phase %q after %q, which should be impossible: %s", status.Phase, recorded, string(raw))
}
