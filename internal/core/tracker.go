package core

import (
	"context"
	"fmt"
	"time"

	"github.com/voidshard/hopper/pkg/errors"
	"github.com/voidshard/hopper/pkg/structs"
)

// tracker is one background poll loop bound to a single job id.
type tracker struct {
	cancel context.CancelFunc
	done   chan *structs.Job
}

// Track follows a job in the background until it reaches a final status,
// polling on the configured interval (stretched while status queries are
// failing). The terminal record is delivered on the returned channel, which
// is then closed; a closed channel with no record means tracking was
// cancelled.
//
// At most one tracker may exist per job id; a second Track for the same id
// is refused with ErrTracked. After CancelTracking the id is free again, so
// an abandoned job can be picked back up later.
func (c *Service) Track(job *structs.Job) (<-chan *structs.Job, error) {
	if job == nil || job.ID == "" {
		return nil, fmt.Errorf("%w a submitted job is required", errors.ErrValidation)
	}

	done := make(chan *structs.Job, 1)
	if structs.IsFinalStatus(job.Status) {
		// nothing left to watch
		done <- job
		close(done)
		return done, nil
	}

	ctx, cancel := context.WithCancel(context.Background())

	c.trklock.Lock()
	_, exists := c.trackers[job.ID]
	if exists {
		c.trklock.Unlock()
		cancel()
		return nil, fmt.Errorf("%w %s", errors.ErrTracked, job.ID)
	}
	t := &tracker{cancel: cancel, done: done}
	c.trackers[job.ID] = t
	c.trklock.Unlock()

	go c.follow(ctx, t, job)

	return done, nil
}

// CancelTracking stops the background loop for the given job id.
//
// Only our watching stops; the remote job is left to run to whatever end it
// was headed for. The job record stays as last observed.
func (c *Service) CancelTracking(jobID string) error {
	c.trklock.Lock()
	t, ok := c.trackers[jobID]
	if ok {
		delete(c.trackers, jobID)
	}
	c.trklock.Unlock()

	if !ok {
		return fmt.Errorf("%w no tracker for %s", errors.ErrNotFound, jobID)
	}
	t.cancel()
	return nil
}

func (c *Service) follow(ctx context.Context, t *tracker, job *structs.Job) {
	defer func() {
		c.trklock.Lock()
		cur, ok := c.trackers[job.ID]
		if ok && cur == t {
			delete(c.trackers, job.ID)
		}
		c.trklock.Unlock()
		close(t.done)
	}()

	timer := time.NewTimer(c.pollWait(job.QueryFailures))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		if ctx.Err() != nil {
			return
		}

		_, err := c.PollOnce(ctx, job)
		if err != nil {
			c.errs <- fmt.Errorf("poll %s: %v", job.ID, err)
		}
		if ctx.Err() != nil {
			return
		}
		if structs.IsFinalStatus(job.Status) {
			t.done <- job
			return
		}

		timer.Reset(c.pollWait(job.QueryFailures))
	}
}

// pollWait is the wait before the next poll: the base interval, doubled per
// consecutive query failure, capped at MaxPollInterval.
func (c *Service) pollWait(failures int64) time.Duration {
	wait := c.opts.PollInterval
	for i := int64(0); i < failures; i++ {
		wait *= 2
		if wait >= c.opts.MaxPollInterval {
			return c.opts.MaxPollInterval
		}
	}
	return wait
}
