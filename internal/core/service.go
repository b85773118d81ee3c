package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/voidshard/hopper/internal/utils"
	"github.com/voidshard/hopper/pkg/cache"
	"github.com/voidshard/hopper/pkg/database"
	"github.com/voidshard/hopper/pkg/errors"
	"github.com/voidshard/hopper/pkg/gateway"
	"github.com/voidshard/hopper/pkg/jcl"
	"github.com/voidshard/hopper/pkg/structs"
)

const (
	// defaults
	defPollInterval    = 3 * time.Second
	defMaxPollInterval = 30 * time.Second
	defMaxElapsed      = 20 * time.Minute
	defMaxQueryRetries = 5
)

// timeNow is swapped out in tests
var timeNow = func() int64 { return time.Now().Unix() }

// Service drives the compile-and-run pipeline end to end: render, upload,
// submit, poll, classify, fetch diagnostics.
//
// The gateway is required. Database (history) and cache (listings) are
// optional; a nil for either simply disables that feature.
type Service struct {
	gw    gateway.Gateway
	db    database.Database
	cache cache.Cache
	rnd   *jcl.Renderer
	opts  *structs.Options

	errs chan error

	trklock  sync.Mutex
	trackers map[string]*tracker
}

func NewService(gw gateway.Gateway, db database.Database, ca cache.Cache, rnd *jcl.Renderer, opts *structs.Options) (*Service, error) {
	if gw == nil {
		return nil, fmt.Errorf("%w a gateway is required", errors.ErrValidation)
	}
	if rnd == nil {
		var err error
		rnd, err = jcl.New(nil)
		if err != nil {
			return nil, err
		}
	}
	if opts == nil {
		opts = &structs.Options{}
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defPollInterval
	}
	if opts.MaxPollInterval < opts.PollInterval {
		opts.MaxPollInterval = defMaxPollInterval
	}
	if opts.MaxElapsed <= 0 {
		opts.MaxElapsed = defMaxElapsed
	}
	if opts.MaxQueryRetries <= 0 {
		opts.MaxQueryRetries = defMaxQueryRetries
	}
	if opts.Selectors == nil {
		opts.Selectors = structs.DefaultSelectors()
	}

	me := &Service{
		gw:       gw,
		db:       db,
		cache:    ca,
		rnd:      rnd,
		opts:     opts,
		errs:     make(chan error),
		trackers: map[string]*tracker{},
	}

	// History and cache writes are best effort; failures land here rather
	// than interrupting the pipeline.
	go func() {
		for err := range me.errs {
			if err != nil {
				log.Println("[Service]", err)
			}
		}
	}()

	return me, nil
}

// Close stops all trackers and releases our handles.
// Remote jobs that are still running are left running.
func (c *Service) Close() error {
	c.trklock.Lock()
	for id, t := range c.trackers {
		t.cancel()
		delete(c.trackers, id)
	}
	c.trklock.Unlock()

	if c.cache != nil {
		c.cache.Close()
	}
	if c.db != nil {
		c.db.Close()
	}
	return c.gw.Close()
}

// SubmitCompileAndRun uploads the program source, renders a compile-and-run
// job document around it and submits that to the remote system.
//
// On success the returned Job is SUBMITTED and carries the remote system's
// job id. On any failure nothing is tracked and the error says which stage
// refused: validation, rendering, transfer or submission. There are no
// retries here; a failed submission may simply be submitted again.
func (c *Service) SubmitCompileAndRun(ctx context.Context, req *structs.JobRequest) (*structs.Job, error) {
	// validate input
	req, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	// render the job document up front; an incomplete template shouldn't
	// cost us an upload
	doc, err := c.rnd.RenderCompileRun(req)
	if err != nil {
		return nil, err
	}

	// write the source member
	err = c.gw.WriteMember(ctx, req.Qualifier, req.Member, req.Source)
	if err != nil {
		return nil, err
	}

	// submit
	id, err := c.gw.SubmitDocument(ctx, doc)
	if err != nil {
		return nil, err
	}

	job := &structs.Job{
		JobRequest:  *req,
		ID:          id,
		Status:      structs.SUBMITTED,
		ETag:        utils.NewRandomID(),
		SubmittedAt: timeNow(),
	}

	// history is write aside; the caller gets their job either way
	if c.db != nil {
		err = c.db.InsertJob(ctx, job)
		if err != nil {
			c.errs <- fmt.Errorf("failed to insert history for %s: %v", job.ID, err)
		}
	}

	return job, nil
}

// Jobs returns history rows for previously submitted jobs.
func (c *Service) Jobs(ctx context.Context, q *structs.Query) ([]*structs.Job, error) {
	if c.db == nil {
		return []*structs.Job{}, nil
	}
	if q == nil {
		q = &structs.Query{}
	}
	q.Sanitize()
	return c.db.Jobs(ctx, q)
}

// RemoteJobs lists jobs on the remote system for the given owner.
func (c *Service) RemoteJobs(ctx context.Context, owner string) ([]*structs.RemoteJob, error) {
	return c.gw.ListJobs(ctx, owner)
}

// DataSets lists remote dataset names matching the given pattern.
func (c *Service) DataSets(ctx context.Context, pattern string) ([]string, error) {
	return c.cachedList(ctx, "datasets:"+strings.ToUpper(pattern), func() ([]string, error) {
		return c.gw.ListDataSets(ctx, pattern)
	})
}

// Members lists the members of the given remote dataset.
func (c *Service) Members(ctx context.Context, dataset string) ([]string, error) {
	return c.cachedList(ctx, "members:"+strings.ToUpper(dataset), func() ([]string, error) {
		return c.gw.ListMembers(ctx, dataset)
	})
}

// cachedList reads a listing through the cache, if we have one.
// Cache trouble is logged and the remote system asked as if there were no cache.
func (c *Service) cachedList(ctx context.Context, key string, fetch func() ([]string, error)) ([]string, error) {
	if c.cache != nil {
		raw, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			c.errs <- fmt.Errorf("cache get %s: %v", key, err)
		} else if ok {
			names := []string{}
			err = json.Unmarshal([]byte(raw), &names)
			if err == nil {
				return names, nil
			}
			c.errs <- fmt.Errorf("cache held junk for %s: %v", key, err)
		}
	}

	names, err := fetch()
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		raw, err := json.Marshal(names)
		if err == nil {
			err = c.cache.Set(ctx, key, string(raw))
		}
		if err != nil {
			c.errs <- fmt.Errorf("cache set %s: %v", key, err)
		}
	}

	return names, nil
}

// Healthy reports whether the remote system is reachable.
func (c *Service) Healthy(ctx context.Context) error {
	return c.gw.CheckConnection(ctx)
}

// persist writes the job's current state to history, rotating its etag.
// Best effort: failures are logged, never surfaced to the pipeline.
func (c *Service) persist(ctx context.Context, job *structs.Job) {
	if c.db == nil {
		return
	}
	newTag := utils.NewRandomID()
	n, err := c.db.UpdateJob(ctx, job, newTag)
	if err != nil {
		c.errs <- fmt.Errorf("failed to update history for %s: %v", job.ID, err)
		return
	}
	if n == 0 {
		c.errs <- fmt.Errorf("%w history row for %s not updated", errors.ErrETagMismatch, job.ID)
		return
	}
	job.ETag = newTag
}
