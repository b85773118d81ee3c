package client

import (
	"net/url"

	"github.com/voidshard/hopper/pkg/api/http/common"
	"github.com/voidshard/hopper/pkg/structs"
)

// Client talks to a hopper server over HTTP, mirroring its routes.
type Client struct {
	url *url.URL
}

func New(address string) (*Client, error) {
	u, err := url.Parse(address)
	return &Client{url: u}, err
}

// SubmitCompileAndRun submits a compile-and-run request. With track set the
// server follows the job in the background, updating history as it goes.
func (c *Client) SubmitCompileAndRun(req *structs.JobRequest, track bool) (*structs.Job, error) {
	addr := c.addr(common.API_JOBS)
	if track {
		v := addr.Query()
		v.Set("track", "true")
		addr.RawQuery = v.Encode()
	}
	var out structs.Job
	return &out, genericPost(addr, req, &out)
}

// PollOnce advances the given job record by one status query.
func (c *Client) PollOnce(job *structs.Job) (*structs.Job, error) {
	addr := c.addr(common.API_POLL)
	var out structs.Job
	return &out, genericPatch(addr, job, &out)
}

// Track asks the server to follow the given job in the background.
func (c *Client) Track(job *structs.Job) error {
	addr := c.addr(common.API_TRACK)
	var out common.UpdateResponse
	return genericPost(addr, job, &out)
}

// CancelTracking stops the server following the given job.
func (c *Client) CancelTracking(jobID string) error {
	addr := c.addr(common.API_UNTRACK)
	var out common.UpdateResponse
	return genericPatch(addr, &common.TrackRequest{ID: jobID}, &out)
}

// Jobs queries job history.
func (c *Client) Jobs(q *structs.Query) ([]*structs.Job, error) {
	addr := c.addr(common.API_JOBS)
	setQueryString(addr, q)
	var out []*structs.Job
	return out, genericGet(addr, &out)
}

// RemoteJobs lists jobs on the remote system for the given owner.
func (c *Client) RemoteJobs(owner string) ([]*structs.RemoteJob, error) {
	addr := c.addr(common.API_REMOTE_JOBS)
	if owner != "" {
		v := addr.Query()
		v.Set("owner", owner)
		addr.RawQuery = v.Encode()
	}
	var out []*structs.RemoteJob
	return out, genericGet(addr, &out)
}

// DataSets lists remote datasets matching the given pattern.
func (c *Client) DataSets(pattern string) ([]string, error) {
	addr := c.addr(common.API_DATASETS)
	v := addr.Query()
	v.Set("pattern", pattern)
	addr.RawQuery = v.Encode()
	var out []string
	return out, genericGet(addr, &out)
}

// Members lists the members of the given remote dataset.
func (c *Client) Members(dataset string) ([]string, error) {
	addr := c.addr(common.API_MEMBERS)
	v := addr.Query()
	v.Set("dataset", dataset)
	addr.RawQuery = v.Encode()
	var out []string
	return out, genericGet(addr, &out)
}

// Healthy checks the server's connection to the remote system.
func (c *Client) Healthy() error {
	addr := c.addr(common.API_STATUS)
	var out map[string]bool
	return genericGet(addr, &out)
}

func (c *Client) addr(path string) *url.URL {
	return &url.URL{Scheme: c.url.Scheme, Host: c.url.Host, Path: path}
}
