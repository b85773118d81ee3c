package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/voidshard/hopper/pkg/errors"
	"github.com/voidshard/hopper/pkg/structs"
)

// zoweCLI drives the remote system by shelling out to the Zowe client,
// one process per request, always in --rfj (json) mode.
type zoweCLI struct {
	opts *Options

	// runner is swapped out in tests
	runner func(ctx context.Context, name string, args ...string) ([]byte, []byte, error)
}

func newZoweCLI(opts *Options) (*zoweCLI, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.SetDefaults()
	return &zoweCLI{opts: opts, runner: runCommand}, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// WriteMember uploads content into dataset(member).
func (z *zoweCLI) WriteMember(ctx context.Context, dataset, member, content string) error {
	tmp, err := writeTemp("hopper-*.cbl", content)
	if err != nil {
		return fmt.Errorf("%w %v", errors.ErrTransfer, err)
	}
	defer os.Remove(tmp)

	target := fmt.Sprintf("%s(%s)", strings.ToUpper(dataset), strings.ToUpper(member))
	_, err = z.run(ctx, "zos-files", "upload", "file-to-data-set", tmp, target)
	if err != nil {
		return fmt.Errorf("%w %v", errors.ErrTransfer, err)
	}
	return nil
}

// SubmitDocument submits a job-control document, returning the new job's id.
func (z *zoweCLI) SubmitDocument(ctx context.Context, document string) (string, error) {
	tmp, err := writeTemp("hopper-*.jcl", document)
	if err != nil {
		return "", fmt.Errorf("%w %v", errors.ErrSubmission, err)
	}
	defer os.Remove(tmp)

	env, err := z.run(ctx, "zos-jobs", "submit", "local-file", tmp)
	if err != nil {
		return "", fmt.Errorf("%w %v", errors.ErrSubmission, err)
	}

	job := &rfjJob{}
	if err := json.Unmarshal(env.Data, job); err != nil {
		return "", fmt.Errorf("%w bad submit response: %v", errors.ErrSubmission, err)
	}
	if job.JobID == "" {
		return "", fmt.Errorf("%w no job id returned", errors.ErrSubmission)
	}
	return job.JobID, nil
}

// QueryJob reports a job's current phase and step completion codes.
func (z *zoweCLI) QueryJob(ctx context.Context, jobID string) (*structs.JobStatus, error) {
	env, err := z.run(ctx, "zos-jobs", "view", "job-status-by-jobid", jobID)
	if err != nil {
		return nil, fmt.Errorf("%w %v", errors.ErrQuery, err)
	}

	job := &rfjJob{}
	if err := json.Unmarshal(env.Data, job); err != nil {
		return nil, fmt.Errorf("%w bad status response: %v", errors.ErrQuery, err)
	}

	status := &structs.JobStatus{
		JobID:   job.JobID,
		JobName: job.JobName,
		Phase:   structs.ToPhase(job.Status),
	}
	if job.RetCode != nil {
		status.RetCode = *job.RetCode
	}
	for _, s := range job.StepData {
		status.Steps = append(status.Steps, structs.StepResult{
			StepName:       s.StepName,
			ProcStep:       s.ProcStepName,
			Program:        s.ProgramName,
			CompletionCode: s.Completion,
		})
	}
	return status, nil
}

// FetchOutputSegment returns spool output matching the selector.
func (z *zoweCLI) FetchOutputSegment(ctx context.Context, jobID string, sel *structs.SegmentSelector) (string, error) {
	if sel == nil {
		sel = &structs.SegmentSelector{}
	}

	env, err := z.run(ctx, "zos-jobs", "list", "spool-files-by-jobid", jobID)
	if err != nil {
		return "", fmt.Errorf("%w %v", errors.ErrFetch, err)
	}
	files := []*rfjSpoolFile{}
	if err := json.Unmarshal(env.Data, &files); err != nil {
		return "", fmt.Errorf("%w bad spool listing: %v", errors.ErrFetch, err)
	}

	parts := []string{}
	for _, f := range files {
		if !sel.Matches(&structs.SpoolFile{ID: f.ID, DDName: f.DDName, StepName: f.StepName, ProcStep: f.ProcStep}) {
			continue
		}
		env, err := z.run(ctx, "zos-jobs", "view", "spool-file-by-id", jobID, strconv.FormatInt(f.ID, 10))
		if err != nil {
			return "", fmt.Errorf("%w %v", errors.ErrFetch, err)
		}
		parts = append(parts, env.Stdout)
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("%w no spool output matched", errors.ErrFetch)
	}
	return strings.Join(parts, "\n"), nil
}

// ListJobs lists remote jobs owned by the given user.
func (z *zoweCLI) ListJobs(ctx context.Context, owner string) ([]*structs.RemoteJob, error) {
	env, err := z.run(ctx, "zos-jobs", "list", "jobs", "--owner", owner)
	if err != nil {
		return nil, fmt.Errorf("%w %v", errors.ErrQuery, err)
	}

	rows := []*rfjJob{}
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		return nil, fmt.Errorf("%w bad job listing: %v", errors.ErrQuery, err)
	}

	jobs := []*structs.RemoteJob{}
	for _, r := range rows {
		j := &structs.RemoteJob{ID: r.JobID, Name: r.JobName, Owner: r.Owner, Status: r.Status}
		if r.RetCode != nil {
			j.RetCode = *r.RetCode
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// ListDataSets lists dataset names matching a pattern.
func (z *zoweCLI) ListDataSets(ctx context.Context, pattern string) ([]string, error) {
	env, err := z.run(ctx, "zos-files", "list", "data-set", strings.ToUpper(pattern))
	if err != nil {
		return nil, fmt.Errorf("%w %v", errors.ErrQuery, err)
	}

	list := &rfjDataSetList{}
	if err := json.Unmarshal(env.Data, list); err != nil {
		return nil, fmt.Errorf("%w bad dataset listing: %v", errors.ErrQuery, err)
	}

	names := []string{}
	for _, i := range list.APIResponse.Items {
		names = append(names, i.DSName)
	}
	return names, nil
}

// ListMembers lists the members of a partitioned dataset.
func (z *zoweCLI) ListMembers(ctx context.Context, dataset string) ([]string, error) {
	env, err := z.run(ctx, "zos-files", "list", "all-members", strings.ToUpper(dataset))
	if err != nil {
		return nil, fmt.Errorf("%w %v", errors.ErrQuery, err)
	}

	list := &rfjMemberList{}
	if err := json.Unmarshal(env.Data, list); err != nil {
		return nil, fmt.Errorf("%w bad member listing: %v", errors.ErrQuery, err)
	}

	names := []string{}
	for _, i := range list.APIResponse.Items {
		names = append(names, i.Member)
	}
	return names, nil
}

// CheckConnection verifies the remote system is reachable.
func (z *zoweCLI) CheckConnection(ctx context.Context) error {
	_, err := z.run(ctx, "zosmf", "check", "status")
	if err != nil {
		return fmt.Errorf("%w %v", errors.ErrQuery, err)
	}
	return nil
}

func (z *zoweCLI) Close() error {
	return nil
}

// run invokes the client once and decodes the rfj envelope.
// The client exits non-zero AND prints an envelope on most failures, so we
// prefer whatever the envelope says over the raw exec error.
func (z *zoweCLI) run(ctx context.Context, args ...string) (*rfjEnvelope, error) {
	if z.opts.CommandTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, z.opts.CommandTimeout)
		defer cancel()
	}

	args = append(args, "--rfj")
	args = append(args, z.connArgs()...)

	stdout, stderr, err := z.runner(ctx, z.opts.Bin, args...)

	env := &rfjEnvelope{}
	if jerr := json.Unmarshal(stdout, env); jerr != nil {
		if err != nil {
			return nil, fmt.Errorf("%v: %s", err, strings.TrimSpace(string(stderr)))
		}
		return nil, fmt.Errorf("bad client response: %v", jerr)
	}

	if !env.Success {
		if env.Error != nil && env.Error.Msg != "" {
			return nil, fmt.Errorf("%s", env.Error.Msg)
		}
		if env.Stderr != "" {
			return nil, fmt.Errorf("%s", strings.TrimSpace(env.Stderr))
		}
		return nil, fmt.Errorf("client exited %d", env.ExitCode)
	}
	return env, nil
}

// connArgs turns our Options into client connection flags.
func (z *zoweCLI) connArgs() []string {
	if z.opts.Profile != "" {
		return []string{"--zosmf-profile", z.opts.Profile}
	}

	args := []string{}
	if z.opts.Host != "" {
		args = append(args, "--host", z.opts.Host)
	}
	if z.opts.Port > 0 {
		args = append(args, "--port", strconv.Itoa(z.opts.Port))
	}
	if z.opts.User != "" {
		args = append(args, "--user", z.opts.User)
	}
	if pass := os.Getenv(z.opts.PasswordEnvVar); pass != "" {
		args = append(args, "--password", pass)
	}
	if !z.opts.RejectUnauthorized {
		args = append(args, "--reject-unauthorized", "false")
	}
	return args
}

func writeTemp(pattern, content string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	_, err = f.WriteString(content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
