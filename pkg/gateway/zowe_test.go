package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/hopper/pkg/errors"
	"github.com/voidshard/hopper/pkg/structs"
)

// fakeRunner records invocations and plays back canned stdout per call.
type fakeRunner struct {
	calls [][]string
	out   [][]byte
	errs  []error
}

func (f *fakeRunner) run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	i := len(f.calls)
	f.calls = append(f.calls, append([]string{name}, args...))

	var out []byte
	if i < len(f.out) {
		out = f.out[i]
	}
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return out, nil, err
}

func envelope(t *testing.T, data interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(data)
	assert.Nil(t, err)
	b, err := json.Marshal(map[string]interface{}{
		"success":  true,
		"exitCode": 0,
		"data":     json.RawMessage(raw),
	})
	assert.Nil(t, err)
	return b
}

func newTestCLI(f *fakeRunner, opts *Options) *zoweCLI {
	z, _ := newZoweCLI(opts)
	z.runner = f.run
	return z
}

func TestQueryJob(t *testing.T) {
	retcode := "CC 0000"
	f := &fakeRunner{out: [][]byte{envelope(t, map[string]interface{}{
		"jobid":   "JOB00123",
		"jobname": "HELLO",
		"status":  "OUTPUT",
		"retcode": retcode,
		"step-data": []map[string]interface{}{
			{"step-number": 1, "step-name": "COBRUN", "proc-step-name": "COBOL", "program-name": "IGYCRCTL", "completion": "CC 0000"},
			{"step-number": 2, "step-name": "COBRUN", "proc-step-name": "LKED", "program-name": "IEWL", "completion": "CC 0000"},
			{"step-number": 3, "step-name": "RUN", "program-name": "HELLO", "completion": "CC 0000"},
		},
	})}}
	z := newTestCLI(f, nil)

	status, err := z.QueryJob(context.Background(), "JOB00123")

	assert.Nil(t, err)
	assert.Equal(t, &structs.JobStatus{
		JobID:   "JOB00123",
		JobName: "HELLO",
		Phase:   structs.PhaseOutput,
		RetCode: "CC 0000",
		Steps: []structs.StepResult{
			{StepName: "COBRUN", ProcStep: "COBOL", Program: "IGYCRCTL", CompletionCode: "CC 0000"},
			{StepName: "COBRUN", ProcStep: "LKED", Program: "IEWL", CompletionCode: "CC 0000"},
			{StepName: "RUN", Program: "HELLO", CompletionCode: "CC 0000"},
		},
	}, status)
	assert.Equal(t, []string{"zowe", "zos-jobs", "view", "job-status-by-jobid", "JOB00123"}, f.calls[0][:5])
}

func TestQueryJobActiveHasNoRetcode(t *testing.T) {
	f := &fakeRunner{out: [][]byte{envelope(t, map[string]interface{}{
		"jobid": "JOB00123", "jobname": "HELLO", "status": "ACTIVE", "retcode": nil,
	})}}
	z := newTestCLI(f, nil)

	status, err := z.QueryJob(context.Background(), "JOB00123")

	assert.Nil(t, err)
	assert.Equal(t, structs.PhaseActive, status.Phase)
	assert.Equal(t, "", status.RetCode)
	assert.Empty(t, status.Steps)
}

func TestQueryJobFailureWrapsErrQuery(t *testing.T) {
	f := &fakeRunner{
		out:  [][]byte{[]byte(`{"success": false, "exitCode": 1, "error": {"msg": "z/OSMF REST API Error"}}`)},
		errs: []error{fmt.Errorf("exit status 1")},
	}
	z := newTestCLI(f, nil)

	_, err := z.QueryJob(context.Background(), "JOB00123")

	assert.ErrorIs(t, err, errors.ErrQuery)
	assert.Contains(t, err.Error(), "z/OSMF REST API Error")
}

func TestSubmitDocument(t *testing.T) {
	f := &fakeRunner{out: [][]byte{envelope(t, map[string]interface{}{
		"jobid": "JOB04567", "jobname": "HELLO", "status": "INPUT", "retcode": nil,
	})}}
	z := newTestCLI(f, nil)

	id, err := z.SubmitDocument(context.Background(), "//HELLO JOB\n")

	assert.Nil(t, err)
	assert.Equal(t, "JOB04567", id)

	// the document must be handed over via a temp file
	assert.Equal(t, []string{"zowe", "zos-jobs", "submit", "local-file"}, f.calls[0][:4])
	// temp file is removed after the call
	_, serr := os.Stat(f.calls[0][4])
	assert.True(t, os.IsNotExist(serr))
}

func TestSubmitDocumentNetworkFailure(t *testing.T) {
	f := &fakeRunner{
		out:  [][]byte{[]byte(`{"success": false, "exitCode": 1, "stderr": "connect ECONNREFUSED"}`)},
		errs: []error{fmt.Errorf("exit status 1")},
	}
	z := newTestCLI(f, nil)

	_, err := z.SubmitDocument(context.Background(), "//HELLO JOB\n")

	assert.ErrorIs(t, err, errors.ErrSubmission)
}

func TestWriteMember(t *testing.T) {
	content := ""
	f := &fakeRunner{}
	f.out = [][]byte{envelope(t, map[string]interface{}{"commandResponse": "uploaded"})}
	z := newTestCLI(f, nil)
	// capture the temp file's content before the call removes it
	inner := f.run
	z.runner = func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
		b, _ := os.ReadFile(args[3])
		content = string(b)
		return inner(ctx, name, args...)
	}

	err := z.WriteMember(context.Background(), "user01.cbl", "hello", "       IDENTIFICATION DIVISION.")

	assert.Nil(t, err)
	assert.Equal(t, "       IDENTIFICATION DIVISION.", content)
	assert.Equal(t, []string{"zowe", "zos-files", "upload", "file-to-data-set"}, f.calls[0][:4])
	assert.Equal(t, "USER01.CBL(HELLO)", f.calls[0][5])
}

func TestWriteMemberFailureWrapsErrTransfer(t *testing.T) {
	f := &fakeRunner{
		out:  [][]byte{[]byte(`{"success": false, "exitCode": 1, "error": {"msg": "Data set not found"}}`)},
		errs: []error{fmt.Errorf("exit status 1")},
	}
	z := newTestCLI(f, nil)

	err := z.WriteMember(context.Background(), "user01.cbl", "hello", "x")

	assert.ErrorIs(t, err, errors.ErrTransfer)
}

func TestFetchOutputSegment(t *testing.T) {
	spool := []map[string]interface{}{
		{"id": 2, "ddname": "JESMSGLG", "stepname": "JES2"},
		{"id": 101, "ddname": "SYSPRINT", "stepname": "COBRUN", "procstep": "COBOL"},
		{"id": 104, "ddname": "SYSOUT", "stepname": "RUN"},
	}

	cases := []struct {
		Name     string
		Selector *structs.SegmentSelector
		Views    map[string]string // spool id -> content
		Expect   string
		Calls    int
	}{
		{
			Name:     "ByDDNameAndStep",
			Selector: &structs.SegmentSelector{StepName: "RUN", DDName: "SYSOUT"},
			Views:    map[string]string{"104": "HELLO, WORLD"},
			Expect:   "HELLO, WORLD",
			Calls:    2,
		},
		{
			Name:     "ByProcStep",
			Selector: &structs.SegmentSelector{ProcStep: "COBOL", DDName: "SYSPRINT"},
			Views:    map[string]string{"101": "IGYDS1089-S ..."},
			Expect:   "IGYDS1089-S ...",
			Calls:    2,
		},
		{
			Name:     "MatchAll",
			Selector: nil,
			Views:    map[string]string{"2": "A", "101": "B", "104": "C"},
			Expect:   "A\nB\nC",
			Calls:    4,
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			f := &fakeRunner{}
			z := newTestCLI(f, nil)
			z.runner = func(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
				f.calls = append(f.calls, append([]string{name}, args...))
				if args[1] == "list" {
					return envelope(t, spool), nil, nil
				}
				body, _ := json.Marshal(map[string]interface{}{
					"success": true, "exitCode": 0, "stdout": c.Views[args[4]],
				})
				return body, nil, nil
			}

			text, err := z.FetchOutputSegment(context.Background(), "JOB00123", c.Selector)

			assert.Nil(t, err)
			assert.Equal(t, c.Expect, text)
			assert.Equal(t, c.Calls, len(f.calls))
		})
	}
}

func TestFetchOutputSegmentNoMatch(t *testing.T) {
	f := &fakeRunner{out: [][]byte{envelope(t, []map[string]interface{}{})}}
	z := newTestCLI(f, nil)

	_, err := z.FetchOutputSegment(context.Background(), "JOB00123", &structs.SegmentSelector{DDName: "NOPE"})

	assert.ErrorIs(t, err, errors.ErrFetch)
}

func TestListDataSets(t *testing.T) {
	f := &fakeRunner{out: [][]byte{envelope(t, map[string]interface{}{
		"apiResponse": map[string]interface{}{
			"items": []map[string]string{{"dsname": "USER01.CBL"}, {"dsname": "USER01.LOAD"}},
		},
	})}}
	z := newTestCLI(f, nil)

	names, err := z.ListDataSets(context.Background(), "user01.*")

	assert.Nil(t, err)
	assert.Equal(t, []string{"USER01.CBL", "USER01.LOAD"}, names)
	assert.Equal(t, "USER01.*", f.calls[0][4])
}

func TestConnArgs(t *testing.T) {
	cases := []struct {
		Name   string
		Opts   *Options
		Env    map[string]string
		Expect []string
	}{
		{
			Name:   "Profile",
			Opts:   &Options{Profile: "sandbox"},
			Expect: []string{"--zosmf-profile", "sandbox"},
		},
		{
			Name: "HostPortUser",
			Opts: &Options{Host: "mf.example.com", Port: 10443, User: "USER01", PasswordEnvVar: "TEST_GW_PASS", RejectUnauthorized: true},
			Env:  map[string]string{"TEST_GW_PASS": "hunter2"},
			Expect: []string{
				"--host", "mf.example.com", "--port", "10443",
				"--user", "USER01", "--password", "hunter2",
			},
		},
		{
			Name:   "SelfSignedCert",
			Opts:   &Options{Host: "mf.example.com", PasswordEnvVar: "TEST_GW_NOPASS"},
			Expect: []string{"--host", "mf.example.com", "--reject-unauthorized", "false"},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			for k, v := range c.Env {
				t.Setenv(k, v)
			}
			z, err := newZoweCLI(c.Opts)
			assert.Nil(t, err)
			assert.Equal(t, c.Expect, z.connArgs())
		})
	}
}
