package core

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/voidshard/hopper/internal/mocks/pkg/cache_mock"
	"github.com/voidshard/hopper/internal/mocks/pkg/database_mock"
	"github.com/voidshard/hopper/internal/mocks/pkg/gateway_mock"
	"github.com/voidshard/hopper/internal/utils"
	"github.com/voidshard/hopper/pkg/cache"
	"github.com/voidshard/hopper/pkg/database"
	"github.com/voidshard/hopper/pkg/errors"
	"github.com/voidshard/hopper/pkg/gateway"
	"github.com/voidshard/hopper/pkg/jcl"
	"github.com/voidshard/hopper/pkg/structs"
)

func init() {
	timeNow = func() int64 { return 1000000 }
}

func testOptions() *structs.Options {
	return &structs.Options{
		PollInterval:      time.Millisecond,
		MaxPollInterval:   4 * time.Millisecond,
		MaxElapsed:        10 * time.Minute,
		MaxQueryRetries:   2,
		SeverityThreshold: 4,
	}
}

func testService(t *testing.T, gw gateway.Gateway, db database.Database, ca cache.Cache) *Service {
	svc, err := NewService(gw, db, ca, nil, testOptions())
	assert.Nil(t, err)
	return svc
}

func testRequest() *structs.JobRequest {
	return &structs.JobRequest{
		ProgramID:     "hello",
		Source:        "IDENTIFICATION DIVISION.\n PROGRAM-ID. HELLO.\n",
		Qualifier:     "user01.cbl",
		LoadQualifier: "user01.load",
	}
}

func TestNewServiceRequiresGateway(t *testing.T) {
	svc, err := NewService(nil, nil, nil, nil, nil)

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, errors.ErrValidation)
}

func TestClose(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	ca := cache_mock.NewMockCache(gomock.NewController(t))
	svc := testService(t, gw, db, ca)

	gw.EXPECT().Close().Return(nil)
	db.EXPECT().Close().Return(nil)
	ca.EXPECT().Close().Return(nil)

	err := svc.Close()

	assert.Nil(t, err)
}

func TestSubmitCompileAndRun(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	svc := testService(t, gw, db, nil)
	req := testRequest()

	var doc string
	var inserted *structs.Job
	gomock.InOrder(
		gw.EXPECT().WriteMember(gomock.Any(), "USER01.CBL", "HELLO", req.Source).Return(nil),
		gw.EXPECT().SubmitDocument(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, d string) (string, error) {
				doc = d
				return "JOB01234", nil
			},
		),
		db.EXPECT().InsertJob(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, j *structs.Job) error {
				inserted = j
				return nil
			},
		),
	)

	job, err := svc.SubmitCompileAndRun(context.Background(), req)

	assert.Nil(t, err)
	assert.Equal(t, "JOB01234", job.ID)
	assert.Equal(t, structs.SUBMITTED, job.Status)
	assert.Equal(t, "HELLO", job.ProgramID)
	assert.Equal(t, "HELLO", job.Member)
	assert.Equal(t, "HELLO", job.JobName)
	assert.Equal(t, int64(1000000), job.SubmittedAt)
	assert.True(t, utils.IsValidID(job.ETag))
	assert.Equal(t, job, inserted)

	// the submitted document is the rendered compile-and-run job
	assert.Contains(t, doc, "//HELLO")
	assert.Contains(t, doc, "EXEC IGYWCL")
	assert.Contains(t, doc, "USER01.CBL(HELLO)")
	assert.Contains(t, doc, "USER01.LOAD(HELLO)")

	// the caller's request is not modified
	assert.Equal(t, "hello", req.ProgramID)
}

func TestSubmitCompileAndRunValidation(t *testing.T) {
	cases := []struct {
		Name  string
		Break func(r *structs.JobRequest)
	}{
		{Name: "NoProgramID", Break: func(r *structs.JobRequest) { r.ProgramID = "" }},
		{Name: "ProgramIDStartsWithDigit", Break: func(r *structs.JobRequest) { r.ProgramID = "9LIVES" }},
		{Name: "ProgramIDTooLong", Break: func(r *structs.JobRequest) { r.ProgramID = "TOOLONGNAME" }},
		{Name: "NoSource", Break: func(r *structs.JobRequest) { r.Source = "  \n " }},
		{Name: "BadQualifier", Break: func(r *structs.JobRequest) { r.Qualifier = "USER01..CBL" }},
		{Name: "NoLoadQualifier", Break: func(r *structs.JobRequest) { r.LoadQualifier = "" }},
		{Name: "BadMember", Break: func(r *structs.JobRequest) { r.Member = "BAD NAME" }},
		{Name: "BadJobName", Break: func(r *structs.JobRequest) { r.JobName = "VERYLONGJOB" }},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			// no gateway expectations: nothing may be uploaded or submitted
			gw := gateway_mock.NewMockGateway(gomock.NewController(t))
			svc := testService(t, gw, nil, nil)
			req := testRequest()
			c.Break(req)

			job, err := svc.SubmitCompileAndRun(context.Background(), req)

			assert.Nil(t, job)
			assert.ErrorIs(t, err, errors.ErrValidation)
		})
	}
}

func TestSubmitCompileAndRunRenderFailure(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	rnd, err := jcl.New(&jcl.Options{Template: "//{{.JobName}} JOB\n//X EXEC PGM={{.NoSuchVar}}\n"})
	assert.Nil(t, err)
	svc, err := NewService(gw, nil, nil, rnd, testOptions())
	assert.Nil(t, err)

	job, err := svc.SubmitCompileAndRun(context.Background(), testRequest())

	assert.Nil(t, job)
	assert.ErrorIs(t, err, errors.ErrRender)
}

func TestSubmitCompileAndRunTransferFailure(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	svc := testService(t, gw, nil, nil)

	gw.EXPECT().WriteMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(
		fmt.Errorf("%w connection refused", errors.ErrTransfer),
	)

	job, err := svc.SubmitCompileAndRun(context.Background(), testRequest())

	assert.Nil(t, job)
	assert.ErrorIs(t, err, errors.ErrTransfer)
}

func TestSubmitCompileAndRunSubmissionFailure(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	svc := testService(t, gw, db, nil)

	// upload succeeds, submission is refused: no job and no history row
	gomock.InOrder(
		gw.EXPECT().WriteMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		gw.EXPECT().SubmitDocument(gomock.Any(), gomock.Any()).Return(
			"", fmt.Errorf("%w remote rejected document", errors.ErrSubmission),
		),
	)

	job, err := svc.SubmitCompileAndRun(context.Background(), testRequest())

	assert.Nil(t, job)
	assert.ErrorIs(t, err, errors.ErrSubmission)
}

func TestSubmitCompileAndRunHistoryFailureIsNotFatal(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	svc := testService(t, gw, db, nil)

	gw.EXPECT().WriteMember(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().SubmitDocument(gomock.Any(), gomock.Any()).Return("JOB01234", nil)
	db.EXPECT().InsertJob(gomock.Any(), gomock.Any()).Return(fmt.Errorf("db down"))

	job, err := svc.SubmitCompileAndRun(context.Background(), testRequest())

	assert.Nil(t, err)
	assert.Equal(t, "JOB01234", job.ID)
	assert.Equal(t, structs.SUBMITTED, job.Status)
}

func submittedJob() *structs.Job {
	return &structs.Job{
		JobRequest: structs.JobRequest{
			ProgramID:     "HELLO",
			Qualifier:     "USER01.CBL",
			Member:        "HELLO",
			LoadQualifier: "USER01.LOAD",
			JobName:       "HELLO",
		},
		ID:          "JOB01234",
		Status:      structs.SUBMITTED,
		ETag:        utils.NewRandomID(),
		SubmittedAt: 1000000,
	}
}

func cleanSteps() []structs.StepResult {
	return []structs.StepResult{
		{StepName: "COBRUN", ProcStep: "COBOL", Program: "IGYCRCTL", CompletionCode: "CC 0000"},
		{StepName: "COBRUN", ProcStep: "LKED", Program: "IEWL", CompletionCode: "CC 0000"},
		{StepName: "RUN", Program: "HELLO", CompletionCode: "CC 0000"},
	}
}

func TestPollOnceFinalStatusIsIdempotent(t *testing.T) {
	cases := []struct {
		Name   string
		Status structs.Status
	}{
		{Name: "Completed", Status: structs.COMPLETED},
		{Name: "Failed", Status: structs.FAILED},
		{Name: "TimedOut", Status: structs.TIMED_OUT},
		{Name: "Error", Status: structs.ERROR},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			// no expectations: a finished job never touches the remote system
			gw := gateway_mock.NewMockGateway(gomock.NewController(t))
			svc := testService(t, gw, nil, nil)
			job := submittedJob()
			job.Status = c.Status
			job.PollAttempts = 5

			out, err := svc.PollOnce(context.Background(), job)

			assert.Nil(t, err)
			assert.Equal(t, job, out)
			assert.Equal(t, int64(5), out.PollAttempts)
		})
	}
}

func TestPollOnceRecordsActivePhases(t *testing.T) {
	cases := []struct {
		Name  string
		Phase structs.Phase
	}{
		{Name: "Input", Phase: structs.PhaseInput},
		{Name: "Active", Phase: structs.PhaseActive},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			gw := gateway_mock.NewMockGateway(gomock.NewController(t))
			svc := testService(t, gw, nil, nil)
			job := submittedJob()

			gw.EXPECT().QueryJob(gomock.Any(), "JOB01234").Return(&structs.JobStatus{
				JobID: "JOB01234", Phase: c.Phase,
			}, nil)

			out, err := svc.PollOnce(context.Background(), job)

			assert.Nil(t, err)
			assert.Equal(t, structs.ACTIVE, out.Status)
			assert.Equal(t, c.Phase, out.Phase)
			assert.Equal(t, int64(1), out.PollAttempts)
			assert.Equal(t, int64(1000000), out.LastPolledAt)
			assert.Equal(t, structs.Outcome(""), out.Outcome)
		})
	}
}

func TestPollOnceCompletesCleanRun(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	svc := testService(t, gw, nil, nil)
	job := submittedJob()

	gw.EXPECT().QueryJob(gomock.Any(), "JOB01234").Return(&structs.JobStatus{
		JobID: "JOB01234", Phase: structs.PhaseOutput, RetCode: "CC 0000", Steps: cleanSteps(),
	}, nil)
	gw.EXPECT().FetchOutputSegment(gomock.Any(), "JOB01234", svc.opts.Selectors[structs.RUN_SUCCESS]).Return(
		"HELLO, WORLD!", nil,
	)

	out, err := svc.PollOnce(context.Background(), job)

	assert.Nil(t, err)
	assert.Equal(t, structs.COMPLETED, out.Status)
	assert.Equal(t, structs.RUN_SUCCESS, out.Outcome)
	assert.Equal(t, "HELLO, WORLD!", out.Diagnostics)
	assert.Equal(t, structs.PhaseOutput, out.Phase)
	assert.Equal(t, int64(1000000), out.CompletedAt)
	assert.Len(t, out.Steps, 3)
}

func TestPollOnceCompileErrorStopsAtFirstMatch(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	svc := testService(t, gw, nil, nil)
	job := submittedJob()

	// severe compile; link and run never got a chance
	gw.EXPECT().QueryJob(gomock.Any(), "JOB01234").Return(&structs.JobStatus{
		JobID: "JOB01234", Phase: structs.PhaseOutput, RetCode: "CC 0008",
		Steps: []structs.StepResult{
			{StepName: "COBRUN", ProcStep: "COBOL", Program: "IGYCRCTL", CompletionCode: "CC 0008"},
		},
	}, nil)
	gw.EXPECT().FetchOutputSegment(gomock.Any(), "JOB01234", svc.opts.Selectors[structs.COMPILE_ERROR]).Return(
		"IGYPS2121-S \"FOO\" WAS NOT DEFINED", nil,
	)

	out, err := svc.PollOnce(context.Background(), job)

	assert.Nil(t, err)
	assert.Equal(t, structs.FAILED, out.Status)
	assert.Equal(t, structs.COMPILE_ERROR, out.Outcome)
	assert.Contains(t, out.Diagnostics, "IGYPS2121-S")
}

func TestPollOnceNoStepsIsJCLError(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	svc := testService(t, gw, nil, nil)
	job := submittedJob()

	gw.EXPECT().QueryJob(gomock.Any(), "JOB01234").Return(&structs.JobStatus{
		JobID: "JOB01234", Phase: structs.PhaseOutput, RetCode: "JCL ERROR",
	}, nil)
	gw.EXPECT().FetchOutputSegment(gomock.Any(), "JOB01234", svc.opts.Selectors[structs.JCL_ERROR]).Return(
		"IEFC452I HELLO - JOB NOT RUN - JCL ERROR", nil,
	)

	out, err := svc.PollOnce(context.Background(), job)

	assert.Nil(t, err)
	assert.Equal(t, structs.FAILED, out.Status)
	assert.Equal(t, structs.JCL_ERROR, out.Outcome)
}

func TestPollOnceDiagnosticsFailureDegrades(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	svc := testService(t, gw, nil, nil)
	job := submittedJob()

	gw.EXPECT().QueryJob(gomock.Any(), "JOB01234").Return(&structs.JobStatus{
		JobID: "JOB01234", Phase: structs.PhaseOutput, RetCode: "ABEND S0C7",
		Steps: []structs.StepResult{
			{StepName: "COBRUN", ProcStep: "COBOL", CompletionCode: "CC 0000"},
			{StepName: "COBRUN", ProcStep: "LKED", CompletionCode: "CC 0000"},
			{StepName: "RUN", Program: "HELLO", CompletionCode: "ABEND S0C7"},
		},
	}, nil)
	gw.EXPECT().FetchOutputSegment(gomock.Any(), "JOB01234", gomock.Any()).Return(
		"", fmt.Errorf("%w spool gone", errors.ErrFetch),
	)

	out, err := svc.PollOnce(context.Background(), job)

	// losing the spool never changes what we concluded
	assert.Nil(t, err)
	assert.Equal(t, structs.FAILED, out.Status)
	assert.Equal(t, structs.RUN_ABEND, out.Outcome)
	assert.Equal(t, "diagnostics unavailable", out.Diagnostics)
}

func TestPollOnceTimesOutAtWindow(t *testing.T) {
	// no expectations: the window is checked before the remote system is asked
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	svc := testService(t, gw, nil, nil)
	job := submittedJob()
	job.SubmittedAt = 1000000 - int64(svc.opts.MaxElapsed.Seconds())

	out, err := svc.PollOnce(context.Background(), job)

	assert.Nil(t, err)
	assert.Equal(t, structs.TIMED_OUT, out.Status)
	assert.Equal(t, structs.Outcome(""), out.Outcome)
	assert.Equal(t, int64(1000000), out.CompletedAt)
}

func TestPollOnceDoesNotTimeOutEarly(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	svc := testService(t, gw, nil, nil)
	job := submittedJob()
	job.SubmittedAt = 1000000 - int64(svc.opts.MaxElapsed.Seconds()) + 1

	gw.EXPECT().QueryJob(gomock.Any(), "JOB01234").Return(&structs.JobStatus{
		JobID: "JOB01234", Phase: structs.PhaseActive,
	}, nil)

	out, err := svc.PollOnce(context.Background(), job)

	assert.Nil(t, err)
	assert.Equal(t, structs.ACTIVE, out.Status)
}

func TestPollOnceQueryFailuresAreBounded(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	svc := testService(t, gw, nil, nil) // MaxQueryRetries: 2
	job := submittedJob()

	gw.EXPECT().QueryJob(gomock.Any(), "JOB01234").Return(
		nil, fmt.Errorf("%w connection reset", errors.ErrQuery),
	).Times(3)

	// transient failures surface the error but leave the job live
	for i := int64(1); i <= 2; i++ {
		out, err := svc.PollOnce(context.Background(), job)
		assert.ErrorIs(t, err, errors.ErrQuery)
		assert.Equal(t, structs.SUBMITTED, out.Status)
		assert.Equal(t, i, out.QueryFailures)
		assert.Equal(t, i, out.PollAttempts)
	}

	// past the bound we stop pretending we can still watch this job
	out, err := svc.PollOnce(context.Background(), job)
	assert.Nil(t, err)
	assert.Equal(t, structs.ERROR, out.Status)
	assert.Equal(t, structs.Outcome(""), out.Outcome)
	assert.Contains(t, out.Diagnostics, "failed status queries")
}

func TestPollOnceSuccessResetsQueryFailures(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	svc := testService(t, gw, nil, nil)
	job := submittedJob()
	job.QueryFailures = 2

	gw.EXPECT().QueryJob(gomock.Any(), "JOB01234").Return(&structs.JobStatus{
		JobID: "JOB01234", Phase: structs.PhaseActive,
	}, nil)

	out, err := svc.PollOnce(context.Background(), job)

	assert.Nil(t, err)
	assert.Equal(t, int64(0), out.QueryFailures)
}

func TestPollOncePhaseRegressionIsSystemError(t *testing.T) {
	cases := []struct {
		Name     string
		Recorded structs.Phase
		Reported structs.Phase
	}{
		{Name: "OutputBackToActive", Recorded: structs.PhaseOutput, Reported: structs.PhaseActive},
		{Name: "ActiveBackToInput", Recorded: structs.PhaseActive, Reported: structs.PhaseInput},
		{Name: "UnknownPhase", Recorded: structs.PhaseActive, Reported: structs.Phase("DELIRIOUS")},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			gw := gateway_mock.NewMockGateway(gomock.NewController(t))
			svc := testService(t, gw, nil, nil)
			job := submittedJob()
			job.Status = structs.ACTIVE
			job.Phase = c.Recorded

			gw.EXPECT().QueryJob(gomock.Any(), "JOB01234").Return(&structs.JobStatus{
				JobID: "JOB01234", Phase: c.Reported,
			}, nil)

			out, err := svc.PollOnce(context.Background(), job)

			assert.Nil(t, err)
			assert.Equal(t, structs.FAILED, out.Status)
			assert.Equal(t, structs.SYSTEM_ERROR, out.Outcome)
			assert.Contains(t, out.Diagnostics, string(c.Reported))
		})
	}
}

func TestPollOnceRotatesETag(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	svc := testService(t, gw, db, nil)
	job := submittedJob()
	oldTag := job.ETag

	gw.EXPECT().QueryJob(gomock.Any(), "JOB01234").Return(&structs.JobStatus{
		JobID: "JOB01234", Phase: structs.PhaseActive,
	}, nil)
	db.EXPECT().UpdateJob(gomock.Any(), job, gomock.Any()).DoAndReturn(
		func(ctx context.Context, j *structs.Job, newTag string) (int64, error) {
			assert.Equal(t, oldTag, j.ETag)
			assert.NotEqual(t, oldTag, newTag)
			return 1, nil
		},
	)

	out, err := svc.PollOnce(context.Background(), job)

	assert.Nil(t, err)
	assert.NotEqual(t, oldTag, out.ETag)
	assert.True(t, utils.IsValidID(out.ETag))
}

func TestPollOnceETagMismatchKeepsTag(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	svc := testService(t, gw, db, nil)
	job := submittedJob()
	oldTag := job.ETag

	gw.EXPECT().QueryJob(gomock.Any(), "JOB01234").Return(&structs.JobStatus{
		JobID: "JOB01234", Phase: structs.PhaseActive,
	}, nil)
	db.EXPECT().UpdateJob(gomock.Any(), job, gomock.Any()).Return(int64(0), nil)

	out, err := svc.PollOnce(context.Background(), job)

	assert.Nil(t, err)
	assert.Equal(t, oldTag, out.ETag)
}

func TestJobsWithoutDatabase(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	svc := testService(t, gw, nil, nil)

	jobs, err := svc.Jobs(context.Background(), nil)

	assert.Nil(t, err)
	assert.Equal(t, []*structs.Job{}, jobs)
}

func TestJobsSanitizesQuery(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	db := database_mock.NewMockDatabase(gomock.NewController(t))
	svc := testService(t, gw, db, nil)
	expect := []*structs.Job{submittedJob()}

	db.EXPECT().Jobs(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, q *structs.Query) ([]*structs.Job, error) {
			assert.Greater(t, q.Limit, 0)
			return expect, nil
		},
	)

	jobs, err := svc.Jobs(context.Background(), &structs.Query{Limit: -10})

	assert.Nil(t, err)
	assert.Equal(t, expect, jobs)
}

func TestRemoteJobs(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	svc := testService(t, gw, nil, nil)
	expect := []*structs.RemoteJob{{ID: "JOB01234", Name: "HELLO", Status: "OUTPUT"}}

	gw.EXPECT().ListJobs(gomock.Any(), "USER01").Return(expect, nil)

	jobs, err := svc.RemoteJobs(context.Background(), "USER01")

	assert.Nil(t, err)
	assert.Equal(t, expect, jobs)
}

func TestDataSetsCacheHit(t *testing.T) {
	// gateway has no expectations: a warm cache answers alone
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	ca := cache_mock.NewMockCache(gomock.NewController(t))
	svc := testService(t, gw, nil, ca)

	ca.EXPECT().Get(gomock.Any(), "datasets:USER01.*").Return(`["USER01.CBL","USER01.LOAD"]`, true, nil)

	names, err := svc.DataSets(context.Background(), "user01.*")

	assert.Nil(t, err)
	assert.Equal(t, []string{"USER01.CBL", "USER01.LOAD"}, names)
}

func TestDataSetsCacheMiss(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	ca := cache_mock.NewMockCache(gomock.NewController(t))
	svc := testService(t, gw, nil, ca)

	ca.EXPECT().Get(gomock.Any(), "datasets:USER01.*").Return("", false, nil)
	gw.EXPECT().ListDataSets(gomock.Any(), "user01.*").Return([]string{"USER01.CBL"}, nil)
	ca.EXPECT().Set(gomock.Any(), "datasets:USER01.*", `["USER01.CBL"]`).Return(nil)

	names, err := svc.DataSets(context.Background(), "user01.*")

	assert.Nil(t, err)
	assert.Equal(t, []string{"USER01.CBL"}, names)
}

func TestMembersCacheTroubleFallsThrough(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	ca := cache_mock.NewMockCache(gomock.NewController(t))
	svc := testService(t, gw, nil, ca)

	ca.EXPECT().Get(gomock.Any(), "members:USER01.CBL").Return("", false, fmt.Errorf("redis down"))
	gw.EXPECT().ListMembers(gomock.Any(), "USER01.CBL").Return([]string{"HELLO", "PAYROLL"}, nil)
	ca.EXPECT().Set(gomock.Any(), "members:USER01.CBL", gomock.Any()).Return(fmt.Errorf("redis down"))

	names, err := svc.Members(context.Background(), "USER01.CBL")

	assert.Nil(t, err)
	assert.Equal(t, []string{"HELLO", "PAYROLL"}, names)
}

func TestHealthy(t *testing.T) {
	gw := gateway_mock.NewMockGateway(gomock.NewController(t))
	svc := testService(t, gw, nil, nil)

	gw.EXPECT().CheckConnection(gomock.Any()).Return(nil)

	assert.Nil(t, svc.Healthy(context.Background()))
}

func TestNormalizeRequestTrimsAndUppercases(t *testing.T) {
	req, err := normalizeRequest(&structs.JobRequest{
		ProgramID:     " payroll ",
		Source:        "some source",
		Qualifier:     "user01.cbl",
		Member:        "pay01",
		LoadQualifier: "user01.load",
		JobName:       "payjob",
	})

	assert.Nil(t, err)
	assert.Equal(t, "PAYROLL", req.ProgramID)
	assert.Equal(t, "USER01.CBL", req.Qualifier)
	assert.Equal(t, "PAY01", req.Member)
	assert.Equal(t, "USER01.LOAD", req.LoadQualifier)
	assert.Equal(t, "PAYJOB", req.JobName)
}

func TestValidateDataSet(t *testing.T) {
	cases := []struct {
		Name    string
		Given   string
		ExpectE bool
	}{
		{Name: "Simple", Given: "USER01.CBL"},
		{Name: "DeepQualifiers", Given: "SYS1.PROD.COBOL.SOURCE"},
		{Name: "Hyphen", Given: "USER01.MY-LIB"},
		{Name: "Empty", Given: "", ExpectE: true},
		{Name: "LeadingDigit", Given: "1USER.CBL", ExpectE: true},
		{Name: "EmptyQualifier", Given: "USER01..CBL", ExpectE: true},
		{Name: "TooLong", Given: strings.Repeat("USERNAME.", 5) + "CBL", ExpectE: true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			err := validateDataSet(c.Given, "test")
			if c.ExpectE {
				assert.ErrorIs(t, err, errors.ErrValidation)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}
