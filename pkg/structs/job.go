package structs

// JobRequest describes one compile-and-run submission.
//
// A request is immutable; submitting the same request twice yields two
// independent Jobs.
type JobRequest struct {
	// ProgramID is the COBOL program name. Required.
	// Up to 8 chars, alphanumeric or national (@ # $), not starting with a digit.
	ProgramID string `json:"program_id"`

	// Source is the COBOL source text to compile. Required.
	Source string `json:"source"`

	// Qualifier is the high level qualifier of the source library the
	// program text is written into (ie. "USER01.CBL").
	Qualifier string `json:"qualifier"`

	// Member is the source member name. Defaults to ProgramID.
	Member string `json:"member,omitempty"`

	// LoadQualifier is the load library the linked program is written to
	// and run from (ie. "USER01.LOAD").
	LoadQualifier string `json:"load_qualifier"`

	// JobName names the batch job on the remote system. Defaults to ProgramID.
	JobName string `json:"job_name,omitempty"`

	// CompileOptions are handed to the compile step verbatim, if set.
	CompileOptions string `json:"compile_options,omitempty"`

	// RunOptions are handed to the run step verbatim, if set.
	RunOptions string `json:"run_options,omitempty"`
}

// Job is one tracked submission: the request it came from plus everything
// we've learned about it since.
//
// A Job is created by submission, advanced by polling and finalised exactly
// once; it is never reused for another submission.
type Job struct {
	JobRequest `json:",inline"`

	// ID is the remote system's job identifier. Assigned once at
	// submission, immutable after that.
	ID string `json:"id"`

	Status Status `json:"status"`

	// Outcome is set only once the job reaches a final status.
	Outcome Outcome `json:"outcome,omitempty"`

	// Phase is the most recently observed remote phase.
	Phase Phase `json:"phase,omitempty"`

	// Steps holds per-step completion codes in execution order.
	Steps []StepResult `json:"steps,omitempty"`

	// Diagnostics is the spool excerpt attached when an outcome is assigned.
	Diagnostics string `json:"diagnostics,omitempty"`

	// PollAttempts counts status queries made for this job. Never decreases.
	PollAttempts int64 `json:"poll_attempts"`

	// QueryFailures counts consecutive failed status queries.
	// Any successful query resets it to zero.
	QueryFailures int64 `json:"query_failures,omitempty"`

	ETag string `json:"etag"`

	SubmittedAt  int64 `json:"submitted_at"`
	LastPolledAt int64 `json:"last_polled_at,omitempty"`
	CompletedAt  int64 `json:"completed_at,omitempty"`
}
