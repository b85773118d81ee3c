package structs

// JobStatus is a point-in-time report of a remote job: its phase plus
// whatever step completion codes exist so far.
type JobStatus struct {
	JobID   string `json:"job_id"`
	JobName string `json:"job_name,omitempty"`

	Phase Phase `json:"phase"`

	// RetCode is the job level return code string, if the remote system
	// has assigned one yet.
	RetCode string `json:"ret_code,omitempty"`

	Steps []StepResult `json:"steps,omitempty"`
}

// RemoteJob is one row of a remote job listing.
type RemoteJob struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Owner   string `json:"owner,omitempty"`
	Status  string `json:"status"`
	RetCode string `json:"ret_code,omitempty"`
}
