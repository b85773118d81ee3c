package common

const (
	// API_JOBS is used to submit jobs or read job history
	API_JOBS = "/api/v1/jobs"

	// API_POLL is used to advance a job record by one status query
	API_POLL = "/api/v1/poll"

	// API_TRACK is used to have the server follow a job in the background
	API_TRACK = "/api/v1/track"

	// API_UNTRACK is used to stop following a job (the job itself runs on)
	API_UNTRACK = "/api/v1/untrack"

	// API_REMOTE_JOBS is used to list jobs on the remote system
	API_REMOTE_JOBS = "/api/v1/remote/jobs"

	// API_DATASETS is used to list remote datasets
	API_DATASETS = "/api/v1/datasets"

	// API_MEMBERS is used to list the members of a remote dataset
	API_MEMBERS = "/api/v1/members"

	// API_STATUS is used to check the remote connection
	API_STATUS = "/api/v1/status"
)
