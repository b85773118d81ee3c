package structs

import (
	"strings"
)

type Status string

const (
	// transient states
	CREATED      Status = "CREATED"
	SUBMITTED    Status = "SUBMITTED"
	ACTIVE       Status = "ACTIVE"
	OUTPUT_READY Status = "OUTPUT_READY"

	// end states
	COMPLETED Status = "COMPLETED"
	FAILED    Status = "FAILED"
	TIMED_OUT Status = "TIMED_OUT"
	ERROR     Status = "ERROR"
)

// IsFinalStatus returns true if no further transition can happen to a job
// in the given status.
func IsFinalStatus(status Status) bool {
	switch status {
	case COMPLETED, FAILED, TIMED_OUT, ERROR:
		return true
	default:
		return false
	}
}

func ToStatus(s string) Status {
	switch strings.ToUpper(s) {
	case "CREATED":
		return CREATED
	case "SUBMITTED":
		return SUBMITTED
	case "ACTIVE":
		return ACTIVE
	case "OUTPUT_READY":
		return OUTPUT_READY
	case "COMPLETED":
		return COMPLETED
	case "FAILED":
		return FAILED
	case "TIMED_OUT":
		return TIMED_OUT
	case "ERROR":
		return ERROR
	default:
		return ""
	}
}
