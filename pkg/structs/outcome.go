package structs

import (
	"strings"
)

// Outcome is why a job ended the way it did, judged from its step
// completion codes. Assigned once, alongside a final status.
type Outcome string

const (
	COMPILE_ERROR Outcome = "COMPILE_ERROR"
	LINK_ERROR    Outcome = "LINK_ERROR"
	RUN_ABEND     Outcome = "RUN_ABEND"
	RUN_SUCCESS   Outcome = "RUN_SUCCESS"
	JCL_ERROR     Outcome = "JCL_ERROR"
	SYSTEM_ERROR  Outcome = "SYSTEM_ERROR"
)

func ToOutcome(s string) Outcome {
	switch strings.ToUpper(s) {
	case "COMPILE_ERROR":
		return COMPILE_ERROR
	case "LINK_ERROR":
		return LINK_ERROR
	case "RUN_ABEND":
		return RUN_ABEND
	case "RUN_SUCCESS":
		return RUN_SUCCESS
	case "JCL_ERROR":
		return JCL_ERROR
	case "SYSTEM_ERROR":
		return SYSTEM_ERROR
	default:
		return ""
	}
}

// IsFailureOutcome returns true for every assigned outcome except RUN_SUCCESS.
func IsFailureOutcome(o Outcome) bool {
	return o != "" && o != RUN_SUCCESS
}
