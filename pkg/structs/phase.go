package structs

import (
	"strings"
)

// Phase is the remote system's view of where a job sits: waiting on the
// input queue, executing, or finished with output available.
type Phase string

const (
	PhaseInput  Phase = "INPUT"
	PhaseActive Phase = "ACTIVE"
	PhaseOutput Phase = "OUTPUT"
)

func ToPhase(s string) Phase {
	switch strings.ToUpper(s) {
	case "INPUT":
		return PhaseInput
	case "ACTIVE":
		return PhaseActive
	case "OUTPUT":
		return PhaseOutput
	default:
		return ""
	}
}

// Rank orders phases by forward progress. Unknown phases rank 0; a job
// should never be reported at a lower rank than one already observed.
func (p Phase) Rank() int {
	switch p {
	case PhaseInput:
		return 1
	case PhaseActive:
		return 2
	case PhaseOutput:
		return 3
	default:
		return 0
	}
}
