package structs

import (
	"strings"
)

// SpoolFile is one named chunk of job output held by the remote system.
type SpoolFile struct {
	ID       int64  `json:"id"`
	DDName   string `json:"dd_name"`
	StepName string `json:"step_name,omitempty"`
	ProcStep string `json:"proc_step,omitempty"`
}

// SegmentSelector picks spool files out of a job's output.
// Empty fields match any value; matching is case insensitive.
type SegmentSelector struct {
	StepName string `json:"step_name,omitempty" yaml:"step_name,omitempty"`
	ProcStep string `json:"proc_step,omitempty" yaml:"proc_step,omitempty"`
	DDName   string `json:"dd_name,omitempty" yaml:"dd_name,omitempty"`
}

func (s *SegmentSelector) Matches(f *SpoolFile) bool {
	if f == nil {
		return false
	}
	if s.StepName != "" && !strings.EqualFold(s.StepName, f.StepName) {
		return false
	}
	if s.ProcStep != "" && !strings.EqualFold(s.ProcStep, f.ProcStep) {
		return false
	}
	if s.DDName != "" && !strings.EqualFold(s.DDName, f.DDName) {
		return false
	}
	return true
}
