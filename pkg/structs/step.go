package structs

import (
	"strconv"
	"strings"
)

// StepResult is one executed job step and its completion code, as reported
// by the remote system.
type StepResult struct {
	// StepName is the EXEC statement name (ie. "COBRUN", "RUN").
	StepName string `json:"step_name"`

	// ProcStep is the step name within an invoked procedure, if any
	// (ie. "COBOL", "LKED").
	ProcStep string `json:"proc_step,omitempty"`

	// Program is the program the step executed, if reported.
	Program string `json:"program,omitempty"`

	// CompletionCode is the raw code string, ie. "CC 0000", "CC 0008",
	// "ABEND S0C7". Sites vary in exactly how they format these.
	CompletionCode string `json:"completion_code"`
}

// Code returns the numeric completion code, if the step ended with one.
// Abends and steps that never ran ("FLUSH") have no numeric code.
func (s *StepResult) Code() (int64, bool) {
	raw := strings.TrimSpace(strings.ToUpper(s.CompletionCode))
	if raw == "" || strings.Contains(raw, "ABEND") {
		return 0, false
	}
	fields := strings.Fields(raw)
	n, err := strconv.ParseInt(fields[len(fields)-1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Abended returns true if the step terminated abnormally.
// Recognises "ABEND ..." codes and bare system (Shhh) / user (Unnnn) codes.
func (s *StepResult) Abended() bool {
	raw := strings.TrimSpace(strings.ToUpper(s.CompletionCode))
	if raw == "" {
		return false
	}
	if strings.Contains(raw, "ABEND") {
		return true
	}
	if len(raw) == 4 && raw[0] == 'S' {
		_, err := strconv.ParseUint(raw[1:], 16, 32)
		return err == nil
	}
	if len(raw) == 5 && raw[0] == 'U' {
		_, err := strconv.ParseUint(raw[1:], 10, 32)
		return err == nil
	}
	return false
}
