package gateway

import (
	"encoding/json"
)

// Envelope and payload shapes the client prints under --rfj
// (response-format-json). Only the fields we read are modelled.

type rfjEnvelope struct {
	Success  bool            `json:"success"`
	ExitCode int             `json:"exitCode"`
	Message  string          `json:"message"`
	Stdout   string          `json:"stdout"`
	Stderr   string          `json:"stderr"`
	Data     json.RawMessage `json:"data,omitempty"`
	Error    *rfjError       `json:"error,omitempty"`
}

type rfjError struct {
	Msg        string `json:"msg"`
	Source     string `json:"source,omitempty"`
	ErrorCode  int    `json:"errorCode,omitempty"`
	HTTPStatus int    `json:"httpStatus,omitempty"`
	Additional string `json:"additionalDetails,omitempty"`
}

type rfjJob struct {
	JobID     string  `json:"jobid"`
	JobName   string  `json:"jobname"`
	Status    string  `json:"status"`
	Phase     int     `json:"phase,omitempty"`
	PhaseName string  `json:"phase-name,omitempty"`
	Owner     string  `json:"owner,omitempty"`
	Type      string  `json:"type,omitempty"`
	RetCode   *string `json:"retcode"` // null until the job ends

	StepData []rfjStep `json:"step-data,omitempty"`
}

type rfjStep struct {
	Active       bool   `json:"active"`
	StepNumber   int    `json:"step-number"`
	StepName     string `json:"step-name"`
	ProcStepName string `json:"proc-step-name,omitempty"`
	ProgramName  string `json:"program-name,omitempty"`
	Completion   string `json:"completion,omitempty"`
}

type rfjSpoolFile struct {
	ID       int64  `json:"id"`
	DDName   string `json:"ddname"`
	StepName string `json:"stepname,omitempty"`
	ProcStep string `json:"procstep,omitempty"`
}

type rfjDataSetList struct {
	APIResponse struct {
		Items []struct {
			DSName string `json:"dsname"`
		} `json:"items"`
	} `json:"apiResponse"`
}

type rfjMemberList struct {
	APIResponse struct {
		Items []struct {
			Member string `json:"member"`
		} `json:"items"`
	} `json:"apiResponse"`
}
