package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/voidshard/hopper/pkg/structs"
)

const (
	// proc step names in the compile-and-run procedure
	procStepCompile = "COBOL"
	procStepLink    = "LKED"

	// diagnosticsUnavailable stands in when spool output couldn't be read.
	// The outcome is already decided by then; losing the listing never
	// changes what we concluded.
	diagnosticsUnavailable = "diagnostics unavailable"
)

// Classify judges why a job ended from its recorded step completion codes.
//
// The rules run in order and the first match wins:
//   - no steps ran at all: the document itself was rejected (JCL_ERROR)
//   - the compile step failed: COMPILE_ERROR
//   - the link step failed: LINK_ERROR
//   - the program abended: RUN_ABEND
//   - every step came back benign: RUN_SUCCESS
//
// Anything else, including codes we can't parse, is SYSTEM_ERROR. The same
// steps and threshold always produce the same outcome, and the steps are
// never modified here.
func (c *Service) Classify(job *structs.Job) structs.Outcome {
	return classify(job.Steps, c.opts.SeverityThreshold)
}

func classify(steps []structs.StepResult, threshold int64) structs.Outcome {
	if len(steps) == 0 {
		return structs.JCL_ERROR
	}

	var compile, link *structs.StepResult
	run := []*structs.StepResult{}
	for i := range steps {
		s := &steps[i]
		switch strings.ToUpper(s.ProcStep) {
		case procStepCompile:
			compile = s
		case procStepLink:
			link = s
		default:
			run = append(run, s)
		}
	}

	if compile != nil {
		if compile.Abended() {
			return structs.COMPILE_ERROR
		}
		code, ok := compile.Code()
		if !ok {
			return structs.SYSTEM_ERROR
		}
		if code > threshold {
			return structs.COMPILE_ERROR
		}
	}
	if link != nil {
		if link.Abended() {
			return structs.LINK_ERROR
		}
		code, ok := link.Code()
		if !ok {
			return structs.SYSTEM_ERROR
		}
		if code > threshold {
			return structs.LINK_ERROR
		}
	}
	for _, r := range run {
		if r.Abended() {
			return structs.RUN_ABEND
		}
		code, ok := r.Code()
		if !ok {
			return structs.SYSTEM_ERROR
		}
		if code > threshold {
			return structs.SYSTEM_ERROR
		}
	}

	return structs.RUN_SUCCESS
}

// fetchDiagnostics pulls the spool output configured for the job's outcome.
// Fetch trouble degrades to a fixed marker; it never disturbs the outcome.
func (c *Service) fetchDiagnostics(ctx context.Context, job *structs.Job) string {
	text, err := c.gw.FetchOutputSegment(ctx, job.ID, c.opts.Selectors[job.Outcome])
	if err != nil {
		c.errs <- fmt.Errorf("failed to fetch diagnostics for %s (%s): %v", job.ID, job.Outcome, err)
		return diagnosticsUnavailable
	}
	return text
}
