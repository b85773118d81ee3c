package structs

import (
	"time"
)

// Options tune the compile-and-run pipeline.
//
// Everything here is explicit; the pipeline never falls back to environment
// variables or baked-in literals for these values.
type Options struct {
	// PollInterval is the base wait between status queries.
	PollInterval time.Duration

	// MaxPollInterval caps the backoff applied after failed status queries.
	// Backoff doubles per consecutive failure up to this value.
	MaxPollInterval time.Duration

	// MaxElapsed is how long a job may sit non-terminal (measured from
	// submission) before the record is marked TIMED_OUT and tracking stops.
	// Remote queues can be slow; this should usually be tens of minutes.
	MaxElapsed time.Duration

	// MaxQueryRetries is how many consecutive failed status queries are
	// tolerated before the record is marked ERROR.
	// That is, TIMED_OUT means the job never finished; ERROR means we
	// lost the ability to watch it.
	MaxQueryRetries int64

	// SeverityThreshold is the highest step completion code still
	// considered benign. Codes above it classify the step as failed.
	// Site conventions vary; 4 (warnings only) is typical.
	SeverityThreshold int64

	// Selectors name the spool output attached as diagnostics for each
	// outcome, ie. the compiler listing for COMPILE_ERROR.
	Selectors map[Outcome]*SegmentSelector
}

// DefaultSelectors returns the spool output fetched per outcome when the
// site doesn't override them. Step and DD names here line up with the
// default job template.
func DefaultSelectors() map[Outcome]*SegmentSelector {
	return map[Outcome]*SegmentSelector{
		RUN_SUCCESS:   {StepName: "RUN", DDName: "SYSOUT"},
		RUN_ABEND:     {StepName: "RUN"},
		COMPILE_ERROR: {ProcStep: "COBOL", DDName: "SYSPRINT"},
		LINK_ERROR:    {ProcStep: "LKED", DDName: "SYSPRINT"},
		JCL_ERROR:     {DDName: "JESMSGLG"},
		SYSTEM_ERROR:  {DDName: "JESMSGLG"},
	}
}
