package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/voidshard/hopper/pkg/errors"
	"github.com/voidshard/hopper/pkg/structs"
)

const maxDataSetLength = 44

var (
	// member / program / job names: 1-8 chars, alphabetic or national
	// (@ # $) first, alphanumeric or national after
	reName = regexp.MustCompile(`^[A-Z@#$][A-Z0-9@#$]{0,7}$`)

	// dataset names: dot separated qualifiers of the same shape, hyphens
	// allowed after the first char
	reDataSet = regexp.MustCompile(`^[A-Z@#$][A-Z0-9@#$-]{0,7}(\.[A-Z@#$][A-Z0-9@#$-]{0,7})*$`)
)

// normalizeRequest uppercases the remote names, fills in defaults and checks
// the result is something the remote system could accept.
// The caller's request is left untouched.
func normalizeRequest(in *structs.JobRequest) (*structs.JobRequest, error) {
	if in == nil {
		return nil, fmt.Errorf("%w a request is required", errors.ErrValidation)
	}

	req := &structs.JobRequest{}
	*req = *in

	req.ProgramID = strings.ToUpper(strings.TrimSpace(req.ProgramID))
	req.Qualifier = strings.ToUpper(strings.TrimSpace(req.Qualifier))
	req.LoadQualifier = strings.ToUpper(strings.TrimSpace(req.LoadQualifier))
	req.Member = strings.ToUpper(strings.TrimSpace(req.Member))
	req.JobName = strings.ToUpper(strings.TrimSpace(req.JobName))
	if req.Member == "" {
		req.Member = req.ProgramID
	}
	if req.JobName == "" {
		req.JobName = req.ProgramID
	}

	return req, validateRequest(req)
}

func validateRequest(req *structs.JobRequest) error {
	if !reName.MatchString(req.ProgramID) {
		return fmt.Errorf("%w program id %q must be 1-8 chars, alphanumeric or @ # $, not starting with a digit", errors.ErrValidation, req.ProgramID)
	}
	if strings.TrimSpace(req.Source) == "" {
		return fmt.Errorf("%w program source is required", errors.ErrValidation)
	}
	if err := validateDataSet(req.Qualifier, "source library"); err != nil {
		return err
	}
	if err := validateDataSet(req.LoadQualifier, "load library"); err != nil {
		return err
	}
	if !reName.MatchString(req.Member) {
		return fmt.Errorf("%w member %q is not a valid member name", errors.ErrValidation, req.Member)
	}
	if !reName.MatchString(req.JobName) {
		return fmt.Errorf("%w job name %q is not a valid job name", errors.ErrValidation, req.JobName)
	}
	return nil
}

func validateDataSet(name, desc string) error {
	if len(name) > maxDataSetLength || !reDataSet.MatchString(name) {
		return fmt.Errorf("%w %s %q is not a valid dataset name", errors.ErrValidation, desc, name)
	}
	return nil
}
