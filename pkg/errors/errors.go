package errors

import (
	"fmt"
)

var (
	ErrValidation   = fmt.Errorf("validation failed")
	ErrRender       = fmt.Errorf("render incomplete")
	ErrTransfer     = fmt.Errorf("transfer failed")
	ErrSubmission   = fmt.Errorf("submission failed")
	ErrQuery        = fmt.Errorf("query failed")
	ErrFetch        = fmt.Errorf("fetch failed")
	ErrTracked      = fmt.Errorf("already tracked")
	ErrNotFound     = fmt.Errorf("not found")
	ErrInvalidState = fmt.Errorf("invalid state")
	ErrETagMismatch = fmt.Errorf("etag mismatch")
)
