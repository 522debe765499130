// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// Protocol error codes produced by limit checks.
const (
	CodeInvalidParameterValue        = "InvalidParameterValue"
	CodeMissingParameter             = "MissingParameter"
	CodeReadCountOutOfRange          = "ReadCountOutOfRange"
	CodeInvalidMessageContents       = "InvalidMessageContents"
	CodeInvalidAttributeName         = "InvalidAttributeName"
	CodeEmptyBatchRequest            = "AWS.SimpleQueueService.EmptyBatchRequest"
	CodeTooManyEntriesInBatchRequest = "AWS.SimpleQueueService.TooManyEntriesInBatchRequest"
	CodeBatchEntryIdsNotDistinct     = "AWS.SimpleQueueService.BatchEntryIdsNotDistinct"
	CodeInvalidBatchEntryID          = "AWS.SimpleQueueService.InvalidBatchEntryId"
)

// ErrUnknownLimitsMode is returned by ParseMode for unrecognised input.
var ErrUnknownLimitsMode = errors.New("unknown limits mode")

// ValidationError is a request parameter rejected by a limit check. Code is
// the protocol error code sent back to the client.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError builds a *ValidationError with a formatted message.
func NewValidationError(code, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsValidationError reports whether err wraps a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
