// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// APIError is an ErrorResponse returned by the gateway. errors.Is matches
// two APIErrors by Code, so the sentinels below can be used as targets.
type APIError struct {
	StatusCode int
	Type       string
	Code       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d %s): %s", e.Code, e.StatusCode, e.Type, e.Message)
}

// Is reports whether target is an *APIError with the same Code.
func (e *APIError) Is(target error) bool {
	var t *APIError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for the error codes callers commonly branch on.
var (
	ErrNonExistentQueue     = &APIError{Code: "AWS.SimpleQueueService.NonExistentQueue"}
	ErrQueueAlreadyExists   = &APIError{Code: "QueueAlreadyExists"}
	ErrReceiptHandleInvalid = &APIError{Code: "ReceiptHandleIsInvalid"}
	ErrInvalidAction        = &APIError{Code: "InvalidAction"}
	ErrServiceUnavailable   = &APIError{Code: "ServiceUnavailable"}
	ErrInternalError        = &APIError{Code: "InternalError"}
)

var (
	// ErrChecksumMismatch is returned when an MD5 digest in a response does
	// not match the content it covers.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	errEmptyAddress = errors.New("empty address")
)
