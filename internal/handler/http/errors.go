// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
)

// sqsError is a failure answered with an ErrorResponse document. Errors
// with a 5xx status are reported with Type Receiver, all others with Type
// Sender.
type sqsError struct {
	status  int
	code    string
	message string
}

func (e *sqsError) Error() string {
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *sqsError) errorType() string {
	if e.status >= http.StatusInternalServerError {
		return "Receiver"
	}
	return "Sender"
}

// Protocol errors raised by the transport itself rather than by a limit
// check or the queue engine.
var (
	errInternal = &sqsError{
		status:  http.StatusInternalServerError,
		code:    "InternalError",
		message: "We encountered an internal error. Please try again.",
	}
	errServiceUnavailable = &sqsError{
		status:  http.StatusServiceUnavailable,
		code:    "ServiceUnavailable",
		message: "The request has failed due to a temporary failure of the server.",
	}
	errRequestCanceled = &sqsError{
		status:  http.StatusBadRequest,
		code:    "RequestCanceled",
		message: "The request was canceled before it could be processed.",
	}
	errMissingAction = &sqsError{
		status:  http.StatusBadRequest,
		code:    "MissingAction",
		message: "The request must contain the parameter Action.",
	}
)

func newInvalidActionError(action string) *sqsError {
	return &sqsError{
		status:  http.StatusBadRequest,
		code:    "InvalidAction",
		message: fmt.Sprintf("The action %s is not valid for this endpoint.", action),
	}
}

func newMalformedQueryStringError(err error) *sqsError {
	return &sqsError{
		status:  http.StatusBadRequest,
		code:    "MalformedQueryString",
		message: err.Error(),
	}
}
