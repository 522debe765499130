// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// errorResponse is the ErrorResponse document of the query protocol.
type errorResponse struct {
	Error struct {
		Type    string `xml:"Type"`
		Code    string `xml:"Code"`
		Message string `xml:"Message"`
	} `xml:"Error"`
	RequestID string `xml:"RequestId"`
}

// mapHTTPError turns a non-2xx response into an *APIError. The ErrorResponse
// body is decoded by resty into the request's error object; when that is
// missing the status text is used as the message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*errorResponse); ok && body.Error.Code != "" {
		apiErr.Type = body.Error.Type
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
		apiErr.RequestID = body.RequestID
		return apiErr
	}

	apiErr.Code = http.StatusText(resp.StatusCode())
	apiErr.Message = strings.TrimSpace(string(resp.Body()))
	if apiErr.Message == "" {
		apiErr.Message = apiErr.Code
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		apiErr.Type = "Receiver"
	} else {
		apiErr.Type = "Sender"
	}
	return apiErr
}
