// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/ydavid365/elasticmq/internal/logger"
	"github.com/ydavid365/elasticmq/internal/service"
	"github.com/ydavid365/elasticmq/internal/utils"
	"github.com/ydavid365/elasticmq/internal/validators"
)

var errorCodeMap = map[error]sqsError{
	service.ErrQueueDoesNotExist:    {status: http.StatusBadRequest, code: "AWS.SimpleQueueService.NonExistentQueue"},
	service.ErrQueueAlreadyExists:   {status: http.StatusBadRequest, code: "QueueAlreadyExists"},
	service.ErrReceiptHandleInvalid: {status: http.StatusBadRequest, code: "ReceiptHandleIsInvalid"},
	service.ErrMessageNotInflight:   {status: http.StatusBadRequest, code: "AWS.SimpleQueueService.MessageNotInflight"},
	service.ErrEngineClosed:         {status: http.StatusServiceUnavailable, code: "ServiceUnavailable"},
}

// toSQSError maps err onto a protocol error. Validation errors keep their
// code; engine sentinels are looked up in errorCodeMap; anything else is an
// InternalError whose message does not leak the cause.
func toSQSError(err error) *sqsError {
	var sErr *sqsError
	if errors.As(err, &sErr) {
		return sErr
	}

	if vErr, ok := validators.AsValidationError(err); ok {
		return &sqsError{status: http.StatusBadRequest, code: vErr.Code, message: vErr.Message}
	}

	for target, mapped := range errorCodeMap {
		if errors.Is(err, target) {
			mapped.message = target.Error()
			return &mapped
		}
	}

	return errInternal
}

// writeError answers the request with an ErrorResponse document.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	sErr := toSQSError(err)
	requestInfoFromContext(r.Context()).errorCode = sErr.code

	log := logger.FromRequest(r)
	if sErr.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "*Handler.writeError").Str("code", sErr.code).Msg("request failed")
	} else {
		log.Debug().Str("func", "*Handler.writeError").Str("code", sErr.code).Str("reason", sErr.message).Msg("request rejected")
	}

	requestID, _ := utils.GetRequestIDFromContext(r.Context())
	resp := errorResponse{
		Xmlns: sqsNamespace,
		Error: errorBody{
			Type:    sErr.errorType(),
			Code:    sErr.code,
			Message: sErr.message,
		},
		RequestID: requestID,
	}
	if _, wErr := utils.WriteXML(w, resp, sErr.status); wErr != nil {
		log.Err(wErr).Str("func", "*Handler.writeError").Msg("error writing error response")
	}
}
