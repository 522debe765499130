// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/ydavid365/elasticmq/internal/logger"
	"github.com/ydavid365/elasticmq/internal/utils"
)

// operationFunc serves one action. The returned result is wrapped in the
// action's response envelope; a nil result yields an envelope with metadata
// only.
type operationFunc func(r *http.Request) (any, error)

// operationRegistry maps action names to their handlers.
func (h *Handler) operationRegistry() map[string]operationFunc {
	return map[string]operationFunc{
		"CreateQueue":                  h.createQueue,
		"GetQueueUrl":                  h.getQueueURL,
		"ListQueues":                   h.listQueues,
		"DeleteQueue":                  h.deleteQueue,
		"PurgeQueue":                   h.purgeQueue,
		"GetQueueAttributes":           h.getQueueAttributes,
		"SetQueueAttributes":           h.setQueueAttributes,
		"SendMessage":                  h.sendMessage,
		"SendMessageBatch":             h.sendMessageBatch,
		"ReceiveMessage":               h.receiveMessage,
		"DeleteMessage":                h.deleteMessage,
		"DeleteMessageBatch":           h.deleteMessageBatch,
		"ChangeMessageVisibility":      h.changeMessageVisibility,
		"ChangeMessageVisibilityBatch": h.changeMessageVisibilityBatch,
	}
}

// serveAction looks the action up in the registry and writes its response.
func (h *Handler) serveAction(w http.ResponseWriter, r *http.Request) {
	info := requestInfoFromContext(r.Context())
	if info.formErr != nil {
		h.writeError(w, r, newMalformedQueryStringError(info.formErr))
		return
	}
	if info.action == "" {
		h.writeError(w, r, errMissingAction)
		return
	}

	op, ok := h.operations[info.action]
	if !ok {
		h.writeError(w, r, newInvalidActionError(info.action))
		return
	}

	result, err := op(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	requestID, _ := utils.GetRequestIDFromContext(r.Context())
	if _, err = utils.WriteXML(w, newActionResponse(info.action, requestID, result), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.serveAction").Msg("error writing response")
	}
}
