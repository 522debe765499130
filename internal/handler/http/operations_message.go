// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/base64"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/ydavid365/elasticmq/internal/codec"
	"github.com/ydavid365/elasticmq/internal/validators"
	"github.com/ydavid365/elasticmq/internal/workers"
	"github.com/ydavid365/elasticmq/models"
)

const defaultMaxNumberOfMessages = 1

func (h *Handler) sendMessage(r *http.Request) (any, error) {
	name, err := queueNameFromRequest(r)
	if err != nil {
		return nil, err
	}

	q, err := h.engine.GetQueue(r.Context(), name)
	if err != nil {
		return nil, err
	}

	in, err := h.newMessage(q, r.Form, senderID(r))
	if err != nil {
		return nil, err
	}

	msg, err := h.engine.SendMessage(r.Context(), name, in)
	if err != nil {
		return nil, err
	}

	return sendMessageResult{
		MD5OfMessageBody:       codec.ChecksumString(msg.Body),
		MD5OfMessageAttributes: codec.AttributesChecksum(msg.Attributes),
		MessageID:              msg.ID,
	}, nil
}

// newMessage validates the MessageBody, DelaySeconds and MessageAttribute.N
// parameters of form, which is either the request or one batch entry.
func (h *Handler) newMessage(q models.Queue, form url.Values, sender string) (models.NewMessage, error) {
	body := form.Get("MessageBody")
	if err := h.limits.ValidateMessageBody(body); err != nil {
		return models.NewMessage{}, err
	}
	if err := h.limits.IfStrict(len(body) > q.Attributes.MaximumMessageSize, validators.CodeInvalidParameterValue,
		"One or more parameters are invalid. Reason: Message must be shorter than %d bytes.", q.Attributes.MaximumMessageSize); err != nil {
		return models.NewMessage{}, err
	}

	delay, err := optionalInt(form, "DelaySeconds")
	if err != nil {
		return models.NewMessage{}, err
	}
	if err = h.limits.ValidateDelaySeconds(delay); err != nil {
		return models.NewMessage{}, err
	}

	attrs, err := messageAttributeParams(form)
	if err != nil {
		return models.NewMessage{}, err
	}
	if err = h.limits.ValidateMessageAttributes(attrs); err != nil {
		return models.NewMessage{}, err
	}

	return models.NewMessage{
		Body:       body,
		Attributes: attrs,
		SenderID:   sender,
		Delay:      seconds(delay),
	}, nil
}

func (h *Handler) sendMessageBatch(r *http.Request) (any, error) {
	name, err := queueNameFromRequest(r)
	if err != nil {
		return nil, err
	}

	entries := indexedParams(r.Form, "SendMessageBatchRequestEntry")
	if err = h.limits.ValidateBatchEntryIDs(entryIDs(entries)); err != nil {
		return nil, err
	}

	q, err := h.engine.GetQueue(r.Context(), name)
	if err != nil {
		return nil, err
	}

	sender := senderID(r)
	result := sendMessageBatchResult{}
	for _, entry := range entries {
		id := entry.Get("Id")

		msg, err := h.sendBatchEntry(r.Context(), q, entry, sender)
		if err != nil {
			result.Failed = append(result.Failed, batchErrorEntry(id, err))
			continue
		}

		result.Entries = append(result.Entries, sendMessageBatchResultEntry{
			ID:                     id,
			MessageID:              msg.ID,
			MD5OfMessageBody:       codec.ChecksumString(msg.Body),
			MD5OfMessageAttributes: codec.AttributesChecksum(msg.Attributes),
		})
	}
	return result, nil
}

func (h *Handler) sendBatchEntry(ctx context.Context, q models.Queue, entry url.Values, sender string) (models.Message, error) {
	in, err := h.newMessage(q, entry, sender)
	if err != nil {
		return models.Message{}, err
	}
	return h.engine.SendMessage(ctx, q.Name, in)
}

func (h *Handler) receiveMessage(r *http.Request) (any, error) {
	name, err := queueNameFromRequest(r)
	if err != nil {
		return nil, err
	}

	maxMessages, err := optionalInt(r.Form, "MaxNumberOfMessages")
	if err != nil {
		return nil, err
	}
	if err = h.limits.ValidateMaxNumberOfMessages(maxMessages); err != nil {
		return nil, err
	}

	visibility, err := optionalInt(r.Form, "VisibilityTimeout")
	if err != nil {
		return nil, err
	}
	if err = h.limits.ValidateVisibilityTimeout(visibility); err != nil {
		return nil, err
	}

	wait, err := optionalInt(r.Form, "WaitTimeSeconds")
	if err != nil {
		return nil, err
	}
	if err = h.limits.ValidateWaitTime(wait); err != nil {
		return nil, err
	}

	req := models.ReceiveRequest{
		MaxMessages:       defaultMaxNumberOfMessages,
		VisibilityTimeout: seconds(visibility),
		WaitTime:          seconds(wait),
	}
	if maxMessages != nil {
		req.MaxMessages = *maxMessages
	}

	// a long poll parks here; give the executor slot back meanwhile
	var msgs []models.Message
	workers.Suspend(h.executor, func() {
		msgs, err = h.engine.ReceiveMessages(r.Context(), name, req)
	})
	if err != nil {
		return nil, err
	}

	systemNames := append(indexedList(r.Form, "AttributeName"), indexedList(r.Form, "MessageSystemAttributeName")...)
	attributeNames := indexedList(r.Form, "MessageAttributeName")

	result := receiveMessageResult{}
	for _, m := range msgs {
		result.Messages = append(result.Messages, toReceivedMessage(m, systemNames, attributeNames))
	}
	return result, nil
}

func (h *Handler) deleteMessage(r *http.Request) (any, error) {
	name, err := queueNameFromRequest(r)
	if err != nil {
		return nil, err
	}

	handle, err := requiredParam(r.Form, "ReceiptHandle")
	if err != nil {
		return nil, err
	}
	return nil, h.engine.DeleteMessage(r.Context(), name, handle)
}

func (h *Handler) deleteMessageBatch(r *http.Request) (any, error) {
	name, err := queueNameFromRequest(r)
	if err != nil {
		return nil, err
	}

	entries := indexedParams(r.Form, "DeleteMessageBatchRequestEntry")
	if err = h.limits.ValidateBatchEntryIDs(entryIDs(entries)); err != nil {
		return nil, err
	}

	result := deleteMessageBatchResult{}
	for _, entry := range entries {
		id := entry.Get("Id")

		err := func() error {
			handle, err := requiredParam(entry, "ReceiptHandle")
			if err != nil {
				return err
			}
			return h.engine.DeleteMessage(r.Context(), name, handle)
		}()
		if err != nil {
			result.Failed = append(result.Failed, batchErrorEntry(id, err))
			continue
		}
		result.Entries = append(result.Entries, batchResultEntry{ID: id})
	}
	return result, nil
}

func (h *Handler) changeMessageVisibility(r *http.Request) (any, error) {
	name, err := queueNameFromRequest(r)
	if err != nil {
		return nil, err
	}
	return nil, h.changeVisibility(r.Context(), name, r.Form)
}

func (h *Handler) changeMessageVisibilityBatch(r *http.Request) (any, error) {
	name, err := queueNameFromRequest(r)
	if err != nil {
		return nil, err
	}

	entries := indexedParams(r.Form, "ChangeMessageVisibilityBatchRequestEntry")
	if err = h.limits.ValidateBatchEntryIDs(entryIDs(entries)); err != nil {
		return nil, err
	}

	result := changeMessageVisibilityBatchResult{}
	for _, entry := range entries {
		id := entry.Get("Id")
		if err := h.changeVisibility(r.Context(), name, entry); err != nil {
			result.Failed = append(result.Failed, batchErrorEntry(id, err))
			continue
		}
		result.Entries = append(result.Entries, batchResultEntry{ID: id})
	}
	return result, nil
}

// changeVisibility reads ReceiptHandle and VisibilityTimeout from form,
// which is either the request or one batch entry.
func (h *Handler) changeVisibility(ctx context.Context, queue string, form url.Values) error {
	handle, err := requiredParam(form, "ReceiptHandle")
	if err != nil {
		return err
	}

	timeout, err := optionalInt(form, "VisibilityTimeout")
	if err != nil {
		return err
	}
	if timeout == nil {
		return missingParameter("VisibilityTimeout")
	}
	if err = h.limits.ValidateVisibilityTimeout(timeout); err != nil {
		return err
	}

	return h.engine.ChangeMessageVisibility(ctx, queue, handle, *seconds(timeout))
}

func entryIDs(entries []url.Values) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.Get("Id"))
	}
	return ids
}

func batchErrorEntry(id string, err error) batchResultErrorEntry {
	sErr := toSQSError(err)
	return batchResultErrorEntry{
		ID:          id,
		SenderFault: sErr.errorType() == "Sender",
		Code:        sErr.code,
		Message:     sErr.message,
	}
}

// toReceivedMessage renders m with the requested system attributes and the
// message attributes matching attributeNames ("All", ".*", a "prefix.*"
// pattern or an exact name).
func toReceivedMessage(m models.Message, systemNames, attributeNames []string) receivedMessage {
	out := receivedMessage{
		MessageID:     m.ID,
		ReceiptHandle: m.ReceiptHandle,
		MD5OfBody:     codec.ChecksumString(m.Body),
		Body:          codec.XMLText(m.Body),
	}

	system := map[string]string{
		models.SysAttrSenderID:                         m.SenderID,
		models.SysAttrSentTimestamp:                    strconv.FormatInt(m.SentAt.UnixMilli(), 10),
		models.SysAttrApproximateReceiveCount:          strconv.Itoa(m.ReceiveCount),
		models.SysAttrApproximateFirstReceiveTimestamp: strconv.FormatInt(m.FirstReceivedAt.UnixMilli(), 10),
	}
	all := slices.Contains(systemNames, models.AttrAll)
	for _, name := range slices.Sorted(maps.Keys(system)) {
		if all || slices.Contains(systemNames, name) {
			out.Attributes = append(out.Attributes, attribute{Name: name, Value: system[name]})
		}
	}

	selected := make(map[string]models.MessageAttribute)
	for name, attr := range m.Attributes {
		if attributeSelected(name, attributeNames) {
			selected[name] = attr
		}
	}
	for _, name := range slices.Sorted(maps.Keys(selected)) {
		attr := selected[name]
		value := messageAttributeValue{DataType: attr.DataType}
		if strings.HasPrefix(attr.DataType, models.AttributeTypeBinary) {
			value.BinaryValue = base64.StdEncoding.EncodeToString(attr.BinaryValue)
		} else {
			value.StringValue = attr.StringValue
		}
		out.MessageAttributes = append(out.MessageAttributes, messageAttribute{Name: name, Value: value})
	}
	out.MD5OfMessageAttributes = codec.AttributesChecksum(selected)

	return out
}

func attributeSelected(name string, patterns []string) bool {
	for _, p := range patterns {
		switch {
		case p == models.AttrAll, p == ".*":
			return true
		case strings.HasSuffix(p, ".*"):
			if strings.HasPrefix(name, strings.TrimSuffix(p, "*")) {
				return true
			}
		case p == name:
			return true
		}
	}
	return false
}
