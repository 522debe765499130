// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/ydavid365/elasticmq/internal/config"
	"github.com/ydavid365/elasticmq/internal/validators"
	"github.com/ydavid365/elasticmq/models"
)

// queueAttributeOrder is the order attributes are reported in.
var queueAttributeOrder = []string{
	models.AttrVisibilityTimeout,
	models.AttrDelaySeconds,
	models.AttrReceiveMessageWaitTimeSeconds,
	models.AttrMessageRetentionPeriod,
	models.AttrMaximumMessageSize,
	models.AttrApproximateNumberOfMessages,
	models.AttrApproximateNumberOfMessagesNotVisible,
	models.AttrApproximateNumberOfMessagesDelayed,
	models.AttrCreatedTimestamp,
	models.AttrLastModifiedTimestamp,
	models.AttrQueueArn,
}

func (h *Handler) createQueue(r *http.Request) (any, error) {
	name := r.Form.Get("QueueName")
	if err := h.limits.ValidateQueueName(name); err != nil {
		return nil, err
	}

	attrs, err := applyQueueAttributes(h.limits, models.DefaultQueueAttributes(), queueAttributeParams(r.Form))
	if err != nil {
		return nil, err
	}

	q, err := h.engine.CreateQueue(r.Context(), name, attrs)
	if err != nil {
		return nil, err
	}
	return createQueueResult{QueueURL: h.queueURL(q.Name)}, nil
}

func (h *Handler) getQueueURL(r *http.Request) (any, error) {
	name, err := requiredParam(r.Form, "QueueName")
	if err != nil {
		return nil, err
	}

	q, err := h.engine.GetQueue(r.Context(), name)
	if err != nil {
		return nil, err
	}
	return getQueueURLResult{QueueURL: h.queueURL(q.Name)}, nil
}

func (h *Handler) listQueues(r *http.Request) (any, error) {
	queues, err := h.engine.ListQueues(r.Context(), r.Form.Get("QueueNamePrefix"))
	if err != nil {
		return nil, err
	}

	result := listQueuesResult{QueueURLs: make([]string, 0, len(queues))}
	for _, q := range queues {
		result.QueueURLs = append(result.QueueURLs, h.queueURL(q.Name))
	}
	return result, nil
}

func (h *Handler) deleteQueue(r *http.Request) (any, error) {
	name, err := queueNameFromRequest(r)
	if err != nil {
		return nil, err
	}
	return nil, h.engine.DeleteQueue(r.Context(), name)
}

func (h *Handler) purgeQueue(r *http.Request) (any, error) {
	name, err := queueNameFromRequest(r)
	if err != nil {
		return nil, err
	}
	return nil, h.engine.PurgeQueue(r.Context(), name)
}

func (h *Handler) getQueueAttributes(r *http.Request) (any, error) {
	name, err := queueNameFromRequest(r)
	if err != nil {
		return nil, err
	}

	requested := make(map[string]bool)
	for _, attr := range indexedList(r.Form, "AttributeName") {
		if attr == models.AttrAll {
			for _, known := range queueAttributeOrder {
				requested[known] = true
			}
			continue
		}
		if !slices.Contains(queueAttributeOrder, attr) {
			return nil, validators.NewValidationError(validators.CodeInvalidAttributeName, "Unknown Attribute %s.", attr)
		}
		requested[attr] = true
	}

	q, err := h.engine.GetQueue(r.Context(), name)
	if err != nil {
		return nil, err
	}
	stats, err := h.engine.QueueStats(r.Context(), name)
	if err != nil {
		return nil, err
	}

	values := queueAttributeValues(q, stats)
	result := getQueueAttributesResult{}
	for _, attr := range queueAttributeOrder {
		if requested[attr] {
			result.Attributes = append(result.Attributes, attribute{Name: attr, Value: values[attr]})
		}
	}
	return result, nil
}

func (h *Handler) setQueueAttributes(r *http.Request) (any, error) {
	name, err := queueNameFromRequest(r)
	if err != nil {
		return nil, err
	}

	q, err := h.engine.GetQueue(r.Context(), name)
	if err != nil {
		return nil, err
	}

	attrs, err := applyQueueAttributes(h.limits, q.Attributes, queueAttributeParams(r.Form))
	if err != nil {
		return nil, err
	}

	_, err = h.engine.SetQueueAttributes(r.Context(), name, attrs)
	return nil, err
}

func queueAttributeValues(q models.Queue, stats models.QueueStats) map[string]string {
	secs := func(d time.Duration) string {
		return strconv.FormatInt(int64(d/time.Second), 10)
	}
	return map[string]string{
		models.AttrVisibilityTimeout:                     secs(q.Attributes.VisibilityTimeout),
		models.AttrDelaySeconds:                          secs(q.Attributes.DelaySeconds),
		models.AttrReceiveMessageWaitTimeSeconds:         secs(q.Attributes.ReceiveMessageWaitTime),
		models.AttrMessageRetentionPeriod:                secs(q.Attributes.MessageRetentionPeriod),
		models.AttrMaximumMessageSize:                    strconv.Itoa(q.Attributes.MaximumMessageSize),
		models.AttrApproximateNumberOfMessages:           strconv.Itoa(stats.Visible),
		models.AttrApproximateNumberOfMessagesNotVisible: strconv.Itoa(stats.InFlight),
		models.AttrApproximateNumberOfMessagesDelayed:    strconv.Itoa(stats.Delayed),
		models.AttrCreatedTimestamp:                      strconv.FormatInt(q.CreatedAt.Unix(), 10),
		models.AttrLastModifiedTimestamp:                 strconv.FormatInt(q.LastModifiedAt.Unix(), 10),
		models.AttrQueueArn:                              queueArn(q.Name),
	}
}

func queueArn(name string) string {
	return "arn:aws:sqs:elasticmq:" + config.AccountSegment + ":" + name
}
