// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a client for the gateway's SQS query protocol.
//
// [QueueClient] is implemented by [Client], which talks to a gateway over
// HTTP with resty. Error responses are decoded into *[APIError] values that
// match the exported sentinels through [errors.Is] (e.g. [ErrNonExistentQueue]).
// Message digests returned by the gateway are verified against the content
// they cover; a mismatch yields [ErrChecksumMismatch].
package adapter

import (
	"context"

	"github.com/ydavid365/elasticmq/models"
)

// QueueClient defines the queue operations a gateway client can issue.
// Queues are addressed by the queue URL returned from CreateQueue or
// GetQueueURL.
type QueueClient interface {
	// CreateQueue creates name with the given queue attributes (attribute
	// name to decimal value) and returns its queue URL.
	CreateQueue(ctx context.Context, name string, attributes map[string]string) (string, error)
	GetQueueURL(ctx context.Context, name string) (string, error)
	ListQueues(ctx context.Context, prefix string) ([]string, error)
	DeleteQueue(ctx context.Context, queueURL string) error
	PurgeQueue(ctx context.Context, queueURL string) error

	// GetQueueAttributes returns the requested attributes; no names means All.
	GetQueueAttributes(ctx context.Context, queueURL string, names ...string) (map[string]string, error)
	SetQueueAttributes(ctx context.Context, queueURL string, attributes map[string]string) error

	SendMessage(ctx context.Context, queueURL string, msg OutgoingMessage) (SendResult, error)
	SendMessageBatch(ctx context.Context, queueURL string, entries []BatchMessage) (BatchResult, error)
	ReceiveMessages(ctx context.Context, queueURL string, opts ReceiveOptions) ([]Message, error)
	DeleteMessage(ctx context.Context, queueURL, receiptHandle string) error
	DeleteMessageBatch(ctx context.Context, queueURL string, receiptHandles map[string]string) (BatchResult, error)
	ChangeMessageVisibility(ctx context.Context, queueURL, receiptHandle string, timeoutSeconds int) error
}

// OutgoingMessage is a message to send.
type OutgoingMessage struct {
	Body       string
	Attributes map[string]models.MessageAttribute

	// DelaySeconds overrides the queue delay when not nil.
	DelaySeconds *int
}

// BatchMessage is one entry of a SendMessageBatch request.
type BatchMessage struct {
	ID string
	OutgoingMessage
}

// SendResult is the gateway's answer to a send.
type SendResult struct {
	MessageID              string
	MD5OfMessageBody       string
	MD5OfMessageAttributes string
}

// BatchResult splits a batch answer into succeeded entry ids and failures.
type BatchResult struct {
	Successful []string
	Failed     []BatchFailure
}

// BatchFailure is a failed batch entry.
type BatchFailure struct {
	ID          string
	Code        string
	Message     string
	SenderFault bool
}

// ReceiveOptions tune ReceiveMessages. Nil pointers leave the parameter out.
type ReceiveOptions struct {
	MaxMessages       *int
	VisibilityTimeout *int
	WaitTimeSeconds   *int

	// AttributeNames selects system attributes ("All" for every one).
	AttributeNames []string
	// MessageAttributeNames selects message attributes ("All", ".*" or a
	// "prefix.*" pattern).
	MessageAttributeNames []string
}

// Message is a received message.
type Message struct {
	MessageID         string
	ReceiptHandle     string
	Body              string
	Attributes        map[string]string
	MessageAttributes map[string]models.MessageAttribute
}
