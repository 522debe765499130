// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Queue attribute names as they appear in Attribute.N.Name / AttributeName.N
// request parameters and in GetQueueAttributes responses.
const (
	AttrAll                                   = "All"
	AttrVisibilityTimeout                     = "VisibilityTimeout"
	AttrDelaySeconds                          = "DelaySeconds"
	AttrReceiveMessageWaitTimeSeconds         = "ReceiveMessageWaitTimeSeconds"
	AttrMessageRetentionPeriod                = "MessageRetentionPeriod"
	AttrMaximumMessageSize                    = "MaximumMessageSize"
	AttrApproximateNumberOfMessages           = "ApproximateNumberOfMessages"
	AttrApproximateNumberOfMessagesNotVisible = "ApproximateNumberOfMessagesNotVisible"
	AttrApproximateNumberOfMessagesDelayed    = "ApproximateNumberOfMessagesDelayed"
	AttrCreatedTimestamp                      = "CreatedTimestamp"
	AttrLastModifiedTimestamp                 = "LastModifiedTimestamp"
	AttrQueueArn                              = "QueueArn"
)

// Default queue attribute values used when CreateQueue does not set them.
const (
	DefaultVisibilityTimeout      = 30 * time.Second
	DefaultMessageRetentionPeriod = 4 * 24 * time.Hour
	DefaultMaximumMessageSize     = 262144
)

// QueueAttributes holds the settable attributes of a queue.
type QueueAttributes struct {
	VisibilityTimeout      time.Duration
	DelaySeconds           time.Duration
	ReceiveMessageWaitTime time.Duration
	MessageRetentionPeriod time.Duration
	MaximumMessageSize     int
}

// DefaultQueueAttributes returns the attributes of a queue created without
// explicit settings.
func DefaultQueueAttributes() QueueAttributes {
	return QueueAttributes{
		VisibilityTimeout:      DefaultVisibilityTimeout,
		MessageRetentionPeriod: DefaultMessageRetentionPeriod,
		MaximumMessageSize:     DefaultMaximumMessageSize,
	}
}

// Queue describes a queue known to the engine.
type Queue struct {
	Name           string
	Attributes     QueueAttributes
	CreatedAt      time.Time
	LastModifiedAt time.Time
}

// QueueStats are the approximate counters reported by GetQueueAttributes.
type QueueStats struct {
	Visible  int
	InFlight int
	Delayed  int
}
