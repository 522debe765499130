// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message attribute data types. Custom types extend these with a suffix,
// e.g. "Number.int" or "Binary.png".
const (
	AttributeTypeString = "String"
	AttributeTypeNumber = "Number"
	AttributeTypeBinary = "Binary"
)

// System attribute names returned by ReceiveMessage when requested through
// AttributeName.N.
const (
	SysAttrSenderID                         = "SenderId"
	SysAttrSentTimestamp                    = "SentTimestamp"
	SysAttrApproximateReceiveCount          = "ApproximateReceiveCount"
	SysAttrApproximateFirstReceiveTimestamp = "ApproximateFirstReceiveTimestamp"
)

// MessageAttribute is a user-defined, typed message attribute.
type MessageAttribute struct {
	DataType    string
	StringValue string
	BinaryValue []byte
}

// NewMessage is the input of a send operation.
type NewMessage struct {
	Body       string
	Attributes map[string]MessageAttribute
	SenderID   string

	// Delay overrides the queue's DelaySeconds when not nil.
	Delay *time.Duration
}

// Message is a message as handed out by a receive operation.
type Message struct {
	ID              string
	Body            string
	Attributes      map[string]MessageAttribute
	SenderID        string
	SentAt          time.Time
	ReceiptHandle   string
	ReceiveCount    int
	FirstReceivedAt time.Time
}

// ReceiveRequest is the input of a receive operation.
type ReceiveRequest struct {
	MaxMessages int

	// VisibilityTimeout overrides the queue default when not nil.
	VisibilityTimeout *time.Duration

	// WaitTime overrides the queue's ReceiveMessageWaitTimeSeconds when not nil.
	WaitTime *time.Duration
}
