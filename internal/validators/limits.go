// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the protocol limits on request parameters.
//
// Every rule has two tiers: a structural check that always applies (negative
// numbers, empty names, duplicate batch ids) and a range check that only
// applies in Strict mode, expressed through Limits.IfStrict. Limits is
// immutable and safe for concurrent use.
package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ydavid365/elasticmq/models"
)

// LimitsMode selects how closely the protocol limits are enforced.
type LimitsMode int

const (
	// Strict enforces the documented protocol bounds.
	Strict LimitsMode = iota
	// Relaxed only rejects structurally invalid input.
	Relaxed
)

// String implements fmt.Stringer.
func (m LimitsMode) String() string {
	if m == Relaxed {
		return "relaxed"
	}
	return "strict"
}

// ParseMode parses "strict" or "relaxed" (case-insensitive).
func ParseMode(s string) (LimitsMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "relaxed":
		return Relaxed, nil
	default:
		return Strict, fmt.Errorf("%w: %q", ErrUnknownLimitsMode, s)
	}
}

// Protocol bounds applied in Strict mode.
const (
	MinWaitTimeSeconds          = 1
	MaxWaitTimeSeconds          = 20
	MaxNumberOfMessages         = 10
	MaxDelaySeconds             = 900
	MaxVisibilityTimeoutSeconds = 43200
	MinRetentionPeriodSeconds   = 60
	MaxRetentionPeriodSeconds   = 1209600
	MaxMessageBodyBytes         = 262144
	MaxQueueNameLength          = 80
	MaxBatchEntries             = 10
	MaxBatchEntryIDLength       = 80
	MaxMessageAttributes        = 10
	MinMaximumMessageSize       = 1024
)

var nameRegexp = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Limits validates request parameters in the configured mode.
type Limits struct {
	mode LimitsMode
}

// NewLimits returns the policy for mode.
func NewLimits(mode LimitsMode) Limits {
	return Limits{mode: mode}
}

// Mode returns the enforcement mode.
func (l Limits) Mode() LimitsMode {
	return l.mode
}

// IfStrict returns a ValidationError tagged with code when the policy is
// Strict and condition holds. The condition is ignored in Relaxed mode.
func (l Limits) IfStrict(condition bool, code, format string, args ...any) error {
	if l.mode == Strict && condition {
		return NewValidationError(code, format, args...)
	}
	return nil
}

// ValidateWaitTime checks WaitTimeSeconds. Absent passes; negative always
// fails; Strict additionally requires MinWaitTimeSeconds..MaxWaitTimeSeconds.
func (l Limits) ValidateWaitTime(seconds *int) error {
	if seconds == nil {
		return nil
	}
	if *seconds < 0 {
		return NewValidationError(CodeInvalidParameterValue, "WaitTimeSeconds must be non-negative, got %d", *seconds)
	}
	return l.IfStrict(*seconds < MinWaitTimeSeconds || *seconds > MaxWaitTimeSeconds,
		CodeInvalidParameterValue,
		"WaitTimeSeconds must be between %d and %d seconds, got %d", MinWaitTimeSeconds, MaxWaitTimeSeconds, *seconds)
}

// ValidateQueueWaitTime checks the ReceiveMessageWaitTimeSeconds queue
// attribute. Unlike the per-request WaitTimeSeconds, zero is valid and turns
// long polling off.
func (l Limits) ValidateQueueWaitTime(seconds *int) error {
	if seconds == nil {
		return nil
	}
	if *seconds < 0 {
		return NewValidationError(CodeInvalidParameterValue, "ReceiveMessageWaitTimeSeconds must be non-negative, got %d", *seconds)
	}
	return l.IfStrict(*seconds > MaxWaitTimeSeconds, CodeInvalidParameterValue,
		"ReceiveMessageWaitTimeSeconds must be between 0 and %d seconds, got %d", MaxWaitTimeSeconds, *seconds)
}

// ValidateMaximumMessageSize checks the MaximumMessageSize queue attribute.
func (l Limits) ValidateMaximumMessageSize(size *int) error {
	if size == nil {
		return nil
	}
	if *size < 1 {
		return NewValidationError(CodeInvalidParameterValue, "MaximumMessageSize must be positive, got %d", *size)
	}
	return l.IfStrict(*size < MinMaximumMessageSize || *size > MaxMessageBodyBytes, CodeInvalidParameterValue,
		"MaximumMessageSize must be between %d and %d bytes, got %d", MinMaximumMessageSize, MaxMessageBodyBytes, *size)
}

// ValidateMaxNumberOfMessages checks the receive batch size.
func (l Limits) ValidateMaxNumberOfMessages(n *int) error {
	if n == nil {
		return nil
	}
	if *n < 1 {
		return NewValidationError(CodeReadCountOutOfRange, "MaxNumberOfMessages must be positive, got %d", *n)
	}
	return l.IfStrict(*n > MaxNumberOfMessages, CodeReadCountOutOfRange,
		"MaxNumberOfMessages must be between 1 and %d, got %d", MaxNumberOfMessages, *n)
}

// ValidateDelaySeconds checks DelaySeconds, per message or per queue.
func (l Limits) ValidateDelaySeconds(seconds *int) error {
	if seconds == nil {
		return nil
	}
	if *seconds < 0 {
		return NewValidationError(CodeInvalidParameterValue, "DelaySeconds must be non-negative, got %d", *seconds)
	}
	return l.IfStrict(*seconds > MaxDelaySeconds, CodeInvalidParameterValue,
		"DelaySeconds must be between 0 and %d, got %d", MaxDelaySeconds, *seconds)
}

// ValidateVisibilityTimeout checks VisibilityTimeout.
func (l Limits) ValidateVisibilityTimeout(seconds *int) error {
	if seconds == nil {
		return nil
	}
	if *seconds < 0 {
		return NewValidationError(CodeInvalidParameterValue, "VisibilityTimeout must be non-negative, got %d", *seconds)
	}
	return l.IfStrict(*seconds > MaxVisibilityTimeoutSeconds, CodeInvalidParameterValue,
		"VisibilityTimeout must be between 0 and %d, got %d", MaxVisibilityTimeoutSeconds, *seconds)
}

// ValidateRetentionPeriod checks MessageRetentionPeriod.
func (l Limits) ValidateRetentionPeriod(seconds *int) error {
	if seconds == nil {
		return nil
	}
	if *seconds < 0 {
		return NewValidationError(CodeInvalidParameterValue, "MessageRetentionPeriod must be non-negative, got %d", *seconds)
	}
	return l.IfStrict(*seconds < MinRetentionPeriodSeconds || *seconds > MaxRetentionPeriodSeconds,
		CodeInvalidParameterValue,
		"MessageRetentionPeriod must be between %d and %d, got %d", MinRetentionPeriodSeconds, MaxRetentionPeriodSeconds, *seconds)
}

// ValidateMessageBody checks the message body: it must not be empty; Strict
// also bounds its size and rejects characters outside the XML 1.0 set.
func (l Limits) ValidateMessageBody(body string) error {
	if body == "" {
		return NewValidationError(CodeMissingParameter, "the request must contain the parameter MessageBody")
	}
	if err := l.IfStrict(len(body) > MaxMessageBodyBytes, CodeInvalidParameterValue,
		"message must be shorter than %d bytes", MaxMessageBodyBytes); err != nil {
		return err
	}
	if l.mode == Strict {
		if r, ok := firstInvalidXMLRune(body); ok {
			return NewValidationError(CodeInvalidMessageContents, "message contains invalid characters (%U)", r)
		}
	}
	return nil
}

// ValidateQueueName checks a queue name.
func (l Limits) ValidateQueueName(name string) error {
	if name == "" {
		return NewValidationError(CodeMissingParameter, "the request must contain the parameter QueueName")
	}
	return l.IfStrict(len(name) > MaxQueueNameLength || !nameRegexp.MatchString(name),
		CodeInvalidParameterValue,
		"can only include alphanumeric characters, hyphens, or underscores; 1 to %d in length", MaxQueueNameLength)
}

// ValidateBatchEntryIDs checks the ids of a batch request.
func (l Limits) ValidateBatchEntryIDs(ids []string) error {
	if len(ids) == 0 {
		return NewValidationError(CodeEmptyBatchRequest, "there should be at least one entry in the request")
	}
	if err := l.IfStrict(len(ids) > MaxBatchEntries, CodeTooManyEntriesInBatchRequest,
		"maximum number of entries per request are %d, got %d", MaxBatchEntries, len(ids)); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return NewValidationError(CodeInvalidBatchEntryID, "batch entry id must not be empty")
		}
		if _, dup := seen[id]; dup {
			return NewValidationError(CodeBatchEntryIdsNotDistinct, "id %s was used more than once", id)
		}
		seen[id] = struct{}{}

		if err := l.IfStrict(len(id) > MaxBatchEntryIDLength || !nameRegexp.MatchString(id),
			CodeInvalidBatchEntryID,
			"id %s is invalid; only alphanumeric, hyphen and underscore are allowed, up to %d characters", id, MaxBatchEntryIDLength); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMessageAttributes checks the user-defined message attributes.
func (l Limits) ValidateMessageAttributes(attrs map[string]models.MessageAttribute) error {
	if err := l.IfStrict(len(attrs) > MaxMessageAttributes, CodeInvalidParameterValue,
		"number of message attributes [%d] exceeds the allowed maximum [%d]", len(attrs), MaxMessageAttributes); err != nil {
		return err
	}
	for name, attr := range attrs {
		if name == "" {
			return NewValidationError(CodeInvalidParameterValue, "message attribute name must not be empty")
		}
		if !validAttributeType(attr.DataType) {
			return NewValidationError(CodeInvalidParameterValue, "message attribute %s has invalid data type %q", name, attr.DataType)
		}
	}
	return nil
}

func validAttributeType(dataType string) bool {
	for _, base := range []string{models.AttributeTypeString, models.AttributeTypeNumber, models.AttributeTypeBinary} {
		if dataType == base || strings.HasPrefix(dataType, base+".") {
			return true
		}
	}
	return false
}

// firstInvalidXMLRune returns the first rune outside
// #x9 | #xA | #xD | [#x20-#xD7FF] | [#xE000-#xFFFD] | [#x10000-#x10FFFF].
func firstInvalidXMLRune(s string) (rune, bool) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return r, true
		}
		switch {
		case r == 0x9, r == 0xA, r == 0xD:
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return r, true
		}
		i += size
	}
	return 0, false
}
