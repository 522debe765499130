// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Sentinel errors returned by QueueEngine implementations.
var (
	ErrQueueDoesNotExist    = errors.New("the specified queue does not exist")
	ErrQueueAlreadyExists   = errors.New("a queue already exists with the same name and a different value for attribute")
	ErrReceiptHandleInvalid = errors.New("the receipt handle is not valid")
	ErrMessageNotInflight   = errors.New("the message is not in flight")
	ErrEngineClosed         = errors.New("queue engine is closed")
)
