// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec holds the wire-format helpers every SQS operation shares:
// the message checksums reported as MD5OfMessageBody / MD5OfMessageAttributes
// and the XML text encoding that keeps carriage returns intact in message
// bodies.
//
// All functions are pure and safe for concurrent use.
package codec
