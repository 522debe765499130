// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrUnsupportedDSN is returned when the DSN is empty.
	ErrUnsupportedDSN = errors.New("unsupported catalog DSN")

	// ErrBuildingSQLQuery is returned when squirrel cannot build a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query or statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when a result row cannot be scanned.
	ErrScanningRows = errors.New("failed to scan queue rows")
)
