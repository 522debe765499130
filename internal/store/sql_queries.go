// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const queuesTable = "queues"

var queueColumns = []string{
	"name",
	"visibility_timeout_seconds",
	"delay_seconds",
	"receive_wait_seconds",
	"retention_seconds",
	"maximum_message_size",
	"created_at",
	"last_modified_at",
}

const upsertQueueSuffix = `ON CONFLICT (name) DO UPDATE SET
	visibility_timeout_seconds = EXCLUDED.visibility_timeout_seconds,
	delay_seconds = EXCLUDED.delay_seconds,
	receive_wait_seconds = EXCLUDED.receive_wait_seconds,
	retention_seconds = EXCLUDED.retention_seconds,
	maximum_message_size = EXCLUDED.maximum_message_size,
	last_modified_at = EXCLUDED.last_modified_at`

func buildUpsertQueue(format sq.PlaceholderFormat, row queueRow) (string, []any, error) {
	query, args, err := sq.Insert(queuesTable).
		Columns(queueColumns...).
		Values(row.values()...).
		Suffix(upsertQueueSuffix).
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteQueue(format sq.PlaceholderFormat, name string) (string, []any, error) {
	query, args, err := sq.Delete(queuesTable).
		Where(sq.Eq{"name": name}).
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildLoadQueues(format sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Select(queueColumns...).
		From(queuesTable).
		OrderBy("name").
		PlaceholderFormat(format).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
