// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	tableKV     = "kv"
	tableDrafts = "drafts"
)

// builder renders sqlite "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetValueQuery(key string) (string, []any, error) {
	return builder.
		Select("value").
		From(tableKV).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildPutValueQuery(key, value string, updatedAt int64) (string, []any, error) {
	return builder.
		Insert(tableKV).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteValueQuery(key string) (string, []any, error) {
	return builder.
		Delete(tableKV).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildDeleteOtherDraftsQuery removes every snapshot of kind except draftID.
func buildDeleteOtherDraftsQuery(kind, draftID string) (string, []any, error) {
	return builder.
		Delete(tableDrafts).
		Where(sq.Eq{"kind": kind}).
		Where(sq.NotEq{"draft_id": draftID}).
		ToSql()
}

func buildSaveDraftQuery(draftID, kind, payload string, updatedAt int64) (string, []any, error) {
	return builder.
		Insert(tableDrafts).
		Columns("draft_id", "kind", "payload", "updated_at").
		Values(draftID, kind, payload, updatedAt).
		Suffix("ON CONFLICT(draft_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
}

func buildLatestDraftQuery(kind string) (string, []any, error) {
	return builder.
		Select("payload").
		From(tableDrafts).
		Where(sq.Eq{"kind": kind}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
}

func buildDeleteDraftQuery(draftID string) (string, []any, error) {
	return builder.
		Delete(tableDrafts).
		Where(sq.Eq{"draft_id": draftID}).
		ToSql()
}
