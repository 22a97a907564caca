// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetValueQuery(t *testing.T) {
	query, args, err := buildGetValueQuery(SessionTokenKey)
	require.NoError(t, err)

	assert.Equal(t, "SELECT value FROM kv WHERE key = ?", query)
	assert.Equal(t, []any{SessionTokenKey}, args)
}

func Test_buildPutValueQuery_Upserts(t *testing.T) {
	query, args, err := buildPutValueQuery("k", "v", 42)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into kv (key,value,updated_at) values (?,?,?)")
	assert.Contains(t, q, "on conflict(key) do update")
	assert.Equal(t, []any{"k", "v", int64(42)}, args)
	assert.NotContains(t, query, "$1", "sqlite uses ? placeholders")
}

func Test_buildDeleteOtherDraftsQuery(t *testing.T) {
	query, args, err := buildDeleteOtherDraftsQuery("client", "d1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM drafts WHERE kind = ? AND draft_id <> ?", query)
	assert.Equal(t, []any{"client", "d1"}, args)
}

func Test_buildLatestDraftQuery(t *testing.T) {
	query, args, err := buildLatestDraftQuery("agent")
	require.NoError(t, err)

	assert.Equal(t, "SELECT payload FROM drafts WHERE kind = ? ORDER BY updated_at DESC LIMIT 1", query)
	assert.Equal(t, []any{"agent"}, args)
}

func Test_buildSaveDraftQuery(t *testing.T) {
	query, args, err := buildSaveDraftQuery("d1", "client", "{}", 7)
	require.NoError(t, err)

	assert.Contains(t, strings.ToLower(query), "on conflict(draft_id) do update")
	assert.Equal(t, []any{"d1", "client", "{}", int64(7)}, args)
}

func Test_buildDeleteDraftQuery(t *testing.T) {
	query, args, err := buildDeleteDraftQuery("d1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM drafts WHERE draft_id = ?", query)
	assert.Equal(t, []any{"d1"}, args)
}
