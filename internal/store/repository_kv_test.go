package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sales-admin/internal/logger"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &DB{DB: db, logger: logger.Nop()}, mock
}

func TestKeyValueRepository_GetValue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewKeyValueRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
		WithArgs("session_token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("sealed"))

	got, err := repo.GetValue(context.Background(), "session_token")

	require.NoError(t, err)
	assert.Equal(t, "sealed", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRepository_GetValue_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewKeyValueRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT value FROM kv").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetValue(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrValueNotFound)
}

func TestKeyValueRepository_GetValue_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewKeyValueRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT value FROM kv").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.GetValue(context.Background(), "k")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestKeyValueRepository_PutValue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewKeyValueRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO kv").
		WithArgs("k", "v", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.PutValue(context.Background(), "k", "v"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRepository_PutValue_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewKeyValueRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO kv").WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, repo.PutValue(context.Background(), "k", "v"), ErrExecutingStatement)
}

func TestKeyValueRepository_DeleteValue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewKeyValueRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv WHERE key = ?")).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteValue(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
