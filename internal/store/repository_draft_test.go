package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/models"
)

func sampleDraft() models.Draft {
	return models.Draft{
		DraftID:   "d1",
		Kind:      models.KindClient,
		Fields:    models.Fields{"first_name": "Mario"},
		State:     models.DraftInProgress,
		Applied:   map[string]int64{"identity": 1},
		Revision:  1,
		UpdatedAt: time.UnixMilli(1_700_000_000_000).UTC(),
	}
}

func TestDraftRepository_SaveDraft(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDraftRepository(db, logger.Nop())
	d := sampleDraft()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM drafts WHERE kind = \\? AND draft_id <> \\?").
		WithArgs("client", "d1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO drafts").
		WithArgs("d1", "client", sqlmock.AnyArg(), int64(1_700_000_000_000)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SaveDraft(context.Background(), d))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepository_SaveDraft_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDraftRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM drafts").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO drafts").WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := repo.SaveDraft(context.Background(), sampleDraft())

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDraftRepository_SaveDraft_BeginError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDraftRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("boom"))

	assert.ErrorIs(t, repo.SaveDraft(context.Background(), sampleDraft()), ErrBeginningTransaction)
}

func TestDraftRepository_LoadLatestDraft(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDraftRepository(db, logger.Nop())
	want := sampleDraft()
	payload, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT payload FROM drafts").
		WithArgs("client").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(string(payload)))

	got, err := repo.LoadLatestDraft(context.Background(), models.KindClient)

	require.NoError(t, err)
	assert.Equal(t, want.DraftID, got.DraftID)
	assert.Equal(t, want.Applied, got.Applied)
	assert.Equal(t, "Mario", got.Fields.String("first_name"))
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
}

func TestDraftRepository_LoadLatestDraft_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDraftRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT payload FROM drafts").WillReturnError(sql.ErrNoRows)

	_, err := repo.LoadLatestDraft(context.Background(), models.KindAgent)

	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftRepository_LoadLatestDraft_CorruptPayload(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDraftRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT payload FROM drafts").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow("{broken"))

	_, err := repo.LoadLatestDraft(context.Background(), models.KindClient)

	assert.ErrorIs(t, err, ErrEncodingDraft)
}

func TestDraftRepository_DeleteDraft(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDraftRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM drafts WHERE draft_id = \\?").
		WithArgs("d1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteDraft(context.Background(), "d1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
