package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/models"
)

type draftRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewDraftRepository(db *DB, logger *logger.Logger) DraftRepository {
	return &draftRepository{db: db, logger: logger}
}

// SaveDraft upserts the snapshot and drops older snapshots of the same kind
// in one transaction.
func (r *draftRepository) SaveDraft(ctx context.Context, draft models.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDraft, err)
	}

	updatedAt := draft.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	cleanupQuery, cleanupArgs, err := buildDeleteOtherDraftsQuery(draft.Kind.String(), draft.DraftID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	saveQuery, saveArgs, err := buildSaveDraftQuery(draft.DraftID, draft.Kind.String(), string(payload), updatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, cleanupQuery, cleanupArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if _, err = tx.ExecContext(ctx, saveQuery, saveArgs...); err != nil {
		r.logger.Err(err).
			Str("func", "draftRepository.SaveDraft").
			Str("draft_id", draft.DraftID).
			Msg("failed to save draft snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (r *draftRepository) LoadLatestDraft(ctx context.Context, kind models.EntityKind) (models.Draft, error) {
	query, args, err := buildLatestDraftQuery(kind.String())
	if err != nil {
		return models.Draft{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Draft{}, ErrDraftNotFound
	}
	if err != nil {
		return models.Draft{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var draft models.Draft
	if err = json.Unmarshal([]byte(payload), &draft); err != nil {
		r.logger.Warn().Err(err).
			Str("func", "draftRepository.LoadLatestDraft").
			Str("kind", kind.String()).
			Msg("stored draft snapshot is unreadable")
		return models.Draft{}, fmt.Errorf("%w: %w", ErrEncodingDraft, err)
	}
	return draft, nil
}

func (r *draftRepository) DeleteDraft(ctx context.Context, draftID string) error {
	query, args, err := buildDeleteDraftQuery(draftID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
