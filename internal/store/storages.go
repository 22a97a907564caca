package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sales-admin/internal/config"
	"github.com/MKhiriev/sales-admin/internal/crypto"
	"github.com/MKhiriev/sales-admin/internal/logger"
)

// ClientStorages groups the client repositories opened on one sqlite file.
type ClientStorages struct {
	// Tokens keeps the sealed session token.
	Tokens TokenStorage

	// Drafts keeps snapshots of unfinished drafts.
	Drafts DraftRepository

	db *DB
}

// NewClientStorages opens the sqlite file named by cfg.DB.DSN, applies the
// migrations and wires the repositories. Tokens are sealed with sealer.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, sealer crypto.TokenSealer, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Tokens: NewTokenStorage(NewKeyValueRepository(db, logger), sealer, logger),
		Drafts: NewDraftRepository(db, logger),
		db:     db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
