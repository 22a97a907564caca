// Package store keeps the client state that must survive a restart: the
// sealed session token and snapshots of unfinished drafts. Both live in a
// local sqlite database.
package store

import (
	"context"

	"github.com/MKhiriev/sales-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenStorage persists the session token. Get returns ErrTokenNotFound
// when no token is stored.
type TokenStorage interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Remove(ctx context.Context) error
}

// KeyValueRepository is the low-level string key/value table behind
// TokenStorage. GetValue returns ErrValueNotFound for a missing key.
type KeyValueRepository interface {
	GetValue(ctx context.Context, key string) (string, error)
	PutValue(ctx context.Context, key, value string) error
	DeleteValue(ctx context.Context, key string) error
}

// DraftRepository stores at most one snapshot per entity kind: saving a
// draft replaces any older snapshot of the same kind.
type DraftRepository interface {
	SaveDraft(ctx context.Context, draft models.Draft) error
	// LoadLatestDraft returns ErrDraftNotFound when kind has no snapshot.
	LoadLatestDraft(ctx context.Context, kind models.EntityKind) (models.Draft, error)
	DeleteDraft(ctx context.Context, draftID string) error
}
