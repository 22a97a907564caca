package service

import (
	"context"
	"time"

	"github.com/MKhiriev/sales-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService owns the authentication state of the process. All
// mutations go through its methods; readers use the projections or
// Subscribe.
type SessionService interface {
	// Bootstrap verifies the persisted token once per process. Later calls
	// return the result of the first one. Verification failures are absorbed:
	// the session ends anonymous and initialized. Only a cancelled ctx is
	// reported, and even then the session is initialized.
	Bootstrap(ctx context.Context) error

	// Login authenticates against the backend. On success the token is
	// persisted and attached to the adapter before the session is marked
	// logged in, then the OnLoggedIn hook runs. On failure the session is
	// left unchanged and an error wrapping ErrWrongCredentials or
	// ErrLoginFailed is returned.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Logout removes the persisted token, detaches it from the adapter and
	// resets the session to anonymous. Calling it repeatedly is harmless.
	Logout(ctx context.Context)

	// HandleUnauthorized moves a logged-in session to anonymous after the
	// backend rejected its token, then runs the OnLoggedOut hook. It does
	// nothing in any other state.
	HandleUnauthorized()

	// CheckExpiry ends the session like HandleUnauthorized when its token
	// expired at now. It reports whether the session was ended.
	CheckExpiry(now time.Time) bool

	Snapshot() models.Session
	IsLoggedIn() bool
	IsInitialized() bool
	CurrentToken() string
	CurrentUser() *models.User

	// Subscribe returns a channel that always holds the latest session
	// snapshot, starting with the current one. Intermediate snapshots may be
	// skipped by a slow reader. The returned func unsubscribes and closes the
	// channel.
	Subscribe() (<-chan models.Session, func())

	// OnLoggedIn registers the redirect hook run after a successful Login.
	OnLoggedIn(fn func(models.User))

	// OnLoggedOut registers the redirect hook run after HandleUnauthorized
	// or an expiry ended the session.
	OnLoggedOut(fn func())
}

// DraftService is the wizard controller for one entity kind. Edits are kept
// in memory until Commit; Autosave snapshots unfinished drafts locally.
type DraftService interface {
	Kind() models.EntityKind

	// Steps returns the wizard steps that must be applied before Commit.
	Steps() []string

	// StartCreate replaces the draft with an empty record for a new entity.
	StartCreate(ctx context.Context) (models.Draft, error)

	// StartEdit replaces the draft with a placeholder for entity id, then
	// fetches the entity and merges it under any local edits made in the
	// meantime. The placeholder stays in place if the fetch fails.
	StartEdit(ctx context.Context, id models.ID) (models.Draft, error)

	// UpdateField shallow-merges patch into the draft without validation.
	UpdateField(patch models.Fields) (models.Draft, error)

	// Apply merges the patch of one wizard step and records the step as
	// applied. Once every step is applied the draft is ready to commit.
	Apply(step string, patch models.Fields) (models.Confirmation, error)

	// Commit validates the draft and creates or updates the entity. On
	// success the draft is reset and the persisted entity id returned; on
	// failure the draft is left intact for correction.
	Commit(ctx context.Context) (models.ID, error)

	// Discard drops the draft and its local snapshot.
	Discard(ctx context.Context) error

	// Draft returns a copy of the current draft.
	Draft() models.Draft

	// Restore reloads the latest local snapshot when no draft is active.
	// It reports whether a draft was restored.
	Restore(ctx context.Context) (bool, error)

	// Autosave snapshots the active draft if it changed since the last
	// snapshot. It reports whether a snapshot was written.
	Autosave(ctx context.Context) (bool, error)
}

// EntityService lists and deletes backend entities.
type EntityService interface {
	ListClients(ctx context.Context, hidden bool) ([]models.Client, error)
	ListAgents(ctx context.Context, hidden bool) ([]models.Agent, error)

	// Get returns every field of one entity.
	Get(ctx context.Context, kind models.EntityKind, id models.ID) (models.Fields, error)

	// Delete removes the entity. ErrHasAssociations is returned when the
	// backend refused because the entity still has dependent contracts.
	Delete(ctx context.Context, kind models.EntityKind, id models.ID) error
}
