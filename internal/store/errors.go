package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrValueNotFound is returned by KeyValueRepository.GetValue for a
	// missing key.
	ErrValueNotFound = errors.New("value not found")

	// ErrTokenNotFound is returned by TokenStorage.Get when no session
	// token is stored.
	ErrTokenNotFound = errors.New("token not found")

	// ErrDraftNotFound is returned by DraftRepository.LoadLatestDraft when
	// no snapshot of the requested kind exists.
	ErrDraftNotFound = errors.New("draft not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingDraft is returned when a draft cannot be converted to or
	// from its stored JSON payload.
	ErrEncodingDraft = errors.New("failed to encode draft")
)
