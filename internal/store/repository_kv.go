package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/sales-admin/internal/logger"
)

type keyValueRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	return &keyValueRepository{db: db, logger: logger}
}

func (r *keyValueRepository) GetValue(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrValueNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.GetValue").
			Str("key", key).
			Msg("failed to read value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *keyValueRepository) PutValue(ctx context.Context, key, value string) error {
	query, args, err := buildPutValueQuery(key, value, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.PutValue").
			Str("key", key).
			Msg("failed to write value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteValue is a no-op for a missing key.
func (r *keyValueRepository) DeleteValue(ctx context.Context, key string) error {
	query, args, err := buildDeleteValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.DeleteValue").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
