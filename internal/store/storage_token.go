package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/sales-admin/internal/crypto"
	"github.com/MKhiriev/sales-admin/internal/logger"
)

// SessionTokenKey is the kv key of the sealed session token.
const SessionTokenKey = "session_token"

// sealedTokenStorage keeps the session token sealed at rest.
type sealedTokenStorage struct {
	kv     KeyValueRepository
	sealer crypto.TokenSealer
	logger *logger.Logger
}

func NewTokenStorage(kv KeyValueRepository, sealer crypto.TokenSealer, logger *logger.Logger) TokenStorage {
	return &sealedTokenStorage{kv: kv, sealer: sealer, logger: logger}
}

func (s *sealedTokenStorage) Get(ctx context.Context) (string, error) {
	sealed, err := s.kv.GetValue(ctx, SessionTokenKey)
	if errors.Is(err, ErrValueNotFound) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}

	token, err := s.sealer.Open(sealed)
	if err != nil {
		s.logger.Warn().Err(err).Msg("stored session token cannot be unsealed")
		return "", fmt.Errorf("unseal session token: %w", err)
	}
	return token, nil
}

func (s *sealedTokenStorage) Set(ctx context.Context, token string) error {
	sealed, err := s.sealer.Seal(token)
	if err != nil {
		return fmt.Errorf("seal session token: %w", err)
	}

	if err = s.kv.PutValue(ctx, SessionTokenKey, sealed); err != nil {
		return fmt.Errorf("write session token: %w", err)
	}
	return nil
}

func (s *sealedTokenStorage) Remove(ctx context.Context) error {
	if err := s.kv.DeleteValue(ctx, SessionTokenKey); err != nil {
		return fmt.Errorf("remove session token: %w", err)
	}
	return nil
}
