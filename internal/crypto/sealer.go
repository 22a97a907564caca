// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

var (
	// ErrEmptySecret is returned by NewTokenSealer for an empty secret.
	ErrEmptySecret = errors.New("empty sealing secret")
	// ErrSealedValueCorrupted is returned by Open for a value that cannot be
	// decoded or authenticated.
	ErrSealedValueCorrupted = errors.New("sealed value is corrupted")
)

// tokenSealer is the private implementation of [TokenSealer].
//
// Layout of a sealed value: base64(salt ‖ nonce ‖ ciphertext).
type tokenSealer struct {
	secret []byte

	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewTokenSealer constructs a [TokenSealer] keyed by secret (APP_HASH_KEY).
// The key is derived with Argon2id at 1 iteration, 19 MiB, 1 thread,
// 32 bytes, which keeps a startup unseal well under a second.
func NewTokenSealer(secret string) (TokenSealer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &tokenSealer{
		secret:       []byte(secret),
		argonTime:    1,
		argonMemory:  19 * 1024,
		argonThreads: 1,
		argonKeyLen:  32,
	}, nil
}

// Seal implements [TokenSealer].
func (s *tokenSealer) Seal(plaintext string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	gcm, err := s.aead(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [TokenSealer].
func (s *tokenSealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSealedValueCorrupted, err)
	}
	if len(blob) < saltSize {
		return "", ErrSealedValueCorrupted
	}

	gcm, err := s.aead(blob[:saltSize])
	if err != nil {
		return "", err
	}

	rest := blob[saltSize:]
	if len(rest) < gcm.NonceSize() {
		return "", ErrSealedValueCorrupted
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSealedValueCorrupted, err)
	}
	return string(plaintext), nil
}

func (s *tokenSealer) aead(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(s.secret, salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
