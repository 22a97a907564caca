package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/token_sealer_mock.go -package=mock

// TokenSealer protects the session token at rest. The sealed form is an
// opaque printable string that is safe to write into the local database.
type TokenSealer interface {
	// Seal encrypts plaintext with a key derived from the local secret.
	// Each call uses a fresh salt and nonce, so sealing the same value twice
	// yields different outputs.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. It returns ErrSealedValueCorrupted when the value
	// was produced with another secret or was tampered with.
	Open(sealed string) (string, error)
}
