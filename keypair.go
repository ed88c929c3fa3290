package kyber768

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/vaultsandbox/kyber-go/internal/pke"
)

// KeyPair holds an encoded Kyber-768 key pair.
type KeyPair struct {
	// PublicKey is the raw 1184-byte public key.
	PublicKey []byte
	// SecretKey is the raw 2400-byte secret key.
	SecretKey []byte
	// PublicKeyB64 is the public key encoded as URL-safe base64.
	PublicKeyB64 string
}

func newKeyPair(publicKey, secretKey []byte) *KeyPair {
	return &KeyPair{
		PublicKey:    publicKey,
		SecretKey:    secretKey,
		PublicKeyB64: base64.RawURLEncoding.EncodeToString(publicKey),
	}
}

// KeyPairFromSecretKey reconstructs a key pair from the secret key.
// The public key is embedded in the secret key at PublicKeyOffset.
func KeyPairFromSecretKey(secretKey []byte) (*KeyPair, error) {
	publicKey, err := PublicKeyFromSecretKey(secretKey)
	if err != nil {
		return nil, err
	}
	return newKeyPair(publicKey, bytes.Clone(secretKey)), nil
}

// NewKeyPairFromBytes creates a key pair from raw bytes. Both keys are
// decoded, and the public key must be the one embedded in the secret key.
func NewKeyPairFromBytes(secretKey, publicKey []byte) (*KeyPair, error) {
	if err := checkLength("secret key", secretKey, SecretKeySize); err != nil {
		return nil, err
	}
	if err := checkLength("public key", publicKey, PublicKeySize); err != nil {
		return nil, err
	}

	if _, err := pke.ParsePrivateKey(secretKey[:PublicKeyOffset]); err != nil {
		return nil, fmt.Errorf("parse secret key: %w", err)
	}
	if _, err := pke.ParsePublicKey(publicKey); err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	if !bytes.Equal(secretKey[PublicKeyOffset:hashOffset], publicKey) {
		return nil, fmt.Errorf("%w: public key is not embedded in secret key", ErrKeyMismatch)
	}

	return newKeyPair(bytes.Clone(publicKey), bytes.Clone(secretKey)), nil
}

// ValidateKeyPair reports whether a key pair has the correct structure and
// sizes.
func ValidateKeyPair(kp *KeyPair) bool {
	if kp == nil {
		return false
	}

	if kp.PublicKey == nil || kp.SecretKey == nil || kp.PublicKeyB64 == "" {
		return false
	}

	if len(kp.PublicKey) != PublicKeySize || len(kp.SecretKey) != SecretKeySize {
		return false
	}

	if !bytes.Equal(kp.SecretKey[PublicKeyOffset:hashOffset], kp.PublicKey) {
		return false
	}

	// Verify base64url encoding matches public key bytes
	decoded, err := base64.RawURLEncoding.DecodeString(kp.PublicKeyB64)
	if err != nil {
		return false
	}
	return bytes.Equal(decoded, kp.PublicKey)
}

// PublicKeyFromSecretKey extracts a copy of the public key embedded in a
// secret key.
func PublicKeyFromSecretKey(secretKey []byte) ([]byte, error) {
	if err := checkLength("secret key", secretKey, SecretKeySize); err != nil {
		return nil, err
	}
	return bytes.Clone(secretKey[PublicKeyOffset:hashOffset]), nil
}

// Decapsulate recovers the shared secret carried by ciphertext.
func (k *KeyPair) Decapsulate(ciphertext []byte) ([]byte, error) {
	return Decapsulate(k.SecretKey, ciphertext)
}

// Encapsulate generates a shared secret for the pair's public key.
func (k *KeyPair) Encapsulate(opts ...Option) (ciphertext, sharedSecret []byte, err error) {
	return Encapsulate(k.PublicKey, opts...)
}
