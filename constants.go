package kyber768

import "github.com/vaultsandbox/kyber-go/internal/params"

const (
	// PublicKeySize is the size of a Kyber-768 public key in bytes.
	PublicKeySize = params.PublicKeySize
	// SecretKeySize is the size of a Kyber-768 secret key in bytes.
	SecretKeySize = params.SecretKeySize
	// CiphertextSize is the size of a Kyber-768 ciphertext in bytes.
	CiphertextSize = params.CiphertextSize
	// SharedSecretSize is the size of the established shared secret in bytes.
	SharedSecretSize = params.SharedSecretSize

	// SeedSize is the size of the seed d ‖ z accepted by NewKeyPairFromSeed.
	SeedSize = 2 * params.SymSize
	// EncapsulationSeedSize is the size of the seed accepted by
	// EncapsulateDeterministically.
	EncapsulationSeedSize = params.SymSize

	// PublicKeyOffset is the byte offset where the public key is embedded
	// within a secret key.
	PublicKeyOffset = params.CPASecretKeySize

	hashOffset = PublicKeyOffset + PublicKeySize
	zOffset    = hashOffset + params.SymSize
)
