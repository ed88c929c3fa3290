package kyber768

import (
	"crypto/subtle"
	"fmt"

	"github.com/vaultsandbox/kyber-go/internal/params"
	"github.com/vaultsandbox/kyber-go/internal/pke"
	"github.com/vaultsandbox/kyber-go/internal/symmetric"
)

// GenerateKeyPair creates a new Kyber-768 key pair from 64 fresh random
// bytes.
func GenerateKeyPair(opts ...Option) (*KeyPair, error) {
	seed, err := newConfig(opts).read("generate key pair", SeedSize)
	if err != nil {
		return nil, err
	}
	return NewKeyPairFromSeed(seed)
}

// NewKeyPairFromSeed derives a key pair deterministically from seed = d ‖ z.
// d seeds the CPA key; z is the secret rejection value.
func NewKeyPairFromSeed(seed []byte) (*KeyPair, error) {
	if err := checkLength("seed", seed, SeedSize); err != nil {
		return nil, err
	}

	var d [params.SymSize]byte
	copy(d[:], seed[:params.SymSize])
	pk, sk := pke.GenerateKey(d)

	publicKey := pk.Bytes()
	hpk := symmetric.H(publicKey)

	secretKey := make([]byte, 0, SecretKeySize)
	secretKey = append(secretKey, sk.Bytes()...)
	secretKey = append(secretKey, publicKey...)
	secretKey = append(secretKey, hpk[:]...)
	secretKey = append(secretKey, seed[params.SymSize:]...)

	return newKeyPair(publicKey, secretKey), nil
}

// Encapsulate generates a fresh shared secret for publicKey and returns it
// together with the ciphertext that carries it.
func Encapsulate(publicKey []byte, opts ...Option) (ciphertext, sharedSecret []byte, err error) {
	pk, err := parsePublicKey(publicKey)
	if err != nil {
		return nil, nil, err
	}
	seed, err := newConfig(opts).read("encapsulate", EncapsulationSeedSize)
	if err != nil {
		return nil, nil, err
	}
	ciphertext, sharedSecret = encapsulate(pk, publicKey, seed)
	return ciphertext, sharedSecret, nil
}

// EncapsulateDeterministically is Encapsulate with the caller supplying the
// 32 random bytes. Reusing a seed for the same key reproduces the same
// ciphertext and secret.
func EncapsulateDeterministically(publicKey, seed []byte) (ciphertext, sharedSecret []byte, err error) {
	pk, err := parsePublicKey(publicKey)
	if err != nil {
		return nil, nil, err
	}
	if err := checkLength("encapsulation seed", seed, EncapsulationSeedSize); err != nil {
		return nil, nil, err
	}
	ciphertext, sharedSecret = encapsulate(pk, publicKey, seed)
	return ciphertext, sharedSecret, nil
}

func parsePublicKey(publicKey []byte) (*pke.PublicKey, error) {
	if err := checkLength("public key", publicKey, PublicKeySize); err != nil {
		return nil, err
	}
	pk, err := pke.ParsePublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return pk, nil
}

func encapsulate(pk *pke.PublicKey, publicKey, seed []byte) (ciphertext, sharedSecret []byte) {
	// m = H(seed)
	m := symmetric.H(seed)

	// (K̄, coins) = G(m ‖ H(pk))
	hpk := symmetric.H(publicKey)
	kBar, coins := symmetric.G(m[:], hpk[:])

	ciphertext = pk.Encrypt(m, coins)

	// K = KDF(K̄ ‖ H(c))
	hc := symmetric.H(ciphertext)
	ss := symmetric.KDF(kBar[:], hc[:])
	return ciphertext, ss[:]
}

// Decapsulate recovers the shared secret carried by ciphertext.
//
// Only malformed inputs produce an error. A well-sized ciphertext that was
// not produced for this key yields KDF(z ‖ H(c)) instead of the encapsulated
// secret, computed along the same path as a valid one.
func Decapsulate(secretKey, ciphertext []byte) ([]byte, error) {
	if err := checkLength("secret key", secretKey, SecretKeySize); err != nil {
		return nil, err
	}
	if err := checkLength("ciphertext", ciphertext, CiphertextSize); err != nil {
		return nil, err
	}

	sk, err := pke.ParsePrivateKey(secretKey[:PublicKeyOffset])
	if err != nil {
		return nil, fmt.Errorf("parse secret key: %w", err)
	}
	publicKey := secretKey[PublicKeyOffset:hashOffset]
	pk, err := pke.ParsePublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("parse embedded public key: %w", err)
	}
	hpk := secretKey[hashOffset:zOffset]
	if h := symmetric.H(publicKey); subtle.ConstantTimeCompare(h[:], hpk) != 1 {
		return nil, fmt.Errorf("%w: embedded public key hash", ErrKeyMismatch)
	}
	z := secretKey[zOffset:]

	// m′ = Dec(sk, c); the length is already checked so this cannot fail.
	m, err := sk.Decrypt(ciphertext)
	if err != nil {
		return nil, err
	}

	// (K̄′, coins′) = G(m′ ‖ H(pk))
	kBar, coins := symmetric.G(m[:], hpk)

	// c′ = Enc(pk, m′, coins′)
	ciphertext2 := pk.Encrypt(m, coins)

	// Replace K̄′ by z when c ≠ c′.
	subtle.ConstantTimeCopy(1-subtle.ConstantTimeCompare(ciphertext, ciphertext2), kBar[:], z)

	// K = KDF(K̄′/z ‖ H(c))
	hc := symmetric.H(ciphertext)
	ss := symmetric.KDF(kBar[:], hc[:])
	return ss[:], nil
}
