package envelope

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	kyber768 "github.com/vaultsandbox/kyber-go"
)

// Envelope is a sealed payload in its wire form.
type Envelope struct {
	// V is the envelope version number.
	V int `json:"v"`
	// Algs names the algorithm suite.
	Algs Algorithms `json:"algs"`
	// CtKem is the Kyber-768 ciphertext (base64url-encoded).
	CtKem string `json:"ct_kem"`
	// Nonce is the AES-GCM nonce (base64url-encoded).
	Nonce string `json:"nonce"`
	// AAD is the additional authenticated data (base64url-encoded).
	AAD string `json:"aad"`
	// Ciphertext is the AES-GCM ciphertext and tag (base64url-encoded).
	Ciphertext string `json:"ciphertext"`
}

// Algorithms names the primitives an envelope was sealed with.
type Algorithms struct {
	KEM  string `json:"kem"`
	AEAD string `json:"aead"`
	KDF  string `json:"kdf"`
}

// DefaultAlgorithms is the only suite this package implements.
var DefaultAlgorithms = Algorithms{KEM: AlgKEM, AEAD: AlgAEAD, KDF: AlgKDF}

type sealConfig struct {
	random io.Reader
}

// Option configures Seal.
type Option func(*sealConfig)

// WithRandom sets the source of randomness for both the KEM and the nonce.
func WithRandom(r io.Reader) Option {
	return func(c *sealConfig) {
		c.random = r
	}
}

// Seal encrypts plaintext to publicKey. aad is authenticated but not
// encrypted, and travels in the envelope.
func Seal(publicKey, plaintext, aad []byte, opts ...Option) (*Envelope, error) {
	cfg := &sealConfig{random: rand.Reader}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.random == nil {
		cfg.random = rand.Reader
	}

	// 1. KEM encapsulation
	ctKem, sharedSecret, err := kyber768.Encapsulate(publicKey, kyber768.WithRandom(cfg.random))
	if err != nil {
		return nil, fmt.Errorf("encapsulate: %w", err)
	}

	// 2. Key derivation (HKDF-SHA-512)
	key, err := envelopeKey(sharedSecret, ctKem, aad)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	// 3. AES-256-GCM encryption
	nonce := make([]byte, AESNonceSize)
	if _, err := io.ReadFull(cfg.random, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	ciphertext, err := sealAESGCM(key, nonce, aad, plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	return &Envelope{
		V:          Version,
		Algs:       DefaultAlgorithms,
		CtKem:      ToBase64URL(ctKem),
		Nonce:      ToBase64URL(nonce),
		AAD:        ToBase64URL(aad),
		Ciphertext: ToBase64URL(ciphertext),
	}, nil
}

// decoded holds the binary fields of a checked envelope.
type decoded struct {
	ctKem, nonce, aad, ciphertext []byte
}

func (e *Envelope) decode() (*decoded, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrInvalidPayload)
	}
	if e.V != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, e.V)
	}
	if e.Algs != DefaultAlgorithms {
		return nil, fmt.Errorf("%w: %s:%s:%s", ErrInvalidAlgorithm, e.Algs.KEM, e.Algs.AEAD, e.Algs.KDF)
	}

	var d decoded
	fields := []struct {
		name string
		in   string
		out  *[]byte
	}{
		{"ct_kem", e.CtKem, &d.ctKem},
		{"nonce", e.Nonce, &d.nonce},
		{"aad", e.AAD, &d.aad},
		{"ciphertext", e.Ciphertext, &d.ciphertext},
	}
	for _, f := range fields {
		b, err := FromBase64URL(f.in)
		if err != nil {
			return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidPayload, f.name, err)
		}
		*f.out = b
	}

	if len(d.ctKem) != kyber768.CiphertextSize {
		return nil, fmt.Errorf("%w: ct_kem is %d bytes, want %d", ErrInvalidSize, len(d.ctKem), kyber768.CiphertextSize)
	}
	if len(d.nonce) != AESNonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrInvalidSize, len(d.nonce), AESNonceSize)
	}
	if len(d.ciphertext) < AESTagSize {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, need at least %d", ErrInvalidSize, len(d.ciphertext), AESTagSize)
	}
	return &d, nil
}

// Validate checks the version, algorithm suite, encodings and field sizes
// without decrypting.
func (e *Envelope) Validate() error {
	_, err := e.decode()
	return err
}

// Open decrypts an envelope with the recipient's secret key.
func Open(secretKey []byte, env *Envelope) ([]byte, error) {
	d, err := env.decode()
	if err != nil {
		return nil, err
	}

	// 1. KEM decapsulation. A foreign ct_kem yields an unrelated secret and
	// fails at the tag check below.
	sharedSecret, err := kyber768.Decapsulate(secretKey, d.ctKem)
	if err != nil {
		return nil, fmt.Errorf("decapsulate: %w", err)
	}

	// 2. Key derivation (HKDF-SHA-512)
	key, err := envelopeKey(sharedSecret, d.ctKem, d.aad)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	// 3. AES-256-GCM decryption
	plaintext, err := openAESGCM(key, d.nonce, d.aad, d.ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}

// AssociatedData returns the decoded associated data of the envelope.
func (e *Envelope) AssociatedData() ([]byte, error) {
	d, err := e.decode()
	if err != nil {
		return nil, err
	}
	return d.aad, nil
}

// Marshal encodes the envelope as JSON.
func (e *Envelope) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Parse decodes and validates a JSON envelope.
func Parse(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}
