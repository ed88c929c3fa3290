// Package pke implements the IND-CPA public-key encryption step that the KEM
// is built from. Keys hold decoded ring values; the byte layouts are
//
//	public key:  ρ (32) ‖ encode(t̂) (1152)
//	private key: encode(ŝ) (1152)
//	ciphertext:  compress(u, du) (960) ‖ compress(v, dv) (128)
//
// Encryption is deterministic given the message and the 32-byte coins.
package pke

import (
	"fmt"

	"github.com/vaultsandbox/kyber-go/internal/params"
	"github.com/vaultsandbox/kyber-go/internal/ring"
	"github.com/vaultsandbox/kyber-go/internal/symmetric"
)

// PublicKey is a parsed public key together with the matrix Â expanded from
// its seed.
type PublicKey struct {
	rho [params.SymSize]byte
	t   ring.NTTVec
	a   ring.Matrix
}

// PrivateKey is a parsed CPA private key.
type PrivateKey struct {
	s ring.NTTVec
}

// noise samples with a compile-time eta, which SampleNoise always accepts.
func noise(seed [params.SymSize]byte, nonce byte, eta int) ring.Poly {
	f, err := symmetric.SampleNoise(seed, nonce, eta)
	if err != nil {
		panic(err)
	}
	return f
}

// GenerateKey derives a key pair from the 32-byte seed d.
func GenerateKey(d [params.SymSize]byte) (*PublicKey, *PrivateKey) {
	rho, sigma := symmetric.G(d[:])

	pk := &PublicKey{rho: rho, a: symmetric.SampleMatrix(rho)}
	sk := &PrivateKey{}

	var s, e ring.Vec
	for i := range s {
		s[i] = noise(sigma, byte(i), params.Eta1)
	}
	for i := range e {
		e[i] = noise(sigma, byte(params.K+i), params.Eta1)
	}

	sk.s = s.NTT()
	pk.t = pk.a.MulVec(sk.s).Add(e.NTT())
	return pk, sk
}

// ParsePublicKey decodes a PublicKeySize-byte public key and expands Â.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	if len(b) != params.PublicKeySize {
		return nil, fmt.Errorf("%w: public key is %d bytes, want %d", params.ErrInvalidLength, len(b), params.PublicKeySize)
	}
	pk := &PublicKey{}
	copy(pk.rho[:], b[:params.SymSize])
	t, err := ring.NTTVecFromBytes(b[params.SymSize:])
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}
	pk.t = t
	pk.a = symmetric.SampleMatrix(pk.rho)
	return pk, nil
}

// ParsePrivateKey decodes a CPASecretKeySize-byte private key.
func ParsePrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != params.CPASecretKeySize {
		return nil, fmt.Errorf("%w: private key is %d bytes, want %d", params.ErrInvalidLength, len(b), params.CPASecretKeySize)
	}
	s, err := ring.NTTVecFromBytes(b)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	return &PrivateKey{s: s}, nil
}

// Bytes returns ρ ‖ encode(t̂).
func (pk *PublicKey) Bytes() []byte {
	b := make([]byte, 0, params.PublicKeySize)
	b = append(b, pk.rho[:]...)
	return pk.t.AppendBytes(b)
}

// Bytes returns encode(ŝ).
func (sk *PrivateKey) Bytes() []byte {
	return sk.s.Bytes()
}

// Equal reports whether both keys encode to the same bytes.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.rho == other.rho && pk.t == other.t
}

// Encrypt encrypts the 32-byte message m with randomness derived from coins.
func (pk *PublicKey) Encrypt(m, coins [params.SymSize]byte) []byte {
	var r, e1 ring.Vec
	for i := range r {
		r[i] = noise(coins, byte(i), params.Eta1)
	}
	for i := range e1 {
		e1[i] = noise(coins, byte(params.K+i), params.Eta2)
	}
	e2 := noise(coins, byte(2*params.K), params.Eta2)

	rHat := r.NTT()
	u := pk.a.MulVecTranspose(rHat).InverseNTT().Add(e1)
	v := ring.Dot(pk.t, rHat).InverseNTT().Add(e2).Add(ring.PolyFromMessage(m))

	c := make([]byte, 0, params.CiphertextSize)
	c = u.AppendCompressed(c, params.DU)
	return v.AppendCompressed(c, params.DV)
}

// Decrypt recovers the message from a CiphertextSize-byte ciphertext. Any
// well-sized ciphertext decrypts to some message.
func (sk *PrivateKey) Decrypt(c []byte) ([params.SymSize]byte, error) {
	var m [params.SymSize]byte
	if len(c) != params.CiphertextSize {
		return m, fmt.Errorf("%w: ciphertext is %d bytes, want %d", params.ErrInvalidLength, len(c), params.CiphertextSize)
	}
	u, err := ring.DecompressVec(c[:params.PolyVecCompressedBytes], params.DU)
	if err != nil {
		return m, err
	}
	v, err := ring.DecompressPoly(c[params.PolyVecCompressedBytes:], params.DV)
	if err != nil {
		return m, err
	}

	w := v.Sub(ring.Dot(sk.s, u.NTT()).InverseNTT())
	return w.Message(), nil
}
