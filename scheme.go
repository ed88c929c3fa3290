package kyber768

import (
	"bytes"
	"crypto/subtle"

	"github.com/cloudflare/circl/kem"
)

// Scheme returns this KEM behind circl's generic kem.Scheme interface, so it
// can be used anywhere a circl scheme is accepted.
func Scheme() kem.Scheme { return sch }

type scheme struct{}

var sch kem.Scheme = &scheme{}

// PublicKey is a kem.PublicKey holding an encoded Kyber-768 public key.
type PublicKey struct{ raw []byte }

// PrivateKey is a kem.PrivateKey holding an encoded Kyber-768 secret key.
type PrivateKey struct{ raw []byte }

func (*scheme) Name() string               { return "Kyber768" }
func (*scheme) PublicKeySize() int         { return PublicKeySize }
func (*scheme) PrivateKeySize() int        { return SecretKeySize }
func (*scheme) SeedSize() int              { return SeedSize }
func (*scheme) SharedKeySize() int         { return SharedSecretSize }
func (*scheme) CiphertextSize() int        { return CiphertextSize }
func (*scheme) EncapsulationSeedSize() int { return EncapsulationSeedSize }

func (pk *PublicKey) Scheme() kem.Scheme  { return sch }
func (sk *PrivateKey) Scheme() kem.Scheme { return sch }

func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return bytes.Clone(pk.raw), nil
}

func (sk *PrivateKey) MarshalBinary() ([]byte, error) {
	return bytes.Clone(sk.raw), nil
}

func (pk *PublicKey) Equal(other kem.PublicKey) bool {
	oth, ok := other.(*PublicKey)
	if !ok {
		return false
	}
	return bytes.Equal(pk.raw, oth.raw)
}

func (sk *PrivateKey) Equal(other kem.PrivateKey) bool {
	oth, ok := other.(*PrivateKey)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare(sk.raw, oth.raw) == 1
}

func (sk *PrivateKey) Public() kem.PublicKey {
	return &PublicKey{raw: bytes.Clone(sk.raw[PublicKeyOffset:hashOffset])}
}

func (*scheme) GenerateKeyPair() (kem.PublicKey, kem.PrivateKey, error) {
	kp, err := GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}
	return &PublicKey{raw: kp.PublicKey}, &PrivateKey{raw: kp.SecretKey}, nil
}

func (*scheme) DeriveKeyPair(seed []byte) (kem.PublicKey, kem.PrivateKey) {
	if len(seed) != SeedSize {
		panic(kem.ErrSeedSize)
	}
	kp, err := NewKeyPairFromSeed(seed)
	if err != nil {
		panic(err)
	}
	return &PublicKey{raw: kp.PublicKey}, &PrivateKey{raw: kp.SecretKey}
}

func (*scheme) Encapsulate(pk kem.PublicKey) (ct, ss []byte, err error) {
	pub, ok := pk.(*PublicKey)
	if !ok {
		return nil, nil, kem.ErrTypeMismatch
	}
	return Encapsulate(pub.raw)
}

func (*scheme) EncapsulateDeterministically(pk kem.PublicKey, seed []byte) (ct, ss []byte, err error) {
	pub, ok := pk.(*PublicKey)
	if !ok {
		return nil, nil, kem.ErrTypeMismatch
	}
	if len(seed) != EncapsulationSeedSize {
		return nil, nil, kem.ErrSeedSize
	}
	return EncapsulateDeterministically(pub.raw, seed)
}

func (*scheme) Decapsulate(sk kem.PrivateKey, ct []byte) ([]byte, error) {
	priv, ok := sk.(*PrivateKey)
	if !ok {
		return nil, kem.ErrTypeMismatch
	}
	if len(ct) != CiphertextSize {
		return nil, kem.ErrCiphertextSize
	}
	return Decapsulate(priv.raw, ct)
}

func (*scheme) UnmarshalBinaryPublicKey(buf []byte) (kem.PublicKey, error) {
	if len(buf) != PublicKeySize {
		return nil, kem.ErrPubKeySize
	}
	if _, err := parsePublicKey(buf); err != nil {
		return nil, err
	}
	return &PublicKey{raw: bytes.Clone(buf)}, nil
}

func (*scheme) UnmarshalBinaryPrivateKey(buf []byte) (kem.PrivateKey, error) {
	if len(buf) != SecretKeySize {
		return nil, kem.ErrPrivKeySize
	}
	kp, err := KeyPairFromSecretKey(buf)
	if err != nil {
		return nil, err
	}
	if _, err := NewKeyPairFromBytes(kp.SecretKey, kp.PublicKey); err != nil {
		return nil, err
	}
	return &PrivateKey{raw: kp.SecretKey}, nil
}
