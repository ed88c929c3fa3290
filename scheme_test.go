package kyber768

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cloudflare/circl/kem"
	circlkyber "github.com/cloudflare/circl/kem/kyber/kyber768"
)

func TestScheme_Sizes(t *testing.T) {
	s := Scheme()
	if s.Name() != "Kyber768" {
		t.Errorf("Name() = %q", s.Name())
	}

	// Sizes agree with circl's round-3 Kyber768.
	ref := circlkyber.Scheme()
	tests := []struct {
		name      string
		got, want int
	}{
		{"PublicKeySize", s.PublicKeySize(), ref.PublicKeySize()},
		{"PrivateKeySize", s.PrivateKeySize(), ref.PrivateKeySize()},
		{"CiphertextSize", s.CiphertextSize(), ref.CiphertextSize()},
		{"SharedKeySize", s.SharedKeySize(), ref.SharedKeySize()},
		{"SeedSize", s.SeedSize(), ref.SeedSize()},
		{"EncapsulationSeedSize", s.EncapsulationSeedSize(), ref.EncapsulationSeedSize()},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestScheme_RoundTrip(t *testing.T) {
	s := Scheme()

	pk, sk, err := s.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}
	ct, ss, err := s.Encapsulate(pk)
	if err != nil {
		t.Fatalf("Encapsulate() error = %v", err)
	}
	ss2, err := s.Decapsulate(sk, ct)
	if err != nil {
		t.Fatalf("Decapsulate() error = %v", err)
	}
	if !bytes.Equal(ss, ss2) {
		t.Error("shared secrets differ")
	}

	if !sk.Public().Equal(pk) {
		t.Error("sk.Public() != pk")
	}
	if pk.Scheme() != s || sk.Scheme() != s {
		t.Error("keys report a different scheme")
	}
}

func TestScheme_Marshal(t *testing.T) {
	s := Scheme()
	pk, sk := s.DeriveKeyPair(make([]byte, s.SeedSize()))

	pkBytes, _ := pk.MarshalBinary()
	skBytes, _ := sk.MarshalBinary()

	pk2, err := s.UnmarshalBinaryPublicKey(pkBytes)
	if err != nil {
		t.Fatalf("UnmarshalBinaryPublicKey() error = %v", err)
	}
	sk2, err := s.UnmarshalBinaryPrivateKey(skBytes)
	if err != nil {
		t.Fatalf("UnmarshalBinaryPrivateKey() error = %v", err)
	}
	if !pk.Equal(pk2) || !sk.Equal(sk2) {
		t.Error("unmarshalled keys differ")
	}

	seed := make([]byte, s.EncapsulationSeedSize())
	ct1, ss1, err := s.EncapsulateDeterministically(pk, seed)
	if err != nil {
		t.Fatal(err)
	}
	ct2, ss2, err := s.EncapsulateDeterministically(pk2, seed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ct1, ct2) || !bytes.Equal(ss1, ss2) {
		t.Error("deterministic encapsulation differs between equal keys")
	}
}

func TestScheme_Errors(t *testing.T) {
	s := Scheme()
	ref := circlkyber.Scheme()
	refPK, refSK, err := ref.GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	pk, sk := s.DeriveKeyPair(make([]byte, s.SeedSize()))

	if _, _, err := s.Encapsulate(refPK); !errors.Is(err, kem.ErrTypeMismatch) {
		t.Errorf("Encapsulate(foreign key) error = %v", err)
	}
	if _, err := s.Decapsulate(refSK, make([]byte, s.CiphertextSize())); !errors.Is(err, kem.ErrTypeMismatch) {
		t.Errorf("Decapsulate(foreign key) error = %v", err)
	}
	if _, err := s.Decapsulate(sk, []byte{1}); !errors.Is(err, kem.ErrCiphertextSize) {
		t.Errorf("Decapsulate(short ct) error = %v", err)
	}
	if _, _, err := s.EncapsulateDeterministically(pk, []byte{1}); !errors.Is(err, kem.ErrSeedSize) {
		t.Errorf("EncapsulateDeterministically(short seed) error = %v", err)
	}
	if _, err := s.UnmarshalBinaryPublicKey([]byte{1}); !errors.Is(err, kem.ErrPubKeySize) {
		t.Errorf("UnmarshalBinaryPublicKey(short) error = %v", err)
	}
	if _, err := s.UnmarshalBinaryPrivateKey([]byte{1}); !errors.Is(err, kem.ErrPrivKeySize) {
		t.Errorf("UnmarshalBinaryPrivateKey(short) error = %v", err)
	}
	if pk.Equal(refPK) {
		t.Error("key equal to a foreign scheme's key")
	}

	defer func() {
		if recover() == nil {
			t.Error("DeriveKeyPair(short seed) did not panic")
		}
	}()
	s.DeriveKeyPair([]byte{1})
}
