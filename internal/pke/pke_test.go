package pke

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"testing"

	circlpke "github.com/cloudflare/circl/pke/kyber/kyber768"

	"github.com/vaultsandbox/kyber-go/internal/params"
)

func fill(rng *rand.Rand, b []byte) {
	for i := range b {
		b[i] = byte(rng.Uint32())
	}
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(768, 3329))
}

func TestEncryptDecrypt(t *testing.T) {
	rng := newTestRand()
	for trial := 0; trial < 200; trial++ {
		var d, m, coins [32]byte
		fill(rng, d[:])
		fill(rng, m[:])
		fill(rng, coins[:])

		pk, sk := GenerateKey(d)
		c := pk.Encrypt(m, coins)
		if len(c) != params.CiphertextSize {
			t.Fatalf("ciphertext length = %d, want %d", len(c), params.CiphertextSize)
		}
		got, err := sk.Decrypt(c)
		if err != nil {
			t.Fatalf("Decrypt() error = %v", err)
		}
		if got != m {
			t.Fatalf("trial %d: Decrypt(Encrypt(m)) != m", trial)
		}
	}
}

func TestEncryptIsDeterministic(t *testing.T) {
	var d, m, coins [32]byte
	m[0] = 1
	pk, _ := GenerateKey(d)
	if !bytes.Equal(pk.Encrypt(m, coins), pk.Encrypt(m, coins)) {
		t.Error("same message and coins gave different ciphertexts")
	}
	coins[0] = 1
	c1 := pk.Encrypt(m, [32]byte{})
	if bytes.Equal(c1, pk.Encrypt(m, coins)) {
		t.Error("different coins gave the same ciphertext")
	}
}

func TestKeyBytesRoundTrip(t *testing.T) {
	var d [32]byte
	d[31] = 0xaa
	pk, sk := GenerateKey(d)

	pkBytes := pk.Bytes()
	if len(pkBytes) != params.PublicKeySize {
		t.Fatalf("public key length = %d, want %d", len(pkBytes), params.PublicKeySize)
	}
	pk2, err := ParsePublicKey(pkBytes)
	if err != nil {
		t.Fatalf("ParsePublicKey() error = %v", err)
	}
	if !pk.Equal(pk2) || pk2.a != pk.a {
		t.Error("parsed public key differs from the original")
	}

	skBytes := sk.Bytes()
	if len(skBytes) != params.CPASecretKeySize {
		t.Fatalf("private key length = %d, want %d", len(skBytes), params.CPASecretKeySize)
	}
	sk2, err := ParsePrivateKey(skBytes)
	if err != nil {
		t.Fatalf("ParsePrivateKey() error = %v", err)
	}
	if !bytes.Equal(sk2.Bytes(), skBytes) {
		t.Error("parsed private key re-encodes differently")
	}

	if !bytes.Equal(pkBytes[:32], pk.rho[:]) {
		t.Error("public key does not start with ρ")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		parse   func([]byte) error
		input   []byte
		wantErr error
	}{
		{
			name:    "public key too short",
			parse:   func(b []byte) error { _, err := ParsePublicKey(b); return err },
			input:   make([]byte, params.PublicKeySize-1),
			wantErr: params.ErrInvalidLength,
		},
		{
			name:    "public key coefficient out of range",
			parse:   func(b []byte) error { _, err := ParsePublicKey(b); return err },
			input:   append(make([]byte, params.PublicKeySize-3), 0xff, 0xff, 0xff),
			wantErr: params.ErrMalformedEncoding,
		},
		{
			name:    "private key too long",
			parse:   func(b []byte) error { _, err := ParsePrivateKey(b); return err },
			input:   make([]byte, params.CPASecretKeySize+1),
			wantErr: params.ErrInvalidLength,
		},
		{
			name:    "private key coefficient out of range",
			parse:   func(b []byte) error { _, err := ParsePrivateKey(b); return err },
			input:   bytes.Repeat([]byte{0xff}, params.CPASecretKeySize),
			wantErr: params.ErrMalformedEncoding,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.parse(tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecrypt_InvalidLength(t *testing.T) {
	_, sk := GenerateKey([32]byte{})
	for _, n := range []int{0, params.CiphertextSize - 1, params.CiphertextSize + 1} {
		if _, err := sk.Decrypt(make([]byte, n)); !errors.Is(err, params.ErrInvalidLength) {
			t.Errorf("Decrypt(len %d) error = %v, want ErrInvalidLength", n, err)
		}
	}
}

// circl packs public keys as encode(t̂) ‖ ρ; everything else is laid out
// identically, so after moving ρ the bytes must agree exactly.
func TestMatchesCircl(t *testing.T) {
	rng := newTestRand()
	for trial := 0; trial < 20; trial++ {
		var d, m, coins [32]byte
		fill(rng, d[:])
		fill(rng, m[:])
		fill(rng, coins[:])

		pk, sk := GenerateKey(d)
		cpk, csk := circlpke.NewKeyFromSeed(d[:])

		circlPK := make([]byte, params.PublicKeySize)
		cpk.Pack(circlPK)
		ours := pk.Bytes()
		if !bytes.Equal(ours[params.SymSize:], circlPK[:params.PolyVecBytes]) {
			t.Fatalf("trial %d: t̂ differs from circl", trial)
		}
		if !bytes.Equal(ours[:params.SymSize], circlPK[params.PolyVecBytes:]) {
			t.Fatalf("trial %d: ρ differs from circl", trial)
		}

		circlSK := make([]byte, params.CPASecretKeySize)
		csk.Pack(circlSK)
		if !bytes.Equal(sk.Bytes(), circlSK) {
			t.Fatalf("trial %d: ŝ differs from circl", trial)
		}

		circlCT := make([]byte, params.CiphertextSize)
		cpk.EncryptTo(circlCT, m[:], coins[:])
		ct := pk.Encrypt(m, coins)
		if !bytes.Equal(ct, circlCT) {
			t.Fatalf("trial %d: ciphertext differs from circl", trial)
		}

		var pt [32]byte
		csk.DecryptTo(pt[:], ct)
		if pt != m {
			t.Fatalf("trial %d: circl could not decrypt our ciphertext", trial)
		}
	}
}

func BenchmarkGenerateKey(b *testing.B) {
	var d [32]byte
	for i := 0; i < b.N; i++ {
		GenerateKey(d)
	}
}

func BenchmarkEncrypt(b *testing.B) {
	var d, m, coins [32]byte
	pk, _ := GenerateKey(d)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pk.Encrypt(m, coins)
	}
}

func BenchmarkDecrypt(b *testing.B) {
	var d, m, coins [32]byte
	pk, sk := GenerateKey(d)
	c := pk.Encrypt(m, coins)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sk.Decrypt(c)
	}
}
