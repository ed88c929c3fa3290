package symmetric

import (
	"golang.org/x/crypto/sha3"

	"github.com/vaultsandbox/kyber-go/internal/params"
)

// G hashes the concatenation of inputs with SHA3-512 and returns both halves
// of the digest.
func G(inputs ...[]byte) (a, b [params.SymSize]byte) {
	h := sha3.New512()
	for _, in := range inputs {
		h.Write(in)
	}
	var out [2 * params.SymSize]byte
	h.Sum(out[:0])
	copy(a[:], out[:params.SymSize])
	copy(b[:], out[params.SymSize:])
	return a, b
}

// H hashes the concatenation of inputs with SHA3-256.
func H(inputs ...[]byte) [params.SymSize]byte {
	h := sha3.New256()
	for _, in := range inputs {
		h.Write(in)
	}
	var out [params.SymSize]byte
	h.Sum(out[:0])
	return out
}

// KDF derives a shared secret from the concatenation of inputs with
// SHAKE-256.
func KDF(inputs ...[]byte) [params.SharedSecretSize]byte {
	h := sha3.NewShake256()
	for _, in := range inputs {
		h.Write(in)
	}
	var out [params.SharedSecretSize]byte
	h.Read(out[:])
	return out
}

// PRF returns 64·eta bytes of SHAKE-256(seed ‖ nonce), the input size
// SampleCBD needs for that eta.
func PRF(seed [params.SymSize]byte, nonce byte, eta int) []byte {
	h := sha3.NewShake256()
	h.Write(seed[:])
	h.Write([]byte{nonce})
	out := make([]byte, 64*eta)
	h.Read(out)
	return out
}

// Concat returns a fresh buffer holding every input in order.
func Concat(bufs ...[]byte) []byte {
	n := 0
	for _, b := range bufs {
		n += len(b)
	}
	out := make([]byte, 0, n)
	for _, b := range bufs {
		out = append(out, b...)
	}
	return out
}
