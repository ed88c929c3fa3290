// Package params holds the fixed Kyber-768 parameter set and the error kinds
// shared by every layer of the implementation.
package params

const (
	// N is the ring dimension: polynomials have exactly N coefficients.
	N = 256
	// Q is the prime modulus, 3329 = 2¹¹ + 2¹⁰ + 2⁸ + 1.
	Q = 3329
	// K is the module rank, the length of every polynomial vector.
	K = 3

	// Eta1 is the centered binomial parameter for s, e and r.
	Eta1 = 2
	// Eta2 is the centered binomial parameter for e₁ and e₂.
	Eta2 = 2

	// DU is the number of bits per coefficient of the compressed u-vector.
	DU = 10
	// DV is the number of bits per coefficient of the compressed v-polynomial.
	DV = 4

	// SymSize is the size of seeds, hashes, messages and shared secrets.
	SymSize = 32

	// PolyBytes is the size of a polynomial serialized at 12 bits per coefficient.
	PolyBytes = 384
	// PolyVecBytes is the size of a serialized polynomial vector.
	PolyVecBytes = K * PolyBytes

	// PolyCompressedBytes is the size of v compressed to DV bits.
	PolyCompressedBytes = N * DV / 8
	// PolyVecCompressedBytes is the size of u compressed to DU bits.
	PolyVecCompressedBytes = K * N * DU / 8

	// PublicKeySize is ρ ‖ encode(t̂).
	PublicKeySize = SymSize + PolyVecBytes
	// CPASecretKeySize is encode(ŝ).
	CPASecretKeySize = PolyVecBytes
	// SecretKeySize is encode(ŝ) ‖ publicKey ‖ H(publicKey) ‖ z.
	SecretKeySize = CPASecretKeySize + PublicKeySize + 2*SymSize
	// CiphertextSize is compress(u, DU) ‖ compress(v, DV).
	CiphertextSize = PolyVecCompressedBytes + PolyCompressedBytes
	// SharedSecretSize is the size of the established key.
	SharedSecretSize = SymSize

	// MaxCompressBits is the widest compression the packer supports.
	MaxCompressBits = 11
)

// CompressedSize returns the packed size of one polynomial at d bits per
// coefficient.
func CompressedSize(d int) int {
	return N * d / 8
}
