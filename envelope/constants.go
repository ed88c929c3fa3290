package envelope

const (
	// HKDFContext is the context string used in HKDF key derivation
	// for domain separation.
	HKDFContext = "kyber768:envelope:v1"

	// Version is the only envelope version this package produces and accepts.
	Version = 1

	// AlgKEM names the key encapsulation mechanism.
	AlgKEM = "Kyber768"
	// AlgAEAD names the authenticated cipher.
	AlgAEAD = "AES-256-GCM"
	// AlgKDF names the key derivation function.
	AlgKDF = "HKDF-SHA-512"

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16
)
