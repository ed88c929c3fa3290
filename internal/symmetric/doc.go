// Package symmetric provides the hash functions, extendable-output streams
// and samplers that turn seeds into ring elements.
//
// All primitives are instantiated from the SHA-3 family:
//
//   - G is SHA3-512 split into two 32-byte halves.
//   - H is SHA3-256.
//   - KDF is SHAKE-256 with a 32-byte output.
//   - PRF is SHAKE-256 keyed by a seed and a one-byte nonce.
//   - The matrix stream is SHAKE-128 keyed by ρ and two index bytes.
package symmetric
