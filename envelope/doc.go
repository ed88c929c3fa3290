// Package envelope seals a payload to a Kyber-768 public key.
//
// # Algorithm Suite
//
//   - Kyber-768: key encapsulation. Every envelope carries its own KEM
//     ciphertext, so each payload is protected by a fresh shared secret.
//
//   - HKDF-SHA-512 (RFC 5869): derives the AES key from the shared secret.
//     The salt is SHA-256 of the KEM ciphertext; the info string binds the
//     context label and the associated data.
//
//   - AES-256-GCM: authenticated encryption of the payload.
//
// # Wire Format
//
// An Envelope marshals to JSON with every binary field as unpadded base64url:
//
//	{
//	  "v": 1,
//	  "algs": {"kem": "Kyber768", "aead": "AES-256-GCM", "kdf": "HKDF-SHA-512"},
//	  "ct_kem": "...",
//	  "nonce": "...",
//	  "aad": "...",
//	  "ciphertext": "..."
//	}
//
// Tampering with any field makes Open fail with ErrDecryptionFailed.
package envelope
