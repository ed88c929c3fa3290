package envelope

import "errors"

var (
	// ErrDecryptionFailed is returned when the authentication tag does not
	// verify.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidPayload is returned when the envelope structure is invalid.
	// This includes malformed JSON, missing fields, or invalid encoding.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrInvalidAlgorithm is returned when an envelope names an algorithm
	// this package does not implement.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	// ErrInvalidSize is returned when a decoded field has an incorrect size.
	ErrInvalidSize = errors.New("invalid size")

	// ErrUnsupportedVersion is returned for an envelope version other than
	// Version.
	ErrUnsupportedVersion = errors.New("unsupported envelope version")
)
