package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}
	if len(nonce) != AESNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), AESNonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}

// sealAESGCM encrypts plaintext with AES-256-GCM and returns ciphertext ‖ tag.
func sealAESGCM(key, nonce, aad, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, nonce, plaintext, aad), nil
}

// openAESGCM reverses sealAESGCM. Any authentication failure is reported as
// ErrDecryptionFailed.
func openAESGCM(key, nonce, aad, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// EncryptAES encrypts data using AES-256-GCM without associated data.
// Returns: nonce (12 bytes) ‖ ciphertext ‖ tag (16 bytes)
func EncryptAES(key, plaintext, nonce []byte) ([]byte, error) {
	sealed, err := sealAESGCM(key, nonce, nil, plaintext)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(nonce)+len(sealed))
	out = append(out, nonce...)
	return append(out, sealed...), nil
}

// DecryptAES decrypts the output of EncryptAES.
func DecryptAES(key, ciphertext []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}
	if len(ciphertext) < AESNonceSize+AESTagSize {
		return nil, fmt.Errorf("%w: ciphertext is %d bytes, need at least %d", ErrInvalidSize, len(ciphertext), AESNonceSize+AESTagSize)
	}
	return openAESGCM(key, ciphertext[:AESNonceSize], nil, ciphertext[AESNonceSize:])
}
