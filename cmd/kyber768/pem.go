package main

import (
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	kyber768 "github.com/vaultsandbox/kyber-go"
)

const (
	publicKeyPEMType  = "KYBER768 PUBLIC KEY"
	privateKeyPEMType = "KYBER768 PRIVATE KEY"

	publicKeySuffix  = ".kem_public.pem"
	privateKeySuffix = ".kem_private.pem"
)

var errFileExists = errors.New("file already exists")

// writeNewFile creates path and fails if it already exists.
func writeNewFile(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s: %w", path, errFileExists)
		}
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePEM(path, blockType string, der []byte, perm os.FileMode) error {
	return writeNewFile(path, pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}), perm)
}

func readPEM(path, blockType string, size int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%s: no PEM block found", path)
	}
	if block.Type != blockType {
		return nil, fmt.Errorf("%s: PEM type %q, want %q", path, block.Type, blockType)
	}
	if len(block.Bytes) != size {
		return nil, fmt.Errorf("%s: %w", path, &kyber768.LengthError{Field: "PEM payload", Got: len(block.Bytes), Want: size})
	}
	return block.Bytes, nil
}

func readPublicKey(path string) ([]byte, error) {
	return readPEM(path, publicKeyPEMType, kyber768.PublicKeySize)
}

func readPrivateKey(path string) ([]byte, error) {
	return readPEM(path, privateKeyPEMType, kyber768.SecretKeySize)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
