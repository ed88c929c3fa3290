package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	kyber768 "github.com/vaultsandbox/kyber-go"
	"github.com/vaultsandbox/kyber-go/envelope"
)

// Config holds the I/O streams used by the helper.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// KeygenInput is the optional keygen request. An empty body draws
// randomness from crypto/rand.
type KeygenInput struct {
	Seed string `json:"seed,omitempty"`
}

// KeygenOutput carries a freshly generated key pair.
type KeygenOutput struct {
	PublicKey string `json:"publicKey"`
	SecretKey string `json:"secretKey"`
}

// EncapsulateInput names the recipient key and, for known-answer runs,
// the 32-byte encapsulation seed.
type EncapsulateInput struct {
	PublicKey string `json:"publicKey"`
	Seed      string `json:"seed,omitempty"`
}

// EncapsulateOutput is the encapsulation result.
type EncapsulateOutput struct {
	Ciphertext   string `json:"ciphertext"`
	SharedSecret string `json:"sharedSecret"`
}

// DecapsulateInput is the decapsulation request.
type DecapsulateInput struct {
	SecretKey  string `json:"secretKey"`
	Ciphertext string `json:"ciphertext"`
}

// DecapsulateOutput is the decapsulation result.
type DecapsulateOutput struct {
	SharedSecret string `json:"sharedSecret"`
}

func run(args []string, cfg *Config) error {
	if len(args) < 2 {
		return errors.New("usage: testhelper <keygen|encapsulate|decapsulate>")
	}

	switch args[1] {
	case "keygen":
		return runKeygen(cfg)
	case "encapsulate":
		return runEncapsulate(cfg)
	case "decapsulate":
		return runDecapsulate(cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func runKeygen(cfg *Config) error {
	var in KeygenInput
	if err := readInput(cfg, &in, true); err != nil {
		return err
	}

	var (
		kp  *kyber768.KeyPair
		err error
	)
	if in.Seed == "" {
		kp, err = kyber768.GenerateKeyPair()
	} else {
		seed, decErr := decodeField("seed", in.Seed)
		if decErr != nil {
			return decErr
		}
		kp, err = kyber768.NewKeyPairFromSeed(seed)
	}
	if err != nil {
		return fmt.Errorf("generate key pair: %w", err)
	}

	return writeOutput(cfg, KeygenOutput{
		PublicKey: envelope.ToBase64URL(kp.PublicKey),
		SecretKey: envelope.ToBase64URL(kp.SecretKey),
	})
}

func runEncapsulate(cfg *Config) error {
	var in EncapsulateInput
	if err := readInput(cfg, &in, false); err != nil {
		return err
	}

	pk, err := decodeField("publicKey", in.PublicKey)
	if err != nil {
		return err
	}

	var ct, ss []byte
	if in.Seed == "" {
		ct, ss, err = kyber768.Encapsulate(pk)
	} else {
		seed, decErr := decodeField("seed", in.Seed)
		if decErr != nil {
			return decErr
		}
		ct, ss, err = kyber768.EncapsulateDeterministically(pk, seed)
	}
	if err != nil {
		return fmt.Errorf("encapsulate: %w", err)
	}

	return writeOutput(cfg, EncapsulateOutput{
		Ciphertext:   envelope.ToBase64URL(ct),
		SharedSecret: envelope.ToBase64URL(ss),
	})
}

func runDecapsulate(cfg *Config) error {
	var in DecapsulateInput
	if err := readInput(cfg, &in, false); err != nil {
		return err
	}

	sk, err := decodeField("secretKey", in.SecretKey)
	if err != nil {
		return err
	}
	ct, err := decodeField("ciphertext", in.Ciphertext)
	if err != nil {
		return err
	}

	ss, err := kyber768.Decapsulate(sk, ct)
	if err != nil {
		return fmt.Errorf("decapsulate: %w", err)
	}

	return writeOutput(cfg, DecapsulateOutput{SharedSecret: envelope.ToBase64URL(ss)})
}

func readInput(cfg *Config, v any, allowEmpty bool) error {
	if cfg.Stdin == nil {
		if allowEmpty {
			return nil
		}
		return errors.New("read stdin: no input")
	}
	data, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 && allowEmpty {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	return nil
}

func decodeField(name, value string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("missing field %q", name)
	}
	b, err := envelope.DecodeBase64(value)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return b, nil
}

func writeOutput(cfg *Config, v any) error {
	if err := json.NewEncoder(cfg.Stdout).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// exitFunc is replaced in tests.
var exitFunc = os.Exit

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	exitFunc(1)
}
