package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	kyber768 "github.com/vaultsandbox/kyber-go"
)

const (
	outFlag  = "out"
	seedFlag = "seed"
)

func (a *app) keygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair as NAME.kem_public.pem and NAME.kem_private.pem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := cmd.Flags().GetString(outFlag)
			if err != nil {
				return err
			}
			seedHex, err := cmd.Flags().GetString(seedFlag)
			if err != nil {
				return err
			}
			return a.keygen(name, seedHex)
		},
	}
	cmd.Flags().String(outFlag, "", "base name of the key files")
	cmd.Flags().String(seedFlag, "", "64-byte hex seed for deterministic generation")
	_ = cmd.MarkFlagRequired(outFlag)
	return cmd
}

func (a *app) keygen(name, seedHex string) error {
	pubPath := name + publicKeySuffix
	privPath := name + privateKeySuffix
	for _, p := range []string{pubPath, privPath} {
		if fileExists(p) {
			return fmt.Errorf("%s: %w", p, errFileExists)
		}
	}

	var (
		kp  *kyber768.KeyPair
		err error
	)
	if seedHex != "" {
		seed, decErr := hex.DecodeString(seedHex)
		if decErr != nil {
			return fmt.Errorf("decode seed: %w", decErr)
		}
		kp, err = kyber768.NewKeyPairFromSeed(seed)
	} else {
		kp, err = kyber768.GenerateKeyPair(kyber768.WithRandom(a.random))
	}
	if err != nil {
		return fmt.Errorf("generate key pair: %w", err)
	}

	if err := writePEM(privPath, privateKeyPEMType, kp.SecretKey, 0o600); err != nil {
		return err
	}
	if err := writePEM(pubPath, publicKeyPEMType, kp.PublicKey, 0o644); err != nil {
		return err
	}
	a.log.Info().
		Str("public", pubPath).
		Str("private", privPath).
		Bool("seeded", seedHex != "").
		Msg("Key pair written")
	return nil
}
