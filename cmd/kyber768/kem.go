package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	kyber768 "github.com/vaultsandbox/kyber-go"
)

const (
	publicFlag     = "public"
	privateFlag    = "private"
	ciphertextFlag = "ciphertext"
)

func (a *app) encapsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encaps",
		Short: "Encapsulate a fresh shared secret to a public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pubPath, err := cmd.Flags().GetString(publicFlag)
			if err != nil {
				return err
			}
			ctPath, err := cmd.Flags().GetString(ciphertextFlag)
			if err != nil {
				return err
			}
			return a.encaps(pubPath, ctPath)
		},
	}
	cmd.Flags().String(publicFlag, "", "public key PEM file")
	cmd.Flags().String(ciphertextFlag, "", "file the ciphertext is written to")
	_ = cmd.MarkFlagRequired(publicFlag)
	_ = cmd.MarkFlagRequired(ciphertextFlag)
	return cmd
}

func (a *app) encaps(pubPath, ctPath string) error {
	pk, err := readPublicKey(pubPath)
	if err != nil {
		return err
	}
	ct, ss, err := kyber768.Encapsulate(pk, kyber768.WithRandom(a.random))
	if err != nil {
		return fmt.Errorf("encapsulate: %w", err)
	}
	if err := os.WriteFile(ctPath, ct, 0o644); err != nil {
		return err
	}
	a.log.Info().Str("ciphertext", ctPath).Int("bytes", len(ct)).Msg("Ciphertext written")
	return a.printSecret(ss)
}

func (a *app) decapsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decaps",
		Short: "Recover the shared secret from a ciphertext",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			privPath, err := cmd.Flags().GetString(privateFlag)
			if err != nil {
				return err
			}
			ctPath, err := cmd.Flags().GetString(ciphertextFlag)
			if err != nil {
				return err
			}
			return a.decaps(privPath, ctPath)
		},
	}
	cmd.Flags().String(privateFlag, "", "private key PEM file")
	cmd.Flags().String(ciphertextFlag, "", "ciphertext file")
	_ = cmd.MarkFlagRequired(privateFlag)
	_ = cmd.MarkFlagRequired(ciphertextFlag)
	return cmd
}

func (a *app) decaps(privPath, ctPath string) error {
	sk, err := readPrivateKey(privPath)
	if err != nil {
		return err
	}
	ct, err := os.ReadFile(ctPath)
	if err != nil {
		return err
	}
	ss, err := kyber768.Decapsulate(sk, ct)
	if err != nil {
		return fmt.Errorf("decapsulate: %w", err)
	}
	return a.printSecret(ss)
}
