package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultsandbox/kyber-go/envelope"
)

const (
	inFlag  = "in"
	aadFlag = "aad"
)

func (a *app) sealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Encrypt a file to a public key as a JSON envelope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			pubPath, err := flags.GetString(publicFlag)
			if err != nil {
				return err
			}
			in, err := flags.GetString(inFlag)
			if err != nil {
				return err
			}
			out, err := flags.GetString(outFlag)
			if err != nil {
				return err
			}
			aad, err := flags.GetString(aadFlag)
			if err != nil {
				return err
			}
			return a.seal(pubPath, in, out, []byte(aad))
		},
	}
	cmd.Flags().String(publicFlag, "", "public key PEM file")
	cmd.Flags().String(inFlag, "", "plaintext file")
	cmd.Flags().String(outFlag, "", "envelope output file")
	cmd.Flags().String(aadFlag, "", "associated data bound to the envelope")
	for _, f := range []string{publicFlag, inFlag, outFlag} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func (a *app) seal(pubPath, in, out string, aad []byte) error {
	pk, err := readPublicKey(pubPath)
	if err != nil {
		return err
	}
	plaintext, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	env, err := envelope.Seal(pk, plaintext, aad, envelope.WithRandom(a.random))
	if err != nil {
		return fmt.Errorf("seal: %w", err)
	}
	data, err := env.Marshal()
	if err != nil {
		return err
	}
	if err := writeNewFile(out, data, 0o644); err != nil {
		return err
	}
	a.log.Info().Str("envelope", out).Int("plaintext_bytes", len(plaintext)).Msg("Envelope sealed")
	return nil
}

func (a *app) openCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Decrypt a JSON envelope with a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			privPath, err := flags.GetString(privateFlag)
			if err != nil {
				return err
			}
			in, err := flags.GetString(inFlag)
			if err != nil {
				return err
			}
			out, err := flags.GetString(outFlag)
			if err != nil {
				return err
			}
			return a.open(privPath, in, out)
		},
	}
	cmd.Flags().String(privateFlag, "", "private key PEM file")
	cmd.Flags().String(inFlag, "", "envelope file")
	cmd.Flags().String(outFlag, "", "plaintext output file")
	for _, f := range []string{privateFlag, inFlag, outFlag} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func (a *app) open(privPath, in, out string) error {
	sk, err := readPrivateKey(privPath)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	env, err := envelope.Parse(data)
	if err != nil {
		return fmt.Errorf("parse envelope: %w", err)
	}
	plaintext, err := envelope.Open(sk, env)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	if err := writeNewFile(out, plaintext, 0o600); err != nil {
		return err
	}
	a.log.Info().Str("plaintext", out).Int("bytes", len(plaintext)).Msg("Envelope opened")
	return nil
}
