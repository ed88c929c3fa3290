package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	kyber768 "github.com/vaultsandbox/kyber-go"
)

const (
	trialsFlag  = "trials"
	workersFlag = "workers"
)

var (
	errSecretMismatch = errors.New("decapsulated secret differs from encapsulated secret")
	errNotRejected    = errors.New("tampered ciphertext yielded the genuine secret")
	errRejectUnstable = errors.New("implicit rejection is not deterministic")
)

func (a *app) selftestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run parallel encapsulation round trips and implicit rejection checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			trials, workers := a.cfg.Trials, a.cfg.Workers
			var err error
			if cmd.Flags().Changed(trialsFlag) {
				if trials, err = cmd.Flags().GetInt(trialsFlag); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed(workersFlag) {
				if workers, err = cmd.Flags().GetInt(workersFlag); err != nil {
					return err
				}
			}
			return a.selftest(cmd.Context(), trials, workers)
		},
	}
	cmd.Flags().Int(trialsFlag, 0, "number of round trips (default from config)")
	cmd.Flags().Int(workersFlag, 0, "concurrent trials (default from config)")
	return cmd
}

func (a *app) selftest(ctx context.Context, trials, workers int) error {
	if trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", trials)
	}
	if workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", workers)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	var failures atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < trials; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			err := a.trial(i)
			switch {
			case err == nil:
				return nil
			case errors.Is(err, kyber768.ErrInvalidLength), isEntropyError(err):
				// The environment is broken; no later trial can pass.
				return fmt.Errorf("trial %d: %w", i, err)
			default:
				failures.Add(1)
				a.log.Error().Err(err).Int("trial", i).Msg("Selftest trial failed")
				return nil
			}
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("selftest aborted: %w", err)
	}

	failed := failures.Load()
	a.log.Info().
		Int("trials", trials).
		Int("workers", workers).
		Int64("failed", failed).
		Dur("elapsed", time.Since(start)).
		Msg("Selftest finished")
	if failed != 0 {
		return fmt.Errorf("selftest: %d of %d trials failed", failed, trials)
	}
	_, err := fmt.Fprintf(a.stdout, "ok: %d trials\n", trials)
	return err
}

// trial runs one round trip and then flips a ciphertext bit chosen by i.
func (a *app) trial(i int) error {
	kp, err := kyber768.GenerateKeyPair(kyber768.WithRandom(a.random))
	if err != nil {
		return err
	}
	ct, ss, err := kp.Encapsulate(kyber768.WithRandom(a.random))
	if err != nil {
		return err
	}
	got, err := kp.Decapsulate(ct)
	if err != nil {
		return err
	}
	if !bytes.Equal(got, ss) {
		return errSecretMismatch
	}

	ct[i%kyber768.CiphertextSize] ^= 1 << (i % 8)
	rejected, err := kp.Decapsulate(ct)
	if err != nil {
		return err
	}
	if bytes.Equal(rejected, ss) {
		return errNotRejected
	}
	again, err := kp.Decapsulate(ct)
	if err != nil {
		return err
	}
	if !bytes.Equal(again, rejected) {
		return errRejectUnstable
	}
	a.log.Debug().Int("trial", i).Msg("Selftest trial passed")
	return nil
}

func isEntropyError(err error) bool {
	var entropyErr *kyber768.EntropyError
	return errors.As(err, &entropyErr)
}
