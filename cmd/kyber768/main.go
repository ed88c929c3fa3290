package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vaultsandbox/kyber-go/envelope"
	"github.com/vaultsandbox/kyber-go/internal/config"
	"github.com/vaultsandbox/kyber-go/internal/logger"
)

const (
	configFlag   = "config"
	logLevelFlag = "log-level"
	envFileFlag  = "env-file"

	envConfig   = "KYBER768_CONFIG"
	envLogLevel = "KYBER768_LOG_LEVEL"

	defaultEnvFile = ".env"
)

type app struct {
	cfg    *config.Config
	log    *zerolog.Logger
	stdout io.Writer
	stderr io.Writer
	// random feeds key generation and encapsulation; nil means crypto/rand.
	random io.Reader
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		cfg:    config.Default(),
		log:    logger.Nop(),
		stdout: stdout,
		stderr: stderr,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "kyber768",
		Short:             "Kyber-768 key encapsulation tool",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().String(configFlag, "", "TOML config file (default $"+envConfig+")")
	root.PersistentFlags().String(logLevelFlag, "", "minimum log level (default $"+envLogLevel+" or the config value)")
	root.PersistentFlags().String(envFileFlag, defaultEnvFile, "dotenv file loaded before reading the environment")

	root.AddCommand(
		a.keygenCmd(),
		a.encapsCmd(),
		a.decapsCmd(),
		a.sealCmd(),
		a.openCmd(),
		a.selftestCmd(),
	)
	return root
}

// setup resolves settings in increasing precedence: defaults, config file,
// environment, flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	envFile, err := cmd.Flags().GetString(envFileFlag)
	if err != nil {
		return err
	}
	if err := loadEnv(envFile); err != nil {
		return err
	}

	path, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return err
	}
	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		a.cfg = cfg
	}

	level := a.cfg.LogLevel
	if v := os.Getenv(envLogLevel); v != "" {
		level = v
	}
	if cmd.Flags().Changed(logLevelFlag) {
		if level, err = cmd.Flags().GetString(logLevelFlag); err != nil {
			return err
		}
	}

	a.log = logger.New(a.stderr, logger.Config{MinLevel: level, NoColor: a.stderr != os.Stderr})
	a.log.Debug().Str("config", path).Str("encoding", a.cfg.Encoding).Msg("Configuration loaded")
	return nil
}

// loadEnv reads a dotenv file if it exists. Variables already present in
// the environment win.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// encode renders b in the configured output encoding.
func (a *app) encode(b []byte) string {
	if a.cfg.Encoding == config.EncodingBase64 {
		return envelope.ToBase64URL(b)
	}
	return hex.EncodeToString(b)
}

func (a *app) printSecret(secret []byte) error {
	_, err := fmt.Fprintln(a.stdout, a.encode(secret))
	return err
}
