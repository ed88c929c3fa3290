// Package config loads the TOML configuration of the kyber768 command.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// EncodingHex prints binary values as lowercase hex.
	EncodingHex = "hex"
	// EncodingBase64 prints binary values as unpadded base64url.
	EncodingBase64 = "base64"

	defaultLogLevel = "info"
	defaultTrials   = 100
	maxTrials       = 1_000_000
)

var validLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// Config is the top level configuration.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel string
	// Encoding selects how shared secrets are printed: "hex" or "base64".
	Encoding string
	// Trials is the default number of selftest round trips.
	Trials int
	// Workers bounds the number of concurrent selftest trials.
	Workers int
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: defaultLogLevel,
		Encoding: EncodingHex,
		Trials:   defaultTrials,
		Workers:  runtime.NumCPU(),
	}
}

// Load parses and validates the provided buffer b as a config file body.
// Keys absent from b keep their default values.
func Load(b []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("config: Undecoded keys in config file: %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses and validates the provided file.
func LoadFile(f string) (*Config, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Load(b)
}

// Validate checks every field and normalizes case.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.Encoding = strings.ToLower(c.Encoding)

	var errs []error
	if !contains(validLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("config: invalid LogLevel %q", c.LogLevel))
	}
	if c.Encoding != EncodingHex && c.Encoding != EncodingBase64 {
		errs = append(errs, fmt.Errorf("config: invalid Encoding %q, want %q or %q", c.Encoding, EncodingHex, EncodingBase64))
	}
	if c.Trials <= 0 || c.Trials > maxTrials {
		errs = append(errs, fmt.Errorf("config: Trials must be in [1, %d], got %d", maxTrials, c.Trials))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("config: Workers must be positive, got %d", c.Workers))
	}
	return errors.Join(errs...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
