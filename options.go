package kyber768

import (
	"crypto/rand"
	"io"
)

// config holds the collaborators of a single call.
type config struct {
	random io.Reader
}

// Option configures key generation and encapsulation.
type Option func(*config)

// WithRandom sets the source of randomness. The default is
// crypto/rand.Reader. A nil reader restores the default.
func WithRandom(r io.Reader) Option {
	return func(c *config) {
		c.random = r
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{random: rand.Reader}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.random == nil {
		cfg.random = rand.Reader
	}
	return cfg
}

func (c *config) read(operation string, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(c.random, b); err != nil {
		return nil, &EntropyError{Operation: operation, Err: err}
	}
	return b, nil
}
