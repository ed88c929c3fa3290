package kyber768

import (
	"errors"
	"fmt"

	"github.com/vaultsandbox/kyber-go/internal/params"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidLength is returned when a key, ciphertext or seed does not
	// have its mandated size.
	ErrInvalidLength = params.ErrInvalidLength

	// ErrInvalidParameter is returned when an unsupported compression width
	// or noise parameter is requested.
	ErrInvalidParameter = params.ErrInvalidParameter

	// ErrMalformedEncoding is returned when a key holds a packed coefficient
	// that is not below q.
	ErrMalformedEncoding = params.ErrMalformedEncoding

	// ErrKeyMismatch is returned when a secret key's embedded hash does not
	// match its embedded public key, or a public key does not belong to a
	// secret key.
	ErrKeyMismatch = errors.New("key mismatch")
)

// KEMError is implemented by all typed errors of this package.
type KEMError interface {
	error
	KEMError() // marker method
}

// LengthError reports a buffer of the wrong size.
type LengthError struct {
	Field string
	Got   int
	Want  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid %s length: got %d, want %d", e.Field, e.Got, e.Want)
}

// Is implements errors.Is for sentinel error matching.
func (e *LengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// KEMError implements the KEMError interface.
func (e *LengthError) KEMError() {}

func checkLength(field string, b []byte, want int) error {
	if len(b) != want {
		return &LengthError{Field: field, Got: len(b), Want: want}
	}
	return nil
}

// EntropyError reports a failure of the configured random source.
type EntropyError struct {
	Operation string
	Err       error
}

func (e *EntropyError) Error() string {
	return fmt.Sprintf("%s: read random source: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntropyError) Unwrap() error {
	return e.Err
}

// KEMError implements the KEMError interface.
func (e *EntropyError) KEMError() {}
