package params

import "errors"

var (
	// ErrInvalidLength is returned when a buffer does not have its mandated
	// fixed size.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidParameter is returned when an unsupported compression width or
	// noise parameter is requested.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrMalformedEncoding is returned when a packed value decodes outside the
	// coefficient range [0, q).
	ErrMalformedEncoding = errors.New("malformed encoding")
)
