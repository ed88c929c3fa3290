package ring

import (
	"fmt"

	"github.com/vaultsandbox/kyber-go/internal/params"
)

// compress returns ⌊(x·2ᵈ + q/2) / q⌋ mod 2ᵈ.
//
// The division is a Barrett estimate corrected by one step, so the running
// time does not depend on x.
func compress(x Element, d uint) uint16 {
	dividend := uint32(x)<<d + q/2
	quotient := uint32((uint64(dividend) * barrettMultiplier) >> barrettShift)
	remainder := dividend - quotient*q
	// The estimate is at most one short; bump it when remainder ≥ q.
	quotient += ((q - 1 - remainder) >> 31) & 1
	return uint16(quotient & (1<<d - 1))
}

// decompress returns ⌊(y·q + 2ᵈ⁻¹) / 2ᵈ⌋, the rounding of y·q/2ᵈ. For
// y < 2ᵈ and d ≤ 11 the result is always below q.
func decompress(y uint16, d uint) Element {
	return Element((uint32(y)*q + 1<<(d-1)) >> d)
}

func checkBits(d int) error {
	if d < 1 || d > params.MaxCompressBits {
		return fmt.Errorf("%w: compression width %d not in [1, %d]", params.ErrInvalidParameter, d, params.MaxCompressBits)
	}
	return nil
}

// AppendCompressed appends f quantized and packed at d bits per coefficient.
// It panics if d is outside [1, 11]; use Compress for untrusted widths.
func (f Poly) AppendCompressed(dst []byte, d int) []byte {
	if err := checkBits(d); err != nil {
		panic(err)
	}
	var values [params.N]uint16
	for i, c := range f {
		values[i] = compress(c, uint(d))
	}
	return packBits(dst, &values, uint(d))
}

// Compress quantizes every coefficient of f to d bits and packs the result
// into N·d/8 bytes.
func (f Poly) Compress(d int) ([]byte, error) {
	if err := checkBits(d); err != nil {
		return nil, err
	}
	return f.AppendCompressed(make([]byte, 0, params.CompressedSize(d)), d), nil
}

// DecompressPoly unpacks N·d/8 bytes and maps every d-bit value back to a
// coefficient. Decompression is lossy: the result differs from the value
// before compression by at most q/2ᵈ⁺¹, rounded.
func DecompressPoly(b []byte, d int) (Poly, error) {
	var f Poly
	if err := checkBits(d); err != nil {
		return f, err
	}
	if want := params.CompressedSize(d); len(b) != want {
		return f, fmt.Errorf("%w: got %d, want %d", params.ErrInvalidLength, len(b), want)
	}
	values := unpackBits(b, uint(d))
	for i, v := range values {
		f[i] = decompress(v, uint(d))
	}
	return f, nil
}
