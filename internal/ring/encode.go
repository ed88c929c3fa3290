package ring

import (
	"fmt"

	"github.com/vaultsandbox/kyber-go/internal/params"
)

const encodingBits = 12

// packBits appends the low d bits of every value to dst as one little-endian
// bit stream. N·d is always a multiple of 8, so nothing is left over.
func packBits(dst []byte, values *[params.N]uint16, d uint) []byte {
	var acc uint32
	var n uint
	for _, v := range values {
		acc |= uint32(v) << n
		n += d
		for n >= 8 {
			dst = append(dst, byte(acc))
			acc >>= 8
			n -= 8
		}
	}
	return dst
}

// unpackBits is the inverse of packBits. src must hold exactly N·d/8 bytes.
func unpackBits(src []byte, d uint) [params.N]uint16 {
	var values [params.N]uint16
	var acc uint32
	var n uint
	mask := uint32(1)<<d - 1
	for i := range values {
		for n < d {
			acc |= uint32(src[0]) << n
			src = src[1:]
			n += 8
		}
		values[i] = uint16(acc & mask)
		acc >>= d
		n -= d
	}
	return values
}

func appendEncoded(dst []byte, f *[params.N]Element) []byte {
	var values [params.N]uint16
	for i, c := range f {
		values[i] = uint16(c)
	}
	return packBits(dst, &values, encodingBits)
}

func decodeElements(b []byte) ([params.N]Element, error) {
	var f [params.N]Element
	if len(b) != params.PolyBytes {
		return f, fmt.Errorf("%w: got %d, want %d", params.ErrInvalidLength, len(b), params.PolyBytes)
	}
	values := unpackBits(b, encodingBits)
	for i, v := range values {
		if v >= q {
			return f, fmt.Errorf("%w: coefficient %d is %d", params.ErrMalformedEncoding, i, v)
		}
		f[i] = Element(v)
	}
	return f, nil
}

// Bytes serializes f into PolyBytes bytes at 12 bits per coefficient.
func (f Poly) Bytes() []byte {
	return f.AppendBytes(make([]byte, 0, params.PolyBytes))
}

// AppendBytes appends the 12-bit serialization of f to dst.
func (f Poly) AppendBytes(dst []byte) []byte {
	return appendEncoded(dst, (*[params.N]Element)(&f))
}

// Bytes serializes f into PolyBytes bytes at 12 bits per coefficient.
func (f NTTPoly) Bytes() []byte {
	return f.AppendBytes(make([]byte, 0, params.PolyBytes))
}

// AppendBytes appends the 12-bit serialization of f to dst.
func (f NTTPoly) AppendBytes(dst []byte) []byte {
	return appendEncoded(dst, (*[params.N]Element)(&f))
}

// PolyFromBytes parses a standard-domain polynomial. It fails if b is not
// PolyBytes long or if any coefficient is not below q.
func PolyFromBytes(b []byte) (Poly, error) {
	f, err := decodeElements(b)
	return Poly(f), err
}

// NTTPolyFromBytes parses an NTT-domain polynomial. It fails if b is not
// PolyBytes long or if any coefficient is not below q.
func NTTPolyFromBytes(b []byte) (NTTPoly, error) {
	f, err := decodeElements(b)
	return NTTPoly(f), err
}

// PolyFromMessage maps each bit of m to a coefficient: 0 for a zero bit and
// ⌈q/2⌋ = 1665 for a one bit.
func PolyFromMessage(m [params.SymSize]byte) Poly {
	var f Poly
	for i := range f {
		bit := uint16(m[i/8]>>(i%8)) & 1
		f[i] = decompress(bit, 1)
	}
	return f
}

// Message decodes f into 32 bytes. A coefficient decodes to 1 when its
// distance from q/2 is less than q/4, and to 0 otherwise.
func (f Poly) Message() [params.SymSize]byte {
	var m [params.SymSize]byte
	for i, c := range f {
		m[i/8] |= byte(compress(c, 1)) << (i % 8)
	}
	return m
}
