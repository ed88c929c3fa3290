package symmetric

import (
	"golang.org/x/crypto/sha3"

	"github.com/vaultsandbox/kyber-go/internal/params"
	"github.com/vaultsandbox/kyber-go/internal/ring"
)

// shake128Rate is the SHAKE-128 block size. Squeezing whole blocks keeps the
// buffer a multiple of three bytes.
const shake128Rate = 168

// UniformStream is a lazy sequence of field elements drawn uniformly from
// SHAKE-128(ρ ‖ x ‖ y). Every 3 bytes of output yield two 12-bit candidates;
// candidates not below q are discarded.
type UniformStream struct {
	seed    [params.SymSize + 2]byte
	xof     sha3.ShakeHash
	buf     [shake128Rate]byte
	off     int
	pending int
}

// NewUniformStream returns the stream keyed by ρ and the index bytes x, y.
func NewUniformStream(rho [params.SymSize]byte, x, y byte) *UniformStream {
	s := &UniformStream{}
	copy(s.seed[:], rho[:])
	s.seed[params.SymSize] = x
	s.seed[params.SymSize+1] = y
	s.Reset()
	return s
}

// Reset restarts the stream from its first element.
func (s *UniformStream) Reset() {
	s.xof = sha3.NewShake128()
	s.xof.Write(s.seed[:])
	s.off = len(s.buf)
	s.pending = -1
}

// Next returns the next accepted element of the stream.
func (s *UniformStream) Next() ring.Element {
	for {
		if s.pending >= 0 {
			v := s.pending
			s.pending = -1
			if v < params.Q {
				return ring.Element(v)
			}
			continue
		}

		if s.off == len(s.buf) {
			s.xof.Read(s.buf[:])
			s.off = 0
		}
		b := s.buf[s.off : s.off+3]
		s.off += 3

		d1 := int(b[0]) | int(b[1]&0x0f)<<8
		s.pending = int(b[1]>>4) | int(b[2])<<4
		if d1 < params.Q {
			return ring.Element(d1)
		}
	}
}

// SampleNTT fills an NTT-domain polynomial from the stream keyed by ρ, x, y.
func SampleNTT(rho [params.SymSize]byte, x, y byte) ring.NTTPoly {
	s := NewUniformStream(rho, x, y)
	var f ring.NTTPoly
	for i := range f {
		f[i] = s.Next()
	}
	return f
}

// SampleMatrix expands ρ into Â, with Â[i][j] drawn from the stream keyed by
// (ρ, j, i).
func SampleMatrix(rho [params.SymSize]byte) ring.Matrix {
	var m ring.Matrix
	for i := range m {
		for j := range m[i] {
			m[i][j] = SampleNTT(rho, byte(j), byte(i))
		}
	}
	return m
}
