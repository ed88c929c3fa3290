package symmetric

import (
	"encoding/binary"
	"fmt"

	"github.com/vaultsandbox/kyber-go/internal/params"
	"github.com/vaultsandbox/kyber-go/internal/ring"
)

// SampleCBD maps 64·eta bytes to a polynomial whose coefficients follow the
// centered binomial distribution with parameter eta. Each coefficient is the
// popcount of eta bits minus the popcount of the next eta bits.
func SampleCBD(buf []byte, eta int) (ring.Poly, error) {
	var f ring.Poly
	if eta != 2 && eta != 3 {
		return f, fmt.Errorf("%w: eta %d not in {2, 3}", params.ErrInvalidParameter, eta)
	}
	if len(buf) != 64*eta {
		return f, fmt.Errorf("%w: got %d noise bytes, want %d", params.ErrInvalidLength, len(buf), 64*eta)
	}

	switch eta {
	case 2:
		for i := 0; i < params.N/8; i++ {
			t := binary.LittleEndian.Uint32(buf[4*i:])
			d := t&0x55555555 + (t>>1)&0x55555555
			for j := 0; j < 8; j++ {
				a := int(d>>(4*j)) & 0x3
				b := int(d>>(4*j+2)) & 0x3
				f[8*i+j] = ring.ElementFromCentered(a - b)
			}
		}
	case 3:
		for i := 0; i < params.N/4; i++ {
			t := uint32(buf[3*i]) | uint32(buf[3*i+1])<<8 | uint32(buf[3*i+2])<<16
			d := t&0x249249 + (t>>1)&0x249249 + (t>>2)&0x249249
			for j := 0; j < 4; j++ {
				a := int(d>>(6*j)) & 0x7
				b := int(d>>(6*j+3)) & 0x7
				f[4*i+j] = ring.ElementFromCentered(a - b)
			}
		}
	}
	return f, nil
}

// SampleNoise returns SampleCBD(PRF(sigma, nonce, eta), eta).
func SampleNoise(sigma [params.SymSize]byte, nonce byte, eta int) (ring.Poly, error) {
	if eta != 2 && eta != 3 {
		return ring.Poly{}, fmt.Errorf("%w: eta %d not in {2, 3}", params.ErrInvalidParameter, eta)
	}
	return SampleCBD(PRF(sigma, nonce, eta), eta)
}
