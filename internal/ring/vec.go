package ring

import (
	"fmt"

	"github.com/vaultsandbox/kyber-go/internal/params"
)

// Vec is a vector of K standard-domain polynomials.
type Vec [params.K]Poly

// NTTVec is a vector of K NTT-domain polynomials.
type NTTVec [params.K]NTTPoly

// Matrix is a K×K matrix of NTT-domain polynomials. It is always expanded
// from a seed and never serialized.
type Matrix [params.K][params.K]NTTPoly

// NTT transforms every element of v.
func (v Vec) NTT() NTTVec {
	var w NTTVec
	for i := range v {
		w[i] = NTT(v[i])
	}
	return w
}

// InverseNTT transforms every element of v back to the standard domain.
func (v NTTVec) InverseNTT() Vec {
	var w Vec
	for i := range v {
		w[i] = InverseNTT(v[i])
	}
	return w
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	var r Vec
	for i := range v {
		r[i] = v[i].Add(w[i])
	}
	return r
}

// Add returns v + w.
func (v NTTVec) Add(w NTTVec) NTTVec {
	var r NTTVec
	for i := range v {
		r[i] = v[i].Add(w[i])
	}
	return r
}

// Dot returns Σᵢ a[i]·b[i] in the NTT domain.
func Dot(a, b NTTVec) NTTPoly {
	var acc NTTPoly
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}
	return acc
}

// MulVec returns A·v.
func (m *Matrix) MulVec(v NTTVec) NTTVec {
	var r NTTVec
	for i := range r {
		for j := range v {
			r[i] = r[i].Add(m[i][j].Mul(v[j]))
		}
	}
	return r
}

// MulVecTranspose returns Aᵀ·v without building Aᵀ.
func (m *Matrix) MulVecTranspose(v NTTVec) NTTVec {
	var r NTTVec
	for i := range r {
		for j := range v {
			r[i] = r[i].Add(m[j][i].Mul(v[j]))
		}
	}
	return r
}

// Bytes serializes v into PolyVecBytes bytes.
func (v NTTVec) Bytes() []byte {
	return v.AppendBytes(make([]byte, 0, params.PolyVecBytes))
}

// AppendBytes appends the serialization of every element of v to dst.
func (v NTTVec) AppendBytes(dst []byte) []byte {
	for i := range v {
		dst = v[i].AppendBytes(dst)
	}
	return dst
}

// Bytes serializes v into PolyVecBytes bytes.
func (v Vec) Bytes() []byte {
	b := make([]byte, 0, params.PolyVecBytes)
	for i := range v {
		b = v[i].AppendBytes(b)
	}
	return b
}

func checkVecLength(b []byte, want int) error {
	if len(b) != want {
		return fmt.Errorf("%w: got %d, want %d", params.ErrInvalidLength, len(b), want)
	}
	return nil
}

// NTTVecFromBytes parses PolyVecBytes bytes into an NTT-domain vector.
func NTTVecFromBytes(b []byte) (NTTVec, error) {
	var v NTTVec
	if err := checkVecLength(b, params.PolyVecBytes); err != nil {
		return v, err
	}
	for i := range v {
		p, err := NTTPolyFromBytes(b[i*params.PolyBytes : (i+1)*params.PolyBytes])
		if err != nil {
			return v, fmt.Errorf("element %d: %w", i, err)
		}
		v[i] = p
	}
	return v, nil
}

// VecFromBytes parses PolyVecBytes bytes into a standard-domain vector.
func VecFromBytes(b []byte) (Vec, error) {
	var v Vec
	if err := checkVecLength(b, params.PolyVecBytes); err != nil {
		return v, err
	}
	for i := range v {
		p, err := PolyFromBytes(b[i*params.PolyBytes : (i+1)*params.PolyBytes])
		if err != nil {
			return v, fmt.Errorf("element %d: %w", i, err)
		}
		v[i] = p
	}
	return v, nil
}

// AppendCompressed appends every element of v compressed to d bits.
// It panics if d is outside [1, 11].
func (v Vec) AppendCompressed(dst []byte, d int) []byte {
	for i := range v {
		dst = v[i].AppendCompressed(dst, d)
	}
	return dst
}

// Compress quantizes and packs every element of v at d bits per coefficient.
func (v Vec) Compress(d int) ([]byte, error) {
	if err := checkBits(d); err != nil {
		return nil, err
	}
	return v.AppendCompressed(make([]byte, 0, params.K*params.CompressedSize(d)), d), nil
}

// DecompressVec is the vector form of DecompressPoly.
func DecompressVec(b []byte, d int) (Vec, error) {
	var v Vec
	if err := checkBits(d); err != nil {
		return v, err
	}
	size := params.CompressedSize(d)
	if err := checkVecLength(b, params.K*size); err != nil {
		return v, err
	}
	for i := range v {
		p, err := DecompressPoly(b[i*size:(i+1)*size], d)
		if err != nil {
			return v, err
		}
		v[i] = p
	}
	return v, nil
}
