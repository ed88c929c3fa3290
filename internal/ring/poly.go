// Package ring implements arithmetic in Rq = Zq[X]/(X²⁵⁶ + 1) for q = 3329:
// the NTT engine, polynomial and vector operations, compression and the
// fixed-width serialization used by the Kyber wire format.
//
// Standard-domain and NTT-domain values have distinct types, Poly and
// NTTPoly, so that only NTT-domain values can be multiplied.
package ring

import "github.com/vaultsandbox/kyber-go/internal/params"

// Poly is a polynomial in the standard domain.
type Poly [params.N]Element

// NTTPoly is a polynomial in the NTT domain.
type NTTPoly [params.N]Element

// Add returns f + g.
func (f Poly) Add(g Poly) Poly {
	var h Poly
	for i := range h {
		h[i] = fieldAdd(f[i], g[i])
	}
	return h
}

// Sub returns f - g.
func (f Poly) Sub(g Poly) Poly {
	var h Poly
	for i := range h {
		h[i] = fieldSub(f[i], g[i])
	}
	return h
}

// Add returns f + g.
func (f NTTPoly) Add(g NTTPoly) NTTPoly {
	var h NTTPoly
	for i := range h {
		h[i] = fieldAdd(f[i], g[i])
	}
	return h
}

// Sub returns f - g.
func (f NTTPoly) Sub(g NTTPoly) NTTPoly {
	var h NTTPoly
	for i := range h {
		h[i] = fieldSub(f[i], g[i])
	}
	return h
}

// NTT is shorthand for NTT(f).
func (f Poly) NTT() NTTPoly {
	return NTT(f)
}

// InverseNTT is shorthand for InverseNTT(f).
func (f NTTPoly) InverseNTT() Poly {
	return InverseNTT(f)
}
