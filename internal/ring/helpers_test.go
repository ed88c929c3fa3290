package ring

import (
	"math/rand/v2"

	"github.com/vaultsandbox/kyber-go/internal/params"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x6b796265, 0x72373638))
}

func randomPoly(rng *rand.Rand) Poly {
	var f Poly
	for i := range f {
		f[i] = Element(rng.IntN(q))
	}
	return f
}

func randomNTTPoly(rng *rand.Rand) NTTPoly {
	return NTTPoly(randomPoly(rng))
}

func randomNTTVec(rng *rand.Rand) NTTVec {
	var v NTTVec
	for i := range v {
		v[i] = randomNTTPoly(rng)
	}
	return v
}

// schoolbookMul multiplies in Zq[X]/(X²⁵⁶+1) the slow way.
func schoolbookMul(a, b Poly) Poly {
	var acc [2 * params.N]int64
	for i := range a {
		for j := range b {
			acc[i+j] += int64(a[i]) * int64(b[j])
		}
	}
	var r Poly
	for i := range r {
		v := (acc[i] - acc[i+params.N]) % q
		if v < 0 {
			v += q
		}
		r[i] = Element(v)
	}
	return r
}

func circularDistance(a, b Element) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	if q-d < d {
		d = q - d
	}
	return d
}
