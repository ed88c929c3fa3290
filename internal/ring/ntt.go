package ring

import "math/bits"

const (
	// zeta is a primitive 256th root of unity modulo q.
	zeta = 17
	// nInv is 128⁻¹ mod q.
	nInv = 3303
)

// Read-only tables, filled once at package initialisation.
var (
	// zetasMontgomery[i] = ζ^brv₇(i)·2¹⁶ mod q.
	zetasMontgomery = buildZetas()
	// gammas[i] = ζ^(2·brv₇(i)+1) mod q, the base-case moduli X² - γᵢ.
	gammas = buildGammas()

	nInvMontgomery = toMontgomery(nInv)
)

func bitRev7(i int) int {
	return int(bits.Reverse8(uint8(i)) >> 1)
}

func powMod(base, exp int) int {
	result := 1
	base %= q
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			result = result * base % q
		}
		base = base * base % q
	}
	return result
}

func buildZetas() [128]int16 {
	var t [128]int16
	for i := range t {
		t[i] = toMontgomery(powMod(zeta, bitRev7(i)))
	}
	return t
}

func buildGammas() [128]Element {
	var t [128]Element
	for i := range t {
		t[i] = Element(powMod(zeta, 2*bitRev7(i)+1))
	}
	return t
}

// NTT transforms f into the NTT domain.
//
// The output is 128 degree-one residues of f modulo X² - γᵢ, stored in
// bit-reversed order, as fixed by the Kyber wire format.
func NTT(f Poly) NTTPoly {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < len(f); start += 2 * length {
			z := zetasMontgomery[k]
			k++
			for j := start; j < start+length; j++ {
				t := mulMontgomery(z, f[j+length])
				f[j+length] = fieldSub(f[j], t)
				f[j] = fieldAdd(f[j], t)
			}
		}
	}
	return NTTPoly(f)
}

// InverseNTT transforms f back into the standard domain. It is the exact
// inverse of NTT.
func InverseNTT(f NTTPoly) Poly {
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < len(f); start += 2 * length {
			z := zetasMontgomery[k]
			k--
			for j := start; j < start+length; j++ {
				t := f[j]
				f[j] = fieldAdd(t, f[j+length])
				f[j+length] = mulMontgomery(z, fieldSub(f[j+length], t))
			}
		}
	}
	for i := range f {
		f[i] = mulMontgomery(nInvMontgomery, f[i])
	}
	return Poly(f)
}

// Mul returns the product of f and g in the NTT domain.
//
// Each pair of coefficients is a residue modulo X² - γᵢ, so the product is a
// base-case multiplication per pair rather than a plain coefficient-wise one.
func (f NTTPoly) Mul(g NTTPoly) NTTPoly {
	var h NTTPoly
	for i := 0; i < 128; i++ {
		a0, a1 := f[2*i], f[2*i+1]
		b0, b1 := g[2*i], g[2*i+1]
		h[2*i] = fieldAdd(fieldMul(a0, b0), fieldMul(fieldMul(a1, b1), gammas[i]))
		h[2*i+1] = fieldAdd(fieldMul(a0, b1), fieldMul(a1, b0))
	}
	return h
}
