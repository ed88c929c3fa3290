package ring

import "github.com/vaultsandbox/kyber-go/internal/params"

// Element is an integer modulo q. Every Element produced by this package is
// held canonically in [0, q).
type Element uint16

const (
	q = params.Q

	// qInv is q⁻¹ mod 2¹⁶, used by Montgomery reduction.
	qInv = 62209

	// barrettMultiplier is ⌊2²⁴ / q⌋.
	barrettMultiplier = 5039
	barrettShift      = 24
)

// reduceOnce maps a ∈ [0, 2q) to a mod q without branching.
func reduceOnce(a uint16) Element {
	x := a - q
	x += q & uint16(int16(x)>>15)
	return Element(x)
}

func fieldAdd(a, b Element) Element {
	return reduceOnce(uint16(a) + uint16(b))
}

func fieldSub(a, b Element) Element {
	return reduceOnce(uint16(a) - uint16(b) + q)
}

// barrettReduce returns a mod q for a < 2²⁴.
func barrettReduce(a uint32) Element {
	quotient := uint32((uint64(a) * barrettMultiplier) >> barrettShift)
	return reduceOnce(uint16(a - quotient*q))
}

func fieldMul(a, b Element) Element {
	return barrettReduce(uint32(a) * uint32(b))
}

// montgomeryReduce returns y ≡ a·2⁻¹⁶ (mod q) with -q < y < q, for
// |a| < 2¹⁵·q.
func montgomeryReduce(a int32) int16 {
	t := int16(a * qInv)
	return int16((a - int32(t)*q) >> 16)
}

// fromSigned maps x ∈ (-q, q) to its canonical representative.
func fromSigned(x int16) Element {
	return Element(x + (q & (x >> 15)))
}

// mulMontgomery returns zeta·x mod q where zeta is given in Montgomery form.
func mulMontgomery(zeta int16, x Element) Element {
	return fromSigned(montgomeryReduce(int32(zeta) * int32(x)))
}

// toMontgomery returns x·2¹⁶ mod q. Only used to build tables.
func toMontgomery(x int) int16 {
	return int16((x << 16) % q)
}

// ElementFromCentered maps a small signed integer x ∈ (-q, q) to its
// canonical representative in [0, q).
func ElementFromCentered(x int) Element {
	return fromSigned(int16(x))
}

// Centered returns the representative of a in (-q/2, q/2].
func (a Element) Centered() int {
	v := int(a)
	if v > q/2 {
		v -= q
	}
	return v
}
