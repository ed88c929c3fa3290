package symmetric

import (
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/vaultsandbox/kyber-go/internal/params"
	"github.com/vaultsandbox/kyber-go/internal/ring"
)

// referenceSample is a direct reading of the rejection sampler: squeeze the
// whole stream up front and keep 12-bit candidates below q.
func referenceSample(rho [32]byte, x, y byte) ring.NTTPoly {
	h := sha3.NewShake128()
	h.Write(rho[:])
	h.Write([]byte{x, y})
	stream := make([]byte, 168*8)
	h.Read(stream)

	var f ring.NTTPoly
	n := 0
	for i := 0; n < params.N; i += 3 {
		d1 := uint16(stream[i]) | uint16(stream[i+1]&0x0f)<<8
		d2 := uint16(stream[i+1]>>4) | uint16(stream[i+2])<<4
		if d1 < params.Q {
			f[n] = ring.Element(d1)
			n++
		}
		if d2 < params.Q && n < params.N {
			f[n] = ring.Element(d2)
			n++
		}
	}
	return f
}

func testSeed() [32]byte {
	var rho [32]byte
	for i := range rho {
		rho[i] = byte(3*i + 1)
	}
	return rho
}

func TestSampleNTTMatchesReference(t *testing.T) {
	rho := testSeed()
	for _, idx := range [][2]byte{{0, 0}, {1, 2}, {2, 1}} {
		if SampleNTT(rho, idx[0], idx[1]) != referenceSample(rho, idx[0], idx[1]) {
			t.Errorf("SampleNTT(%d, %d) differs from the reference sampler", idx[0], idx[1])
		}
	}
}

func TestUniformStreamRange(t *testing.T) {
	s := NewUniformStream(testSeed(), 0, 0)
	for i := 0; i < 10*params.N; i++ {
		if v := s.Next(); v >= params.Q {
			t.Fatalf("element %d = %d, want < q", i, v)
		}
	}
}

func TestUniformStreamReset(t *testing.T) {
	s := NewUniformStream(testSeed(), 1, 0)
	first := make([]ring.Element, 300)
	for i := range first {
		first[i] = s.Next()
	}
	s.Reset()
	for i := range first {
		if got := s.Next(); got != first[i] {
			t.Fatalf("after Reset element %d = %d, want %d", i, got, first[i])
		}
	}
}

func TestSampleMatrixIndexOrder(t *testing.T) {
	rho := testSeed()
	m := SampleMatrix(rho)
	for i := 0; i < params.K; i++ {
		for j := 0; j < params.K; j++ {
			if m[i][j] != SampleNTT(rho, byte(j), byte(i)) {
				t.Errorf("A[%d][%d] not drawn from stream (ρ, %d, %d)", i, j, j, i)
			}
		}
	}
	if m[0][1] == m[1][0] {
		t.Error("A[0][1] == A[1][0]")
	}
}

func BenchmarkSampleMatrix(b *testing.B) {
	rho := testSeed()
	for i := 0; i < b.N; i++ {
		SampleMatrix(rho)
	}
}
