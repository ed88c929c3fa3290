package symmetric

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vaultsandbox/kyber-go/internal/params"
)

func TestSampleCBDKnownBytes(t *testing.T) {
	tests := []struct {
		name  string
		eta   int
		fill  byte
		first int
	}{
		{"eta2 zero", 2, 0x00, 0},
		{"eta2 all ones", 2, 0xff, 0},
		{"eta2 plus two", 2, 0x03, 2},
		{"eta2 minus two", 2, 0x0c, -2},
		{"eta2 plus one", 2, 0x01, 1},
		{"eta3 zero", 3, 0x00, 0},
		{"eta3 plus three", 3, 0x07, 3},
		{"eta3 minus three", 3, 0x38, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 64*tt.eta)
			buf[0] = tt.fill
			if tt.fill == 0xff {
				buf = bytes.Repeat([]byte{0xff}, 64*tt.eta)
			}
			f, err := SampleCBD(buf, tt.eta)
			if err != nil {
				t.Fatalf("SampleCBD() error = %v", err)
			}
			if got := f[0].Centered(); got != tt.first {
				t.Errorf("f[0] = %d, want %d", got, tt.first)
			}
		})
	}
}

func TestSampleCBDRange(t *testing.T) {
	var sigma [32]byte
	sigma[0] = 0x42
	for _, eta := range []int{2, 3} {
		counts := make(map[int]int)
		for nonce := 0; nonce < 16; nonce++ {
			f, err := SampleNoise(sigma, byte(nonce), eta)
			if err != nil {
				t.Fatalf("SampleNoise() error = %v", err)
			}
			for _, c := range f {
				v := c.Centered()
				if v < -eta || v > eta {
					t.Fatalf("eta=%d: coefficient %d out of range", eta, v)
				}
				counts[v]++
			}
		}
		// 4096 draws; every value in [-eta, eta] shows up.
		for v := -eta; v <= eta; v++ {
			if counts[v] == 0 {
				t.Errorf("eta=%d: value %d never sampled", eta, v)
			}
		}
		if counts[0] <= counts[eta] {
			t.Errorf("eta=%d: zero is not more likely than %d", eta, eta)
		}
	}
}

func TestSampleNoiseMatchesPRF(t *testing.T) {
	var sigma [32]byte
	f, err := SampleNoise(sigma, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	g, err := SampleCBD(PRF(sigma, 3, 2), 2)
	if err != nil {
		t.Fatal(err)
	}
	if f != g {
		t.Error("SampleNoise != SampleCBD(PRF(...))")
	}
}

func TestSampleCBD_Errors(t *testing.T) {
	for _, eta := range []int{0, 1, 4} {
		if _, err := SampleCBD(make([]byte, 64*eta), eta); !errors.Is(err, params.ErrInvalidParameter) {
			t.Errorf("SampleCBD(eta=%d) error = %v, want ErrInvalidParameter", eta, err)
		}
		if _, err := SampleNoise([32]byte{}, 0, eta); !errors.Is(err, params.ErrInvalidParameter) {
			t.Errorf("SampleNoise(eta=%d) error = %v, want ErrInvalidParameter", eta, err)
		}
	}
	if _, err := SampleCBD(make([]byte, 127), 2); !errors.Is(err, params.ErrInvalidLength) {
		t.Errorf("expected ErrInvalidLength, got %v", err)
	}
}
