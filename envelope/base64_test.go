package envelope

import (
	"bytes"
	"strings"
	"testing"
)

func TestBase64URLRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello")},
		{"binary mixed", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"url unsafe chars", []byte{0xfb, 0xf0}},
		{"one byte", []byte{0x42}},
		{"ciphertext sized", make([]byte, 1088)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := ToBase64URL(tt.data)
			if strings.ContainsAny(encoded, "+/=") {
				t.Errorf("encoded string is not unpadded base64url: %s", encoded)
			}
			decoded, err := FromBase64URL(encoded)
			if err != nil {
				t.Fatalf("FromBase64URL() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip failed: got %v, want %v", decoded, tt.data)
			}
		})
	}
}

func TestFromBase64URL_InvalidInput(t *testing.T) {
	for _, in := range []string{"!!!invalid!!!", "aGVs bG8", "aGVsbG8="} {
		if _, err := FromBase64URL(in); err == nil {
			t.Errorf("FromBase64URL(%q) succeeded, want error", in)
		}
	}
}

func TestDecodeBase64_MultipleFormats(t *testing.T) {
	original := []byte{0xfb, 0xff, 'h', 'i'}

	tests := []struct {
		name    string
		encoded string
	}{
		{"raw url encoding", "-_9oaQ"},
		{"url encoding with padding", "-_9oaQ=="},
		{"raw standard encoding", "+/9oaQ"},
		{"standard encoding", "+/9oaQ=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeBase64(tt.encoded)
			if err != nil {
				t.Fatalf("DecodeBase64() error = %v", err)
			}
			if !bytes.Equal(decoded, original) {
				t.Errorf("DecodeBase64() = %v, want %v", decoded, original)
			}
		})
	}

	if _, err := DecodeBase64("!!!"); err == nil {
		t.Error("DecodeBase64 accepted invalid input")
	}
}
