package fastws

import (
	"bytes"
	"testing"
)

func TestMaskBytesRoundTrips(t *testing.T) {
	key := [4]byte{0x12, 0x34, 0x56, 0x78}

	for _, n := range []int{0, 1, 3, 4, 7, 8, 9, 15, 16, 17, 1000} {
		p := bytes.Repeat([]byte{0xAB}, n)
		orig := append([]byte(nil), p...)

		maskBytes(p, key)
		if n > 0 && bytes.Equal(p, orig) {
			t.Fatalf("len=%d: masking did not change payload", n)
		}
		maskBytes(p, key)
		if !bytes.Equal(p, orig) {
			t.Fatalf("len=%d: masking twice did not restore original", n)
		}
	}
}

func TestMaskBytesMatchesByteLoop(t *testing.T) {
	key := [4]byte{0xAA, 0xBB, 0xCC, 0xDD}
	p := make([]byte, 37)
	for i := range p {
		p[i] = byte(i * 7)
	}
	want := make([]byte, len(p))
	for i := range p {
		want[i] = p[i] ^ key[i%4]
	}

	maskBytes(p, key)
	if !bytes.Equal(p, want) {
		t.Fatalf("maskBytes = %x, want %x", p, want)
	}
}
