package fastws

import "encoding/binary"

// maskBytes applies the RFC 6455 Section 5.3 masking algorithm to p in
// place: p[i] ^= key[i%4] for all i. The operation is its own inverse, so
// the same call both masks and unmasks a payload.
//
// Like pascaldekloe/websocket's xorWith, the byte-at-a-time definition is
// sped up by XOR-ing 8 bytes at a time against a key broadcast across a
// uint64, falling back to a byte loop for the remainder and for buffers
// shorter than a word.
func maskBytes(p []byte, key [4]byte) {
	if len(p) < 8 {
		for i := range p {
			p[i] ^= key[i%4]
		}
		return
	}

	k32 := binary.NativeEndian.Uint32(key[:])
	k64 := uint64(k32)<<32 | uint64(k32)

	for len(p) >= 8 {
		v := binary.NativeEndian.Uint64(p)
		binary.NativeEndian.PutUint64(p, v^k64)
		p = p[8:]
	}
	for i := range p {
		p[i] ^= key[i%4]
	}
}
