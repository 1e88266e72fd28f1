package fastws

import (
	"encoding/binary"
	"unicode/utf8"
)

// maxControlPayload is the RFC 6455 Section 5.5 limit on control frame
// payloads.
const maxControlPayload = 125

// Frame is the in-memory representation of a single WebSocket frame.
//
// Invariants: a control OpCode always carries Fin=true; PingFrame,
// PongFrame and CloseFrame also limit its Payload to at most 125 bytes,
// while CloseRawFrame, closeFrameUnchecked and the zero value do not check
// the length. RSV1-3 are always zero, both on frames this package builds and
// on frames it accepts off the wire.
type Frame struct {
	Fin              bool
	RSV1, RSV2, RSV3 bool
	OpCode           OpCode
	Masked           bool
	Mask             [4]byte
	// Payload is an owned buffer. readHalf copies each frame's payload
	// out of its internal buffer before returning it, so a Frame remains
	// valid past subsequent reads on the same stream (design choice (a)
	// from the Zero-copy payloads note: copy on emit, documented in
	// DESIGN.md).
	Payload []byte
}

// TextFrame builds a final, unmasked Text frame.
func TextFrame(payload []byte) Frame {
	return Frame{Fin: true, OpCode: OpText, Payload: payload}
}

// BinaryFrame builds a final, unmasked Binary frame.
func BinaryFrame(payload []byte) Frame {
	return Frame{Fin: true, OpCode: OpBinary, Payload: payload}
}

// ContinuationFrame builds a Continuation frame carrying the given
// fragment. fin marks it as the last fragment of the message.
func ContinuationFrame(payload []byte, fin bool) Frame {
	return Frame{Fin: fin, OpCode: OpContinuation, Payload: payload}
}

// PingFrame builds a Ping frame. It returns ErrPingFrameTooLarge if
// payload exceeds 125 bytes.
func PingFrame(payload []byte) (Frame, error) {
	if len(payload) > maxControlPayload {
		return Frame{}, ErrPingFrameTooLarge
	}
	return Frame{Fin: true, OpCode: OpPing, Payload: payload}, nil
}

// PongFrame builds a Pong frame carrying payload verbatim (typically an
// echo of a received Ping). It returns ErrFrameTooLarge if payload exceeds
// 125 bytes.
func PongFrame(payload []byte) (Frame, error) {
	if len(payload) > maxControlPayload {
		return Frame{}, ErrFrameTooLarge
	}
	return Frame{Fin: true, OpCode: OpPong, Payload: payload}, nil
}

// CloseFrame builds a Close frame whose payload is code, big-endian, then
// reason. It returns ErrFrameTooLarge if the combined payload would exceed
// 125 bytes.
func CloseFrame(code CloseCode, reason []byte) (Frame, error) {
	if len(reason)+2 > maxControlPayload {
		return Frame{}, ErrFrameTooLarge
	}
	payload := make([]byte, 2+len(reason))
	binary.BigEndian.PutUint16(payload, uint16(code))
	copy(payload[2:], reason)
	return Frame{Fin: true, OpCode: OpClose, Payload: payload}, nil
}

// CloseRawFrame builds a Close frame using payload verbatim, with no code
// prepended. Used to echo a peer's close payload unmodified.
func CloseRawFrame(payload []byte) Frame {
	return Frame{Fin: true, OpCode: OpClose, Payload: payload}
}

// closeFrameUnchecked builds a Close frame like CloseFrame, but without
// the 125-byte control payload limit. The read half's auto-close uses it
// to echo an InvalidCloseCode rejection even when the peer's offending
// reason text was itself oversized; application code should use CloseFrame
// instead.
func closeFrameUnchecked(code CloseCode, reason []byte) Frame {
	payload := make([]byte, 2+len(reason))
	binary.BigEndian.PutUint16(payload, uint16(code))
	copy(payload[2:], reason)
	return Frame{Fin: true, OpCode: OpClose, Payload: payload}
}

// headerSize returns the number of bytes FmtHead will write for this
// frame: 2 fixed bytes, plus 2 or 8 for an extended length, plus 4 for a
// mask key.
func (f *Frame) headerSize() int {
	n := 2
	switch {
	case len(f.Payload) > 65535:
		n += 8
	case len(f.Payload) > 125:
		n += 2
	}
	if f.Masked {
		n += 4
	}
	return n
}

// FmtHead appends this frame's RFC 6455 header to dst and returns the
// extended slice. RSV bits are always written zero.
func (f *Frame) FmtHead(dst []byte) []byte {
	var b0 byte
	if f.Fin {
		b0 |= 0x80
	}
	b0 |= byte(f.OpCode) & 0x0f

	n := len(f.Payload)
	var b1 byte
	if f.Masked {
		b1 |= 0x80
	}

	switch {
	case n <= 125:
		b1 |= byte(n)
		dst = append(dst, b0, b1)
	case n <= 65535:
		b1 |= 126
		dst = append(dst, b0, b1, 0, 0)
		binary.BigEndian.PutUint16(dst[len(dst)-2:], uint16(n))
	default:
		b1 |= 127
		dst = append(dst, b0, b1, 0, 0, 0, 0, 0, 0, 0, 0)
		binary.BigEndian.PutUint64(dst[len(dst)-8:], uint64(n))
	}

	if f.Masked {
		dst = append(dst, f.Mask[:]...)
	}
	return dst
}

// applyMask applies key to f's payload and marks it masked.
func (f *Frame) applyMask(key [4]byte) {
	f.Masked = true
	f.Mask = key
	maskBytes(f.Payload, key)
}

// Unmask removes f's mask, XOR-ing the payload back to its clear form and
// clearing the Masked flag.
func (f *Frame) Unmask() {
	if !f.Masked {
		return
	}
	maskBytes(f.Payload, f.Mask)
	f.Masked = false
	f.Mask = [4]byte{}
}

// IsUTF8 reports whether f's payload is valid UTF-8.
func (f *Frame) IsUTF8() bool {
	return utf8.Valid(f.Payload)
}
