package fastws

import (
	"io"

	"github.com/google/uuid"
)

// Conn is a duplex WebSocket engine over a single stream: a readHalf and a
// writeHalf sharing the same underlying io.ReadWriter. Fragment reassembly
// lives outside Conn in a separate FragmentCollector rather than being
// embedded here.
type Conn struct {
	// ID identifies this connection for the lifetime of the process. It
	// has no meaning on the wire; it exists so logging and connection
	// registries (see cmd/wsecho) have something stable to key on, the
	// way a real deployment of this engine would need.
	ID uuid.UUID

	stream io.ReadWriter
	role   Role
	read   *readHalf
	write  *writeHalf
}

// NewConn wraps stream as a duplex engine playing role.
func NewConn(stream io.ReadWriter, role Role) *Conn {
	return &Conn{
		ID:     uuid.New(),
		stream: stream,
		role:   role,
		read:   newReadHalf(role),
		write:  newWriteHalf(role),
	}
}

// Role reports whether c is playing the client or server side.
func (c *Conn) Role() Role { return c.role }

// ReadFrame reads the next application-visible frame. Pings are answered
// with Pongs and Close frames are answered with an echoed Close
// automatically; either obligated reply is flushed on the write half
// before ReadFrame returns. Obligated replies are best-effort: if the
// write half is already closed, they are silently dropped rather than
// failing the read.
func (c *Conn) ReadFrame() (*Frame, error) {
	for {
		frame, obligated, err := c.read.readFrameInner(c.stream)
		if obligated != nil && !c.write.closed {
			if werr := c.write.writeFrame(c.stream, obligated); werr != nil {
				if err == nil {
					err = werr
				}
			}
		}
		if err != nil {
			return nil, err
		}
		if frame != nil {
			return frame, nil
		}
		// frame == nil with no error means an obligated reply alone fully
		// handled this frame (e.g. an auto-ponged Ping); keep reading.
	}
}

// WriteFrame serializes and sends f.
func (c *Conn) WriteFrame(f Frame) error {
	return c.write.writeFrame(c.stream, &f)
}

// Ping sends a Ping frame carrying payload (at most 125 bytes).
func (c *Conn) Ping(payload []byte) error {
	f, err := PingFrame(payload)
	if err != nil {
		return err
	}
	return c.WriteFrame(f)
}

// Pong sends an unsolicited Pong frame carrying payload.
func (c *Conn) Pong(payload []byte) error {
	f, err := PongFrame(payload)
	if err != nil {
		return err
	}
	return c.WriteFrame(f)
}

// Close sends a Close frame with CloseNormalClosure and no reason.
func (c *Conn) Close() error {
	return c.CloseWithCode(CloseNormalClosure, nil)
}

// CloseWithCode sends a Close frame carrying code and reason.
func (c *Conn) CloseWithCode(code CloseCode, reason []byte) error {
	f, err := CloseFrame(code, reason)
	if err != nil {
		return err
	}
	return c.WriteFrame(f)
}

// Split divides c into independent Read and Write owners sharing the same
// stream. After Split, c itself must not be used; the caller becomes
// responsible for shuttling obligated replies from Read to Write.
func (c *Conn) Split() (*Read, *Write) {
	return &Read{stream: c.stream, half: c.read}, &Write{stream: c.stream, half: c.write}
}
