package fastws

import "io"

// Read is the read side of a split Conn. Unlike Conn.ReadFrame, it does
// not own a write half: any obligated reply (auto-pong, auto-close echo)
// is handed to a caller-supplied sendFn instead, so application code
// mediates ordering against its own writes on the paired Write.
type Read struct {
	stream io.Reader
	half   *readHalf
}

// Write is the write side of a split Conn.
type Write struct {
	stream io.Writer
	half   *writeHalf
}

// ReadFrame reads the next application-visible frame from r. Whenever the
// read produces an obligated reply, sendFn is invoked with it before
// ReadFrame returns; a sendFn error is wrapped in *SendError and takes
// priority only when the read itself did not already fail.
func (r *Read) ReadFrame(sendFn func(Frame) error) (*Frame, error) {
	for {
		frame, obligated, err := r.half.readFrameInner(r.stream)
		if obligated != nil {
			if serr := sendFn(*obligated); serr != nil && err == nil {
				err = &SendError{Err: serr}
			}
		}
		if err != nil {
			return nil, err
		}
		if frame != nil {
			return frame, nil
		}
	}
}

// WriteFrame serializes and sends f on w.
func (w *Write) WriteFrame(f Frame) error {
	return w.half.writeFrame(w.stream, &f)
}
