package fastws

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type shortWriter struct {
	max int
	buf bytes.Buffer
}

func (w *shortWriter) Write(p []byte) (int, error) {
	n := len(p)
	if n > w.max {
		n = w.max
	}
	w.buf.Write(p[:n])
	return n, nil
}

type zeroWriter struct{}

func (zeroWriter) Write(p []byte) (int, error) { return 0, nil }

func TestWriteFrameServerDoesNotMask(t *testing.T) {
	h := newWriteHalf(Server)
	var buf bytes.Buffer
	f := TextFrame([]byte("hi"))
	require.NoError(t, h.writeFrame(&buf, &f))

	require.Equal(t, []byte{0x81, 0x02, 'h', 'i'}, buf.Bytes())
}

func TestWriteFrameClientMasksWithFreshKey(t *testing.T) {
	h := newWriteHalf(Client)
	var buf1, buf2 bytes.Buffer
	f1 := TextFrame([]byte("hi"))
	f2 := TextFrame([]byte("hi"))
	require.NoError(t, h.writeFrame(&buf1, &f1))
	require.NoError(t, h.writeFrame(&buf2, &f2))

	require.NotZero(t, buf1.Bytes()[1]&0x80)
	// Two masked frames of the same plaintext should almost never collide
	// on their mask key (bytes 2-5 of the header).
	require.NotEqual(t, buf1.Bytes()[2:6], buf2.Bytes()[2:6])
}

func TestStartSendFrameLatchesClosedOnClose(t *testing.T) {
	h := newWriteHalf(Server)
	closeFrame, err := CloseFrame(CloseNormalClosure, nil)
	require.NoError(t, err)
	require.NoError(t, h.startSendFrame(&closeFrame))
	require.True(t, h.closed)

	f := TextFrame([]byte("too late"))
	require.ErrorIs(t, h.startSendFrame(&f), ErrConnectionClosed)
}

func TestStartSendFrameAllowsCloseAfterClose(t *testing.T) {
	h := newWriteHalf(Server)
	f1, _ := CloseFrame(CloseNormalClosure, nil)
	f2, _ := CloseFrame(CloseGoingAway, nil)
	require.NoError(t, h.startSendFrame(&f1))
	require.NoError(t, h.startSendFrame(&f2))
}

func TestFlushDrainsBufferAcrossShortWrites(t *testing.T) {
	h := newWriteHalf(Server)
	f := BinaryFrame(bytes.Repeat([]byte{0x42}, 500))
	require.NoError(t, h.startSendFrame(&f))

	w := &shortWriter{max: 17}
	require.NoError(t, h.flush(w))
	require.Empty(t, h.buf)
	require.Equal(t, 500+4, w.buf.Len()) // 4-byte header for a 500-byte payload
}

func TestFlushZeroByteWriteIsConnectionClosed(t *testing.T) {
	h := newWriteHalf(Server)
	f := TextFrame([]byte("x"))
	require.NoError(t, h.startSendFrame(&f))

	err := h.flush(zeroWriter{})
	require.ErrorIs(t, err, ErrConnectionClosed)
}
