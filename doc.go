// Package fastws implements the core of the WebSocket protocol (RFC 6455):
// a streaming frame codec, per-connection protocol state, a fragment
// collector, a masking primitive, and a handshake helper.
//
// The package is split along the same lines as the protocol itself:
//
//   - Frame (frame.go) is the in-memory representation of one wire frame.
//   - readHalf (read.go) incrementally parses frames out of an io.Reader,
//     enforcing RFC 6455 validity and producing obligated replies for
//     Ping/Close frames.
//   - writeHalf (write.go) serializes frames and drains them to an
//     io.Writer, masking outgoing frames when acting as a client.
//   - Conn (conn.go) owns both halves over one stream and keeps obligated
//     replies flowing from the read side to the write side.
//   - FragmentCollector (fragment.go) reassembles CONTINUATION sequences
//     into single logical messages.
//   - GenerateKey/AcceptKey/Upgrade/Dial (handshake.go) implement the
//     HTTP/1.1 upgrade handshake.
//
// TLS, TCP connection management, HTTP routing and permessage-deflate are
// out of scope; callers supply an already-upgraded io.ReadWriter.
package fastws
