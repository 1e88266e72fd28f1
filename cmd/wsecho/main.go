// Command wsecho runs a minimal WebSocket echo server on top of fastws,
// using the fragment collector to reassemble messages before echoing them
// and a configurable bind address.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/coregx/fastws"
)

func main() {
	cmd := &cli.Command{
		Name:  "wsecho",
		Usage: "WebSocket echo server built on fastws",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "address to listen on",
				Value: ":8080",
			},
			&cli.UintFlag{
				Name:  "max-message-size",
				Usage: "maximum reassembled message size in bytes (0 = engine default)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "wsecho: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	addr := cmd.String("addr")
	maxMessageSize := cmd.Uint("max-message-size")

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		handleConn(log, w, r, maxMessageSize)
	})

	log.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, mux)
}

func handleConn(log zerolog.Logger, w http.ResponseWriter, r *http.Request, maxMessageSize uint64) {
	opts := &fastws.UpgradeOptions{MaxMessageSize: maxMessageSize}
	conn, err := fastws.Upgrade(w, r, opts)
	if err != nil {
		log.Error().Err(err).Msg("upgrade failed")
		http.Error(w, "websocket upgrade failed", http.StatusBadRequest)
		return
	}
	defer conn.CloseStream()

	clog := log.With().Str("conn", conn.ID.String()).Str("remote", r.RemoteAddr).Logger()
	clog.Info().Msg("client connected")

	fc := fastws.NewFragmentCollector(conn)
	if maxMessageSize != 0 {
		fc.SetMaxMessageSize(maxMessageSize)
	}
	for {
		f, err := fc.ReadFrame()
		if err != nil {
			if fastws.IsCloseError(err) {
				clog.Info().Msg("client closed connection")
			} else {
				clog.Error().Err(err).Msg("read failed")
			}
			return
		}

		switch f.OpCode {
		case fastws.OpText, fastws.OpBinary:
			clog.Debug().Str("opcode", f.OpCode.String()).Int("bytes", len(f.Payload)).Msg("echoing message")
			if err := conn.WriteFrame(*f); err != nil {
				clog.Error().Err(err).Msg("write failed")
				return
			}
		case fastws.OpClose:
			clog.Info().Msg("peer closed connection")
			return
		}
	}
}
