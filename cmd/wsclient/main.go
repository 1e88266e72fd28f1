// Command wsclient dials a WebSocket server with fastws.Dial, sends a
// single text message, prints the reply, and closes.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/coregx/fastws"
)

func main() {
	cmd := &cli.Command{
		Name:      "wsclient",
		Usage:     "send one message to a WebSocket server and print the reply",
		ArgsUsage: "<ws-url> <message>",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "timeout for the TCP connect (the HTTP upgrade exchange is not bounded by it)",
				Value: 10 * time.Second,
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "wsclient: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	args := cmd.Args()
	if args.Len() != 2 {
		return fmt.Errorf("usage: wsclient <ws-url> <message>")
	}
	url, message := args.Get(0), args.Get(1)

	dialCtx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()

	conn, resp, err := fastws.Dial(dialCtx, url, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.CloseStream()
	log.Info().Str("conn", conn.ID.String()).Int("status", resp.StatusCode).Msg("connected")

	if err := conn.WriteFrame(fastws.TextFrame([]byte(message))); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	reply, err := conn.ReadFrame()
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	fmt.Println(string(reply.Payload))

	return conn.CloseWithCode(fastws.CloseNormalClosure, nil)
}
