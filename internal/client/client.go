// Package client dials a running whisperd over its unix socket and consumes
// transcript streams.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	speechv1 "github.com/rbright/whisperd/proto/gen/go/speech/v1"
)

// DefaultDialTimeout bounds the wait for the daemon socket to become ready.
const DefaultDialTimeout = 3 * time.Second

// Client wraps one connection to the daemon.
type Client struct {
	conn *grpc.ClientConn
	rpc  speechv1.SpeechToTextClient
}

// Dial connects to the daemon socket and waits for transport readiness, so a
// missing daemon surfaces here rather than on the first call.
func Dial(ctx context.Context, socketPath string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultDialTimeout
	}

	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial whisperd socket %q: %w", socketPath, err)
	}

	readyCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	conn.Connect()
	if err := waitForReady(readyCtx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("wait for whisperd readiness on %q: %w", socketPath, err)
	}

	return &Client{conn: conn, rpc: speechv1.NewSpeechToTextClient(conn)}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Transcribe issues one request and invokes fn for every received chunk, in
// stream order. A non-nil error from fn stops consumption and is returned.
func (c *Client) Transcribe(ctx context.Context, req *speechv1.TranscribeRequest, fn func(*speechv1.TranscriptChunk) error) error {
	stream, err := c.rpc.Transcribe(ctx, req)
	if err != nil {
		return fmt.Errorf("open transcribe stream: %w", err)
	}

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(chunk); err != nil {
			return err
		}
	}
}

// waitForReady blocks until the connection enters Ready or fails.
func waitForReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.Shutdown:
			return errors.New("grpc connection entered shutdown state")
		}

		if !conn.WaitForStateChange(ctx, state) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("grpc readiness wait timed out in state %s", state.String())
		}
	}
}
