package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rbright/whisperd/internal/config"
	"github.com/rbright/whisperd/internal/dispatch"
	"github.com/rbright/whisperd/internal/engine"
	speechv1 "github.com/rbright/whisperd/proto/gen/go/speech/v1"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServerRoundTrip(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "whisper.sock")

	cfg := config.Default()
	cfg.Service.SocketPath = socketPath
	cfg.Concurrency.MaxWorkers = 2

	mock := &engine.Mock{
		Segments: []engine.Segment{
			{Start: 0, End: 1.5, Text: " Hello.", AvgLogProb: -0.2},
			{Start: 1.5, End: 3.0, Text: " World.", AvgLogProb: -0.4},
		},
		Info: engine.Info{Language: "en"},
	}
	srv := New(cfg, dispatch.New(cfg, mock, testLogger()), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan error, 1)
	go func() { runDone <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		return alive(context.Background(), socketPath, 50*time.Millisecond)
	}, 2*time.Second, 20*time.Millisecond)

	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	client := speechv1.NewSpeechToTextClient(conn)

	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()

	stream, err := client.Transcribe(callCtx, &speechv1.TranscribeRequest{
		AudioSource: &speechv1.TranscribeRequest_Data{Data: []byte("riff")},
	})
	require.NoError(t, err)

	var texts []string
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		require.NoError(t, recvErr)
		texts = append(texts, chunk.GetText())
	}
	require.Equal(t, []string{"Hello.", "World."}, texts)

	cancel()
	select {
	case err := <-runDone:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerRemovesSocketOnShutdown(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "whisper.sock")

	cfg := config.Default()
	cfg.Service.SocketPath = socketPath
	cfg.Concurrency.MaxWorkers = 1

	srv := New(cfg, dispatch.New(cfg, &engine.Mock{}, testLogger()), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan error, 1)
	go func() { runDone <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		return alive(context.Background(), socketPath, 50*time.Millisecond)
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-runDone:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	require.False(t, alive(context.Background(), socketPath, 50*time.Millisecond))
}

func TestServerRefusesSecondInstance(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "whisper.sock")

	cfg := config.Default()
	cfg.Service.SocketPath = socketPath
	cfg.Concurrency.MaxWorkers = 1

	first := New(cfg, dispatch.New(cfg, &engine.Mock{}, testLogger()), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan error, 1)
	go func() { runDone <- first.Run(ctx) }()

	require.Eventually(t, func() bool {
		return alive(context.Background(), socketPath, 50*time.Millisecond)
	}, 2*time.Second, 20*time.Millisecond)

	second := New(cfg, dispatch.New(cfg, &engine.Mock{}, testLogger()), testLogger())
	err := second.Run(context.Background())
	require.ErrorIs(t, err, ErrAlreadyRunning)

	cancel()
	require.NoError(t, <-runDone)
}
