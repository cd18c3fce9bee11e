// Package server hosts the SpeechToText gRPC service on a local unix socket.
package server

import (
	"context"
	"log/slog"
	"net"
	"os"
	"time"

	"google.golang.org/grpc"

	"github.com/rbright/whisperd/internal/config"
	speechv1 "github.com/rbright/whisperd/proto/gen/go/speech/v1"
)

// shutdownGrace bounds how long in-flight streams may keep draining after a
// shutdown signal before connections are forced closed.
const shutdownGrace = 10 * time.Second

// probeTimeout bounds the liveness check against an existing socket file.
const probeTimeout = time.Second

// Server owns the listener lifecycle around a grpc.Server.
type Server struct {
	grpc       *grpc.Server
	logger     *slog.Logger
	socketPath string
}

// New registers svc on a grpc.Server sized to the resolved worker count.
func New(cfg config.Config, svc speechv1.SpeechToTextServer, logger *slog.Logger) *Server {
	workers := uint32(cfg.Concurrency.MaxWorkers)
	gs := grpc.NewServer(
		grpc.NumStreamWorkers(workers),
		grpc.MaxConcurrentStreams(workers),
	)
	speechv1.RegisterSpeechToTextServer(gs, svc)

	return &Server{
		grpc:       gs,
		logger:     logger,
		socketPath: cfg.Service.SocketPath,
	}
}

// Run binds the socket and serves until ctx is cancelled, then drains
// in-flight streams for up to shutdownGrace before forcing a stop. The
// socket file is removed on exit.
func (s *Server) Run(ctx context.Context) error {
	listener, err := Acquire(ctx, s.socketPath, probeTimeout)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(s.socketPath) }()

	s.logger.Info("listening", slog.String("socket_path", s.socketPath))
	return s.serve(ctx, listener)
}

func (s *Server) serve(ctx context.Context, listener net.Listener) error {
	serveDone := make(chan error, 1)
	go func() { serveDone <- s.grpc.Serve(listener) }()

	select {
	case err := <-serveDone:
		return err
	case <-ctx.Done():
	}

	drained := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(drained)
	}()

	select {
	case <-drained:
		s.logger.Info("graceful shutdown complete")
	case <-time.After(shutdownGrace):
		s.logger.Warn("graceful shutdown timed out, forcing stop")
		s.grpc.Stop()
		<-drained
	}

	<-serveDone
	return nil
}
