// Package dispatch hosts the SpeechToText service handler. Each request is
// walked through a fixed phase sequence: validate the audio union, acquire
// the payload under the size policy, invoke the engine, then drain the
// segment stream back to the caller.
package dispatch

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rbright/whisperd/internal/config"
	"github.com/rbright/whisperd/internal/engine"
	"github.com/rbright/whisperd/internal/source"
	"github.com/rbright/whisperd/internal/transcript"
	speechv1 "github.com/rbright/whisperd/proto/gen/go/speech/v1"
)

// Dispatcher implements speechv1.SpeechToTextServer on top of an inference
// engine and a bounded source loader.
type Dispatcher struct {
	speechv1.UnimplementedSpeechToTextServer

	cfg    config.Config
	engine engine.Engine
	loader *source.Loader
	logger *slog.Logger
}

// New returns a Dispatcher whose loader enforces the configured audio size
// limit.
func New(cfg config.Config, eng engine.Engine, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		cfg:    cfg,
		engine: eng,
		loader: source.NewLoader(cfg.Service.MaxAudioBytes()),
		logger: logger,
	}
}

// Transcribe resolves the request's audio source, runs inference, and streams
// one TranscriptChunk per recognized segment. Acquisition failures abort with
// InvalidArgument; engine failures abort with Internal.
func (d *Dispatcher) Transcribe(req *speechv1.TranscribeRequest, stream grpc.ServerStreamingServer[speechv1.TranscriptChunk]) error {
	ctx := stream.Context()
	phase := PhaseValidate

	audio := audioFromRequest(req)
	log := d.logger.With(slog.String("source", audio.Kind().String()))

	if req.GetOptions().GetDiarize() {
		log.Debug("diarization requested but not supported, speaker labels will be empty")
	}
	phase, _ = Advance(phase, EventValidated)

	input, err := d.loader.Resolve(ctx, audio)
	if err != nil {
		phase, _ = Advance(phase, EventAbort)
		log.Warn("audio acquisition failed",
			slog.String("phase", string(phase)),
			slog.String("error", err.Error()),
		)
		return status.Error(codes.InvalidArgument, err.Error())
	}
	phase, _ = Advance(phase, EventAcquired)

	segs, info, err := d.engine.Transcribe(ctx, input, d.options(req))
	if err != nil {
		phase, _ = Advance(phase, EventAbort)
		log.Error("engine invocation failed",
			slog.String("phase", string(phase)),
			slog.String("error", err.Error()),
		)
		return status.Error(codes.Internal, "transcription failed")
	}
	defer segs.Close()
	phase, _ = Advance(phase, EventInvoked)

	if info.Language != "" {
		log.Info("language detected", slog.String("language", info.Language))
	}

	sent := 0
	for {
		if err := ctx.Err(); err != nil {
			phase, _ = Advance(phase, EventAbort)
			log.Info("request cancelled mid-stream",
				slog.String("phase", string(phase)),
				slog.Int("segments", sent),
			)
			return status.FromContextError(err).Err()
		}

		seg, err := segs.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			phase, _ = Advance(phase, EventAbort)
			log.Error("segment stream failed",
				slog.String("phase", string(phase)),
				slog.Int("segments", sent),
				slog.String("error", err.Error()),
			)
			return status.Error(codes.Internal, "transcription failed")
		}

		if err := stream.Send(transcript.ChunkFromSegment(seg)); err != nil {
			phase, _ = Advance(phase, EventAbort)
			return err
		}
		sent++
	}
	phase, _ = Advance(phase, EventDrained)

	log.Info("transcription complete",
		slog.String("phase", string(phase)),
		slog.Int("segments", sent),
	)
	return nil
}

// options merges the resolved inference configuration with the request's own
// overrides. A request-level initial prompt wins over the configured one.
func (d *Dispatcher) options(req *speechv1.TranscribeRequest) engine.Options {
	inf := d.cfg.Inference
	opts := engine.Options{
		Language:                  req.GetLanguage(),
		BeamSize:                  inf.BeamSize,
		VADFilter:                 inf.VADFilter,
		VADMinSilence:             time.Duration(inf.VADMinSilenceMS) * time.Millisecond,
		WordTimestamps:            inf.WordTimestamps,
		InitialPrompt:             inf.InitialPrompt,
		NoSpeechThreshold:         inf.NoSpeechThreshold,
		LogProbThreshold:          inf.LogProbThreshold,
		CompressionRatioThreshold: inf.CompressionRatioThreshold,
		CPUThreads:                d.cfg.Concurrency.CPUThreads,
	}
	if prompt := req.GetOptions().GetInitialPrompt(); prompt != "" {
		opts.InitialPrompt = prompt
	}
	return opts
}

// audioFromRequest maps the wire oneof onto the source union. A request with
// no variant set maps to the zero Audio, which the loader rejects.
func audioFromRequest(req *speechv1.TranscribeRequest) source.Audio {
	switch src := req.GetAudioSource().(type) {
	case *speechv1.TranscribeRequest_Path:
		return source.FromPath(src.Path)
	case *speechv1.TranscribeRequest_Data:
		return source.FromData(src.Data)
	case *speechv1.TranscribeRequest_Uri:
		return source.FromURI(src.Uri)
	default:
		return source.Audio{}
	}
}
