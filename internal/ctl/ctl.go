// Package ctl implements the whisperctl command: a thin client that submits
// one transcription request to a running whisperd and prints the chunks.
package ctl

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rbright/whisperd/internal/client"
	"github.com/rbright/whisperd/internal/config"
	"github.com/rbright/whisperd/internal/version"
	speechv1 "github.com/rbright/whisperd/proto/gen/go/speech/v1"
)

// Execute parses args, runs one transcription, and returns the exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("whisperctl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	socketPath := fs.String("socket", config.Default().Service.SocketPath, "whisperd unix socket path")
	uri := fs.String("uri", "", "transcribe remote audio at this URI instead of a local file")
	inline := fs.Bool("inline", false, "read the local file and send its bytes inline")
	language := fs.String("language", "", "language hint, empty for auto-detection")
	prompt := fs.String("prompt", "", "initial decoder prompt")
	timeout := fs.Duration("timeout", 10*time.Minute, "overall request timeout")
	showWords := fs.Bool("words", false, "print per-word timing lines")
	showVersion := fs.Bool("version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: whisperctl [flags] <audio-file>\n       whisperctl [flags] -uri <url>\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	req, err := buildRequest(fs.Args(), *uri, *inline, *language, *prompt)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		fs.Usage()
		return 2
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	c, err := client.Dial(ctx, *socketPath, client.DefaultDialTimeout)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer c.Close()

	err = c.Transcribe(ctx, req, func(chunk *speechv1.TranscriptChunk) error {
		printChunk(stdout, chunk, *showWords)
		return nil
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// buildRequest maps the CLI surface onto the request's audio source union:
// -uri sends a remote locator, -inline ships the file bytes, and the bare
// positional path is passed through for the daemon to open.
func buildRequest(positional []string, uri string, inline bool, language, prompt string) (*speechv1.TranscribeRequest, error) {
	req := &speechv1.TranscribeRequest{Language: language}
	if prompt != "" {
		req.Options = &speechv1.TranscribeOptions{InitialPrompt: prompt}
	}

	switch {
	case uri != "":
		if len(positional) > 0 {
			return nil, fmt.Errorf("cannot combine -uri with a file argument")
		}
		req.AudioSource = &speechv1.TranscribeRequest_Uri{Uri: uri}
	case len(positional) == 1:
		path := positional[0]
		if inline {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read audio file: %w", err)
			}
			req.AudioSource = &speechv1.TranscribeRequest_Data{Data: data}
		} else {
			abs, err := filepath.Abs(path)
			if err != nil {
				return nil, fmt.Errorf("resolve audio path: %w", err)
			}
			req.AudioSource = &speechv1.TranscribeRequest_Path{Path: abs}
		}
	case len(positional) == 0:
		return nil, fmt.Errorf("no audio file or -uri given")
	default:
		return nil, fmt.Errorf("expected exactly one audio file, got %d", len(positional))
	}
	return req, nil
}

func printChunk(w io.Writer, chunk *speechv1.TranscriptChunk, words bool) {
	fmt.Fprintf(w, "[%8.2fs - %8.2fs] %s\n", chunk.GetStartTime(), chunk.GetEndTime(), chunk.GetText())
	if !words {
		return
	}
	for _, word := range chunk.GetWords() {
		fmt.Fprintf(w, "    %8.2fs - %8.2fs  %-20s p=%.2f\n",
			word.GetStartTime(), word.GetEndTime(), word.GetText(), word.GetConfidence())
	}
}
