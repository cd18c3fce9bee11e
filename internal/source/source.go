// Package source normalizes the three audio acquisition strategies — local
// path, inline payload, remote locator — into one bounded input for the
// inference engine, enforcing the configured size policy.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FetchTimeout bounds one remote audio fetch end to end.
const FetchTimeout = 15 * time.Second

var (
	// ErrNoSource marks a request that populated no audio source variant.
	ErrNoSource = errors.New("no valid audio_source provided")
	// ErrTooLarge marks a payload over the configured maximum size.
	ErrTooLarge = errors.New("audio exceeds maximum size")
)

// Kind identifies which variant of an Audio union is populated.
type Kind int

const (
	KindNone Kind = iota
	KindPath
	KindData
	KindURI
)

// String returns the kind's wire-level field name for logging.
func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindData:
		return "data"
	case KindURI:
		return "uri"
	default:
		return "none"
	}
}

// Audio is a tagged union over the audio acquisition strategies. Exactly one
// variant is populated; the zero value populates none.
type Audio struct {
	kind Kind
	path string
	data []byte
	uri  string
}

// FromPath references a file readable by the daemon.
func FromPath(path string) Audio { return Audio{kind: KindPath, path: path} }

// FromData wraps an inline payload.
func FromData(data []byte) Audio { return Audio{kind: KindData, data: data} }

// FromURI references remote audio fetched before inference.
func FromURI(uri string) Audio { return Audio{kind: KindURI, uri: uri} }

// Kind reports the populated variant.
func (a Audio) Kind() Kind { return a.kind }

// Resolved is audio ready for the engine: a local path passed through
// verbatim, or a fully buffered payload. Exactly one field is set.
type Resolved struct {
	Path string
	Data []byte
}

// Reader returns the buffered payload as a seekable stream.
func (r Resolved) Reader() *bytes.Reader { return bytes.NewReader(r.Data) }

// Loader enforces the maximum-size policy and performs remote fetches.
type Loader struct {
	MaxBytes int64
	Client   *http.Client
}

// NewLoader returns a Loader with the fetch timeout applied to its client.
func NewLoader(maxBytes int64) *Loader {
	return &Loader{
		MaxBytes: maxBytes,
		Client:   &http.Client{Timeout: FetchTimeout},
	}
}

// Resolve turns one Audio union into engine-ready input. Local paths pass
// through without a size check; the engine opens them itself. Inline and
// remote payloads are checked against MaxBytes before any buffering.
func (l *Loader) Resolve(ctx context.Context, a Audio) (Resolved, error) {
	switch a.kind {
	case KindPath:
		return Resolved{Path: a.path}, nil
	case KindData:
		if int64(len(a.data)) > l.MaxBytes {
			return Resolved{}, fmt.Errorf("%w: inline payload is %d bytes, limit is %d",
				ErrTooLarge, len(a.data), l.MaxBytes)
		}
		return Resolved{Data: a.data}, nil
	case KindURI:
		return l.fetch(ctx, a.uri)
	default:
		return Resolved{}, ErrNoSource
	}
}

// fetch downloads remote audio, aborting before the body transfer when the
// server declares an over-limit Content-Length.
func (l *Loader) fetch(ctx context.Context, uri string) (Resolved, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return Resolved{}, fmt.Errorf("fetch audio uri %q: %w", uri, err)
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return Resolved{}, fmt.Errorf("fetch audio uri %q: %w", uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Resolved{}, fmt.Errorf("fetch audio uri %q: unexpected status %s", uri, resp.Status)
	}
	if resp.ContentLength > l.MaxBytes {
		return Resolved{}, fmt.Errorf("%w: remote audio is %d bytes, limit is %d",
			ErrTooLarge, resp.ContentLength, l.MaxBytes)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Resolved{}, fmt.Errorf("fetch audio uri %q: %w", uri, err)
	}
	return Resolved{Data: body}, nil
}
