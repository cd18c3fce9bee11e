package engine

import (
	"context"
	"io"
	"sync"

	"github.com/rbright/whisperd/internal/source"
)

// Mock is a scriptable Engine for tests: canned segments, optional error
// injection, and a record of how it was invoked.
type Mock struct {
	Segments []Segment
	Info     Info

	// Err, when set, fails Transcribe before any stream is produced.
	Err error

	// StreamErr, when set, is returned by Next after FailAfter segments.
	StreamErr error
	FailAfter int

	mu        sync.Mutex
	calls     int
	lastOpts  Options
	lastInput source.Resolved
	streams   []*MockStream
}

// Transcribe returns a stream over the canned segments.
func (m *Mock) Transcribe(ctx context.Context, input source.Resolved, opts Options) (Stream, Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.lastOpts = opts
	m.lastInput = input
	if m.Err != nil {
		return nil, Info{}, m.Err
	}

	s := &MockStream{segments: m.Segments, failAfter: m.FailAfter, err: m.StreamErr}
	m.streams = append(m.streams, s)
	return s, m.Info, nil
}

// Calls reports how many times Transcribe ran.
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastOptions returns the options of the most recent call.
func (m *Mock) LastOptions() Options {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastOpts
}

// LastInput returns the resolved input of the most recent call.
func (m *Mock) LastInput() source.Resolved {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastInput
}

// Streams returns every stream handed out, for pull/close assertions.
func (m *Mock) Streams() []*MockStream {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*MockStream(nil), m.streams...)
}

// MockStream yields canned segments and records consumption.
type MockStream struct {
	segments  []Segment
	failAfter int
	err       error

	mu     sync.Mutex
	pulled int
	closed bool
}

func (s *MockStream) Next() (Segment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Segment{}, io.EOF
	}
	if s.err != nil && s.pulled >= s.failAfter {
		return Segment{}, s.err
	}
	if s.pulled >= len(s.segments) {
		return Segment{}, io.EOF
	}
	seg := s.segments[s.pulled]
	s.pulled++
	return seg, nil
}

func (s *MockStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Pulled reports how many segments were consumed.
func (s *MockStream) Pulled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pulled
}

// Closed reports whether the dispatcher released the stream.
func (s *MockStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
