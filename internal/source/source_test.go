package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePathPassesThrough(t *testing.T) {
	l := NewLoader(16)

	// Paths bypass the size policy entirely; the engine reads them itself.
	resolved, err := l.Resolve(context.Background(), FromPath("/audio/huge-recording.wav"))
	require.NoError(t, err)
	require.Equal(t, "/audio/huge-recording.wav", resolved.Path)
	require.Nil(t, resolved.Data)
}

func TestResolveInlineData(t *testing.T) {
	l := NewLoader(8)

	resolved, err := l.Resolve(context.Background(), FromData([]byte("12345678")))
	require.NoError(t, err)
	require.Equal(t, []byte("12345678"), resolved.Data)

	_, err = l.Resolve(context.Background(), FromData([]byte("123456789")))
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestResolveEmptyUnion(t *testing.T) {
	l := NewLoader(8)

	_, err := l.Resolve(context.Background(), Audio{})
	require.ErrorIs(t, err, ErrNoSource)
}

func TestResolveURIFetchesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("downloaded bytes"))
	}))
	defer srv.Close()

	l := NewLoader(1 << 20)
	resolved, err := l.Resolve(context.Background(), FromURI(srv.URL+"/audio.wav"))
	require.NoError(t, err)
	require.Equal(t, []byte("downloaded bytes"), resolved.Data)
}

func TestResolveURIAbortsOnDeclaredLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Declare an over-limit body; the loader must abort on the header
		// alone, before the transfer.
		w.Header().Set("Content-Length", strconv.Itoa(1<<20))
		w.WriteHeader(http.StatusOK)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	}))
	defer srv.Close()

	l := NewLoader(1024)
	_, err := l.Resolve(context.Background(), FromURI(srv.URL))
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestResolveURINonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	l := NewLoader(1024)
	_, err := l.Resolve(context.Background(), FromURI(srv.URL))
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestResolveURIConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	l := NewLoader(1024)
	_, err := l.Resolve(context.Background(), FromURI(srv.URL))
	require.Error(t, err)
	require.Contains(t, err.Error(), "fetch audio uri")
}

func TestKindString(t *testing.T) {
	require.Equal(t, "path", FromPath("x").Kind().String())
	require.Equal(t, "data", FromData(nil).Kind().String())
	require.Equal(t, "uri", FromURI("x").Kind().String())
	require.Equal(t, "none", Audio{}.Kind().String())
}
