package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "empty defaults to info", input: "", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "warning alias", input: "warning", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "uppercase accepted", input: "INFO", want: slog.LevelInfo},
		{name: "padded accepted", input: " debug ", want: slog.LevelDebug},
		{name: "unknown rejected", input: "verbose", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLevel(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "unknown log level")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestNewWritesJSONAtLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, "warn")
	require.NoError(t, err)

	logger.Info("suppressed")
	logger.Warn("emitted", slog.String("component", "logging"))

	out := buf.String()
	require.NotContains(t, out, `"msg":"suppressed"`)
	require.Contains(t, out, `"msg":"emitted"`)
	require.Contains(t, out, `"component":"logging"`)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	var buf bytes.Buffer

	_, err := New(&buf, "loud")
	require.Error(t, err)
}
