package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.raw))
		})
	}
}

func TestLoggersAreIndependent(t *testing.T) {
	SetLogDir(t.TempDir())
	SetLogFilename("test.log")
	defer CloseLogger()

	SetLogLevel(slog.LevelDebug)
	SetInternalLogLevel(slog.LevelError)

	assert.Same(t, GetLogger(), GetLogger())
	assert.NotSame(t, GetLogger(), GetInternalLogger())
	assert.True(t, GetLogger().Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, GetInternalLogger().Enabled(context.Background(), slog.LevelWarn))
}

func TestLoggerLeavesStdoutAlone(t *testing.T) {
	dir := t.TempDir()
	SetLogDir(dir)
	SetLogFilename("stdout.log")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = stdout })

	SetLogLevel(slog.LevelDebug)
	SetInternalLogLevel(slog.LevelDebug)
	GetLogger().Info("Item selected", "index", 2, "text", "Camera")
	GetInternalLogger().Debug("Menu settled")

	require.NoError(t, w.Close())
	os.Stdout = stdout
	captured, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Empty(t, string(captured))

	if logFile != nil && logFile.Name() == filepath.Join(dir, "stdout.log") {
		contents, err := os.ReadFile(logFile.Name())
		require.NoError(t, err)
		assert.Contains(t, string(contents), "Item selected")
	}
}
