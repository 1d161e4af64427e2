package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestOpenSink(t *testing.T) {
	t.Parallel()

	t.Run("stdout when empty", func(t *testing.T) {
		t.Parallel()
		ws, err := openSink("")
		require.NoError(t, err)
		require.NotNil(t, ws)
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "app.log")
		ws, err := openSink(path)
		require.NoError(t, err)
		_, err = ws.Write([]byte("line\n"))
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, "line\n", string(data))
	})

	t.Run("unreachable path", func(t *testing.T) {
		t.Parallel()
		ws, err := openSink(filepath.Join(t.TempDir(), "missing", "app.log"))
		require.Error(t, err)
		require.NotNil(t, ws)
	})
}

func TestNewLogger_BadSinkStillLogs(t *testing.T) {
	t.Parallel()
	log := NewLogger(Log{
		LogLevel: zapcore.InfoLevel,
		Sink:     filepath.Join(t.TempDir(), "missing", "app.log"),
	}, "test")
	require.NotNil(t, log)
	require.True(t, log.Core().Enabled(zapcore.InfoLevel))
}
