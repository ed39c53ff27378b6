package vardata

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogInit("users", 2, 2, nil)
	l.LogFlush(2, 128, nil)
	l.LogRotation(2, 3, 1<<20)
	l.LogUnknownSegment(NewID(9, 0), 3)

	out := buf.String()
	assert.Contains(t, out, "column initialized")
	assert.Contains(t, out, "sealed_segments=2")
	assert.Contains(t, out, "flush completed")
	assert.Contains(t, out, "bytes=128")
	assert.Contains(t, out, "segment rotated")
	assert.Contains(t, out, "read of unknown segment")
	assert.Contains(t, out, "id=9/0")
}

func TestLogger_ErrorPaths(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogInit("users", 0, 0, errors.New("disk gone"))
	l.LogFlush(0, 64, errors.New("disk gone"))

	out := buf.String()
	assert.Contains(t, out, "column init failed")
	assert.Contains(t, out, "flush failed")
	assert.Contains(t, out, "disk gone")
}

func TestNoopLogger_Discards(t *testing.T) {
	l := NoopLogger()
	require.NotNil(t, l)
	// Must not panic and must not emit at any normal level.
	l.LogFlush(0, 1, nil)
	l.Info("ignored")
}
