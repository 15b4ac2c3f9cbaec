package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerStampsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Output: &buf})

	l.Info("hello", FieldResource, "csf")
	assert.Contains(t, buf.String(), "component=app")
	assert.Contains(t, buf.String(), "resource=csf")

	buf.Reset()
	l.WithComponent(ComponentHTTP).Warn("slow")
	assert.Contains(t, buf.String(), "component=http")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelWarn, Output: &buf})

	l.Info("dropped")
	l.Debug("dropped")
	assert.Empty(t, buf.String())

	l.Log(context.Background(), slog.LevelError, "kept")
	assert.Contains(t, buf.String(), "kept")
}
