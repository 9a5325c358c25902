package concepts

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil))

	logger.WithObjects(3).WithProperties(4).WithConcepts(5).Info("annotated")

	out := buf.String()
	assert.Contains(t, out, "objects=3")
	assert.Contains(t, out, "properties=4")
	assert.Contains(t, out, "concepts=5")
}

func TestLoggerLogBuild(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil))

	logger.LogBuild(context.Background(), 5, time.Millisecond, nil)
	assert.Contains(t, buf.String(), "lattice build completed")
	assert.Contains(t, buf.String(), "concepts=5")

	buf.Reset()
	logger.LogBuild(context.Background(), 1, time.Millisecond, errors.New("boom"))
	assert.Contains(t, buf.String(), "lattice build failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestNewLoggerDefaultHandler(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
}
