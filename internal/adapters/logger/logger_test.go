package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stash/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer. NO_COLOR keeps output
// free of ANSI escape codes so assertions are deterministic.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_InfoWarn(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("cache ready")
	assert.Contains(t, buf.String(), "cache ready")

	buf.Reset()
	lg.Warn("treating as miss")
	assert.Contains(t, buf.String(), "treating as miss")
}

func TestLogger_Error_RendersChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	cause := errors.New("disk full")
	err := zerr.Wrap(cause, "failed to write cache record")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: failed to write cache record")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "disk full")
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")
	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(line, "{"))
	assert.Contains(t, line, `"msg":"hello"`)
}
