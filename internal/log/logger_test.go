package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tabpager/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "level=warning")
	buf.Reset()

	l.Error("error message")
	assert.Contains(t, buf.String(), "level=error")
	buf.Reset()

	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "formatted message")
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))
	defer SetDebug(false)

	SetDebug(false)
	l.Debug("debug message")
	assert.Empty(t, buf.String())

	SetDebug(true)
	assert.True(t, DebugEnabled())
	l.Debugf("formatted %s", "debug")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "formatted debug")
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("key1", "value1")).With(F("key2", 123)).Info("chained fields")
	assert.Contains(t, buf.String(), "key1=value1")
	assert.Contains(t, buf.String(), "key2=123")
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON())

	l.With(F("page", 2)).Info("json message")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "json message", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 2, entry["page"])
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	Configure(WithOutput(&buf))
	defer Configure()

	LogWithError(errors.NewIndexError("jump", 7, 3)).Error("jump rejected")
	out := buf.String()
	assert.Contains(t, out, "jump rejected")
	assert.Contains(t, out, "index=7")
	assert.Contains(t, out, "count=3")
	buf.Reset()

	LogWithError(errors.NewConfigError("bad value", "style", errors.InvalidConfig, nil)).Error("config rejected")
	assert.Contains(t, buf.String(), "param=style")
	buf.Reset()

	LogWithError(nil).Error("nil error test")
	assert.Contains(t, buf.String(), "nil error test")
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabpager.log")
	Configure(WithFile(path))
	defer Configure()

	Infof("written to %s", "file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
