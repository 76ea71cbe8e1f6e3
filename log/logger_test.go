package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now = time.Now().Unix()
	err = fmt.Errorf("error message")
)

func TestLogger(t *testing.T) {
	SetLogger(6, false, true)
	defer SetOutput(os.Stderr)

	var buf bytes.Buffer
	SetOutput(&buf)

	Trace("test Trace", "timestamp", now, "err", err)
	Debug("test Debug", "timestamp", now, "err", err)
	Debugf("test Debugf, timestamp=%v err=%v", now, err)
	Warn("test Warn", "timestamp", now, "err", err)

	out := buf.String()
	for _, msg := range []string{"test Trace", "test Debug", "test Debugf", "test Warn"} {
		assert.Contains(t, out, msg)
	}
}

func TestLoggerLevel(t *testing.T) {
	SetLogger(3, false, false)
	defer SetOutput(os.Stderr)

	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("hidden debug")
	Trace("hidden trace")
	Warn("shown warn", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, `key="value"`)
}

func TestLoggerJSON(t *testing.T) {
	SetLogger(3, true, false)
	defer SetOutput(os.Stderr)

	var buf bytes.Buffer
	SetOutput(&buf)

	Warn("json line", "size", 27, 42, "dropped")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "json line", entry["msg"])
	assert.Equal(t, float64(27), entry["size"])
	assert.Equal(t, "warning", entry["level"])
	assert.NotContains(t, entry, "42")
}
