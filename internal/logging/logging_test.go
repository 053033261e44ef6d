package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Config{Format: FormatConsole})
	require.NoError(t, err)

	log.Info("project created", "project", "proj1")
	log.V(1).Info("hidden")

	out := buf.String()
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "project created")
	assert.Contains(t, out, `"project": "proj1"`)
	assert.NotContains(t, out, "hidden")
}

func TestNew_DefaultFormatIsConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Config{})
	require.NoError(t, err)

	log.Info("hello")

	assert.False(t, strings.HasPrefix(buf.String(), "{"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Config{Format: FormatJSON})
	require.NoError(t, err)

	log.Error(errors.New("conflict"), "operation failed", "step", "create-project")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "operation failed", entry["msg"])
	assert.Equal(t, "conflict", entry["error"])
	assert.Equal(t, "create-project", entry["step"])
}

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, Config{Format: FormatJSON, Debug: true})
	require.NoError(t, err)

	log.V(1).Info("creating network")

	assert.Contains(t, buf.String(), "creating network")
	assert.Contains(t, buf.String(), `"level":"debug"`)
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Config{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}
