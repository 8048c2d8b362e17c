package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartupTrace_BuffersUntilLogger(t *testing.T) {
	st := newStartupTrace(time.Now(), true)
	st.Mark("config_loaded")
	st.Mark("parallel_init")

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	st.SetLogger(&logger)
	st.Mark("window_presented")
	st.Finish()
	st.Mark("ignored")
	st.Finish()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &summary))
	assert.Equal(t, "startup complete", summary["message"])
	steps, ok := summary["steps"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, steps, 3)
	assert.NotContains(t, buf.String(), "ignored")
}

func TestStartupTrace_Disabled(t *testing.T) {
	st := newStartupTrace(time.Now(), false)
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	st.SetLogger(&logger)
	st.Mark("anything")
	st.Finish()

	assert.False(t, st.Enabled())
	assert.Empty(t, buf.String())

	var nilTrace *StartupTrace
	assert.NotPanics(t, func() { nilTrace.Mark("x") })
}
