package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any

	for line := range strings.Lines(buf.String()) {
		record := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &record))

		records = append(records, record)
	}

	return records
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	Get().Info("default subsystem")
	Get(WithSubsystem(t.Context(), "sort")).Info("overridden subsystem")
	Get(With(t.Context(), "width", 32)).Debug("with values")
	Get(WithMuted(t.Context(), true)).Error("muted")
	Get(nil, WithSubsystem(t.Context(), "hash")).Info("first non-nil context") //nolint:staticcheck

	records := decodeLines(t, &buf)
	require.Len(t, records, 4)

	assert.Equal(t, "test", records[0]["subsystem"])
	assert.Equal(t, "sort", records[1]["subsystem"])
	assert.InDelta(t, 32, records[2]["width"], 0)
	assert.Equal(t, "DEBUG", records[2]["level"])
	assert.Equal(t, "hash", records[3]["subsystem"])
}

func TestMinLevel(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		MinLevel:  slog.LevelWarn,
		Output:    &buf,
	})

	Get().Info("dropped")
	Get().Warn("kept")

	records := decodeLines(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0]["msg"])
}

func TestWithDoesNotShareValues(t *testing.T) { //nolint:paralleltest
	base := With(t.Context(), "a", 1)
	left := With(base, "b", 2)
	right := With(base, "c", 3)

	assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
	assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
	assert.Equal(t, base, With(base))
}

func TestAnnotateError(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	sentinel := errors.New("bad float")
	err := AnnotateError(sentinel, "input", "1.2.3")

	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, "bad float", err.Error())
	require.Len(t, ErrorAttrs(err), 1)
	assert.Nil(t, AnnotateError(nil, "input", "x"))

	Get().Error("parse failed", "error", err)
	Get().Error("plain error", "error", sentinel)

	records := decodeLines(t, &buf)
	require.Len(t, records, 2)

	assert.Equal(t, "1.2.3", records[0]["input"])
	assert.Equal(t, "bad float", records[0]["error"])
	assert.Equal(t, "bad float", records[1]["error"])
	assert.NotContains(t, records[1], "input")
}

func TestConfigureLogging(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_LEVEL", "debug")

	_, err := ConfigureLogging(t.Context(), "floatord", WithOutput(&buf))
	require.NoError(t, err)

	Get().Debug("hello")

	records := decodeLines(t, &buf)
	require.NotEmpty(t, records)
	assert.Equal(t, "floatord", records[len(records)-1]["subsystem"])
	assert.Equal(t, "hello", records[len(records)-1]["msg"])

	t.Setenv("LOG_OUTPUT", "syslog")

	_, err = ConfigureLogging(t.Context(), "floatord")
	require.ErrorIs(t, err, ErrInvalidLogOutput)

	t.Setenv("LOG_OUTPUT", "stderr")
	t.Setenv("LOG_LEVEL", "chatty")

	_, err = ConfigureLogging(t.Context(), "floatord")
	require.Error(t, err)
}
