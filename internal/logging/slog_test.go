package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// newBufferedLogger mirrors the production wiring (JSON handler), but writes
// to a buffer instead of stdout.
func newBufferedLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil))), &buf
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestSlogLogger_EmitsLeveledRecords(t *testing.T) {
	log, buf := newBufferedLogger(t)
	ctx := context.Background()

	log.Info(ctx, "day saved", "user_id", "u1", "rows", 3)
	log.Warn(ctx, "assist slow", "elapsed_ms", 1200)
	log.Error(ctx, "archive failed", "month", "2025-03")

	records := decodeRecords(t, buf)
	require.Len(t, records, 3)

	require.Equal(t, "INFO", records[0]["level"])
	require.Equal(t, "day saved", records[0]["msg"])
	require.Equal(t, "u1", records[0]["user_id"])
	require.Equal(t, float64(3), records[0]["rows"])

	require.Equal(t, "WARN", records[1]["level"])
	require.Equal(t, float64(1200), records[1]["elapsed_ms"])

	require.Equal(t, "ERROR", records[2]["level"])
	require.Equal(t, "2025-03", records[2]["month"])
}

func TestSlogLogger_WithCarriesAttributes(t *testing.T) {
	log, buf := newBufferedLogger(t)
	ctx := context.Background()

	reqLog := log.With("request_id", "r-42")
	reqLog.Info(ctx, "export archived", "month", "2025-04")

	records := decodeRecords(t, buf)
	require.Len(t, records, 1)
	require.Equal(t, "r-42", records[0]["request_id"])
	require.Equal(t, "2025-04", records[0]["month"])

	// the parent logger stays unchanged
	log.Info(ctx, "plain")
	records = decodeRecords(t, buf)
	require.Len(t, records, 2)
	require.NotContains(t, records[1], "request_id")
}
