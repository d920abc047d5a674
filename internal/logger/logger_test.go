// internal/logger/logger_test.go
//
// Unit-tests for TraceFields renaming.

package logger

import (
	"testing"

	"github.com/gooddata/flight-server/internal/config"
)

func cfgWithTraceKeys(keys map[string]string) *config.ServerConfig {
	return &config.ServerConfig{
		LogEventKeyName: "event",
		LogTraceKeys:    keys,
	}
}

func TestTraceFields_RenamesThroughConfig(t *testing.T) {
	cfg := cfgWithTraceKeys(map[string]string{
		TraceID: "traceId",
		SpanID:  "spanId",
	})

	fields := TraceFields(cfg, "t-1", "s-1", "p-1")
	want := []any{"traceId", "t-1", "spanId", "s-1", "parent_span_id", "p-1"}
	if len(fields) != len(want) {
		t.Fatalf("fields = %v, want %v", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("fields[%d] = %v, want %v", i, fields[i], want[i])
		}
	}
}

func TestTraceFields_OmitsEmptyIDs(t *testing.T) {
	cfg := cfgWithTraceKeys(map[string]string{})

	fields := TraceFields(cfg, "t-1", "", "")
	if len(fields) != 2 || fields[0] != "trace_id" || fields[1] != "t-1" {
		t.Fatalf("fields = %v, want only the trace id pair", fields)
	}
}
