// internal/config/read_test.go
//
// End-to-end tests for the Read pipeline: files → env → validated
// store → typed record.

package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestRead_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.yaml", `server:
  listen_host: 0.0.0.0
  listen_port: 100
  metrics_host: 127.0.0.1
  log_trace_keys:
    trace_id: traceId
`)
	override := writeFile(t, dir, "override.yaml", `server:
  listen_port: 200
`)
	t.Setenv("GOODDATA_FLIGHT_SERVER__TASK_THREADS", "8")

	validated, cfg, err := Read(base, override)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if cfg.ListenPort != 200 {
		t.Fatalf("listen_port = %d, want 200 from the later file", cfg.ListenPort)
	}
	if cfg.AdvertisePort != 200 {
		t.Fatalf("advertise_port = %d, want listen_port fallback", cfg.AdvertisePort)
	}
	if cfg.TaskThreads != 8 {
		t.Fatalf("task_threads = %d, want env override 8", cfg.TaskThreads)
	}
	if cfg.MetricsHost == nil || *cfg.MetricsHost != "127.0.0.1" {
		t.Fatalf("metrics_host = %v", cfg.MetricsHost)
	}
	if cfg.LogTraceKeys["trace_id"] != "traceId" {
		t.Fatalf("log_trace_keys = %v", cfg.LogTraceKeys)
	}

	// The validated store stays available for diagnostics.
	if got := validated.Int("server.listen_port"); got != 200 {
		t.Fatalf("validated listen_port = %d, want 200", got)
	}
}

func TestRead_SourceErrorBeforeValidation(t *testing.T) {
	// The bad value in the env would fail validation, but the missing
	// file must win: no partial store, no aggregated error.
	t.Setenv("GOODDATA_FLIGHT_SERVER__TASK_THREADS", "-1")

	_, _, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected a source error")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Fatalf("got a validation error %v, want a plain source error", verr)
	}
}
