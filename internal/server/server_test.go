// internal/server/server_test.go
//
// Unit-tests for the runtime shell.

package server

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/gooddata/flight-server/internal/config"
)

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := &config.ServerConfig{
		ListenHost:            "127.0.0.1",
		ListenPort:            17001,
		AdvertiseHost:         "127.0.0.1",
		AdvertisePort:         17001,
		TaskThreads:           32,
		MetricsPort:           17101,
		HealthCheckPort:       8877,
		MallocTrimIntervalSec: 1,
		LogEventKeyName:       "event",
		LogTraceKeys:          map[string]string{},
	}

	ctx, cancel := context.WithCancel(context.Background())
	srv := New(cfg, zap.NewNop().Sugar())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v after cancel, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
