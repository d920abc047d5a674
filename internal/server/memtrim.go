// internal/server/memtrim.go
//
// Periodic free-OS-memory loop.
//
// The malloc_trim_interval_sec setting caps how long freed heap pages
// linger before being returned to the OS; debug.FreeOSMemory is the Go
// runtime's equivalent of a malloc trim.

package server

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gooddata/flight-server/internal/metrics"
)

// trimLoop returns the heap to the OS every MallocTrimIntervalSec
// seconds until ctx is canceled.
func (s *Server) trimLoop(ctx context.Context) error {
	interval := time.Duration(s.cfg.MallocTrimIntervalSec) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			debug.FreeOSMemory()
			metrics.MemTrimTotal.Inc()
			s.log.Debugw("freed OS memory", "interval_sec", s.cfg.MallocTrimIntervalSec)
		}
	}
}
