// internal/health/health.go
//
// Liveness and readiness probes.
//
// Served on the configured health_check_host:health_check_port; the
// listener is skipped entirely when no health_check_host is set.

package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router returns the health-check mux.  Both probes answer 200 as soon
// as the process is up; configuration already validated by then.
func Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/livez", probe)
	r.Get("/readyz", probe)
	return r
}

func probe(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
