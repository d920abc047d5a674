// internal/config/settings.go
//
// Setting keys, namespacing, and built-in defaults.
//
// Context
// -------
// Every recognized setting lives under one top-level `server` section and
// is addressed by a dotted key, e.g. `server.listen_port`.  The same keys
// are reachable through environment variables carrying the
// `GOODDATA_FLIGHT_` prefix, where `__` maps to “.”
// (e.g., `GOODDATA_FLIGHT_SERVER__LISTEN_PORT → server.listen_port`).
//
// Defaults declared here are the lowest layer of the precedence chain:
// files override defaults, environment variables override files.
//
// Notes
// -----
//   • Adding a setting means adding one key constant here and one rule in
//     rules.go; nothing else changes.
//   • Oxford commas, two spaces after periods.

package config

import (
	"net"
	"os"
	"strings"
)

// EnvPrefix marks the environment variables this server recognizes.
const EnvPrefix = "GOODDATA_FLIGHT_"

const serverSection = "server"

// sKey namespaces a bare setting name under the server section.
func sKey(name string) string { return serverSection + "." + name }

//
// setting names (bare, without the section prefix)
//

const (
	keyListenHost            = "listen_host"
	keyListenPort            = "listen_port"
	keyAdvertiseHost         = "advertise_host"
	keyAdvertisePort         = "advertise_port"
	keyTaskThreads           = "task_threads"
	keyMetricsHost           = "metrics_host"
	keyMetricsPort           = "metrics_port"
	keyHealthCheckHost       = "health_check_host"
	keyHealthCheckPort       = "health_check_port"
	keyMallocTrimIntervalSec = "malloc_trim_interval_sec"
	keyLogEventKeyName       = "log_event_key_name"
	keyLogTraceKeys          = "log_trace_keys"
	keyOtelExporterType      = "otel_exporter_type"
	keyOtelServiceName       = "otel_service_name"
	keyOtelServiceNamespace  = "otel_service_namespace"
	keyOtelServiceInstanceID = "otel_service_instance_id"
)

//
// built-in defaults
//

const (
	defaultListenHost            = "127.0.0.1"
	defaultListenPort            = 17001
	defaultTaskThreads           = 32
	defaultMallocTrimIntervalSec = 30
	defaultMetricsPort           = 17101
	defaultHealthCheckPort       = 8877
	defaultLogEventKeyName       = "event"
)

// defaultAdvertiseHost resolves the host's fully-qualified name so peers
// can reach this process when no advertise_host is configured.  Resolution
// is best-effort: a bare hostname, or "localhost" as the last resort.
func defaultAdvertiseHost() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return "localhost"
	}
	if cname, err := net.LookupCNAME(hostname); err == nil && cname != "" {
		return strings.TrimSuffix(cname, ".")
	}
	return hostname
}
