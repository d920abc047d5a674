// internal/config/model.go
//
// Typed configuration records.
//
// Context
// -------
// ServerConfig is the immutable aggregate the rest of the service
// receives at startup.  It is constructed exactly once, after every
// validation rule has passed, and never mutated afterwards, so it is safe to
// share across goroutines without synchronization.
//
// Optional settings are modeled as pointers (nil = not configured), so
// "not configured" stays distinguishable from "configured as empty."
//
// Notes
// -----
//   • The `validate:` tags back the defensive post-construction check in
//     materialize.go; the rule engine remains the authoritative gate.
//   • TLS fields are reserved: always disabled until the certificate
//     plumbing lands.
//   • Oxford commas, two spaces after periods.

package config

import (
	"fmt"
	"strings"
)

//
// OpenTelemetry section
//

// OtelExporterType enumerates the supported trace exporters.
type OtelExporterType string

const (
	OtelExporterZipkin   OtelExporterType = "zipkin"
	OtelExporterOtlpHTTP OtelExporterType = "otlp-http"
	OtelExporterOtlpGRPC OtelExporterType = "otlp-grpc"
	OtelExporterConsole  OtelExporterType = "console"
)

// otelExporterNone is the sentinel meaning "tracing export disabled".
// It is accepted by validation but never stored in the typed record;
// the materializer maps it to a nil ExporterType instead.
const otelExporterNone = "none"

// supportedExporters is every string the otel_exporter_type rule accepts.
var supportedExporters = []string{
	otelExporterNone,
	string(OtelExporterZipkin),
	string(OtelExporterOtlpHTTP),
	string(OtelExporterOtlpGRPC),
	string(OtelExporterConsole),
}

func exporterList() string { return strings.Join(supportedExporters, ", ") }

// ParseOtelExporterType maps an accepted exporter string to its variant.
// The "none" sentinel is not a variant and is rejected here; callers
// handle it before parsing.
func ParseOtelExporterType(raw string) (OtelExporterType, error) {
	switch t := OtelExporterType(raw); t {
	case OtelExporterZipkin, OtelExporterOtlpHTTP, OtelExporterOtlpGRPC, OtelExporterConsole:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported otel exporter type %q", raw)
	}
}

// OtelConfig carries the tracing/export identity of this process.
type OtelConfig struct {
	// ExporterType is nil when tracing export is disabled.
	ExporterType      *OtelExporterType
	ServiceName       string
	ServiceNamespace  *string
	ServiceInstanceID *string
}

//
// TLS placeholders
//

// TLSKeyPair holds a PEM certificate and its private key.
type TLSKeyPair struct {
	Cert []byte
	Key  []byte
}

//
// Root aggregate
//

// ServerConfig is the validated, immutable server configuration.
type ServerConfig struct {
	// Network identity.
	ListenHost    string `validate:"required"`
	ListenPort    int    `validate:"gt=0"`
	AdvertiseHost string `validate:"required"`
	AdvertisePort int    `validate:"gt=0"`

	// Concurrency sizing for the task executor.
	TaskThreads int `validate:"gt=0"`

	// Observability endpoints; hosts are nil when the endpoint is off.
	MetricsHost     *string
	MetricsPort     int `validate:"gt=0"`
	HealthCheckHost *string
	HealthCheckPort int `validate:"gt=0"`

	// Runtime tuning.
	MallocTrimIntervalSec int `validate:"gt=0"`

	// Structured-logging correlation.  LogTraceKeys maps logical trace
	// field names (trace_id, span_id, parent_span_id) to the keys that
	// should appear in structured log messages; never nil.
	LogEventKeyName string `validate:"required"`
	LogTraceKeys    map[string]string

	Otel OtelConfig

	// Reserved for future use; currently always disabled.
	UseTLS        bool
	UseMutualTLS  bool
	TLSCertAndKey *TLSKeyPair
	TLSRoot       []byte
}
